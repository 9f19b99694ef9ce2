// internal/repositories/work_order_repository.go

package repositories

import (
	"context"
	"sort"
	"sync"

	"github.com/poofware/workorders-service/internal/models"
	"github.com/poofware/workorders-service/internal/utils"
)

/* ───────────── public interface ───────────── */

type WorkOrderRepository interface {
	// List returns orders sorted by createdAt descending. A non-empty
	// phone restricts the result to exact tenantPhone matches.
	List(ctx context.Context, phone string) ([]models.WorkOrder, error)
	GetByID(ctx context.Context, id string) (*models.WorkOrder, error)
	Insert(ctx context.Context, wo *models.WorkOrder) error
	Count(ctx context.Context) (int, error)
}

/* ───────────── implementation ───────────── */

// memoryWorkOrderRepo holds the process-wide work-order collection.
// Handlers run on concurrent goroutines, so appends are serialized
// behind the mutex; reads copy the slice under RLock.
type memoryWorkOrderRepo struct {
	mu     sync.RWMutex
	orders []models.WorkOrder
}

func NewWorkOrderRepository(seed []models.WorkOrder) WorkOrderRepository {
	orders := make([]models.WorkOrder, len(seed))
	copy(orders, seed)
	return &memoryWorkOrderRepo{orders: orders}
}

func (r *memoryWorkOrderRepo) List(_ context.Context, phone string) ([]models.WorkOrder, error) {
	r.mu.RLock()
	out := make([]models.WorkOrder, 0, len(r.orders))
	for _, wo := range r.orders {
		if phone != "" && wo.TenantPhone != phone {
			continue
		}
		out = append(out, wo)
	}
	r.mu.RUnlock()

	// Stable sort so createdAt ties fall back to insertion order.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *memoryWorkOrderRepo) GetByID(_ context.Context, id string) (*models.WorkOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.orders {
		if r.orders[i].ID == id {
			wo := r.orders[i]
			return &wo, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (r *memoryWorkOrderRepo) Insert(_ context.Context, wo *models.WorkOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders = append(r.orders, *wo)
	return nil
}

func (r *memoryWorkOrderRepo) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders), nil
}
