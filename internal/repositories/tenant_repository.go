// internal/repositories/tenant_repository.go

package repositories

import (
	"context"

	"github.com/poofware/workorders-service/internal/models"
	"github.com/poofware/workorders-service/internal/utils"
)

/* ───────────── public interface ───────────── */

type TenantRepository interface {
	ListAll(ctx context.Context) ([]models.Tenant, error)
	GetByID(ctx context.Context, id string) (*models.Tenant, error)
	GetByPhone(ctx context.Context, phone string) (*models.Tenant, error)
}

/* ───────────── implementation ───────────── */

// staticTenantRepo serves the fixed tenant dataset. The backing slice
// is never mutated after construction, so reads need no lock.
type staticTenantRepo struct {
	tenants []models.Tenant
}

func NewTenantRepository(dataset []models.Tenant) TenantRepository {
	tenants := make([]models.Tenant, len(dataset))
	copy(tenants, dataset)
	return &staticTenantRepo{tenants: tenants}
}

func (r *staticTenantRepo) ListAll(_ context.Context) ([]models.Tenant, error) {
	out := make([]models.Tenant, len(r.tenants))
	copy(out, r.tenants)
	return out, nil
}

func (r *staticTenantRepo) GetByID(_ context.Context, id string) (*models.Tenant, error) {
	for i := range r.tenants {
		if r.tenants[i].ID == id {
			t := r.tenants[i]
			return &t, nil
		}
	}
	return nil, utils.ErrNotFound
}

// GetByPhone matches the stored phone string exactly. No normalization.
func (r *staticTenantRepo) GetByPhone(_ context.Context, phone string) (*models.Tenant, error) {
	for i := range r.tenants {
		if r.tenants[i].Phone == phone {
			t := r.tenants[i]
			return &t, nil
		}
	}
	return nil, utils.ErrNotFound
}
