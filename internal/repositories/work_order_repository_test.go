package repositories

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/poofware/workorders-service/internal/models"
	"github.com/poofware/workorders-service/internal/utils"
)

var fixtureBase = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func workOrderFixtures() []models.WorkOrder {
	// Deliberately inserted out of createdAt order.
	return []models.WorkOrder{
		{
			ID: "wo-1", TenantName: "Jane Doe", TenantAddress: "123 Main St",
			TenantPhone: "5550100001", Description: "Leak under sink",
			Progress: models.ProgressNew, CreatedAt: fixtureBase.Add(-48 * time.Hour),
		},
		{
			ID: "wo-2", TenantName: "Marcus Webb", TenantAddress: "123 Main St",
			TenantPhone: "5550100002", Description: "Stuck window",
			Progress: models.ProgressInProgress, CreatedAt: fixtureBase,
		},
		{
			ID: "wo-3", TenantName: "Jane Doe", TenantAddress: "123 Main St",
			TenantPhone: "5550100001", Description: "Flickering light",
			Progress: models.ProgressCompleted, CreatedAt: fixtureBase.Add(-24 * time.Hour),
		},
	}
}

func TestWorkOrderListSortedNewestFirst(t *testing.T) {
	repo := NewWorkOrderRepository(workOrderFixtures())

	orders, err := repo.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, orders, 3)

	for i := 1; i < len(orders); i++ {
		require.False(t, orders[i].CreatedAt.After(orders[i-1].CreatedAt),
			"orders must be createdAt non-increasing")
	}
	require.Equal(t, "wo-2", orders[0].ID)
	require.Equal(t, "wo-1", orders[2].ID)
}

func TestWorkOrderListStableOnCreatedAtTies(t *testing.T) {
	seed := workOrderFixtures()
	// Give two records the same timestamp; insertion order must win.
	seed[0].CreatedAt = seed[2].CreatedAt
	repo := NewWorkOrderRepository(seed)

	orders, err := repo.List(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, []string{"wo-2", "wo-1", "wo-3"},
		[]string{orders[0].ID, orders[1].ID, orders[2].ID})
}

func TestWorkOrderListPhoneFilter(t *testing.T) {
	ctx := context.Background()
	repo := NewWorkOrderRepository(workOrderFixtures())

	t.Run("matches are exactly the records with that phone", func(t *testing.T) {
		filtered, err := repo.List(ctx, "5550100001")
		require.NoError(t, err)
		require.Len(t, filtered, 2)
		for _, wo := range filtered {
			require.Equal(t, "5550100001", wo.TenantPhone)
		}
	})

	t.Run("unknown phone yields empty sequence", func(t *testing.T) {
		filtered, err := repo.List(ctx, "0000000000")
		require.NoError(t, err)
		require.Empty(t, filtered)
	})
}

func TestWorkOrderGetByID(t *testing.T) {
	ctx := context.Background()
	repo := NewWorkOrderRepository(workOrderFixtures())

	got, err := repo.GetByID(ctx, "wo-3")
	require.NoError(t, err)
	require.Equal(t, "Flickering light", got.Description)

	_, err = repo.GetByID(ctx, "nonexistent-id")
	require.ErrorIs(t, err, utils.ErrNotFound)
}

func TestWorkOrderInsertGrowsCollection(t *testing.T) {
	ctx := context.Background()
	repo := NewWorkOrderRepository(workOrderFixtures())

	before, err := repo.Count(ctx)
	require.NoError(t, err)

	wo := models.WorkOrder{
		ID: "wo-new", TenantName: "Elena Vasquez", TenantAddress: "19 Cedar Ln",
		TenantPhone: "5550100005", Description: "Sticky lock",
		Progress: models.ProgressNew, CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.Insert(ctx, &wo))

	after, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, before+1, after)

	got, err := repo.GetByID(ctx, "wo-new")
	require.NoError(t, err)
	require.Equal(t, "Sticky lock", got.Description)
}

func TestWorkOrderConcurrentInserts(t *testing.T) {
	ctx := context.Background()
	repo := NewWorkOrderRepository(nil)

	const writers = 50
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func(n int) {
			defer wg.Done()
			wo := models.WorkOrder{
				ID: fmt.Sprintf("wo-%d", n), TenantName: "Load Test",
				TenantAddress: "1 Test Way", TenantPhone: "5550109999",
				Description: "concurrent insert", Progress: models.ProgressNew,
				CreatedAt: time.Now().UTC(),
			}
			require.NoError(t, repo.Insert(ctx, &wo))
		}(i)
	}
	wg.Wait()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, writers, count)

	orders, err := repo.List(ctx, "")
	require.NoError(t, err)
	seen := make(map[string]bool, writers)
	for _, wo := range orders {
		require.False(t, seen[wo.ID], "duplicate id %s", wo.ID)
		seen[wo.ID] = true
	}
}
