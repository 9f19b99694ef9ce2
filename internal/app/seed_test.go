package app

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/poofware/workorders-service/internal/models"
)

func TestSeedTenants(t *testing.T) {
	tenants := SeedTenants()
	require.NotEmpty(t, tenants)

	ids := make(map[string]bool)
	phones := make(map[string]bool)
	for _, tn := range tenants {
		require.NotEmpty(t, tn.ID)
		require.NotEmpty(t, tn.Name)
		require.NotEmpty(t, tn.Phone)
		require.NotEmpty(t, tn.Address)
		require.False(t, ids[tn.ID], "duplicate tenant id %s", tn.ID)
		require.False(t, phones[tn.Phone], "duplicate tenant phone %s", tn.Phone)
		ids[tn.ID] = true
		phones[tn.Phone] = true
	}
}

func TestSeedWorkOrders(t *testing.T) {
	orders := SeedWorkOrders()
	require.Len(t, orders, 10)

	validProgress := map[models.ProgressType]bool{
		models.ProgressNew:        true,
		models.ProgressInProgress: true,
		models.ProgressCompleted:  true,
	}

	ids := make(map[string]bool)
	for _, wo := range orders {
		require.NotEmpty(t, wo.ID)
		require.NotEmpty(t, wo.TenantName)
		require.NotEmpty(t, wo.TenantAddress)
		require.NotEmpty(t, wo.TenantPhone)
		require.NotEmpty(t, wo.Description)
		require.True(t, validProgress[wo.Progress], "bad progress %q", wo.Progress)
		require.False(t, wo.CreatedAt.IsZero())
		require.False(t, ids[wo.ID], "duplicate work-order id %s", wo.ID)
		ids[wo.ID] = true
	}
}

// Seed snapshots must line up with the tenant directory so phone
// filtering works against real seed data.
func TestSeedWorkOrdersReferenceSeedTenants(t *testing.T) {
	phones := make(map[string]string)
	for _, tn := range SeedTenants() {
		phones[tn.Phone] = tn.Name
	}

	for _, wo := range SeedWorkOrders() {
		name, ok := phones[wo.TenantPhone]
		require.True(t, ok, "work order phone %s not in tenant dataset", wo.TenantPhone)
		require.Equal(t, name, wo.TenantName)
	}
}
