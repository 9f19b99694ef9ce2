package app

import (
	"github.com/poofware/workorders-service/internal/config"
	"github.com/poofware/workorders-service/internal/repositories"
	"github.com/poofware/workorders-service/internal/services"
	"github.com/poofware/workorders-service/internal/utils"
)

// App struct holds references to config, repositories & services.
type App struct {
	Config *config.Config

	TenantRepo    repositories.TenantRepository
	WorkOrderRepo repositories.WorkOrderRepository

	TenantService    services.TenantService
	WorkOrderService services.WorkOrderService
}

// NewApp sets up the core application context. Both stores are
// in-memory and seeded here; everything they hold is discarded on
// restart.
func NewApp(cfg *config.Config) *App {
	utils.Logger.Info("Initializing workorders-service App")

	tenantRepo := repositories.NewTenantRepository(SeedTenants())
	workOrderRepo := repositories.NewWorkOrderRepository(SeedWorkOrders())

	return &App{
		Config:           cfg,
		TenantRepo:       tenantRepo,
		WorkOrderRepo:    workOrderRepo,
		TenantService:    services.NewTenantService(tenantRepo),
		WorkOrderService: services.NewWorkOrderService(workOrderRepo),
	}
}

// Close is a no-op here but included for consistency.
func (a *App) Close() {
	utils.Logger.Info("workorders-service app shutting down.")
}
