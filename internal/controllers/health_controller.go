package controllers

import (
	"context"
	"net/http"

	"github.com/poofware/workorders-service/internal/app"
	"github.com/poofware/workorders-service/internal/dtos"
	"github.com/poofware/workorders-service/internal/utils"
)

type HealthController struct {
	app *app.App
}

func NewHealthController(a *app.App) *HealthController {
	return &HealthController{app: a}
}

func (c *HealthController) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	ctx := context.Background()
	if err := c.app.TenantService.Ping(ctx); err != nil {
		utils.Logger.WithError(err).Error("tenant directory unhealthy")
		utils.RespondError(w, http.StatusServiceUnavailable, "Service unhealthy", err)
		return
	}
	if err := c.app.WorkOrderService.Ping(ctx); err != nil {
		utils.Logger.WithError(err).Error("work-order store unhealthy")
		utils.RespondError(w, http.StatusServiceUnavailable, "Service unhealthy", err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.HealthCheckResponse{Status: "OK"})
}
