// internal/controllers/tenants_controller.go

package controllers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/poofware/workorders-service/internal/services"
	"github.com/poofware/workorders-service/internal/utils"
)

type TenantsController struct {
	svc services.TenantService
}

func NewTenantsController(s services.TenantService) *TenantsController {
	return &TenantsController{svc: s}
}

// ----------------------------------------------------------------
// GET /api/v1/tenants[?phone=...]
// ----------------------------------------------------------------
func (c *TenantsController) ListTenantsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// With a phone param this is an exact-match lookup for a single
	// tenant; without one it falls back to the full directory.
	phone := r.URL.Query().Get("phone")
	if phone != "" {
		tenant, err := c.svc.GetByPhone(ctx, phone)
		if err != nil {
			if errors.Is(err, utils.ErrNotFound) {
				utils.RespondError(w, http.StatusNotFound, "Tenant not found")
				return
			}
			utils.RespondError(w, http.StatusInternalServerError, "Failed to look up tenant", err)
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, tenant)
		return
	}

	tenants, err := c.svc.ListAll(ctx)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to list tenants")
		utils.RespondError(w, http.StatusInternalServerError, "Failed to list tenants", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, tenants)
}

// ----------------------------------------------------------------
// GET /api/v1/tenants/{id}
// ----------------------------------------------------------------
func (c *TenantsController) GetTenantHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]

	tenant, err := c.svc.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Tenant not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Failed to look up tenant", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, tenant)
}
