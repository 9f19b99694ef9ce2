// internal/controllers/work_orders_controller.go

package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/poofware/workorders-service/internal/dtos"
	"github.com/poofware/workorders-service/internal/services"
	"github.com/poofware/workorders-service/internal/utils"
)

type WorkOrdersController struct {
	svc services.WorkOrderService
}

func NewWorkOrdersController(s services.WorkOrderService) *WorkOrdersController {
	return &WorkOrdersController{svc: s}
}

// ----------------------------------------------------------------
// GET /api/v1/work-orders[?phone=...]
// ----------------------------------------------------------------
func (c *WorkOrdersController) ListWorkOrdersHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	phone := r.URL.Query().Get("phone")

	orders, err := c.svc.List(ctx, phone)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to list work orders")
		utils.RespondError(w, http.StatusInternalServerError, "Failed to list work orders", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, orders)
}

// ----------------------------------------------------------------
// GET /api/v1/work-orders/{id}
// ----------------------------------------------------------------
func (c *WorkOrdersController) GetWorkOrderHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]

	wo, err := c.svc.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Work order not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Failed to look up work order", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, wo)
}

// ----------------------------------------------------------------
// POST /api/v1/work-orders
// ----------------------------------------------------------------
func (c *WorkOrdersController) CreateWorkOrderHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req dtos.CreateWorkOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid JSON body", err)
		return
	}

	wo, err := c.svc.Create(ctx, req)
	if err != nil {
		var verr *utils.ValidationError
		if errors.As(err, &verr) {
			utils.RespondValidationError(w, verr)
			return
		}
		utils.Logger.WithError(err).Error("Failed to create work order")
		utils.RespondError(w, http.StatusInternalServerError, "Failed to create work order", err)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, wo)
}
