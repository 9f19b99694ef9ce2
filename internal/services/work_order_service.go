// internal/services/work_order_service.go

package services

import (
	"context"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/poofware/workorders-service/internal/dtos"
	"github.com/poofware/workorders-service/internal/models"
	"github.com/poofware/workorders-service/internal/repositories"
	"github.com/poofware/workorders-service/internal/utils"
)

var validate = newValidator()

// newValidator reports failing fields by their json names so issue
// paths match what the client actually sent.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ------------------------------------------------------------------
// Service
// ------------------------------------------------------------------

type WorkOrderService interface {
	List(ctx context.Context, phone string) ([]models.WorkOrder, error)
	GetByID(ctx context.Context, id string) (*models.WorkOrder, error)
	Create(ctx context.Context, req dtos.CreateWorkOrderRequest) (*models.WorkOrder, error)
	Ping(ctx context.Context) error
}

type workOrderService struct {
	repo repositories.WorkOrderRepository
}

func NewWorkOrderService(repo repositories.WorkOrderRepository) WorkOrderService {
	return &workOrderService{repo: repo}
}

// ------------------------------------------------------------------
// Public API
// ------------------------------------------------------------------

func (s *workOrderService) List(ctx context.Context, phone string) ([]models.WorkOrder, error) {
	return s.repo.List(ctx, phone)
}

func (s *workOrderService) GetByID(ctx context.Context, id string) (*models.WorkOrder, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates the request and appends a new record. Progress is
// always server-assigned to "new"; nothing from the payload can set it.
func (s *workOrderService) Create(ctx context.Context, req dtos.CreateWorkOrderRequest) (*models.WorkOrder, error) {
	if err := validate.Struct(req); err != nil {
		return nil, utils.NewValidationError(err)
	}

	wo := models.WorkOrder{
		ID:               uuid.NewString(),
		TenantName:       req.TenantName,
		TenantAddress:    req.TenantAddress,
		TenantPhone:      req.TenantPhone,
		TenantUnitNumber: req.TenantUnitNumber,
		Description:      req.Description,
		Progress:         models.ProgressNew,
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, &wo); err != nil {
		return nil, err
	}
	return &wo, nil
}

func (s *workOrderService) Ping(ctx context.Context) error {
	_, err := s.repo.Count(ctx)
	return err
}
