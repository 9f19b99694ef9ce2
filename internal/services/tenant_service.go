// internal/services/tenant_service.go

package services

import (
	"context"
	"strings"

	"github.com/poofware/workorders-service/internal/models"
	"github.com/poofware/workorders-service/internal/repositories"
)

// ------------------------------------------------------------------
// Service
// ------------------------------------------------------------------

type TenantService interface {
	ListAll(ctx context.Context) ([]models.Tenant, error)
	GetByID(ctx context.Context, id string) (*models.Tenant, error)
	GetByPhone(ctx context.Context, phone string) (*models.Tenant, error)
	Search(ctx context.Context, query string) ([]models.Tenant, error)
	Ping(ctx context.Context) error // tiny health-probe
}

type tenantService struct {
	repo repositories.TenantRepository
}

func NewTenantService(repo repositories.TenantRepository) TenantService {
	return &tenantService{repo: repo}
}

// ------------------------------------------------------------------
// Public API
// ------------------------------------------------------------------

func (s *tenantService) ListAll(ctx context.Context) ([]models.Tenant, error) {
	return s.repo.ListAll(ctx)
}

func (s *tenantService) GetByID(ctx context.Context, id string) (*models.Tenant, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *tenantService) GetByPhone(ctx context.Context, phone string) (*models.Tenant, error) {
	return s.repo.GetByPhone(ctx, phone)
}

// Search matches the query against names case-insensitively and
// against raw phone strings case-sensitively. An empty query returns
// the full directory.
func (s *tenantService) Search(ctx context.Context, query string) ([]models.Tenant, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if query == "" {
		return all, nil
	}

	lowered := strings.ToLower(query)
	out := make([]models.Tenant, 0, len(all))
	for _, t := range all {
		if strings.Contains(strings.ToLower(t.Name), lowered) ||
			strings.Contains(t.Phone, query) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *tenantService) Ping(ctx context.Context) error {
	// The backing dataset is in-process; just exercise a read.
	_, err := s.repo.ListAll(ctx)
	return err
}
