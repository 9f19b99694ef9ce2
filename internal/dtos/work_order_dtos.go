package dtos

// CreateWorkOrderRequest is the only mutating payload in the service.
// Progress is deliberately not a field here: it is server-assigned, and
// a client-sent "progress" key is dropped during decoding.
type CreateWorkOrderRequest struct {
	TenantName       string `json:"tenantName" validate:"required"`
	TenantAddress    string `json:"tenantAddress" validate:"required"`
	TenantPhone      string `json:"tenantPhone" validate:"required"`
	TenantUnitNumber string `json:"tenantUnitNumber"`
	Description      string `json:"description" validate:"required"`
}
