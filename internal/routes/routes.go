package routes

const (
	// Health
	Health = "/health"

	// Tenant endpoints
	Tenants    = "/api/v1/tenants"
	TenantByID = "/api/v1/tenants/{id}"

	// Work-order endpoints
	WorkOrders    = "/api/v1/work-orders"
	WorkOrderByID = "/api/v1/work-orders/{id}"
)
