// internal/models/work_order.go

package models

import (
	"time"
)

type ProgressType string

const (
	ProgressNew        ProgressType = "new"
	ProgressInProgress ProgressType = "in-progress"
	ProgressCompleted  ProgressType = "completed"
)

// WorkOrder is a maintenance request. Tenant contact fields are a
// point-in-time snapshot, not a reference into the tenant directory,
// so they stay accurate even if the directory changes later.
type WorkOrder struct {
	ID               string       `json:"id"`
	TenantName       string       `json:"tenantName"`
	TenantAddress    string       `json:"tenantAddress"`
	TenantPhone      string       `json:"tenantPhone"`
	TenantUnitNumber string       `json:"tenantUnitNumber,omitempty"`
	Description      string       `json:"description"`
	Progress         ProgressType `json:"progress"`
	CreatedAt        time.Time    `json:"createdAt"`
}
