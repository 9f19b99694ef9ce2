// internal/models/tenant.go

package models

// Tenant is a building occupant from the preloaded directory. Records
// are immutable for the lifetime of the process.
type Tenant struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	UnitNumber string `json:"unitNumber,omitempty"`
}
