// internal/app/seed.go

package app

import (
	"time"

	"github.com/google/uuid"

	"github.com/poofware/workorders-service/internal/models"
)

// SeedTenants returns the fixed tenant dataset. Ids are hardcoded so
// they are stable across restarts.
func SeedTenants() []models.Tenant {
	return []models.Tenant{
		{
			ID:         "aa6fdd62-0c95-4a33-9220-0bd7ae6e22a1",
			Name:       "Jane Doe",
			Phone:      "5550100001",
			Address:    "123 Main St, Springfield",
			UnitNumber: "4B",
		},
		{
			ID:         "7a1ec8a0-20a5-4fa4-8f17-6184917c6f07",
			Name:       "Marcus Webb",
			Phone:      "5550100002",
			Address:    "123 Main St, Springfield",
			UnitNumber: "2A",
		},
		{
			ID:         "3f9dc1de-16c5-4c9f-9e82-2cf01dba6393",
			Name:       "Priya Natarajan",
			Phone:      "5550100003",
			Address:    "450 Oak Ave, Springfield",
			UnitNumber: "12",
		},
		{
			ID:         "c1a3c2a6-5e26-47fb-8e4f-4a4f0a5b7f6d",
			Name:       "Tom Okafor",
			Phone:      "5550100004",
			Address:    "450 Oak Ave, Springfield",
			UnitNumber: "7",
		},
		{
			ID:      "5273e2ca-00b1-4b3c-9c43-dd6ef33a7e41",
			Name:    "Elena Vasquez",
			Phone:   "5550100005",
			Address: "19 Cedar Ln, Springfield",
		},
		{
			ID:         "90b7f7f3-8d94-4a2e-a7aa-13e0b9a8b6c2",
			Name:       "Sam Whitfield",
			Phone:      "5550100006",
			Address:    "88 Birch Rd, Springfield",
			UnitNumber: "1C",
		},
		{
			ID:      "e5b3ab0f-2b56-4f0e-b0be-6f2c8b1c9d84",
			Name:    "Dana Kowalski",
			Phone:   "5550100007",
			Address: "210 Walnut St, Springfield",
		},
		{
			ID:         "1d2a9b54-3c7e-4f81-b2d5-8a6c4e0f9a23",
			Name:       "Ahmed Farouk",
			Phone:      "5550100008",
			Address:    "88 Birch Rd, Springfield",
			UnitNumber: "3A",
		},
	}
}

// SeedWorkOrders returns the 10 starter records. CreatedAt values are
// staggered into the past so the newest-first ordering shows up
// immediately in the UI.
func SeedWorkOrders() []models.WorkOrder {
	now := time.Now().UTC()
	at := func(daysAgo int) time.Time {
		return now.Add(-time.Duration(daysAgo) * 24 * time.Hour)
	}

	return []models.WorkOrder{
		{
			ID:               uuid.NewString(),
			TenantName:       "Jane Doe",
			TenantAddress:    "123 Main St, Springfield",
			TenantPhone:      "5550100001",
			TenantUnitNumber: "4B",
			Description:      "Leak under the kitchen sink",
			Progress:         models.ProgressInProgress,
			CreatedAt:        at(1),
		},
		{
			ID:               uuid.NewString(),
			TenantName:       "Marcus Webb",
			TenantAddress:    "123 Main St, Springfield",
			TenantPhone:      "5550100002",
			TenantUnitNumber: "2A",
			Description:      "Bedroom window does not close fully",
			Progress:         models.ProgressNew,
			CreatedAt:        at(2),
		},
		{
			ID:               uuid.NewString(),
			TenantName:       "Priya Natarajan",
			TenantAddress:    "450 Oak Ave, Springfield",
			TenantPhone:      "5550100003",
			TenantUnitNumber: "12",
			Description:      "Dishwasher leaves standing water after cycle",
			Progress:         models.ProgressNew,
			CreatedAt:        at(3),
		},
		{
			ID:               uuid.NewString(),
			TenantName:       "Jane Doe",
			TenantAddress:    "123 Main St, Springfield",
			TenantPhone:      "5550100001",
			TenantUnitNumber: "4B",
			Description:      "Hallway light flickering",
			Progress:         models.ProgressCompleted,
			CreatedAt:        at(5),
		},
		{
			ID:               uuid.NewString(),
			TenantName:       "Tom Okafor",
			TenantAddress:    "450 Oak Ave, Springfield",
			TenantPhone:      "5550100004",
			TenantUnitNumber: "7",
			Description:      "Heating unit making rattling noise",
			Progress:         models.ProgressInProgress,
			CreatedAt:        at(6),
		},
		{
			ID:            uuid.NewString(),
			TenantName:    "Elena Vasquez",
			TenantAddress: "19 Cedar Ln, Springfield",
			TenantPhone:   "5550100005",
			Description:   "Front door lock sticks in cold weather",
			Progress:      models.ProgressNew,
			CreatedAt:     at(8),
		},
		{
			ID:               uuid.NewString(),
			TenantName:       "Sam Whitfield",
			TenantAddress:    "88 Birch Rd, Springfield",
			TenantPhone:      "5550100006",
			TenantUnitNumber: "1C",
			Description:      "Bathroom exhaust fan not working",
			Progress:         models.ProgressCompleted,
			CreatedAt:        at(10),
		},
		{
			ID:            uuid.NewString(),
			TenantName:    "Dana Kowalski",
			TenantAddress: "210 Walnut St, Springfield",
			TenantPhone:   "5550100007",
			Description:   "Garbage disposal jammed",
			Progress:      models.ProgressNew,
			CreatedAt:     at(12),
		},
		{
			ID:               uuid.NewString(),
			TenantName:       "Ahmed Farouk",
			TenantAddress:    "88 Birch Rd, Springfield",
			TenantPhone:      "5550100008",
			TenantUnitNumber: "3A",
			Description:      "Water stain spreading on living-room ceiling",
			Progress:         models.ProgressInProgress,
			CreatedAt:        at(14),
		},
		{
			ID:               uuid.NewString(),
			TenantName:       "Marcus Webb",
			TenantAddress:    "123 Main St, Springfield",
			TenantPhone:      "5550100002",
			TenantUnitNumber: "2A",
			Description:      "Smoke detector chirping, battery replaced twice",
			Progress:         models.ProgressCompleted,
			CreatedAt:        at(20),
		},
	}
}
