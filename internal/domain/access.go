package domain

import "time"

// ServiceProvider represents a service provider access-log entry.
// An entry with a nil ExitTime means the provider is still on the premises.
type ServiceProvider struct {
	ID        int64
	Name      string
	Document  *string
	Company   *string
	PhotoKey  *string
	EntryTime time.Time
	ExitTime  *time.Time
	UnitID    *int64
	CreatedBy int64

	// Denormalized unit data for list views (nil when not tied to a unit)
	UnitNumber *string
	UnitBlock  *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the provider has not checked out yet
func (p *ServiceProvider) IsActive() bool {
	return p.ExitTime == nil
}

// RentalGuest represents a short-term rental guest access-log entry
type RentalGuest struct {
	ID        int64
	Name      string
	Document  *string
	Plate     *string
	PhotoKey  *string
	EntryTime time.Time
	ExitTime  *time.Time
	UnitID    int64
	CreatedBy int64

	// Denormalized unit data for list views
	UnitNumber   string
	UnitBlock    *string
	ResidentName string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the guest has not checked out yet
func (g *RentalGuest) IsActive() bool {
	return g.ExitTime == nil
}
