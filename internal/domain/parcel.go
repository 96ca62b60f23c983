package domain

import "time"

// ParcelStatus статус посылки
type ParcelStatus string

const (
	ParcelPending   ParcelStatus = "pending"
	ParcelCollected ParcelStatus = "collected"
)

// IsValid returns true if the status is one of the known values
func (s ParcelStatus) IsValid() bool {
	return s == ParcelPending || s == ParcelCollected
}

// Parcel represents a package delivered to the front desk for a unit
type Parcel struct {
	ID             int64
	ProtocolNumber string
	Description    string
	PhotoKey       *string
	Status         ParcelStatus
	ArrivedAt      time.Time
	CollectedAt    *time.Time
	UnitID         int64
	CreatedBy      int64

	// Denormalized unit data for list views
	UnitNumber   string
	UnitBlock    *string
	ResidentName string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPending returns true if the parcel has not been collected yet
func (p *Parcel) IsPending() bool {
	return p.Status == ParcelPending
}
