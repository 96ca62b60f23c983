package domain

import "time"

// VehicleType тип транспортного средства
type VehicleType string

const (
	VehicleCar        VehicleType = "car"
	VehicleMotorcycle VehicleType = "motorcycle"
	VehicleTruck      VehicleType = "truck"
)

// IsValid returns true if the vehicle type is one of the known values
func (t VehicleType) IsValid() bool {
	return t == VehicleCar || t == VehicleMotorcycle || t == VehicleTruck
}

// Vehicle represents a resident vehicle registered to a unit
type Vehicle struct {
	ID     int64
	Plate  string
	Model  string
	Color  *string
	Type   VehicleType
	UnitID int64

	// Denormalized unit data for list views
	UnitNumber   string
	UnitBlock    *string
	ResidentName string

	CreatedAt time.Time
	UpdatedAt time.Time
}
