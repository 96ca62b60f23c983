package domain

import "time"

// Unit represents a residential unit (apartment) in the condominium
type Unit struct {
	ID           int64
	UnitNumber   string
	Block        *string
	ResidentName string
	PhoneNumber  *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DisplayName возвращает отображаемое имя квартиры ("12 - Башня B")
func (u *Unit) DisplayName() string {
	if u.Block != nil && *u.Block != "" {
		return u.UnitNumber + " - " + *u.Block
	}
	return u.UnitNumber
}
