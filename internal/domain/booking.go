package domain

import (
	"time"

	"github.com/m04kA/SMC-CondoService/pkg/types"
)

// BookingPeriod represents the granularity of a party room booking
type BookingPeriod string

const (
	PeriodFullDay   BookingPeriod = "full_day"
	PeriodMorning   BookingPeriod = "morning"
	PeriodAfternoon BookingPeriod = "afternoon"
)

// AllPeriods перечень всех периодов бронирования
var AllPeriods = []BookingPeriod{PeriodFullDay, PeriodMorning, PeriodAfternoon}

// IsValid returns true if the period is one of the known values
func (p BookingPeriod) IsValid() bool {
	return p == PeriodFullDay || p == PeriodMorning || p == PeriodAfternoon
}

// Label returns the human-readable label used in audit descriptions
func (p BookingPeriod) Label() string {
	switch p {
	case PeriodFullDay:
		return "весь день"
	case PeriodMorning:
		return "утро"
	case PeriodAfternoon:
		return "вечер"
	default:
		return string(p)
	}
}

// Booking represents one reservation of one party room for one day-period.
// Bookings are never mutated in place: a change is a delete + create.
type Booking struct {
	ID          int64
	BookingDate types.DateString
	RoomID      int
	Period      BookingPeriod
	UnitID      int64
	CreatedBy   int64

	// Denormalized unit data for list views
	UnitNumber   string
	UnitBlock    *string
	ResidentName string

	CreatedAt time.Time
}

// IsUpcoming returns true if the booking day has not passed yet
func (b *Booking) IsUpcoming(now time.Time) bool {
	return !b.BookingDate.IsPast(now)
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	RoomID   *int              // Фильтр по залу (опционально)
	DateFrom *types.DateString // Начало периода (опционально)
	DateTo   *types.DateString // Конец периода (опционально)
	UnitID   *int64            // Фильтр по квартире (опционально)
}
