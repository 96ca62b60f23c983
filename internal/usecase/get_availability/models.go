package get_availability

import (
	"github.com/m04kA/SMC-CondoService/internal/domain"
	"github.com/m04kA/SMC-CondoService/pkg/types"
)

// Request модель запроса на расчет доступности.
// Задается либо Month ("2026-09" - весь месяц), либо явный диапазон дат.
type Request struct {
	Month    string           // "YYYY-MM" (опционально)
	DateFrom types.DateString // Начало диапазона (опционально при Month)
	DateTo   types.DateString // Конец диапазона (опционально при Month)
}

// RoomAvailability доступность одного зала на дату
type RoomAvailability struct {
	RoomID           int
	RoomLabel        string
	AvailablePeriods []domain.BookingPeriod
}

// DayAvailability доступность всех залов на одну дату
type DayAvailability struct {
	Date      types.DateString
	Occupancy domain.DayOccupancy
	Past      bool // Прошедший день: периоды не предлагаются
	Rooms     []*RoomAvailability
}

// Response модель ответа с календарем доступности
type Response struct {
	DateFrom  types.DateString
	DateTo    types.DateString
	RoomCount int
	Days      []*DayAvailability
}
