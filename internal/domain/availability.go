package domain

import "github.com/m04kA/SMC-CondoService/pkg/types"

// DayOccupancy классификация занятости дня для отображения календаря
type DayOccupancy string

const (
	OccupancyFree    DayOccupancy = "free"
	OccupancyPartial DayOccupancy = "partial"
	OccupancyFull    DayOccupancy = "full"
)

// AvailablePeriods возвращает периоды, доступные для бронирования зала roomID
// на дату date, по снимку существующих бронирований.
//
// Правила:
//   - full_day на дату закрывает всё;
//   - занятые morning и afternoon вместе закрывают всё;
//   - full_day предлагается только на полностью свободный день. Как только занята
//     любая половина дня, full_day больше не предлагается, даже если вторая
//     половина свободна. Это осознанная политика (бронь на весь день не должна
//     дробить уже частично занятый день), менять её нельзя.
//
// Чистая функция: не ходит в БД, работает по переданному списку.
func AvailablePeriods(date types.DateString, roomID int, bookings []*Booking) []BookingPeriod {
	var hasFullDay, hasMorning, hasAfternoon bool

	for _, b := range bookings {
		if b.BookingDate != date || b.RoomID != roomID {
			continue
		}
		switch b.Period {
		case PeriodFullDay:
			hasFullDay = true
		case PeriodMorning:
			hasMorning = true
		case PeriodAfternoon:
			hasAfternoon = true
		}
	}

	if hasFullDay {
		return []BookingPeriod{}
	}
	if hasMorning && hasAfternoon {
		return []BookingPeriod{}
	}

	available := make([]BookingPeriod, 0, 3)

	if !hasMorning && !hasAfternoon {
		available = append(available, PeriodFullDay)
	}
	if !hasMorning {
		available = append(available, PeriodMorning)
	}
	if !hasAfternoon {
		available = append(available, PeriodAfternoon)
	}

	return available
}

// PeriodAvailable проверяет, что период входит в множество доступных
func PeriodAvailable(period BookingPeriod, date types.DateString, roomID int, bookings []*Booking) bool {
	for _, p := range AvailablePeriods(date, roomID, bookings) {
		if p == period {
			return true
		}
	}
	return false
}

// ClassifyDay классифицирует занятость дня по всем залам:
//   - full: ни в одном зале не осталось доступных периодов;
//   - partial: есть хотя бы одна бронь, но хотя бы в одном зале есть свободные периоды;
//   - free: броней на этот день нет.
func ClassifyDay(date types.DateString, roomCount int, bookings []*Booking) DayOccupancy {
	if roomCount < 1 {
		roomCount = 1
	}

	hasAny := false
	for _, b := range bookings {
		if b.BookingDate == date {
			hasAny = true
			break
		}
	}

	for roomID := 1; roomID <= roomCount; roomID++ {
		if len(AvailablePeriods(date, roomID, bookings)) > 0 {
			if hasAny {
				return OccupancyPartial
			}
			return OccupancyFree
		}
	}

	return OccupancyFull
}
