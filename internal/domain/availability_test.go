package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CondoService/pkg/types"
)

const testDate = types.DateString("2025-03-10")

func booking(date types.DateString, roomID int, period BookingPeriod) *Booking {
	return &Booking{BookingDate: date, RoomID: roomID, Period: period}
}

func TestAvailablePeriods_EmptyDay(t *testing.T) {
	periods := AvailablePeriods(testDate, 1, nil)

	assert.Equal(t, []BookingPeriod{PeriodFullDay, PeriodMorning, PeriodAfternoon}, periods)
}

func TestAvailablePeriods_FullDayBlocksEverything(t *testing.T) {
	bookings := []*Booking{booking(testDate, 1, PeriodFullDay)}

	assert.Empty(t, AvailablePeriods(testDate, 1, bookings))
}

func TestAvailablePeriods_BothHalvesBlockEverything(t *testing.T) {
	bookings := []*Booking{
		booking(testDate, 1, PeriodMorning),
		booking(testDate, 1, PeriodAfternoon),
	}

	assert.Empty(t, AvailablePeriods(testDate, 1, bookings))
}

// Забронированное утро оставляет свободным только вечер: full_day
// предлагается исключительно на полностью свободный день.
func TestAvailablePeriods_MorningTakenDropsFullDay(t *testing.T) {
	bookings := []*Booking{booking(testDate, 1, PeriodMorning)}

	periods := AvailablePeriods(testDate, 1, bookings)

	assert.Equal(t, []BookingPeriod{PeriodAfternoon}, periods)
	assert.NotContains(t, periods, PeriodFullDay)
}

func TestAvailablePeriods_AfternoonTakenDropsFullDay(t *testing.T) {
	bookings := []*Booking{booking(testDate, 1, PeriodAfternoon)}

	periods := AvailablePeriods(testDate, 1, bookings)

	assert.Equal(t, []BookingPeriod{PeriodMorning}, periods)
}

func TestAvailablePeriods_IgnoresOtherRoomsAndDates(t *testing.T) {
	bookings := []*Booking{
		booking(testDate, 2, PeriodFullDay),
		booking("2025-03-11", 1, PeriodFullDay),
	}

	periods := AvailablePeriods(testDate, 1, bookings)

	assert.Len(t, periods, 3)
}

func TestPeriodAvailable(t *testing.T) {
	bookings := []*Booking{booking(testDate, 1, PeriodMorning)}

	assert.True(t, PeriodAvailable(PeriodAfternoon, testDate, 1, bookings))
	assert.False(t, PeriodAvailable(PeriodMorning, testDate, 1, bookings))
	assert.False(t, PeriodAvailable(PeriodFullDay, testDate, 1, bookings))
}

func TestClassifyDay(t *testing.T) {
	tests := []struct {
		name      string
		roomCount int
		bookings  []*Booking
		want      DayOccupancy
	}{
		{
			name:      "no bookings",
			roomCount: 1,
			want:      OccupancyFree,
		},
		{
			name:      "half day taken",
			roomCount: 1,
			bookings:  []*Booking{booking(testDate, 1, PeriodMorning)},
			want:      OccupancyPartial,
		},
		{
			name:      "full day taken single room",
			roomCount: 1,
			bookings:  []*Booking{booking(testDate, 1, PeriodFullDay)},
			want:      OccupancyFull,
		},
		{
			name:      "one of two rooms fully taken",
			roomCount: 2,
			bookings:  []*Booking{booking(testDate, 1, PeriodFullDay)},
			want:      OccupancyPartial,
		},
		{
			name:      "both rooms fully taken",
			roomCount: 2,
			bookings: []*Booking{
				booking(testDate, 1, PeriodFullDay),
				booking(testDate, 2, PeriodMorning),
				booking(testDate, 2, PeriodAfternoon),
			},
			want: OccupancyFull,
		},
		{
			name:      "zero room count falls back to one",
			roomCount: 0,
			bookings:  []*Booking{booking(testDate, 1, PeriodFullDay)},
			want:      OccupancyFull,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyDay(testDate, tt.roomCount, tt.bookings))
		})
	}
}
