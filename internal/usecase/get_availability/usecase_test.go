package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CondoService/internal/domain"
	condoRepo "github.com/m04kA/SMC-CondoService/internal/infra/storage/condo"
	"github.com/m04kA/SMC-CondoService/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) List(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type fakeCondoRepo struct {
	condo *domain.Condominium
	err   error
}

func (f *fakeCondoRepo) Get(_ context.Context) (*domain.Condominium, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.condo, nil
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time { return f.now }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestUseCase(bookings *fakeBookingRepo, condos *fakeCondoRepo) *UseCase {
	uc := NewUseCase(bookings, condos, noopLogger{})
	uc.timeProvider = &fixedTime{now: time.Date(2026, 9, 10, 12, 0, 0, 0, time.Local)}
	return uc
}

func TestExecute_Month(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCondoRepo{err: condoRepo.ErrNotConfigured})

	resp, err := uc.Execute(context.Background(), &Request{Month: "2026-09"})

	require.NoError(t, err)
	assert.Equal(t, types.DateString("2026-09-01"), resp.DateFrom)
	assert.Equal(t, types.DateString("2026-09-30"), resp.DateTo)
	assert.Len(t, resp.Days, 30)
	assert.Equal(t, 1, resp.RoomCount)
}

func TestExecute_ExplicitRange(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCondoRepo{err: condoRepo.ErrNotConfigured})

	resp, err := uc.Execute(context.Background(), &Request{
		DateFrom: "2026-09-15",
		DateTo:   "2026-09-17",
	})

	require.NoError(t, err)
	require.Len(t, resp.Days, 3)
	assert.Equal(t, types.DateString("2026-09-15"), resp.Days[0].Date)
	assert.Equal(t, types.DateString("2026-09-17"), resp.Days[2].Date)
}

func TestExecute_InvalidRange(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCondoRepo{err: condoRepo.ErrNotConfigured})

	tests := []struct {
		name string
		req  *Request
	}{
		{"empty request", &Request{}},
		{"reversed range", &Request{DateFrom: "2026-09-17", DateTo: "2026-09-15"}},
		{"bad month", &Request{Month: "сентябрь"}},
		{"range too wide", &Request{DateFrom: "2026-01-01", DateTo: "2026-06-01"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_PastDaysHaveNoPeriods(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCondoRepo{err: condoRepo.ErrNotConfigured})

	resp, err := uc.Execute(context.Background(), &Request{
		DateFrom: "2026-09-09",
		DateTo:   "2026-09-10",
	})

	require.NoError(t, err)
	require.Len(t, resp.Days, 2)

	past := resp.Days[0]
	assert.True(t, past.Past)
	assert.Empty(t, past.Rooms[0].AvailablePeriods)

	today := resp.Days[1]
	assert.False(t, today.Past)
	assert.Len(t, today.Rooms[0].AvailablePeriods, 3)
}

func TestExecute_FullDayOfferedOnlyOnEmptyDay(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{BookingDate: "2026-09-15", RoomID: 1, Period: domain.PeriodMorning},
	}}
	uc := newTestUseCase(bookings, &fakeCondoRepo{err: condoRepo.ErrNotConfigured})

	resp, err := uc.Execute(context.Background(), &Request{
		DateFrom: "2026-09-15",
		DateTo:   "2026-09-15",
	})

	require.NoError(t, err)
	periods := resp.Days[0].Rooms[0].AvailablePeriods
	assert.Equal(t, []domain.BookingPeriod{domain.PeriodAfternoon}, periods)
	assert.Equal(t, domain.OccupancyPartial, resp.Days[0].Occupancy)
}

func TestExecute_MultipleRoomsWithLabels(t *testing.T) {
	condo := &domain.Condominium{
		PartyRoomName:   "Салон",
		PartyRoomCount:  2,
		PartyRoomNaming: domain.NamingLetters,
	}
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{BookingDate: "2026-09-15", RoomID: 1, Period: domain.PeriodFullDay},
	}}
	uc := newTestUseCase(bookings, &fakeCondoRepo{condo: condo})

	resp, err := uc.Execute(context.Background(), &Request{
		DateFrom: "2026-09-15",
		DateTo:   "2026-09-15",
	})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.RoomCount)

	day := resp.Days[0]
	require.Len(t, day.Rooms, 2)
	assert.Equal(t, "Салон A", day.Rooms[0].RoomLabel)
	assert.Empty(t, day.Rooms[0].AvailablePeriods)
	assert.Equal(t, "Салон B", day.Rooms[1].RoomLabel)
	assert.Len(t, day.Rooms[1].AvailablePeriods, 3)
	assert.Equal(t, domain.OccupancyPartial, day.Occupancy)
}
