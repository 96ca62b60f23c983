package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CondoService/internal/domain"
	condoRepo "github.com/m04kA/SMC-CondoService/internal/infra/storage/condo"
)

// UseCase use case расчета календаря доступности залов
type UseCase struct {
	bookingRepo  BookingRepository
	condoRepo    CondoRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, condoRepo CondoRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		condoRepo:    condoRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute считает доступность всех залов по дням запрошенного диапазона.
// Брони читаются одним запросом, дальше работа идет по чистым функциям domain.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	from, to, err := resolveRange(req)
	if err != nil {
		uc.logger.Warn("GetAvailability: %v", err)
		return nil, err
	}

	uc.logger.Info("GetAvailability: range %s..%s", from, to)

	condo, err := uc.condoRepo.Get(ctx)
	if err != nil && !errors.Is(err, condoRepo.ErrNotConfigured) {
		uc.logger.Error("GetAvailability: failed to get condo settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get condo settings: %v", ErrInternal, err)
	}
	roomCount := condo.RoomCount()

	bookings, err := uc.bookingRepo.List(ctx, domain.BookingsFilter{
		DateFrom: &from,
		DateTo:   &to,
	})
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()

	resp := &Response{
		DateFrom:  from,
		DateTo:    to,
		RoomCount: roomCount,
		Days:      make([]*DayAvailability, 0),
	}

	for date := from; !to.IsBefore(date); {
		day := &DayAvailability{
			Date:      date,
			Occupancy: domain.ClassifyDay(date, roomCount, bookings),
			Past:      date.IsPast(now),
			Rooms:     make([]*RoomAvailability, 0, roomCount),
		}

		for roomID := 1; roomID <= roomCount; roomID++ {
			periods := domain.AvailablePeriods(date, roomID, bookings)
			if day.Past {
				periods = []domain.BookingPeriod{}
			}
			day.Rooms = append(day.Rooms, &RoomAvailability{
				RoomID:           roomID,
				RoomLabel:        condo.RoomLabel(roomID),
				AvailablePeriods: periods,
			})
		}

		resp.Days = append(resp.Days, day)

		next, err := date.AddDays(1)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to advance date: %v", ErrInternal, err)
		}
		date = next
	}

	return resp, nil
}
