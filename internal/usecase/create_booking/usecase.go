package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/m04kA/SMC-CondoService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CondoService/internal/infra/storage/booking"
	condoRepo "github.com/m04kA/SMC-CondoService/internal/infra/storage/condo"
	unitRepo "github.com/m04kA/SMC-CondoService/internal/infra/storage/unit"
)

const auditCollection = "party_room_bookings"

// UseCase use case создания бронирования зала
type UseCase struct {
	bookingRepo  BookingRepository
	unitRepo     UnitRepository
	condoRepo    CondoRepository
	txManager    TransactionManager
	audit        AuditRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	unitRepo UnitRepository,
	condoRepo CondoRepository,
	txManager TransactionManager,
	audit AuditRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		unitRepo:     unitRepo,
		condoRepo:    condoRepo,
		txManager:    txManager,
		audit:        audit,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
//
// Доступность периода проверяется дважды: предварительно внутри сериализуемой
// транзакции с блокировкой строк дня, и финально - уникальным ограничением БД
// при вставке. Проигравший гонку получает ErrPeriodNotAvailable в обоих случаях.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: date=%s, room=%d, period=%s, unit=%d, user=%d",
		req.Date, req.RoomID, req.Period, req.UnitID, req.CreatedBy)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// Зал по умолчанию
	roomID := req.RoomID
	if roomID == 0 {
		roomID = 1
	}

	// 2. Проверяем дату
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date %s is in the past", req.Date)
		return nil, err
	}

	// 3. Проверяем номер зала против настроек кондоминиума
	condo, err := uc.condoRepo.Get(ctx)
	if err != nil && !errors.Is(err, condoRepo.ErrNotConfigured) {
		uc.logger.Error("CreateBooking: failed to get condo settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get condo settings: %v", ErrInternal, err)
	}
	if err := validateRoom(condo, roomID); err != nil {
		uc.logger.Warn("CreateBooking: room id=%d out of range", roomID)
		return nil, err
	}

	// 4. Проверяем существование квартиры
	unit, err := uc.unitRepo.GetByID(ctx, req.UnitID)
	if err != nil {
		if errors.Is(err, unitRepo.ErrUnitNotFound) {
			uc.logger.Warn("CreateBooking: unit id=%d not found", req.UnitID)
			return nil, ErrUnitNotFound
		}
		uc.logger.Error("CreateBooking: failed to get unit id=%d: %v", req.UnitID, err)
		return nil, fmt.Errorf("%w: failed to get unit: %v", ErrInternal, err)
	}

	var result *domain.Booking

	// 5. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Читаем брони дня с блокировкой (FOR UPDATE)
		filter := domain.BookingsFilter{
			RoomID:   &roomID,
			DateFrom: &req.Date,
			DateTo:   &req.Date,
		}
		dayBookings, err := uc.bookingRepo.List(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get day bookings: %v", err)
			return fmt.Errorf("%w: failed to get day bookings: %v", ErrInternal, err)
		}

		// 5.2. Проверяем доступность периода
		if !domain.PeriodAvailable(req.Period, req.Date, roomID, dayBookings) {
			uc.logger.Warn("CreateBooking: period %s on %s (room %d) is not available",
				req.Period, req.Date, roomID)
			return ErrPeriodNotAvailable
		}

		// 5.3. Создаем бронирование
		booking := &domain.Booking{
			BookingDate: req.Date,
			RoomID:      roomID,
			Period:      req.Period,
			UnitID:      req.UnitID,
			CreatedBy:   req.CreatedBy,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrPeriodTaken) {
				return ErrPeriodNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	description := fmt.Sprintf("Бронь зала: %s, кв. %s, %s (%s)",
		condo.RoomLabel(roomID),
		unit.UnitNumber,
		req.Date.Format(domain.DisplayDateFormat),
		req.Period.Label(),
	)
	uc.audit.Record(ctx, req.CreatedBy, domain.ActionCreate, auditCollection,
		strconv.FormatInt(result.ID, 10), description)

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:           result.ID,
		BookingDate:  result.BookingDate,
		RoomID:       result.RoomID,
		RoomLabel:    condo.RoomLabel(result.RoomID),
		Period:       result.Period,
		UnitID:       unit.ID,
		UnitNumber:   unit.UnitNumber,
		UnitBlock:    unit.Block,
		ResidentName: unit.ResidentName,
		CreatedBy:    result.CreatedBy,
		CreatedAt:    result.CreatedAt,
	}, nil
}
