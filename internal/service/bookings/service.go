package bookings

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-CondoService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CondoService/internal/infra/storage/booking"
	condoRepo "github.com/m04kA/SMC-CondoService/internal/infra/storage/condo"
	"github.com/m04kA/SMC-CondoService/internal/service/bookings/models"
	"github.com/m04kA/SMC-CondoService/pkg/types"
)

const auditCollection = "party_room_bookings"

// Service сервис для работы с бронированиями залов
type Service struct {
	bookingRepo BookingRepository
	condoRepo   CondoRepository
	audit       AuditRecorder
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	condoRepo CondoRepository,
	audit AuditRecorder,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		condoRepo:   condoRepo,
		audit:       audit,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking, s.condoSettings(ctx)), nil
}

// List получает бронирования по фильтру.
// При UpcomingOnly отбрасываются брони на прошедшие дни.
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid date filter: %v", err)
		return nil, fmt.Errorf("%w: invalid date filter", ErrInvalidInput)
	}

	if req.UpcomingOnly && filter.DateFrom == nil {
		today := types.NewDateString(time.Now())
		filter.DateFrom = &today
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings, s.condoSettings(ctx)), nil
}

// Cancel отменяет бронирование. Доступно только администратору.
// Повторная отмена уже отсутствующей брони возвращает ErrBookingNotFound.
func (s *Service) Cancel(ctx context.Context, id int64, actor *domain.User) error {
	if !actor.IsAdmin() {
		s.logger.Warn("Cancel: access denied for user=%d to booking id=%d", actor.ID, id)
		return ErrAccessDenied
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			// Бронь успела исчезнуть между чтением и удалением
			s.logger.Warn("Cancel: booking id=%d disappeared before delete", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: failed to delete booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - delete error: %v", ErrInternal, err)
	}

	condo := s.condoSettings(ctx)
	description := fmt.Sprintf("Отмена брони: %s, кв. %s, %s (%s)",
		condo.RoomLabel(booking.RoomID),
		booking.UnitNumber,
		booking.BookingDate.Format(domain.DisplayDateFormat),
		booking.Period.Label(),
	)
	s.audit.Record(ctx, actor.ID, domain.ActionDelete, auditCollection, strconv.FormatInt(id, 10), description)

	s.logger.Info("Cancel: booking id=%d cancelled by admin=%d", id, actor.ID)
	return nil
}

// condoSettings читает настройки кондоминиума для отображаемых имен залов.
// Отсутствие настроек не является ошибкой - используются значения по умолчанию.
func (s *Service) condoSettings(ctx context.Context) *domain.Condominium {
	condo, err := s.condoRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, condoRepo.ErrNotConfigured) {
			s.logger.Warn("condoSettings: failed to load settings: %v", err)
		}
		return nil
	}
	return condo
}
