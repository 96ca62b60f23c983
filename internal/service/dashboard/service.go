package dashboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CondoService/internal/domain"
	condoRepo "github.com/m04kA/SMC-CondoService/internal/infra/storage/condo"
	"github.com/m04kA/SMC-CondoService/internal/service/dashboard/models"
	"github.com/m04kA/SMC-CondoService/pkg/types"
)

const recentActivityLimit = 10

// Service сервис сводки для главного экрана стойки консьержа
type Service struct {
	units     UnitCounter
	vehicles  VehicleCounter
	parcels   ParcelCounter
	providers ProviderCounter
	guests    GuestCounter
	bookings  BookingRepository
	auditRepo AuditRepository
	condoRepo CondoRepository
	logger    Logger
	timer     TimeProvider
}

// NewService создает новый экземпляр сервиса сводки
func NewService(
	units UnitCounter,
	vehicles VehicleCounter,
	parcels ParcelCounter,
	providers ProviderCounter,
	guests GuestCounter,
	bookings BookingRepository,
	auditRepo AuditRepository,
	condoRepo CondoRepository,
	logger Logger,
	timer TimeProvider,
) *Service {
	return &Service{
		units:     units,
		vehicles:  vehicles,
		parcels:   parcels,
		providers: providers,
		guests:    guests,
		bookings:  bookings,
		auditRepo: auditRepo,
		condoRepo: condoRepo,
		logger:    logger,
		timer:     timer,
	}
}

// Summary собирает сводку: счетчики по разделам, брони на сегодня
// с классификацией занятости и последние записи журнала.
func (s *Service) Summary(ctx context.Context) (*models.SummaryResponse, error) {
	resp := &models.SummaryResponse{}

	var err error
	if resp.Units, err = s.units.Count(ctx); err != nil {
		return nil, s.internal("units count", err)
	}
	if resp.Vehicles, err = s.vehicles.Count(ctx); err != nil {
		return nil, s.internal("vehicles count", err)
	}
	if resp.PendingParcels, err = s.parcels.CountPending(ctx); err != nil {
		return nil, s.internal("parcels count", err)
	}
	if resp.ActiveProviders, err = s.providers.CountActive(ctx); err != nil {
		return nil, s.internal("providers count", err)
	}
	if resp.ActiveGuests, err = s.guests.CountActive(ctx); err != nil {
		return nil, s.internal("guests count", err)
	}

	condo := s.condoSettings(ctx)

	today := types.NewDateString(s.timer.Now())
	todayBookings, err := s.bookings.List(ctx, domain.BookingsFilter{DateFrom: &today, DateTo: &today})
	if err != nil {
		return nil, s.internal("today bookings", err)
	}

	resp.TodayBookings = make([]*models.TodayBooking, 0, len(todayBookings))
	for _, b := range todayBookings {
		resp.TodayBookings = append(resp.TodayBookings, models.FromDomainTodayBooking(b, condo))
	}
	resp.TodayOccupancy = string(domain.ClassifyDay(today, condo.RoomCount(), todayBookings))

	recent, err := s.auditRepo.List(ctx, domain.AuditFilter{Limit: recentActivityLimit})
	if err != nil {
		return nil, s.internal("recent activity", err)
	}
	resp.RecentActivity = make([]*models.ActivityEntry, 0, len(recent))
	for _, e := range recent {
		resp.RecentActivity = append(resp.RecentActivity, models.FromDomainActivity(e))
	}

	return resp, nil
}

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

func (s *Service) internal(step string, err error) error {
	s.logger.Error("Summary: %s failed: %v", step, err)
	return fmt.Errorf("%w: Summary - %s: %v", ErrInternal, step, err)
}
