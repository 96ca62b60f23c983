package access

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-CondoService/internal/domain"
	guestRepo "github.com/m04kA/SMC-CondoService/internal/infra/storage/guest"
	providerRepo "github.com/m04kA/SMC-CondoService/internal/infra/storage/provider"
	unitRepo "github.com/m04kA/SMC-CondoService/internal/infra/storage/unit"
	"github.com/m04kA/SMC-CondoService/internal/service/access/models"
)

const (
	auditCollectionProviders = "service_providers"
	auditCollectionGuests    = "rental_guests"
)

// Service сервис контроля доступа: журналы поставщиков услуг и арендных гостей
type Service struct {
	providerRepo ProviderRepository
	guestRepo    GuestRepository
	unitRepo     UnitRepository
	audit        AuditRecorder
	logger       Logger
	timer        TimeProvider
}

// NewService создает новый экземпляр сервиса контроля доступа
func NewService(
	providerRepo ProviderRepository,
	guestRepo GuestRepository,
	unitRepo UnitRepository,
	audit AuditRecorder,
	logger Logger,
	timer TimeProvider,
) *Service {
	return &Service{
		providerRepo: providerRepo,
		guestRepo:    guestRepo,
		unitRepo:     unitRepo,
		audit:        audit,
		logger:       logger,
		timer:        timer,
	}
}

// RegisterProviderEntry регистрирует вход поставщика услуг
func (s *Service) RegisterProviderEntry(ctx context.Context, req *models.RegisterProviderRequest, actorID int64) (*models.ProviderResponse, error) {
	if err := req.Validate(); err != nil {
		s.logger.Warn("RegisterProviderEntry: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if req.UnitID != nil {
		if err := s.checkUnitExists(ctx, *req.UnitID); err != nil {
			return nil, err
		}
	}

	provider := &domain.ServiceProvider{
		Name:      strings.TrimSpace(req.Name),
		Document:  req.Document,
		Company:   req.Company,
		PhotoKey:  req.PhotoKey,
		EntryTime: s.timer.Now(),
		UnitID:    req.UnitID,
		CreatedBy: actorID,
	}

	created, err := s.providerRepo.Create(ctx, provider)
	if err != nil {
		s.logger.Error("RegisterProviderEntry: repository error: %v", err)
		return nil, fmt.Errorf("%w: RegisterProviderEntry - repository error: %v", ErrInternal, err)
	}

	s.audit.Record(ctx, actorID, domain.ActionCreate, auditCollectionProviders, strconv.FormatInt(created.ID, 10),
		fmt.Sprintf("Вход поставщика услуг: %s", created.Name))

	s.logger.Info("RegisterProviderEntry: provider id=%d registered by user=%d", created.ID, actorID)
	return models.FromDomainProvider(created), nil
}

// RegisterProviderExit отмечает выход поставщика услуг
func (s *Service) RegisterProviderExit(ctx context.Context, id int64, actorID int64) (*models.ProviderResponse, error) {
	if err := s.providerRepo.RegisterExit(ctx, id); err != nil {
		switch {
		case errors.Is(err, providerRepo.ErrProviderNotFound):
			s.logger.Warn("RegisterProviderExit: provider id=%d not found", id)
			return nil, ErrEntryNotFound
		case errors.Is(err, providerRepo.ErrAlreadyCheckedOut):
			s.logger.Warn("RegisterProviderExit: provider id=%d already checked out", id)
			return nil, ErrAlreadyCheckedOut
		default:
			s.logger.Error("RegisterProviderExit: repository error for id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: RegisterProviderExit - repository error: %v", ErrInternal, err)
		}
	}

	provider, err := s.providerRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("RegisterProviderExit: failed to re-read provider id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: RegisterProviderExit - repository error: %v", ErrInternal, err)
	}

	s.audit.Record(ctx, actorID, domain.ActionUpdate, auditCollectionProviders, strconv.FormatInt(id, 10),
		fmt.Sprintf("Выход поставщика услуг: %s", provider.Name))

	s.logger.Info("RegisterProviderExit: provider id=%d checked out, recorded by user=%d", id, actorID)
	return models.FromDomainProvider(provider), nil
}

// ListProviders получает журнал поставщиков. При onlyActive - только на территории.
func (s *Service) ListProviders(ctx context.Context, onlyActive bool, limit uint64) (*models.ProviderListResponse, error) {
	providers, err := s.providerRepo.List(ctx, onlyActive, limit)
	if err != nil {
		s.logger.Error("ListProviders: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListProviders - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainProviderList(providers), nil
}

// RegisterGuestEntry регистрирует заезд арендного гостя
func (s *Service) RegisterGuestEntry(ctx context.Context, req *models.RegisterGuestRequest, actorID int64) (*models.GuestResponse, error) {
	if err := req.Validate(); err != nil {
		s.logger.Warn("RegisterGuestEntry: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.checkUnitExists(ctx, req.UnitID); err != nil {
		return nil, err
	}

	guest := &domain.RentalGuest{
		Name:      strings.TrimSpace(req.Name),
		Document:  req.Document,
		Plate:     req.Plate,
		PhotoKey:  req.PhotoKey,
		EntryTime: s.timer.Now(),
		UnitID:    req.UnitID,
		CreatedBy: actorID,
	}

	created, err := s.guestRepo.Create(ctx, guest)
	if err != nil {
		s.logger.Error("RegisterGuestEntry: repository error: %v", err)
		return nil, fmt.Errorf("%w: RegisterGuestEntry - repository error: %v", ErrInternal, err)
	}

	s.audit.Record(ctx, actorID, domain.ActionCreate, auditCollectionGuests, strconv.FormatInt(created.ID, 10),
		fmt.Sprintf("Заезд гостя: %s, кв. %s", created.Name, created.UnitNumber))

	s.logger.Info("RegisterGuestEntry: guest id=%d registered by user=%d", created.ID, actorID)
	return models.FromDomainGuest(created), nil
}

// RegisterGuestExit отмечает выезд арендного гостя
func (s *Service) RegisterGuestExit(ctx context.Context, id int64, actorID int64) (*models.GuestResponse, error) {
	if err := s.guestRepo.RegisterExit(ctx, id); err != nil {
		switch {
		case errors.Is(err, guestRepo.ErrGuestNotFound):
			s.logger.Warn("RegisterGuestExit: guest id=%d not found", id)
			return nil, ErrEntryNotFound
		case errors.Is(err, guestRepo.ErrAlreadyCheckedOut):
			s.logger.Warn("RegisterGuestExit: guest id=%d already checked out", id)
			return nil, ErrAlreadyCheckedOut
		default:
			s.logger.Error("RegisterGuestExit: repository error for id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: RegisterGuestExit - repository error: %v", ErrInternal, err)
		}
	}

	guest, err := s.guestRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("RegisterGuestExit: failed to re-read guest id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: RegisterGuestExit - repository error: %v", ErrInternal, err)
	}

	s.audit.Record(ctx, actorID, domain.ActionUpdate, auditCollectionGuests, strconv.FormatInt(id, 10),
		fmt.Sprintf("Выезд гостя: %s, кв. %s", guest.Name, guest.UnitNumber))

	s.logger.Info("RegisterGuestExit: guest id=%d checked out, recorded by user=%d", id, actorID)
	return models.FromDomainGuest(guest), nil
}

// ListGuests получает журнал гостей. При onlyActive - только проживающие.
func (s *Service) ListGuests(ctx context.Context, onlyActive bool, limit uint64) (*models.GuestListResponse, error) {
	guests, err := s.guestRepo.List(ctx, onlyActive, limit)
	if err != nil {
		s.logger.Error("ListGuests: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListGuests - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainGuestList(guests), nil
}

func (s *Service) checkUnitExists(ctx context.Context, unitID int64) error {
	if _, err := s.unitRepo.GetByID(ctx, unitID); err != nil {
		if errors.Is(err, unitRepo.ErrUnitNotFound) {
			s.logger.Warn("checkUnitExists: unit id=%d not found", unitID)
			return ErrUnitNotFound
		}
		s.logger.Error("checkUnitExists: repository error for unit id=%d: %v", unitID, err)
		return fmt.Errorf("%w: checkUnitExists - repository error: %v", ErrInternal, err)
	}
	return nil
}
