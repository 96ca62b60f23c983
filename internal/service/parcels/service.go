package parcels

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CondoService/internal/domain"
	parcelRepo "github.com/m04kA/SMC-CondoService/internal/infra/storage/parcel"
	unitRepo "github.com/m04kA/SMC-CondoService/internal/infra/storage/unit"
	"github.com/m04kA/SMC-CondoService/internal/service/parcels/models"
)

const auditCollection = "parcels"

// Service сервис учета посылок на стойке консьержа
type Service struct {
	parcelRepo ParcelRepository
	unitRepo   UnitRepository
	audit      AuditRecorder
	logger     Logger
	timer      TimeProvider
}

// NewService создает новый экземпляр сервиса посылок
func NewService(
	parcelRepo ParcelRepository,
	unitRepo UnitRepository,
	audit AuditRecorder,
	logger Logger,
	timer TimeProvider,
) *Service {
	return &Service{
		parcelRepo: parcelRepo,
		unitRepo:   unitRepo,
		audit:      audit,
		logger:     logger,
		timer:      timer,
	}
}

// Register регистрирует прибывшую посылку и присваивает ей номер протокола
func (s *Service) Register(ctx context.Context, req *models.RegisterParcelRequest, actorID int64) (*models.ParcelResponse, error) {
	if err := req.Validate(); err != nil {
		s.logger.Warn("Register: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, err := s.unitRepo.GetByID(ctx, req.UnitID); err != nil {
		if errors.Is(err, unitRepo.ErrUnitNotFound) {
			s.logger.Warn("Register: unit id=%d not found", req.UnitID)
			return nil, ErrUnitNotFound
		}
		s.logger.Error("Register: repository error for unit id=%d: %v", req.UnitID, err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	parcel := &domain.Parcel{
		ProtocolNumber: newProtocolNumber(),
		Description:    strings.TrimSpace(req.Description),
		PhotoKey:       req.PhotoKey,
		Status:         domain.ParcelPending,
		ArrivedAt:      s.timer.Now(),
		UnitID:         req.UnitID,
		CreatedBy:      actorID,
	}

	created, err := s.parcelRepo.Create(ctx, parcel)
	if err != nil {
		s.logger.Error("Register: repository error: %v", err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	s.audit.Record(ctx, actorID, domain.ActionCreate, auditCollection, strconv.FormatInt(created.ID, 10),
		fmt.Sprintf("Принята посылка №%s для кв. %s", created.ProtocolNumber, created.UnitNumber))

	s.logger.Info("Register: parcel id=%d protocol=%s registered by user=%d", created.ID, created.ProtocolNumber, actorID)
	return models.FromDomainParcel(created), nil
}

// GetByID получает посылку по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ParcelResponse, error) {
	parcel, err := s.parcelRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, parcelRepo.ErrParcelNotFound) {
			return nil, ErrParcelNotFound
		}
		s.logger.Error("GetByID: repository error for parcel id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainParcel(parcel), nil
}

// List получает посылки с опциональным фильтром по статусу
func (s *Service) List(ctx context.Context, status *string, limit uint64) (*models.ParcelListResponse, error) {
	var domainStatus *domain.ParcelStatus
	if status != nil {
		parsed := domain.ParcelStatus(*status)
		if !parsed.IsValid() {
			s.logger.Warn("List: invalid status=%s", *status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &parsed
	}

	parcels, err := s.parcelRepo.List(ctx, domainStatus, limit)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainParcelList(parcels), nil
}

// Collect отмечает выдачу посылки жильцу. Выдать посылку можно один раз:
// повторная попытка возвращает ErrAlreadyCollected.
func (s *Service) Collect(ctx context.Context, id int64, actorID int64) (*models.ParcelResponse, error) {
	if err := s.parcelRepo.MarkCollected(ctx, id); err != nil {
		switch {
		case errors.Is(err, parcelRepo.ErrParcelNotFound):
			s.logger.Warn("Collect: parcel id=%d not found", id)
			return nil, ErrParcelNotFound
		case errors.Is(err, parcelRepo.ErrAlreadyCollected):
			s.logger.Warn("Collect: parcel id=%d already collected", id)
			return nil, ErrAlreadyCollected
		default:
			s.logger.Error("Collect: repository error for parcel id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: Collect - repository error: %v", ErrInternal, err)
		}
	}

	parcel, err := s.parcelRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Collect: failed to re-read parcel id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Collect - repository error: %v", ErrInternal, err)
	}

	s.audit.Record(ctx, actorID, domain.ActionUpdate, auditCollection, strconv.FormatInt(id, 10),
		fmt.Sprintf("Выдана посылка №%s, кв. %s", parcel.ProtocolNumber, parcel.UnitNumber))

	s.logger.Info("Collect: parcel id=%d collected, recorded by user=%d", id, actorID)
	return models.FromDomainParcel(parcel), nil
}

// newProtocolNumber генерирует человекочитаемый номер протокола выдачи
func newProtocolNumber() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}
