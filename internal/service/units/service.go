package units

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/m04kA/SMC-CondoService/internal/domain"
	unitRepo "github.com/m04kA/SMC-CondoService/internal/infra/storage/unit"
	"github.com/m04kA/SMC-CondoService/internal/service/units/models"
)

const auditCollection = "units"

// Service сервис для работы с реестром квартир
type Service struct {
	unitRepo UnitRepository
	audit    AuditRecorder
	logger   Logger
}

// NewService создает новый экземпляр сервиса квартир
func NewService(unitRepo UnitRepository, audit AuditRecorder, logger Logger) *Service {
	return &Service{unitRepo: unitRepo, audit: audit, logger: logger}
}

// Create создает квартиру
func (s *Service) Create(ctx context.Context, req *models.CreateUnitRequest, actorID int64) (*models.UnitResponse, error) {
	if err := req.Validate(); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	unit, err := s.unitRepo.Create(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.audit.Record(ctx, actorID, domain.ActionCreate, auditCollection, strconv.FormatInt(unit.ID, 10),
		fmt.Sprintf("Добавлена квартира %s (%s)", unit.DisplayName(), unit.ResidentName))

	s.logger.Info("Create: unit id=%d created by user=%d", unit.ID, actorID)
	return models.FromDomainUnit(unit), nil
}

// GetByID получает квартиру по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.UnitResponse, error) {
	unit, err := s.unitRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, unitRepo.ErrUnitNotFound) {
			return nil, ErrUnitNotFound
		}
		s.logger.Error("GetByID: repository error for unit id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainUnit(unit), nil
}

// List получает все квартиры, отсортированные по номеру
func (s *Service) List(ctx context.Context) (*models.UnitListResponse, error) {
	units, err := s.unitRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainUnitList(units), nil
}

// Update обновляет данные квартиры
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateUnitRequest, actorID int64) (*models.UnitResponse, error) {
	if err := req.Validate(); err != nil {
		s.logger.Warn("Update: validation failed for unit id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	unit := req.ToDomain()
	unit.ID = id

	if err := s.unitRepo.Update(ctx, unit); err != nil {
		if errors.Is(err, unitRepo.ErrUnitNotFound) {
			return nil, ErrUnitNotFound
		}
		s.logger.Error("Update: repository error for unit id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	updated, err := s.unitRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Update: failed to re-read unit id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.audit.Record(ctx, actorID, domain.ActionUpdate, auditCollection, strconv.FormatInt(id, 10),
		fmt.Sprintf("Обновлена квартира %s (%s)", updated.DisplayName(), updated.ResidentName))

	s.logger.Info("Update: unit id=%d updated by user=%d", id, actorID)
	return models.FromDomainUnit(updated), nil
}

// Delete удаляет квартиру. Квартира со связанными записями
// (транспорт, брони, посылки) не удаляется - возвращается ErrUnitInUse.
func (s *Service) Delete(ctx context.Context, id int64, actorID int64) error {
	unit, err := s.unitRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, unitRepo.ErrUnitNotFound) {
			return ErrUnitNotFound
		}
		s.logger.Error("Delete: repository error for unit id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if err := s.unitRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, unitRepo.ErrUnitNotFound):
			return ErrUnitNotFound
		case errors.Is(err, unitRepo.ErrUnitInUse):
			s.logger.Warn("Delete: unit id=%d has linked records", id)
			return ErrUnitInUse
		default:
			s.logger.Error("Delete: repository error for unit id=%d: %v", id, err)
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}
	}

	s.audit.Record(ctx, actorID, domain.ActionDelete, auditCollection, strconv.FormatInt(id, 10),
		fmt.Sprintf("Удалена квартира %s (%s)", unit.DisplayName(), unit.ResidentName))

	s.logger.Info("Delete: unit id=%d deleted by user=%d", id, actorID)
	return nil
}
