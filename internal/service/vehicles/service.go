package vehicles

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/m04kA/SMC-CondoService/internal/domain"
	unitRepo "github.com/m04kA/SMC-CondoService/internal/infra/storage/unit"
	vehicleRepo "github.com/m04kA/SMC-CondoService/internal/infra/storage/vehicle"
	"github.com/m04kA/SMC-CondoService/internal/service/vehicles/models"
)

const auditCollection = "vehicles"

// Service сервис для работы с реестром транспорта жильцов
type Service struct {
	vehicleRepo VehicleRepository
	unitRepo    UnitRepository
	audit       AuditRecorder
	logger      Logger
}

// NewService создает новый экземпляр сервиса транспорта
func NewService(
	vehicleRepo VehicleRepository,
	unitRepo UnitRepository,
	audit AuditRecorder,
	logger Logger,
) *Service {
	return &Service{
		vehicleRepo: vehicleRepo,
		unitRepo:    unitRepo,
		audit:       audit,
		logger:      logger,
	}
}

// Create регистрирует ТС за квартирой
func (s *Service) Create(ctx context.Context, req *models.CreateVehicleRequest, actorID int64) (*models.VehicleResponse, error) {
	if err := req.Validate(); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.checkUnitExists(ctx, req.UnitID); err != nil {
		return nil, err
	}

	vehicle, err := s.vehicleRepo.Create(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.audit.Record(ctx, actorID, domain.ActionCreate, auditCollection, strconv.FormatInt(vehicle.ID, 10),
		fmt.Sprintf("Зарегистрировано ТС %s (%s), кв. %s", vehicle.Plate, vehicle.Model, vehicle.UnitNumber))

	s.logger.Info("Create: vehicle id=%d plate=%s created by user=%d", vehicle.ID, vehicle.Plate, actorID)
	return models.FromDomainVehicle(vehicle), nil
}

// GetByID получает ТС по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.VehicleResponse, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			return nil, ErrVehicleNotFound
		}
		s.logger.Error("GetByID: repository error for vehicle id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainVehicle(vehicle), nil
}

// List получает ТС с опциональным поиском по фрагменту номера
func (s *Service) List(ctx context.Context, plateQuery string) (*models.VehicleListResponse, error) {
	vehicles, err := s.vehicleRepo.List(ctx, models.NormalizePlate(plateQuery))
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainVehicleList(vehicles), nil
}

// Update обновляет данные ТС
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateVehicleRequest, actorID int64) (*models.VehicleResponse, error) {
	if err := req.Validate(); err != nil {
		s.logger.Warn("Update: validation failed for vehicle id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.checkUnitExists(ctx, req.UnitID); err != nil {
		return nil, err
	}

	vehicle := req.ToDomain()
	vehicle.ID = id

	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			return nil, ErrVehicleNotFound
		}
		s.logger.Error("Update: repository error for vehicle id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	updated, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Update: failed to re-read vehicle id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.audit.Record(ctx, actorID, domain.ActionUpdate, auditCollection, strconv.FormatInt(id, 10),
		fmt.Sprintf("Обновлено ТС %s (%s), кв. %s", updated.Plate, updated.Model, updated.UnitNumber))

	s.logger.Info("Update: vehicle id=%d updated by user=%d", id, actorID)
	return models.FromDomainVehicle(updated), nil
}

// Delete удаляет ТС из реестра
func (s *Service) Delete(ctx context.Context, id int64, actorID int64) error {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			return ErrVehicleNotFound
		}
		s.logger.Error("Delete: repository error for vehicle id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if err := s.vehicleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			return ErrVehicleNotFound
		}
		s.logger.Error("Delete: repository error for vehicle id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.audit.Record(ctx, actorID, domain.ActionDelete, auditCollection, strconv.FormatInt(id, 10),
		fmt.Sprintf("Удалено ТС %s (%s), кв. %s", vehicle.Plate, vehicle.Model, vehicle.UnitNumber))

	s.logger.Info("Delete: vehicle id=%d deleted by user=%d", id, actorID)
	return nil
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
