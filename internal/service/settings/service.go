package settings

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/m04kA/SMC-CondoService/internal/domain"
	condoRepo "github.com/m04kA/SMC-CondoService/internal/infra/storage/condo"
	"github.com/m04kA/SMC-CondoService/internal/service/settings/models"
)

const auditCollection = "condominium"

// Service сервис настроек кондоминиума
type Service struct {
	condoRepo CondoRepository
	audit     AuditRecorder
	logger    Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(condoRepo CondoRepository, audit AuditRecorder, logger Logger) *Service {
	return &Service{condoRepo: condoRepo, audit: audit, logger: logger}
}

// Get возвращает настройки. Отсутствие записи не ошибка:
// отдаются значения по умолчанию с флагом configured=false.
func (s *Service) Get(ctx context.Context) (*models.SettingsResponse, error) {
	condo, err := s.condoRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, condoRepo.ErrNotConfigured) {
			return models.FromDomainCondominium(nil), nil
		}
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainCondominium(condo), nil
}

// Update сохраняет настройки. Доступно только администратору.
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest, actor *domain.User) (*models.SettingsResponse, error) {
	if !actor.IsAdmin() {
		s.logger.Warn("Update: access denied for user=%d", actor.ID)
		return nil, ErrAccessDenied
	}

	if err := req.Validate(); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	saved, err := s.condoRepo.Save(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.audit.Record(ctx, actor.ID, domain.ActionUpdate, auditCollection, strconv.FormatInt(saved.ID, 10),
		fmt.Sprintf("Обновлены настройки кондоминиума %q (залов: %d)", saved.Name, saved.RoomCount()))

	s.logger.Info("Update: condominium settings saved by admin=%d", actor.ID)
	return models.FromDomainCondominium(saved), nil
}
