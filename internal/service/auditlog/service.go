package auditlog

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-CondoService/internal/domain"
	"github.com/m04kA/SMC-CondoService/internal/service/auditlog/models"
)

const exportSheetName = "Журнал активности"

var exportColumns = []string{"Дата", "Пользователь", "Email", "Действие", "Раздел", "Объект", "Описание"}

// Service сервис чтения журнала активности. Журнал append-only:
// сервис умеет только выбирать и экспортировать записи.
type Service struct {
	auditRepo AuditRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса журнала
func NewService(auditRepo AuditRepository, logger Logger) *Service {
	return &Service{auditRepo: auditRepo, logger: logger}
}

// List читает записи журнала по фильтру. Доступно только администратору.
func (s *Service) List(ctx context.Context, req *models.ListAuditRequest, actor *domain.User) (*models.AuditListResponse, error) {
	if !actor.IsAdmin() {
		s.logger.Warn("List: access denied for user=%d", actor.ID)
		return nil, ErrAccessDenied
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	entries, err := s.auditRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainEntryList(entries), nil
}

// ExportXLSX выгружает журнал в Excel. Доступно только администратору.
func (s *Service) ExportXLSX(ctx context.Context, req *models.ListAuditRequest, actor *domain.User, w io.Writer) error {
	if !actor.IsAdmin() {
		s.logger.Warn("ExportXLSX: access denied for user=%d", actor.ID)
		return ErrAccessDenied
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ExportXLSX: invalid filter: %v", err)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	entries, err := s.auditRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ExportXLSX: repository error: %v", err)
		return fmt.Errorf("%w: ExportXLSX - repository error: %v", ErrInternal, err)
	}

	if err := writeXLSX(entries, w); err != nil {
		s.logger.Error("ExportXLSX: failed to build file: %v", err)
		return fmt.Errorf("%w: ExportXLSX - excel error: %v", ErrInternal, err)
	}

	s.logger.Info("ExportXLSX: exported %d entries for admin=%d", len(entries), actor.ID)
	return nil
}

func writeXLSX(entries []*domain.AuditEntry, w io.Writer) error {
	file := excelize.NewFile()
	defer file.Close()

	file.SetSheetName("Sheet1", exportSheetName)

	for i, col := range exportColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := file.SetCellValue(exportSheetName, cell, col); err != nil {
			return err
		}
	}

	if style, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		startCell, _ := excelize.CoordinatesToCellName(1, 1)
		endCell, _ := excelize.CoordinatesToCellName(len(exportColumns), 1)
		_ = file.SetCellStyle(exportSheetName, startCell, endCell, style)
	}

	for rowIdx, e := range entries {
		values := []interface{}{
			e.CreatedAt.Format("02.01.2006 15:04:05"),
			e.UserName,
			e.UserEmail,
			string(e.Action),
			e.TargetCollection,
			e.TargetID,
			e.Description,
		}
		for colIdx, value := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return err
			}
			if err := file.SetCellValue(exportSheetName, cell, value); err != nil {
				return err
			}
		}
	}

	return file.Write(w)
}
