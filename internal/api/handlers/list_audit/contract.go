package list_audit

import (
	"context"

	"github.com/m04kA/SMC-CondoService/internal/domain"
	"github.com/m04kA/SMC-CondoService/internal/service/auditlog/models"
)

type AuditService interface {
	List(ctx context.Context, req *models.ListAuditRequest, actor *domain.User) (*models.AuditListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
