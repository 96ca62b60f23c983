package export_audit

import (
	"context"
	"io"

	"github.com/m04kA/SMC-CondoService/internal/domain"
	"github.com/m04kA/SMC-CondoService/internal/service/auditlog/models"
)

type AuditService interface {
	ExportXLSX(ctx context.Context, req *models.ListAuditRequest, actor *domain.User, w io.Writer) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
