package auditlog

import (
	"context"

	"github.com/m04kA/SMC-CondoService/internal/domain"
)

// AuditRepository интерфейс репозитория журнала активности
type AuditRepository interface {
	List(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditEntry, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
