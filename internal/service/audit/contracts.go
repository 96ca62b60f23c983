package audit

import (
	"context"

	"github.com/m04kA/SMC-CondoService/internal/domain"
)

// AuditRepository интерфейс репозитория журнала активности
type AuditRepository interface {
	Append(ctx context.Context, entry *domain.AuditEntry) error
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}
