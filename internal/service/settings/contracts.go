package settings

import (
	"context"

	"github.com/m04kA/SMC-CondoService/internal/domain"
)

// CondoRepository интерфейс репозитория настроек кондоминиума
type CondoRepository interface {
	Get(ctx context.Context) (*domain.Condominium, error)
	Save(ctx context.Context, condo *domain.Condominium) (*domain.Condominium, error)
}

// AuditRecorder интерфейс журнала активности
type AuditRecorder interface {
	Record(ctx context.Context, userID int64, action domain.AuditAction, collection, targetID, description string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
