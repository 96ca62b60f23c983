package units

import (
	"context"

	"github.com/m04kA/SMC-CondoService/internal/domain"
)

// UnitRepository интерфейс репозитория квартир
type UnitRepository interface {
	Create(ctx context.Context, unit *domain.Unit) (*domain.Unit, error)
	GetByID(ctx context.Context, id int64) (*domain.Unit, error)
	List(ctx context.Context) ([]*domain.Unit, error)
	Update(ctx context.Context, unit *domain.Unit) error
	Delete(ctx context.Context, id int64) error
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
