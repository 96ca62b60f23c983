package access

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CondoService/internal/domain"
)

// ProviderRepository интерфейс репозитория журнала поставщиков услуг
type ProviderRepository interface {
	Create(ctx context.Context, provider *domain.ServiceProvider) (*domain.ServiceProvider, error)
	GetByID(ctx context.Context, id int64) (*domain.ServiceProvider, error)
	List(ctx context.Context, onlyActive bool, limit uint64) ([]*domain.ServiceProvider, error)
	RegisterExit(ctx context.Context, id int64) error
}

// GuestRepository интерфейс репозитория журнала арендных гостей
type GuestRepository interface {
	Create(ctx context.Context, guest *domain.RentalGuest) (*domain.RentalGuest, error)
	GetByID(ctx context.Context, id int64) (*domain.RentalGuest, error)
	List(ctx context.Context, onlyActive bool, limit uint64) ([]*domain.RentalGuest, error)
	RegisterExit(ctx context.Context, id int64) error
}

// UnitRepository интерфейс репозитория квартир
type UnitRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Unit, error)
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

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}
