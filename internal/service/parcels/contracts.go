package parcels

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CondoService/internal/domain"
)

// ParcelRepository интерфейс репозитория посылок
type ParcelRepository interface {
	Create(ctx context.Context, parcel *domain.Parcel) (*domain.Parcel, error)
	GetByID(ctx context.Context, id int64) (*domain.Parcel, error)
	List(ctx context.Context, status *domain.ParcelStatus, limit uint64) ([]*domain.Parcel, error)
	MarkCollected(ctx context.Context, id int64) error
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
