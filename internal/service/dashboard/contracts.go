package dashboard

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CondoService/internal/domain"
)

// UnitCounter интерфейс подсчета квартир
type UnitCounter interface {
	Count(ctx context.Context) (int64, error)
}

// VehicleCounter интерфейс подсчета транспорта
type VehicleCounter interface {
	Count(ctx context.Context) (int64, error)
}

// ParcelCounter интерфейс подсчета невыданных посылок
type ParcelCounter interface {
	CountPending(ctx context.Context) (int64, error)
}

// ProviderCounter интерфейс подсчета поставщиков на территории
type ProviderCounter interface {
	CountActive(ctx context.Context) (int64, error)
}

// GuestCounter интерфейс подсчета гостей на территории
type GuestCounter interface {
	CountActive(ctx context.Context) (int64, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// AuditRepository интерфейс репозитория журнала активности
type AuditRepository interface {
	List(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditEntry, error)
}

// CondoRepository интерфейс репозитория настроек кондоминиума
type CondoRepository interface {
	Get(ctx context.Context) (*domain.Condominium, error)
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
