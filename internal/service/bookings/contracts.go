package bookings

import (
	"context"

	"github.com/m04kA/SMC-CondoService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	Delete(ctx context.Context, id int64) error
}

// CondoRepository интерфейс репозитория настроек кондоминиума
type CondoRepository interface {
	Get(ctx context.Context) (*domain.Condominium, error)
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
