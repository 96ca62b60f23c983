package vehicles

import (
	"context"

	"github.com/m04kA/SMC-CondoService/internal/domain"
)

// VehicleRepository интерфейс репозитория транспортных средств
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error)
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	List(ctx context.Context, plateQuery string) ([]*domain.Vehicle, error)
	Update(ctx context.Context, vehicle *domain.Vehicle) error
	Delete(ctx context.Context, id int64) error
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
