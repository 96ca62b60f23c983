package get_unit

import (
	"context"

	"github.com/m04kA/SMC-CondoService/internal/service/units/models"
)

type UnitService interface {
	GetByID(ctx context.Context, id int64) (*models.UnitResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
