package update_vehicle

import (
	"context"

	"github.com/m04kA/SMC-CondoService/internal/service/vehicles/models"
)

type VehicleService interface {
	Update(ctx context.Context, id int64, req *models.UpdateVehicleRequest, actorID int64) (*models.VehicleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
