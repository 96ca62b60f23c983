package register_parcel

import (
	"context"

	"github.com/m04kA/SMC-CondoService/internal/service/parcels/models"
)

type ParcelService interface {
	Register(ctx context.Context, req *models.RegisterParcelRequest, actorID int64) (*models.ParcelResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
