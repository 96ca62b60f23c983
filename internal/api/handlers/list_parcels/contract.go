package list_parcels

import (
	"context"

	"github.com/m04kA/SMC-CondoService/internal/service/parcels/models"
)

type ParcelService interface {
	List(ctx context.Context, status *string, limit uint64) (*models.ParcelListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
