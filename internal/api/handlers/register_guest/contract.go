package register_guest

import (
	"context"

	"github.com/m04kA/SMC-CondoService/internal/service/access/models"
)

type AccessService interface {
	RegisterGuestEntry(ctx context.Context, req *models.RegisterGuestRequest, actorID int64) (*models.GuestResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
