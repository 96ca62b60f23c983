package checkout_guest

import (
	"context"

	"github.com/m04kA/SMC-CondoService/internal/service/access/models"
)

type AccessService interface {
	RegisterGuestExit(ctx context.Context, id int64, actorID int64) (*models.GuestResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
