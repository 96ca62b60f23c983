package list_guests

import (
	"context"

	"github.com/m04kA/SMC-CondoService/internal/service/access/models"
)

type AccessService interface {
	ListGuests(ctx context.Context, onlyActive bool, limit uint64) (*models.GuestListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
