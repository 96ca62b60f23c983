package get_profile

import (
	"context"

	"github.com/m04kA/SMC-CondoService/internal/service/users/models"
)

type UserService interface {
	GetByID(ctx context.Context, id int64) (*models.UserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
