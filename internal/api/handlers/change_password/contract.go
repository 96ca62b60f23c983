package change_password

import (
	"context"

	"github.com/m04kA/SMC-CondoService/internal/domain"
	"github.com/m04kA/SMC-CondoService/internal/service/users/models"
)

type UserService interface {
	ChangePassword(ctx context.Context, req *models.ChangePasswordRequest, actor *domain.User) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
