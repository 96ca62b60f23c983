package create_user

import (
	"context"

	"github.com/m04kA/SMC-CondoService/internal/domain"
	"github.com/m04kA/SMC-CondoService/internal/service/users/models"
)

type UserService interface {
	Create(ctx context.Context, req *models.CreateUserRequest, actor *domain.User) (*models.UserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
