package update_user_role

import (
	"context"

	"github.com/m04kA/SMC-CondoService/internal/domain"
	"github.com/m04kA/SMC-CondoService/internal/service/users/models"
)

type UserService interface {
	UpdateRole(ctx context.Context, id int64, req *models.UpdateRoleRequest, actor *domain.User) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
