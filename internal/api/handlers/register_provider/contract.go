package register_provider

import (
	"context"

	"github.com/m04kA/SMC-CondoService/internal/service/access/models"
)

type AccessService interface {
	RegisterProviderEntry(ctx context.Context, req *models.RegisterProviderRequest, actorID int64) (*models.ProviderResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
