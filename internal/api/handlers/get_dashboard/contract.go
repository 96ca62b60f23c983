package get_dashboard

import (
	"context"

	"github.com/m04kA/SMC-CondoService/internal/service/dashboard/models"
)

type DashboardService interface {
	Summary(ctx context.Context) (*models.SummaryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
