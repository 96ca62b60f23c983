package get_dashboard

import (
	"net/http"

	"github.com/m04kA/SMC-CondoService/internal/api/handlers"
)

type Handler struct {
	service DashboardService
	logger  Logger
}

func NewHandler(service DashboardService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/dashboard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Summary(r.Context())
	if err != nil {
		h.logger.Error("GET /dashboard - Failed to build summary: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
