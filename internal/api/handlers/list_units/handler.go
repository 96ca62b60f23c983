package list_units

import (
	"net/http"

	"github.com/m04kA/SMC-CondoService/internal/api/handlers"
)

type Handler struct {
	service UnitService
	logger  Logger
}

func NewHandler(service UnitService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/units
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /units - Failed to list units: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /units - Listed %d units", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
