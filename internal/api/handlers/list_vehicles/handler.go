package list_vehicles

import (
	"net/http"

	"github.com/m04kA/SMC-CondoService/internal/api/handlers"
)

type Handler struct {
	service VehicleService
	logger  Logger
}

func NewHandler(service VehicleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/vehicles?plate=ABC
//
// Поиск по фрагменту номера - основной сценарий охраны на воротах.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	plateQuery := r.URL.Query().Get("plate")

	result, err := h.service.List(r.Context(), plateQuery)
	if err != nil {
		h.logger.Error("GET /vehicles - Failed to list vehicles: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /vehicles - Listed %d vehicles (plate=%q)", result.Total, plateQuery)
	handlers.RespondJSON(w, http.StatusOK, result)
}
