package get_unit

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CondoService/internal/api/handlers"
	"github.com/m04kA/SMC-CondoService/internal/service/units"
)

const (
	msgInvalidUnitID = "некорректный ID квартиры"
	msgNotFound      = "квартира не найдена"
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

// Handle GET /api/v1/units/{unitId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	unitID, err := strconv.ParseInt(vars["unitId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /units/{id} - Invalid unit ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUnitID)
		return
	}

	result, err := h.service.GetByID(r.Context(), unitID)
	if err != nil {
		if errors.Is(err, units.ErrUnitNotFound) {
			h.logger.Warn("GET /units/{id} - Unit not found: unit_id=%d", unitID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /units/{id} - Failed to get unit: unit_id=%d, error=%v", unitID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
