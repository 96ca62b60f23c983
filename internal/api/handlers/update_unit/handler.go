package update_unit

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CondoService/internal/api/handlers"
	"github.com/m04kA/SMC-CondoService/internal/api/middleware"
	"github.com/m04kA/SMC-CondoService/internal/service/units"
	"github.com/m04kA/SMC-CondoService/internal/service/units/models"
)

const (
	msgInvalidUnitID      = "некорректный ID квартиры"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUser        = "отсутствует пользователь сессии"
	msgNotFound           = "квартира не найдена"
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

// Handle PUT /api/v1/units/{unitId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	unitID, err := strconv.ParseInt(vars["unitId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /units/{id} - Invalid unit ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUnitID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /units/{id} - Missing session user")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req models.UpdateUnitRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /units/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), unitID, &req, userID)
	if err != nil {
		switch {
		case errors.Is(err, units.ErrUnitNotFound):
			h.logger.Warn("PUT /units/{id} - Unit not found: unit_id=%d", unitID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, units.ErrInvalidInput):
			h.logger.Warn("PUT /units/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /units/{id} - Failed to update unit: unit_id=%d, error=%v", unitID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /units/{id} - Unit updated: unit_id=%d, user_id=%d", unitID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
