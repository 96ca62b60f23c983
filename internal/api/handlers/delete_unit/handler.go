package delete_unit

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CondoService/internal/api/handlers"
	"github.com/m04kA/SMC-CondoService/internal/api/middleware"
	"github.com/m04kA/SMC-CondoService/internal/service/units"
)

const (
	msgInvalidUnitID = "некорректный ID квартиры"
	msgMissingUser   = "отсутствует пользователь сессии"
	msgNotFound      = "квартира не найдена"
	msgUnitInUse     = "у квартиры есть связанные записи, удаление невозможно"
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

// Handle DELETE /api/v1/units/{unitId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	unitID, err := strconv.ParseInt(vars["unitId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /units/{id} - Invalid unit ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUnitID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /units/{id} - Missing session user")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	if err := h.service.Delete(r.Context(), unitID, userID); err != nil {
		switch {
		case errors.Is(err, units.ErrUnitNotFound):
			h.logger.Warn("DELETE /units/{id} - Unit not found: unit_id=%d", unitID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, units.ErrUnitInUse):
			h.logger.Warn("DELETE /units/{id} - Unit has linked records: unit_id=%d", unitID)
			handlers.RespondConflict(w, msgUnitInUse)

		default:
			h.logger.Error("DELETE /units/{id} - Failed to delete unit: unit_id=%d, error=%v", unitID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /units/{id} - Unit deleted: unit_id=%d, user_id=%d", unitID, userID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
