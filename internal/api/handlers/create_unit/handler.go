package create_unit

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CondoService/internal/api/handlers"
	"github.com/m04kA/SMC-CondoService/internal/api/middleware"
	"github.com/m04kA/SMC-CondoService/internal/service/units"
	"github.com/m04kA/SMC-CondoService/internal/service/units/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUser        = "отсутствует пользователь сессии"
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

// Handle POST /api/v1/units
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /units - Missing session user")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req models.CreateUnitRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /units - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req, userID)
	if err != nil {
		if errors.Is(err, units.ErrInvalidInput) {
			h.logger.Warn("POST /units - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
		h.logger.Error("POST /units - Failed to create unit: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /units - Unit created: unit_id=%d, user_id=%d", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
