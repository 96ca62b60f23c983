package register_guest

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CondoService/internal/api/handlers"
	"github.com/m04kA/SMC-CondoService/internal/api/middleware"
	"github.com/m04kA/SMC-CondoService/internal/service/access"
	"github.com/m04kA/SMC-CondoService/internal/service/access/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUser        = "отсутствует пользователь сессии"
	msgUnitNotFound       = "квартира не найдена"
)

type Handler struct {
	service AccessService
	logger  Logger
}

func NewHandler(service AccessService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/access/guests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /access/guests - Missing session user")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req models.RegisterGuestRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /access/guests - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.RegisterGuestEntry(r.Context(), &req, userID)
	if err != nil {
		switch {
		case errors.Is(err, access.ErrUnitNotFound):
			h.logger.Warn("POST /access/guests - Unit not found: unit_id=%d", req.UnitID)
			handlers.RespondNotFound(w, msgUnitNotFound)

		case errors.Is(err, access.ErrInvalidInput):
			h.logger.Warn("POST /access/guests - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /access/guests - Failed to register guest entry: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /access/guests - Guest entry registered: entry_id=%d, user_id=%d", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
