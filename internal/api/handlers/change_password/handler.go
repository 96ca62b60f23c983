package change_password

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CondoService/internal/api/handlers"
	"github.com/m04kA/SMC-CondoService/internal/api/middleware"
	"github.com/m04kA/SMC-CondoService/internal/service/users"
	"github.com/m04kA/SMC-CondoService/internal/service/users/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUser        = "отсутствует пользователь сессии"
	msgWrongPassword      = "неверный текущий пароль"
)

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/users/password
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetUser(r.Context())
	if !ok {
		h.logger.Warn("POST /users/password - Missing session user")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req models.ChangePasswordRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users/password - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.ChangePassword(r.Context(), &req, actor); err != nil {
		switch {
		case errors.Is(err, users.ErrInvalidCredentials):
			h.logger.Warn("POST /users/password - Wrong current password: user_id=%d", actor.ID)
			handlers.RespondForbidden(w, msgWrongPassword)

		case errors.Is(err, users.ErrInvalidInput):
			h.logger.Warn("POST /users/password - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /users/password - Failed to change password: user_id=%d, error=%v", actor.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /users/password - Password changed: user_id=%d", actor.ID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
