package list_users

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CondoService/internal/api/handlers"
	"github.com/m04kA/SMC-CondoService/internal/api/middleware"
	"github.com/m04kA/SMC-CondoService/internal/service/users"
)

const (
	msgMissingUser  = "отсутствует пользователь сессии"
	msgAccessDenied = "операция доступна только администратору"
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

// Handle GET /api/v1/users
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetUser(r.Context())
	if !ok {
		h.logger.Warn("GET /users - Missing session user")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	result, err := h.service.List(r.Context(), actor)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrAccessDenied):
			h.logger.Warn("GET /users - Access denied: user_id=%d", actor.ID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /users - Failed to list users: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users - Users listed: total=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
