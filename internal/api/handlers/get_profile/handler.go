package get_profile

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CondoService/internal/api/handlers"
	"github.com/m04kA/SMC-CondoService/internal/api/middleware"
	"github.com/m04kA/SMC-CondoService/internal/service/users"
)

const (
	msgMissingUser = "отсутствует пользователь сессии"
	msgNotFound    = "пользователь не найден"
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

// Handle GET /api/v1/users/me
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /users/me - Missing session user")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	result, err := h.service.GetByID(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrUserNotFound):
			h.logger.Warn("GET /users/me - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /users/me - Failed to load profile: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
