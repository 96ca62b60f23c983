package create_user

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
	msgAccessDenied       = "операция доступна только администратору"
	msgEmailTaken         = "пользователь с таким email уже существует"
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

// Handle POST /api/v1/users
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetUser(r.Context())
	if !ok {
		h.logger.Warn("POST /users - Missing session user")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req models.CreateUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req, actor)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrAccessDenied):
			h.logger.Warn("POST /users - Access denied: user_id=%d", actor.ID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, users.ErrEmailTaken):
			h.logger.Warn("POST /users - Email already taken")
			handlers.RespondConflict(w, msgEmailTaken)

		case errors.Is(err, users.ErrInvalidInput):
			h.logger.Warn("POST /users - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /users - Failed to create user: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /users - User created: user_id=%d, admin_id=%d", result.ID, actor.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
