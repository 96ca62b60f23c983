package update_user_role

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CondoService/internal/api/handlers"
	"github.com/m04kA/SMC-CondoService/internal/api/middleware"
	"github.com/m04kA/SMC-CondoService/internal/service/users"
	"github.com/m04kA/SMC-CondoService/internal/service/users/models"
)

const (
	msgInvalidUserID      = "некорректный ID пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUser        = "отсутствует пользователь сессии"
	msgAccessDenied       = "операция доступна только администратору"
	msgNotFound           = "пользователь не найден"
	msgSelfDemotion       = "нельзя снять роль администратора с самого себя"
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

// Handle PUT /api/v1/users/{userId}/role
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID, err := strconv.ParseInt(vars["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /users/{id}/role - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	actor, ok := middleware.GetUser(r.Context())
	if !ok {
		h.logger.Warn("PUT /users/{id}/role - Missing session user")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req models.UpdateRoleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /users/{id}/role - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.UpdateRole(r.Context(), userID, &req, actor); err != nil {
		switch {
		case errors.Is(err, users.ErrAccessDenied):
			h.logger.Warn("PUT /users/{id}/role - Access denied: user_id=%d", actor.ID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, users.ErrUserNotFound):
			h.logger.Warn("PUT /users/{id}/role - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, users.ErrSelfDemotion):
			h.logger.Warn("PUT /users/{id}/role - Self-demotion attempt: user_id=%d", actor.ID)
			handlers.RespondConflict(w, msgSelfDemotion)

		case errors.Is(err, users.ErrInvalidInput):
			h.logger.Warn("PUT /users/{id}/role - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /users/{id}/role - Failed to update role: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /users/{id}/role - Role updated: user_id=%d, admin_id=%d", userID, actor.ID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
