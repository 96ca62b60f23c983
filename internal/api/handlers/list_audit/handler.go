package list_audit

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CondoService/internal/api/handlers"
	"github.com/m04kA/SMC-CondoService/internal/api/middleware"
	"github.com/m04kA/SMC-CondoService/internal/service/auditlog"
)

const (
	msgInvalidQuery = "некорректные параметры запроса"
	msgMissingUser  = "отсутствует пользователь сессии"
	msgAccessDenied = "операция доступна только администратору"
)

type Handler struct {
	service AuditService
	logger  Logger
}

func NewHandler(service AuditService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/audit?userId=&action=&dateFrom=&dateTo=&limit=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetUser(r.Context())
	if !ok {
		h.logger.Warn("GET /audit - Missing session user")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	req, err := parseQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /audit - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.List(r.Context(), req, actor)
	if err != nil {
		switch {
		case errors.Is(err, auditlog.ErrAccessDenied):
			h.logger.Warn("GET /audit - Access denied: user_id=%d", actor.ID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, auditlog.ErrInvalidInput):
			h.logger.Warn("GET /audit - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /audit - Failed to list audit entries: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /audit - Audit entries listed: total=%d, user_id=%d", result.Total, actor.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
