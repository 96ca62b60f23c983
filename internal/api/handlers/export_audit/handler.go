package export_audit

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/m04kA/SMC-CondoService/internal/api/handlers"
	"github.com/m04kA/SMC-CondoService/internal/api/middleware"
	"github.com/m04kA/SMC-CondoService/internal/service/auditlog"
)

const (
	msgInvalidQuery = "некорректные параметры запроса"
	msgMissingUser  = "отсутствует пользователь сессии"
	msgAccessDenied = "операция доступна только администратору"
)

const contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

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

// Handle GET /api/v1/audit/export?userId=&action=&dateFrom=&dateTo=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetUser(r.Context())
	if !ok {
		h.logger.Warn("GET /audit/export - Missing session user")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	req, err := parseQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /audit/export - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	// Заголовки выставляются до записи тела: после первого байта файла
	// менять статус ответа уже нельзя.
	filename := fmt.Sprintf("audit-%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", contentTypeXLSX)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := h.service.ExportXLSX(r.Context(), req, actor, w); err != nil {
		switch {
		case errors.Is(err, auditlog.ErrAccessDenied):
			h.logger.Warn("GET /audit/export - Access denied: user_id=%d", actor.ID)
			w.Header().Del("Content-Disposition")
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, auditlog.ErrInvalidInput):
			h.logger.Warn("GET /audit/export - Invalid input: %v", err)
			w.Header().Del("Content-Disposition")
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /audit/export - Failed to export audit log: %v", err)
			w.Header().Del("Content-Disposition")
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /audit/export - Audit log exported: user_id=%d", actor.ID)
}
