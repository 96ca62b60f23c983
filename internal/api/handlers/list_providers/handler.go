package list_providers

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-CondoService/internal/api/handlers"
)

const (
	msgInvalidActive = "некорректный параметр active"
	msgInvalidLimit  = "некорректный параметр limit"
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

// Handle GET /api/v1/access/providers?active=&limit=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var onlyActive bool
	if raw := query.Get("active"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /access/providers - Invalid active: %v", err)
			handlers.RespondBadRequest(w, msgInvalidActive)
			return
		}
		onlyActive = parsed
	}

	var limit uint64
	if raw := query.Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /access/providers - Invalid limit: %v", err)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		limit = parsed
	}

	result, err := h.service.ListProviders(r.Context(), onlyActive, limit)
	if err != nil {
		h.logger.Error("GET /access/providers - Failed to list providers: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /access/providers - Providers listed: total=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
