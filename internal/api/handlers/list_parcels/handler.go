package list_parcels

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-CondoService/internal/api/handlers"
	"github.com/m04kA/SMC-CondoService/internal/service/parcels"
)

const (
	msgInvalidStatus = "некорректный статус посылки"
	msgInvalidLimit  = "некорректный параметр limit"
)

type Handler struct {
	service ParcelService
	logger  Logger
}

func NewHandler(service ParcelService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/parcels?status=&limit=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var status *string
	if raw := query.Get("status"); raw != "" {
		status = &raw
	}

	var limit uint64
	if raw := query.Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /parcels - Invalid limit: %v", err)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		limit = parsed
	}

	result, err := h.service.List(r.Context(), status, limit)
	if err != nil {
		switch {
		case errors.Is(err, parcels.ErrInvalidInput):
			h.logger.Warn("GET /parcels - Invalid status filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /parcels - Failed to list parcels: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /parcels - Parcels listed: total=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
