package get_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CondoService/internal/api/handlers"
	getAvailability "github.com/m04kA/SMC-CondoService/internal/usecase/get_availability"
	"github.com/m04kA/SMC-CondoService/pkg/types"
)

const (
	msgInvalidQuery = "некорректные параметры запроса: ожидается month=YYYY-MM или dateFrom/dateTo"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/availability?month=2026-09
// или    GET /api/v1/bookings/availability?dateFrom=2026-09-01&dateTo=2026-09-15
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &getAvailability.Request{
		Month:    query.Get("month"),
		DateFrom: types.DateString(query.Get("dateFrom")),
		DateTo:   types.DateString(query.Get("dateTo")),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		if errors.Is(err, getAvailability.ErrInvalidInput) {
			h.logger.Warn("GET /bookings/availability - Invalid query: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
		h.logger.Error("GET /bookings/availability - Failed to compute availability: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings/availability - Computed %d days (%s..%s)",
		len(result.Days), result.DateFrom, result.DateTo)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
