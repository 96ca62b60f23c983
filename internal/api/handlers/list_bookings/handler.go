package list_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-CondoService/internal/api/handlers"
	"github.com/m04kA/SMC-CondoService/internal/service/bookings"
	"github.com/m04kA/SMC-CondoService/internal/service/bookings/models"
)

const (
	msgInvalidQuery = "некорректные параметры запроса"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings?roomId=&dateFrom=&dateTo=&unitId=&upcoming=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseQuery(r)
	if err != nil {
		h.logger.Warn("GET /bookings - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidInput) {
			h.logger.Warn("GET /bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
		h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings - Listed %d bookings", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}

func parseQuery(r *http.Request) (*models.ListBookingsRequest, error) {
	query := r.URL.Query()
	req := &models.ListBookingsRequest{}

	if v := query.Get("roomId"); v != "" {
		roomID, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		req.RoomID = &roomID
	}
	if v := query.Get("unitId"); v != "" {
		unitID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, err
		}
		req.UnitID = &unitID
	}
	if v := query.Get("dateFrom"); v != "" {
		req.DateFrom = &v
	}
	if v := query.Get("dateTo"); v != "" {
		req.DateTo = &v
	}
	if v := query.Get("upcoming"); v != "" {
		upcoming, err := strconv.ParseBool(v)
		if err != nil {
			return nil, err
		}
		req.UpcomingOnly = upcoming
	}

	return req, nil
}
