package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CondoService/internal/api/handlers"
	"github.com/m04kA/SMC-CondoService/internal/api/middleware"
	"github.com/m04kA/SMC-CondoService/internal/service/bookings"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgMissingUser      = "отсутствует пользователь сессии"
	msgForbidden        = "отмена брони доступна только администратору"
	msgBookingNotFound  = "бронирование не найдено"
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

// Handle DELETE /api/v1/bookings/{bookingId}
//
// Операция идемпотентна: повторное удаление уже отмененной брони успешно.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	actor, ok := middleware.GetUser(r.Context())
	if !ok {
		h.logger.Warn("DELETE /bookings/{id} - Missing session user")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	if err := h.service.Cancel(r.Context(), bookingID, actor); err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("DELETE /bookings/{id} - Access denied: booking_id=%d, user_id=%d", bookingID, actor.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("DELETE /bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("DELETE /bookings/{id} - Failed to cancel booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings/{id} - Booking cancelled: booking_id=%d, user_id=%d", bookingID, actor.ID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
