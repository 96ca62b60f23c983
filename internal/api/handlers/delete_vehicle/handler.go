package delete_vehicle

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CondoService/internal/api/handlers"
	"github.com/m04kA/SMC-CondoService/internal/api/middleware"
	"github.com/m04kA/SMC-CondoService/internal/service/vehicles"
)

const (
	msgInvalidVehicleID = "некорректный ID транспортного средства"
	msgMissingUser      = "отсутствует пользователь сессии"
	msgNotFound         = "транспортное средство не найдено"
)

type Handler struct {
	service VehicleService
	logger  Logger
}

func NewHandler(service VehicleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/vehicles/{vehicleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vehicleID, err := strconv.ParseInt(vars["vehicleId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /vehicles/{id} - Invalid vehicle ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /vehicles/{id} - Missing session user")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	if err := h.service.Delete(r.Context(), vehicleID, userID); err != nil {
		switch {
		case errors.Is(err, vehicles.ErrVehicleNotFound):
			h.logger.Warn("DELETE /vehicles/{id} - Vehicle not found: vehicle_id=%d", vehicleID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /vehicles/{id} - Failed to delete vehicle: vehicle_id=%d, error=%v", vehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /vehicles/{id} - Vehicle deleted: vehicle_id=%d, user_id=%d", vehicleID, userID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
