package update_vehicle

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CondoService/internal/api/handlers"
	"github.com/m04kA/SMC-CondoService/internal/api/middleware"
	"github.com/m04kA/SMC-CondoService/internal/service/vehicles"
	"github.com/m04kA/SMC-CondoService/internal/service/vehicles/models"
)

const (
	msgInvalidVehicleID   = "некорректный ID транспортного средства"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUser        = "отсутствует пользователь сессии"
	msgNotFound           = "транспортное средство не найдено"
	msgUnitNotFound       = "квартира не найдена"
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

// Handle PUT /api/v1/vehicles/{vehicleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vehicleID, err := strconv.ParseInt(vars["vehicleId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /vehicles/{id} - Invalid vehicle ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /vehicles/{id} - Missing session user")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req models.UpdateVehicleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /vehicles/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), vehicleID, &req, userID)
	if err != nil {
		switch {
		case errors.Is(err, vehicles.ErrVehicleNotFound):
			h.logger.Warn("PUT /vehicles/{id} - Vehicle not found: vehicle_id=%d", vehicleID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, vehicles.ErrUnitNotFound):
			h.logger.Warn("PUT /vehicles/{id} - Unit not found: unit_id=%d", req.UnitID)
			handlers.RespondNotFound(w, msgUnitNotFound)

		case errors.Is(err, vehicles.ErrInvalidInput):
			h.logger.Warn("PUT /vehicles/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /vehicles/{id} - Failed to update vehicle: vehicle_id=%d, error=%v", vehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /vehicles/{id} - Vehicle updated: vehicle_id=%d, user_id=%d", vehicleID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
