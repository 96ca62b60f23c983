package create_vehicle

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CondoService/internal/api/handlers"
	"github.com/m04kA/SMC-CondoService/internal/api/middleware"
	"github.com/m04kA/SMC-CondoService/internal/service/vehicles"
	"github.com/m04kA/SMC-CondoService/internal/service/vehicles/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUser        = "отсутствует пользователь сессии"
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

// Handle POST /api/v1/vehicles
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /vehicles - Missing session user")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req models.CreateVehicleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /vehicles - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req, userID)
	if err != nil {
		switch {
		case errors.Is(err, vehicles.ErrUnitNotFound):
			h.logger.Warn("POST /vehicles - Unit not found: unit_id=%d", req.UnitID)
			handlers.RespondNotFound(w, msgUnitNotFound)

		case errors.Is(err, vehicles.ErrInvalidInput):
			h.logger.Warn("POST /vehicles - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /vehicles - Failed to create vehicle: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /vehicles - Vehicle created: vehicle_id=%d, user_id=%d", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
