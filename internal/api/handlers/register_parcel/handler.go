package register_parcel

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CondoService/internal/api/handlers"
	"github.com/m04kA/SMC-CondoService/internal/api/middleware"
	"github.com/m04kA/SMC-CondoService/internal/service/parcels"
	"github.com/m04kA/SMC-CondoService/internal/service/parcels/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUser        = "отсутствует пользователь сессии"
	msgUnitNotFound       = "квартира не найдена"
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

// Handle POST /api/v1/parcels
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /parcels - Missing session user")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req models.RegisterParcelRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /parcels - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Register(r.Context(), &req, userID)
	if err != nil {
		switch {
		case errors.Is(err, parcels.ErrUnitNotFound):
			h.logger.Warn("POST /parcels - Unit not found: unit_id=%d", req.UnitID)
			handlers.RespondNotFound(w, msgUnitNotFound)

		case errors.Is(err, parcels.ErrInvalidInput):
			h.logger.Warn("POST /parcels - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /parcels - Failed to register parcel: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /parcels - Parcel registered: parcel_id=%d, protocol=%s, user_id=%d", result.ID, result.ProtocolNumber, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
