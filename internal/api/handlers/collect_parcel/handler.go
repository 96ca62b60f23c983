package collect_parcel

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CondoService/internal/api/handlers"
	"github.com/m04kA/SMC-CondoService/internal/api/middleware"
	"github.com/m04kA/SMC-CondoService/internal/service/parcels"
)

const (
	msgInvalidParcelID  = "некорректный ID посылки"
	msgMissingUser      = "отсутствует пользователь сессии"
	msgNotFound         = "посылка не найдена"
	msgAlreadyCollected = "посылка уже выдана"
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

// Handle POST /api/v1/parcels/{parcelId}/collect
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	parcelID, err := strconv.ParseInt(vars["parcelId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /parcels/{id}/collect - Invalid parcel ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParcelID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /parcels/{id}/collect - Missing session user")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	result, err := h.service.Collect(r.Context(), parcelID, userID)
	if err != nil {
		switch {
		case errors.Is(err, parcels.ErrParcelNotFound):
			h.logger.Warn("POST /parcels/{id}/collect - Parcel not found: parcel_id=%d", parcelID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, parcels.ErrAlreadyCollected):
			h.logger.Warn("POST /parcels/{id}/collect - Parcel already collected: parcel_id=%d", parcelID)
			handlers.RespondConflict(w, msgAlreadyCollected)

		default:
			h.logger.Error("POST /parcels/{id}/collect - Failed to collect parcel: parcel_id=%d, error=%v", parcelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /parcels/{id}/collect - Parcel collected: parcel_id=%d, user_id=%d", parcelID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
