package checkout_guest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CondoService/internal/api/handlers"
	"github.com/m04kA/SMC-CondoService/internal/api/middleware"
	"github.com/m04kA/SMC-CondoService/internal/service/access"
)

const (
	msgInvalidEntryID    = "некорректный ID записи журнала"
	msgMissingUser       = "отсутствует пользователь сессии"
	msgNotFound          = "запись журнала не найдена"
	msgAlreadyCheckedOut = "выезд уже зарегистрирован"
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

// Handle POST /api/v1/access/guests/{entryId}/checkout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	entryID, err := strconv.ParseInt(vars["entryId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /access/guests/{id}/checkout - Invalid entry ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEntryID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /access/guests/{id}/checkout - Missing session user")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	result, err := h.service.RegisterGuestExit(r.Context(), entryID, userID)
	if err != nil {
		switch {
		case errors.Is(err, access.ErrEntryNotFound):
			h.logger.Warn("POST /access/guests/{id}/checkout - Entry not found: entry_id=%d", entryID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, access.ErrAlreadyCheckedOut):
			h.logger.Warn("POST /access/guests/{id}/checkout - Already checked out: entry_id=%d", entryID)
			handlers.RespondConflict(w, msgAlreadyCheckedOut)

		default:
			h.logger.Error("POST /access/guests/{id}/checkout - Failed to register exit: entry_id=%d, error=%v", entryID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /access/guests/{id}/checkout - Exit registered: entry_id=%d, user_id=%d", entryID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
