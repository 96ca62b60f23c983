package get_photo

import (
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CondoService/internal/api/handlers"
	"github.com/m04kA/SMC-CondoService/internal/infra/filestore"
)

const (
	msgMissingKey      = "отсутствует ключ файла"
	msgStorageDisabled = "файловое хранилище не настроено"
	msgNotFound        = "файл не найден"
)

type Handler struct {
	store  FileStore
	logger Logger
}

func NewHandler(store FileStore, logger Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}

// Handle GET /api/v1/photos/{photoKey}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	key := vars["photoKey"]
	if key == "" {
		handlers.RespondBadRequest(w, msgMissingKey)
		return
	}

	body, contentType, err := h.store.Download(r.Context(), key)
	if err != nil {
		switch {
		case errors.Is(err, filestore.ErrDisabled):
			h.logger.Warn("GET /photos/{key} - Storage disabled")
			handlers.RespondError(w, http.StatusServiceUnavailable, msgStorageDisabled)

		default:
			// Провайдер не различает "нет объекта" и прочие сбои без разбора
			// своих типов ошибок, для клиента это 404.
			h.logger.Warn("GET /photos/{key} - Failed to download: key=%s, error=%v", key, err)
			handlers.RespondNotFound(w, msgNotFound)
		}
		return
	}
	defer body.Close()

	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	if _, err := io.Copy(w, body); err != nil {
		h.logger.Error("GET /photos/{key} - Failed to stream file: key=%s, error=%v", key, err)
	}
}
