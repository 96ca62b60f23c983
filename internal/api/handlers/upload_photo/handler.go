package upload_photo

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CondoService/internal/api/handlers"
	"github.com/m04kA/SMC-CondoService/internal/api/middleware"
	"github.com/m04kA/SMC-CondoService/internal/infra/filestore"
)

const (
	msgMissingUser     = "отсутствует пользователь сессии"
	msgStorageDisabled = "файловое хранилище не настроено"
	msgEmptyBody       = "пустое тело запроса"

	defaultContentType = "application/octet-stream"
	maxPhotoSizeBytes  = 10 << 20
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

// UploadResponse ответ с ключом загруженного файла
type UploadResponse struct {
	Key string `json:"key"`
}

// Handle POST /api/v1/photos
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /photos - Missing session user")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	if r.Body == nil || r.ContentLength == 0 {
		h.logger.Warn("POST /photos - Empty body: user_id=%d", userID)
		handlers.RespondBadRequest(w, msgEmptyBody)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		contentType = defaultContentType
	}

	body := http.MaxBytesReader(w, r.Body, maxPhotoSizeBytes)
	defer body.Close()

	key, err := h.store.Upload(r.Context(), body, contentType)
	if err != nil {
		switch {
		case errors.Is(err, filestore.ErrDisabled):
			h.logger.Warn("POST /photos - Storage disabled: user_id=%d", userID)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgStorageDisabled)

		default:
			h.logger.Error("POST /photos - Failed to upload photo: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /photos - Photo uploaded: key=%s, user_id=%d", key, userID)
	handlers.RespondJSON(w, http.StatusCreated, &UploadResponse{Key: key})
}
