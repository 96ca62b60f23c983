package upload_photo

import (
	"context"
	"io"
)

type FileStore interface {
	Upload(ctx context.Context, body io.Reader, contentType string) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
