package get_photo

import (
	"context"
	"io"
)

type FileStore interface {
	Download(ctx context.Context, key string) (io.ReadCloser, string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
