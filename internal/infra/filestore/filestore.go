package filestore

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// ErrDisabled - файловое хранилище выключено в конфигурации
var ErrDisabled = errors.New("filestore: storage is disabled")

// Store хранит фотографии (посетители, посылки) в S3-совместимом бакете.
// Objects are keyed by a generated UUID; the key is what gets persisted
// in the database, never a URL.
type Store struct {
	client  *s3.Client
	bucket  string
	enabled bool
}

// New создает клиент файлового хранилища. При enabled=false возвращает
// заглушку: Upload вернет ErrDisabled, сервис продолжит работать без фото.
func New(ctx context.Context, enabled bool, bucket, endpoint, region string) (*Store, error) {
	if !enabled {
		return &Store{enabled: false}, nil
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("filestore: load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			// Кастомный endpoint для MinIO и локальной разработки
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	return &Store{client: client, bucket: bucket, enabled: true}, nil
}

// Enabled reports whether uploads are configured
func (s *Store) Enabled() bool {
	return s.enabled
}

// Upload загружает файл и возвращает сгенерированный ключ объекта
func (s *Store) Upload(ctx context.Context, body io.Reader, contentType string) (string, error) {
	if !s.enabled {
		return "", ErrDisabled
	}

	key := uuid.NewString()

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("filestore: put object: %w", err)
	}

	return key, nil
}

// Download отдает содержимое объекта по ключу. Caller closes the reader.
func (s *Store) Download(ctx context.Context, key string) (io.ReadCloser, string, error) {
	if !s.enabled {
		return nil, "", ErrDisabled
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, "", fmt.Errorf("filestore: get object: %w", err)
	}

	contentType := ""
	if out.ContentType != nil {
		contentType = *out.ContentType
	}

	return out.Body, contentType, nil
}
