package users

import (
	"context"

	"github.com/m04kA/SMC-CondoService/internal/domain"
)

// UserRepository интерфейс репозитория учетных записей
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	UpdateRole(ctx context.Context, id int64, role domain.UserRole) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	Count(ctx context.Context) (int64, error)
}

// TokenIssuer интерфейс выпуска токенов сессии
type TokenIssuer interface {
	Issue(userID int64, role, email string) (string, error)
}

// AuditRecorder интерфейс журнала активности
type AuditRecorder interface {
	Record(ctx context.Context, userID int64, action domain.AuditAction, collection, targetID, description string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
