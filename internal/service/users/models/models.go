package models

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CondoService/internal/domain"
)

const minPasswordLength = 8

// Request модели

// LoginRequest запрос на вход в систему
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate проверяет обязательные поля запроса
func (r *LoginRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return fmt.Errorf("field %q is required", "email")
	}
	if r.Password == "" {
		return fmt.Errorf("field %q is required", "password")
	}
	return nil
}

// CreateUserRequest запрос на создание учетной записи
type CreateUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role"` // admin | operator
}

// Validate проверяет обязательные поля запроса
func (r *CreateUserRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" || !strings.Contains(r.Email, "@") {
		return fmt.Errorf("invalid email")
	}
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("field %q is required", "name")
	}
	if len(r.Password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}
	if r.Role != "" && !domain.UserRole(r.Role).IsValid() {
		return fmt.Errorf("invalid role %q", r.Role)
	}
	return nil
}

// UpdateRoleRequest запрос на смену роли пользователя
type UpdateRoleRequest struct {
	Role string `json:"role"`
}

// Validate проверяет обязательные поля запроса
func (r *UpdateRoleRequest) Validate() error {
	if !domain.UserRole(r.Role).IsValid() {
		return fmt.Errorf("invalid role %q", r.Role)
	}
	return nil
}

// ChangePasswordRequest запрос на смену собственного пароля
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// Validate проверяет обязательные поля запроса
func (r *ChangePasswordRequest) Validate() error {
	if r.CurrentPassword == "" {
		return fmt.Errorf("field %q is required", "currentPassword")
	}
	if len(r.NewPassword) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}
	return nil
}

// Response модели

// UserResponse ответ с данными пользователя. Хеш пароля наружу не отдается.
type UserResponse struct {
	ID                 int64  `json:"id"`
	Email              string `json:"email"`
	Name               string `json:"name"`
	Role               string `json:"role"`
	MustChangePassword bool   `json:"mustChangePassword"`
	CreatedAt          string `json:"createdAt"`
}

// UserListResponse ответ со списком пользователей
type UserListResponse struct {
	Users []*UserResponse `json:"users"`
	Total int             `json:"total"`
}

// LoginResponse ответ на успешный вход
type LoginResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// FromDomainUser конвертирует domain модель в response
func FromDomainUser(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:                 u.ID,
		Email:              u.Email,
		Name:               u.Name,
		Role:               string(u.Role),
		MustChangePassword: u.MustChangePassword,
		CreatedAt:          u.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// FromDomainUserList конвертирует список domain моделей в response
func FromDomainUserList(users []*domain.User) *UserListResponse {
	result := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		result = append(result, FromDomainUser(u))
	}
	return &UserListResponse{Users: result, Total: len(result)}
}
