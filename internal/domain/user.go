package domain

import "time"

// UserRole роль пользователя системы
type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleOperator UserRole = "operator"
)

// IsValid returns true if the role is one of the known values
func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleOperator
}

// User represents a staff account (front desk operator or administrator)
type User struct {
	ID                 int64
	Email              string
	Name               string
	PasswordHash       string
	Role               UserRole
	MustChangePassword bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// IsAdmin returns true if the user holds elevated privilege
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
