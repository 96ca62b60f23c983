package users

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверном email или пароле
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken возвращается, когда email уже занят
	ErrEmailTaken = errors.New("email already taken")

	// ErrAccessDenied возвращается, когда у пользователя нет прав на операцию
	ErrAccessDenied = errors.New("access denied")

	// ErrSelfDemotion возвращается при попытке администратора снять роль с самого себя
	ErrSelfDemotion = errors.New("admin cannot demote own account")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
