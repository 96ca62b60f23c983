package user

import "errors"

var (
	// ErrUserNotFound - пользователь не найден
	ErrUserNotFound = errors.New("user.repository: user not found")

	// ErrEmailTaken - пользователь с таким email уже существует
	ErrEmailTaken = errors.New("user.repository: email already taken")

	// ErrBuildQuery - ошибка построения SQL запроса
	ErrBuildQuery = errors.New("user.repository: failed to build query")

	// ErrExecQuery - ошибка выполнения SQL запроса
	ErrExecQuery = errors.New("user.repository: failed to execute query")

	// ErrScanRow - ошибка чтения данных из БД
	ErrScanRow = errors.New("user.repository: failed to scan row")
)
