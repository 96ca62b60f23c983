package condo

import "errors"

var (
	// ErrNotConfigured - настройки кондоминиума еще не заданы
	ErrNotConfigured = errors.New("condo.repository: condominium not configured")

	// ErrBuildQuery - ошибка построения SQL запроса
	ErrBuildQuery = errors.New("condo.repository: failed to build query")

	// ErrExecQuery - ошибка выполнения SQL запроса
	ErrExecQuery = errors.New("condo.repository: failed to execute query")

	// ErrScanRow - ошибка чтения данных из БД
	ErrScanRow = errors.New("condo.repository: failed to scan row")
)
