package auditlog

import "errors"

var (
	// ErrBuildQuery - ошибка построения SQL запроса
	ErrBuildQuery = errors.New("auditlog.repository: failed to build query")

	// ErrExecQuery - ошибка выполнения SQL запроса
	ErrExecQuery = errors.New("auditlog.repository: failed to execute query")

	// ErrScanRow - ошибка чтения данных из БД
	ErrScanRow = errors.New("auditlog.repository: failed to scan row")
)
