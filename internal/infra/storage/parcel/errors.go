package parcel

import "errors"

var (
	// ErrParcelNotFound возвращается, когда посылка не найдена
	ErrParcelNotFound = errors.New("parcel.repository: parcel not found")

	// ErrAlreadyCollected возвращается при попытке повторно выдать посылку
	ErrAlreadyCollected = errors.New("parcel.repository: parcel already collected")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("parcel.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("parcel.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("parcel.repository: failed to scan row")
)
