package unit

import "errors"

var (
	// ErrUnitNotFound возвращается, когда квартира не найдена
	ErrUnitNotFound = errors.New("unit.repository: unit not found")

	// ErrUnitInUse возвращается при попытке удалить квартиру, на которую
	// ссылаются автомобили, посылки или бронирования
	ErrUnitInUse = errors.New("unit.repository: unit is referenced by other records")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("unit.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("unit.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("unit.repository: failed to scan row")
)
