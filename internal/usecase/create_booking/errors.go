package create_booking

import "errors"

var (
	// ErrUnitNotFound возвращается, когда квартира не найдена
	ErrUnitNotFound = errors.New("create_booking: unit not found")

	// ErrRoomNotFound возвращается, когда указан несуществующий зал
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrInvalidDate возвращается при дате в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrPeriodNotAvailable возвращается, когда период уже занят
	ErrPeriodNotAvailable = errors.New("create_booking: period is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
