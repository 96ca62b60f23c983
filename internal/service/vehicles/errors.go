package vehicles

import "errors"

var (
	// ErrVehicleNotFound возвращается, когда ТС не найдено
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrUnitNotFound возвращается, когда указанная квартира не существует
	ErrUnitNotFound = errors.New("unit not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
