package units

import "errors"

var (
	// ErrUnitNotFound возвращается, когда квартира не найдена
	ErrUnitNotFound = errors.New("unit not found")

	// ErrUnitInUse возвращается при попытке удалить квартиру со связанными записями
	ErrUnitInUse = errors.New("unit has linked records")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
