package parcels

import "errors"

var (
	// ErrParcelNotFound возвращается, когда посылка не найдена
	ErrParcelNotFound = errors.New("parcel not found")

	// ErrAlreadyCollected возвращается при повторной выдаче посылки
	ErrAlreadyCollected = errors.New("parcel already collected")

	// ErrUnitNotFound возвращается, когда указанная квартира не существует
	ErrUnitNotFound = errors.New("unit not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
