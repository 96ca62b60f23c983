package access

import "errors"

var (
	// ErrEntryNotFound возвращается, когда запись журнала не найдена
	ErrEntryNotFound = errors.New("access log entry not found")

	// ErrAlreadyCheckedOut возвращается при повторной отметке выезда
	ErrAlreadyCheckedOut = errors.New("already checked out")

	// ErrUnitNotFound возвращается, когда указанная квартира не существует
	ErrUnitNotFound = errors.New("unit not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
