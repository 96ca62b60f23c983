package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CondoService/internal/domain"
	"github.com/m04kA/SMC-CondoService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UnitID <= 0 {
		return fmt.Errorf("%w: unitID must be positive", ErrInvalidInput)
	}

	if req.CreatedBy <= 0 {
		return fmt.Errorf("%w: createdBy must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.Date.Validate(); err != nil {
		return fmt.Errorf("%w: invalid date format: %v", ErrInvalidInput, err)
	}

	if !req.Period.IsValid() {
		return fmt.Errorf("%w: invalid period %q", ErrInvalidInput, req.Period)
	}

	if req.RoomID < 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что дата не в прошлом.
// Бронирование на сегодня разрешено.
func validateDate(date types.DateString, now time.Time) error {
	if date.IsPast(now) {
		return ErrInvalidDate
	}
	return nil
}

// validateRoom проверяет, что номер зала входит в настроенный диапазон
func validateRoom(condo *domain.Condominium, roomID int) error {
	if !condo.ValidRoomID(roomID) {
		return ErrRoomNotFound
	}
	return nil
}
