package create_booking

import (
	"time"

	"github.com/m04kA/SMC-CondoService/internal/domain"
	"github.com/m04kA/SMC-CondoService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Date      types.DateString     // Дата бронирования ("2026-09-15")
	RoomID    int                  // Номер зала (1..N, 0 трактуется как 1)
	Period    domain.BookingPeriod // full_day | morning | afternoon
	UnitID    int64                // Квартира, за которой закрепляется бронь
	CreatedBy int64                // Пользователь, оформивший бронь
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64
	BookingDate types.DateString
	RoomID      int
	RoomLabel   string
	Period      domain.BookingPeriod

	// Денормализованные данные квартиры
	UnitID       int64
	UnitNumber   string
	UnitBlock    *string
	ResidentName string

	CreatedBy int64
	CreatedAt time.Time
}
