package create_booking

import (
	"time"

	"github.com/m04kA/SMC-CondoService/internal/domain"
	createBooking "github.com/m04kA/SMC-CondoService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-CondoService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	BookingDate string `json:"bookingDate"` // "2026-09-15"
	RoomID      int    `json:"roomId,omitempty"`
	Period      string `json:"period"` // full_day | morning | afternoon
	UnitID      int64  `json:"unitId"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int64   `json:"id"`
	BookingDate  string  `json:"bookingDate"`
	RoomID       int     `json:"roomId"`
	RoomLabel    string  `json:"roomLabel"`
	Period       string  `json:"period"`
	PeriodLabel  string  `json:"periodLabel"`
	UnitID       int64   `json:"unitId"`
	UnitNumber   string  `json:"unitNumber"`
	UnitBlock    *string `json:"unitBlock,omitempty"`
	ResidentName string  `json:"residentName"`
	CreatedBy    int64   `json:"createdBy"`
	CreatedAt    string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(createdBy int64) (*createBooking.Request, error) {
	date, err := types.NewDateStringFromString(r.BookingDate)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Date:      date,
		RoomID:    r.RoomID,
		Period:    domain.BookingPeriod(r.Period),
		UnitID:    r.UnitID,
		CreatedBy: createdBy,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:           resp.ID,
		BookingDate:  resp.BookingDate.String(),
		RoomID:       resp.RoomID,
		RoomLabel:    resp.RoomLabel,
		Period:       string(resp.Period),
		PeriodLabel:  resp.Period.Label(),
		UnitID:       resp.UnitID,
		UnitNumber:   resp.UnitNumber,
		UnitBlock:    resp.UnitBlock,
		ResidentName: resp.ResidentName,
		CreatedBy:    resp.CreatedBy,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
	}
}
