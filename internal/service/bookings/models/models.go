package models

import (
	"github.com/m04kA/SMC-CondoService/internal/domain"
	"github.com/m04kA/SMC-CondoService/pkg/types"
)

// Request модели

// ListBookingsRequest запрос на получение списка бронирований
type ListBookingsRequest struct {
	RoomID       *int    `json:"roomId,omitempty"`   // Фильтр по залу (опционально)
	DateFrom     *string `json:"dateFrom,omitempty"` // Начало периода, YYYY-MM-DD (опционально)
	DateTo       *string `json:"dateTo,omitempty"`   // Конец периода, YYYY-MM-DD (опционально)
	UnitID       *int64  `json:"unitId,omitempty"`   // Фильтр по квартире (опционально)
	UpcomingOnly bool    `json:"upcomingOnly,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		RoomID: r.RoomID,
		UnitID: r.UnitID,
	}

	if r.DateFrom != nil {
		date, err := types.NewDateStringFromString(*r.DateFrom)
		if err != nil {
			return filter, err
		}
		filter.DateFrom = &date
	}
	if r.DateTo != nil {
		date, err := types.NewDateStringFromString(*r.DateTo)
		if err != nil {
			return filter, err
		}
		filter.DateTo = &date
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID           int64   `json:"id"`
	BookingDate  string  `json:"bookingDate"` // "2026-09-15"
	RoomID       int     `json:"roomId"`
	RoomLabel    string  `json:"roomLabel"` // "Салон A"
	Period       string  `json:"period"`
	PeriodLabel  string  `json:"periodLabel"` // "весь день"
	UnitID       int64   `json:"unitId"`
	UnitNumber   string  `json:"unitNumber"`
	UnitBlock    *string `json:"unitBlock,omitempty"`
	ResidentName string  `json:"residentName"`
	CreatedBy    int64   `json:"createdBy"`
	CreatedAt    string  `json:"createdAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// FromDomainBooking конвертирует domain модель в response.
// condo может быть nil - тогда используется имя зала по умолчанию.
func FromDomainBooking(b *domain.Booking, condo *domain.Condominium) *BookingResponse {
	return &BookingResponse{
		ID:           b.ID,
		BookingDate:  b.BookingDate.String(),
		RoomID:       b.RoomID,
		RoomLabel:    condo.RoomLabel(b.RoomID),
		Period:       string(b.Period),
		PeriodLabel:  b.Period.Label(),
		UnitID:       b.UnitID,
		UnitNumber:   b.UnitNumber,
		UnitBlock:    b.UnitBlock,
		ResidentName: b.ResidentName,
		CreatedBy:    b.CreatedBy,
		CreatedAt:    b.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// FromDomainBookingList конвертирует список domain моделей в response
func FromDomainBookingList(bookings []*domain.Booking, condo *domain.Condominium) *BookingListResponse {
	result := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, FromDomainBooking(b, condo))
	}
	return &BookingListResponse{Bookings: result, Total: len(result)}
}
