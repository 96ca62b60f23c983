package get_availability

import (
	getAvailability "github.com/m04kA/SMC-CondoService/internal/usecase/get_availability"
)

// RoomAvailabilityResponse доступность одного зала на дату
type RoomAvailabilityResponse struct {
	RoomID           int      `json:"roomId"`
	RoomLabel        string   `json:"roomLabel"`
	AvailablePeriods []string `json:"availablePeriods"`
}

// DayAvailabilityResponse доступность всех залов на дату
type DayAvailabilityResponse struct {
	Date      string                      `json:"date"`
	Occupancy string                      `json:"occupancy"` // free | partial | full
	Past      bool                        `json:"past"`
	Rooms     []*RoomAvailabilityResponse `json:"rooms"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	DateFrom  string                     `json:"dateFrom"`
	DateTo    string                     `json:"dateTo"`
	RoomCount int                        `json:"roomCount"`
	Days      []*DayAvailabilityResponse `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	days := make([]*DayAvailabilityResponse, 0, len(resp.Days))
	for _, day := range resp.Days {
		rooms := make([]*RoomAvailabilityResponse, 0, len(day.Rooms))
		for _, room := range day.Rooms {
			periods := make([]string, 0, len(room.AvailablePeriods))
			for _, p := range room.AvailablePeriods {
				periods = append(periods, string(p))
			}
			rooms = append(rooms, &RoomAvailabilityResponse{
				RoomID:           room.RoomID,
				RoomLabel:        room.RoomLabel,
				AvailablePeriods: periods,
			})
		}
		days = append(days, &DayAvailabilityResponse{
			Date:      day.Date.String(),
			Occupancy: string(day.Occupancy),
			Past:      day.Past,
			Rooms:     rooms,
		})
	}

	return &AvailabilityResponse{
		DateFrom:  resp.DateFrom.String(),
		DateTo:    resp.DateTo.String(),
		RoomCount: resp.RoomCount,
		Days:      days,
	}
}
