package models

import "github.com/m04kA/SMC-CondoService/internal/domain"

// SummaryResponse сводка для главного экрана стойки
type SummaryResponse struct {
	Units           int64 `json:"units"`
	Vehicles        int64 `json:"vehicles"`
	PendingParcels  int64 `json:"pendingParcels"`
	ActiveProviders int64 `json:"activeProviders"`
	ActiveGuests    int64 `json:"activeGuests"`

	TodayBookings  []*TodayBooking `json:"todayBookings"`
	TodayOccupancy string          `json:"todayOccupancy"` // free | partial | full

	RecentActivity []*ActivityEntry `json:"recentActivity"`
}

// TodayBooking бронь зала на сегодня
type TodayBooking struct {
	ID           int64  `json:"id"`
	RoomID       int    `json:"roomId"`
	RoomLabel    string `json:"roomLabel"`
	Period       string `json:"period"`
	PeriodLabel  string `json:"periodLabel"`
	UnitNumber   string `json:"unitNumber"`
	ResidentName string `json:"residentName"`
}

// ActivityEntry последняя запись журнала активности
type ActivityEntry struct {
	UserName    string `json:"userName"`
	Action      string `json:"action"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt"`
}

// FromDomainTodayBooking конвертирует бронь в элемент сводки
func FromDomainTodayBooking(b *domain.Booking, condo *domain.Condominium) *TodayBooking {
	return &TodayBooking{
		ID:           b.ID,
		RoomID:       b.RoomID,
		RoomLabel:    condo.RoomLabel(b.RoomID),
		Period:       string(b.Period),
		PeriodLabel:  b.Period.Label(),
		UnitNumber:   b.UnitNumber,
		ResidentName: b.ResidentName,
	}
}

// FromDomainActivity конвертирует запись журнала в элемент сводки
func FromDomainActivity(e *domain.AuditEntry) *ActivityEntry {
	return &ActivityEntry{
		UserName:    e.UserName,
		Action:      string(e.Action),
		Description: e.Description,
		CreatedAt:   e.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
