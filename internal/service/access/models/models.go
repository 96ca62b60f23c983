package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-CondoService/internal/domain"
)

// Request модели

// RegisterProviderRequest запрос на регистрацию входа поставщика услуг
type RegisterProviderRequest struct {
	Name     string  `json:"name"`
	Document *string `json:"document,omitempty"`
	Company  *string `json:"company,omitempty"`
	PhotoKey *string `json:"photoKey,omitempty"`
	UnitID   *int64  `json:"unitId,omitempty"` // Квартира назначения (опционально)
}

// Validate проверяет обязательные поля запроса
func (r *RegisterProviderRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("field %q is required", "name")
	}
	return nil
}

// RegisterGuestRequest запрос на регистрацию заезда арендного гостя
type RegisterGuestRequest struct {
	Name     string  `json:"name"`
	Document *string `json:"document,omitempty"`
	Plate    *string `json:"plate,omitempty"`
	PhotoKey *string `json:"photoKey,omitempty"`
	UnitID   int64   `json:"unitId"` // Квартира заезда (обязательна)
}

// Validate проверяет обязательные поля запроса
func (r *RegisterGuestRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("field %q is required", "name")
	}
	if r.UnitID <= 0 {
		return fmt.Errorf("field %q is required", "unitId")
	}
	return nil
}

// Response модели

// ProviderResponse ответ с записью журнала поставщиков
type ProviderResponse struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Document   *string `json:"document,omitempty"`
	Company    *string `json:"company,omitempty"`
	PhotoKey   *string `json:"photoKey,omitempty"`
	EntryTime  string  `json:"entryTime"`
	ExitTime   *string `json:"exitTime,omitempty"`
	Active     bool    `json:"active"`
	UnitID     *int64  `json:"unitId,omitempty"`
	UnitNumber *string `json:"unitNumber,omitempty"`
	UnitBlock  *string `json:"unitBlock,omitempty"`
}

// ProviderListResponse ответ со списком записей журнала поставщиков
type ProviderListResponse struct {
	Providers []*ProviderResponse `json:"providers"`
	Total     int                 `json:"total"`
}

// GuestResponse ответ с записью журнала гостей
type GuestResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Document     *string `json:"document,omitempty"`
	Plate        *string `json:"plate,omitempty"`
	PhotoKey     *string `json:"photoKey,omitempty"`
	EntryTime    string  `json:"entryTime"`
	ExitTime     *string `json:"exitTime,omitempty"`
	Active       bool    `json:"active"`
	UnitID       int64   `json:"unitId"`
	UnitNumber   string  `json:"unitNumber"`
	UnitBlock    *string `json:"unitBlock,omitempty"`
	ResidentName string  `json:"residentName"`
}

// GuestListResponse ответ со списком записей журнала гостей
type GuestListResponse struct {
	Guests []*GuestResponse `json:"guests"`
	Total  int              `json:"total"`
}

// FromDomainProvider конвертирует domain модель в response
func FromDomainProvider(p *domain.ServiceProvider) *ProviderResponse {
	return &ProviderResponse{
		ID:         p.ID,
		Name:       p.Name,
		Document:   p.Document,
		Company:    p.Company,
		PhotoKey:   p.PhotoKey,
		EntryTime:  p.EntryTime.Format(time.RFC3339),
		ExitTime:   formatOptionalTime(p.ExitTime),
		Active:     p.IsActive(),
		UnitID:     p.UnitID,
		UnitNumber: p.UnitNumber,
		UnitBlock:  p.UnitBlock,
	}
}

// FromDomainProviderList конвертирует список domain моделей в response
func FromDomainProviderList(providers []*domain.ServiceProvider) *ProviderListResponse {
	result := make([]*ProviderResponse, 0, len(providers))
	for _, p := range providers {
		result = append(result, FromDomainProvider(p))
	}
	return &ProviderListResponse{Providers: result, Total: len(result)}
}

// FromDomainGuest конвертирует domain модель в response
func FromDomainGuest(g *domain.RentalGuest) *GuestResponse {
	return &GuestResponse{
		ID:           g.ID,
		Name:         g.Name,
		Document:     g.Document,
		Plate:        g.Plate,
		PhotoKey:     g.PhotoKey,
		EntryTime:    g.EntryTime.Format(time.RFC3339),
		ExitTime:     formatOptionalTime(g.ExitTime),
		Active:       g.IsActive(),
		UnitID:       g.UnitID,
		UnitNumber:   g.UnitNumber,
		UnitBlock:    g.UnitBlock,
		ResidentName: g.ResidentName,
	}
}

// FromDomainGuestList конвертирует список domain моделей в response
func FromDomainGuestList(guests []*domain.RentalGuest) *GuestListResponse {
	result := make([]*GuestResponse, 0, len(guests))
	for _, g := range guests {
		result = append(result, FromDomainGuest(g))
	}
	return &GuestListResponse{Guests: result, Total: len(result)}
}

func formatOptionalTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(time.RFC3339)
	return &formatted
}
