package models

import (
	"strings"

	"github.com/m04kA/SMC-CondoService/internal/domain"
)

// Request модели

// CreateUnitRequest запрос на создание квартиры
type CreateUnitRequest struct {
	UnitNumber   string  `json:"unitNumber"`
	Block        *string `json:"block,omitempty"`
	ResidentName string  `json:"residentName"`
	PhoneNumber  *string `json:"phoneNumber,omitempty"`
}

// Validate проверяет обязательные поля запроса
func (r *CreateUnitRequest) Validate() error {
	if strings.TrimSpace(r.UnitNumber) == "" {
		return errFieldRequired("unitNumber")
	}
	if strings.TrimSpace(r.ResidentName) == "" {
		return errFieldRequired("residentName")
	}
	return nil
}

// ToDomain конвертирует request в domain модель
func (r *CreateUnitRequest) ToDomain() *domain.Unit {
	return &domain.Unit{
		UnitNumber:   strings.TrimSpace(r.UnitNumber),
		Block:        r.Block,
		ResidentName: strings.TrimSpace(r.ResidentName),
		PhoneNumber:  r.PhoneNumber,
	}
}

// UpdateUnitRequest запрос на обновление квартиры
type UpdateUnitRequest = CreateUnitRequest

// Response модели

// UnitResponse ответ с данными квартиры
type UnitResponse struct {
	ID           int64   `json:"id"`
	UnitNumber   string  `json:"unitNumber"`
	Block        *string `json:"block,omitempty"`
	ResidentName string  `json:"residentName"`
	PhoneNumber  *string `json:"phoneNumber,omitempty"`
	DisplayName  string  `json:"displayName"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// UnitListResponse ответ со списком квартир
type UnitListResponse struct {
	Units []*UnitResponse `json:"units"`
	Total int             `json:"total"`
}

// FromDomainUnit конвертирует domain модель в response
func FromDomainUnit(u *domain.Unit) *UnitResponse {
	return &UnitResponse{
		ID:           u.ID,
		UnitNumber:   u.UnitNumber,
		Block:        u.Block,
		ResidentName: u.ResidentName,
		PhoneNumber:  u.PhoneNumber,
		DisplayName:  u.DisplayName(),
		CreatedAt:    u.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:    u.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// FromDomainUnitList конвертирует список domain моделей в response
func FromDomainUnitList(units []*domain.Unit) *UnitListResponse {
	result := make([]*UnitResponse, 0, len(units))
	for _, u := range units {
		result = append(result, FromDomainUnit(u))
	}
	return &UnitListResponse{Units: result, Total: len(result)}
}
