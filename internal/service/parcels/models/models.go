package models

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CondoService/internal/domain"
)

// Request модели

// RegisterParcelRequest запрос на регистрацию посылки на стойке
type RegisterParcelRequest struct {
	Description string  `json:"description"`
	UnitID      int64   `json:"unitId"`
	PhotoKey    *string `json:"photoKey,omitempty"`
}

// Validate проверяет обязательные поля запроса
func (r *RegisterParcelRequest) Validate() error {
	if strings.TrimSpace(r.Description) == "" {
		return fmt.Errorf("field %q is required", "description")
	}
	if r.UnitID <= 0 {
		return fmt.Errorf("field %q is required", "unitId")
	}
	return nil
}

// Response модели

// ParcelResponse ответ с данными посылки
type ParcelResponse struct {
	ID             int64   `json:"id"`
	ProtocolNumber string  `json:"protocolNumber"`
	Description    string  `json:"description"`
	PhotoKey       *string `json:"photoKey,omitempty"`
	Status         string  `json:"status"`
	ArrivedAt      string  `json:"arrivedAt"`
	CollectedAt    *string `json:"collectedAt,omitempty"`
	UnitID         int64   `json:"unitId"`
	UnitNumber     string  `json:"unitNumber"`
	UnitBlock      *string `json:"unitBlock,omitempty"`
	ResidentName   string  `json:"residentName"`
	CreatedAt      string  `json:"createdAt"`
}

// ParcelListResponse ответ со списком посылок
type ParcelListResponse struct {
	Parcels []*ParcelResponse `json:"parcels"`
	Total   int               `json:"total"`
}

// FromDomainParcel конвертирует domain модель в response
func FromDomainParcel(p *domain.Parcel) *ParcelResponse {
	resp := &ParcelResponse{
		ID:             p.ID,
		ProtocolNumber: p.ProtocolNumber,
		Description:    p.Description,
		PhotoKey:       p.PhotoKey,
		Status:         string(p.Status),
		ArrivedAt:      p.ArrivedAt.Format("2006-01-02T15:04:05Z07:00"),
		UnitID:         p.UnitID,
		UnitNumber:     p.UnitNumber,
		UnitBlock:      p.UnitBlock,
		ResidentName:   p.ResidentName,
		CreatedAt:      p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}

	if p.CollectedAt != nil {
		collectedAt := p.CollectedAt.Format("2006-01-02T15:04:05Z07:00")
		resp.CollectedAt = &collectedAt
	}

	return resp
}

// FromDomainParcelList конвертирует список domain моделей в response
func FromDomainParcelList(parcels []*domain.Parcel) *ParcelListResponse {
	result := make([]*ParcelResponse, 0, len(parcels))
	for _, p := range parcels {
		result = append(result, FromDomainParcel(p))
	}
	return &ParcelListResponse{Parcels: result, Total: len(result)}
}
