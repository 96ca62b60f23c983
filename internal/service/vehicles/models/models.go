package models

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CondoService/internal/domain"
)

// Request модели

// CreateVehicleRequest запрос на регистрацию ТС
type CreateVehicleRequest struct {
	Plate  string  `json:"plate"`
	Model  string  `json:"model"`
	Color  *string `json:"color,omitempty"`
	Type   string  `json:"type"` // car | motorcycle | truck
	UnitID int64   `json:"unitId"`
}

// Validate проверяет обязательные поля запроса
func (r *CreateVehicleRequest) Validate() error {
	if strings.TrimSpace(r.Plate) == "" {
		return fmt.Errorf("field %q is required", "plate")
	}
	if strings.TrimSpace(r.Model) == "" {
		return fmt.Errorf("field %q is required", "model")
	}
	if r.UnitID <= 0 {
		return fmt.Errorf("field %q is required", "unitId")
	}
	if r.Type != "" && !domain.VehicleType(r.Type).IsValid() {
		return fmt.Errorf("invalid vehicle type %q", r.Type)
	}
	return nil
}

// ToDomain конвертирует request в domain модель.
// Номер нормализуется: верхний регистр, без пробелов.
func (r *CreateVehicleRequest) ToDomain() *domain.Vehicle {
	vehicleType := domain.VehicleType(r.Type)
	if r.Type == "" {
		vehicleType = domain.VehicleCar
	}

	return &domain.Vehicle{
		Plate:  NormalizePlate(r.Plate),
		Model:  strings.TrimSpace(r.Model),
		Color:  r.Color,
		Type:   vehicleType,
		UnitID: r.UnitID,
	}
}

// UpdateVehicleRequest запрос на обновление ТС
type UpdateVehicleRequest = CreateVehicleRequest

// NormalizePlate приводит номер к каноническому виду для поиска
func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(plate), " ", ""))
}

// Response модели

// VehicleResponse ответ с данными ТС
type VehicleResponse struct {
	ID           int64   `json:"id"`
	Plate        string  `json:"plate"`
	Model        string  `json:"model"`
	Color        *string `json:"color,omitempty"`
	Type         string  `json:"type"`
	UnitID       int64   `json:"unitId"`
	UnitNumber   string  `json:"unitNumber"`
	UnitBlock    *string `json:"unitBlock,omitempty"`
	ResidentName string  `json:"residentName"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// VehicleListResponse ответ со списком ТС
type VehicleListResponse struct {
	Vehicles []*VehicleResponse `json:"vehicles"`
	Total    int                `json:"total"`
}

// FromDomainVehicle конвертирует domain модель в response
func FromDomainVehicle(v *domain.Vehicle) *VehicleResponse {
	return &VehicleResponse{
		ID:           v.ID,
		Plate:        v.Plate,
		Model:        v.Model,
		Color:        v.Color,
		Type:         string(v.Type),
		UnitID:       v.UnitID,
		UnitNumber:   v.UnitNumber,
		UnitBlock:    v.UnitBlock,
		ResidentName: v.ResidentName,
		CreatedAt:    v.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:    v.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// FromDomainVehicleList конвертирует список domain моделей в response
func FromDomainVehicleList(vehicles []*domain.Vehicle) *VehicleListResponse {
	result := make([]*VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		result = append(result, FromDomainVehicle(v))
	}
	return &VehicleListResponse{Vehicles: result, Total: len(result)}
}
