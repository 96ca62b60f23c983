package models

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CondoService/internal/domain"
)

// Request модели

// UpdateSettingsRequest запрос на обновление настроек кондоминиума
type UpdateSettingsRequest struct {
	Name    string  `json:"name"`
	CNPJ    *string `json:"cnpj,omitempty"`
	Address *string `json:"address,omitempty"`
	Phone   *string `json:"phone,omitempty"`

	TowerCount  int     `json:"towerCount"`
	TowerPrefix *string `json:"towerPrefix,omitempty"`
	TowerNaming *string `json:"towerNaming,omitempty"`

	PartyRoomName     string  `json:"partyRoomName"`
	PartyRoomCapacity int     `json:"partyRoomCapacity"`
	PartyRoomRules    *string `json:"partyRoomRules,omitempty"`
	PartyRoomCount    int     `json:"partyRoomCount"`
	PartyRoomNaming   string  `json:"partyRoomNaming"` // numbers | letters
}

// Validate проверяет поля запроса
func (r *UpdateSettingsRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("field %q is required", "name")
	}
	if r.TowerCount < 1 {
		return fmt.Errorf("towerCount must be at least 1")
	}
	if r.PartyRoomCapacity < 1 {
		return fmt.Errorf("partyRoomCapacity must be at least 1")
	}
	if r.PartyRoomCount < 1 || r.PartyRoomCount > domain.MaxPartyRoomCount {
		return fmt.Errorf("partyRoomCount must be between 1 and %d", domain.MaxPartyRoomCount)
	}
	if naming := domain.RoomNaming(r.PartyRoomNaming); r.PartyRoomNaming != "" &&
		naming != domain.NamingNumbers && naming != domain.NamingLetters {
		return fmt.Errorf("invalid partyRoomNaming %q", r.PartyRoomNaming)
	}
	return nil
}

// ToDomain конвертирует request в domain модель
func (r *UpdateSettingsRequest) ToDomain() *domain.Condominium {
	naming := domain.RoomNaming(r.PartyRoomNaming)
	if r.PartyRoomNaming == "" {
		naming = domain.NamingNumbers
	}

	roomName := strings.TrimSpace(r.PartyRoomName)
	if roomName == "" {
		roomName = domain.DefaultPartyRoomName
	}

	return &domain.Condominium{
		Name:              strings.TrimSpace(r.Name),
		CNPJ:              r.CNPJ,
		Address:           r.Address,
		Phone:             r.Phone,
		TowerCount:        r.TowerCount,
		TowerPrefix:       r.TowerPrefix,
		TowerNaming:       r.TowerNaming,
		PartyRoomName:     roomName,
		PartyRoomCapacity: r.PartyRoomCapacity,
		PartyRoomRules:    r.PartyRoomRules,
		PartyRoomCount:    r.PartyRoomCount,
		PartyRoomNaming:   naming,
	}
}

// Response модели

// SettingsResponse ответ с настройками кондоминиума
type SettingsResponse struct {
	Name    string  `json:"name"`
	CNPJ    *string `json:"cnpj,omitempty"`
	Address *string `json:"address,omitempty"`
	Phone   *string `json:"phone,omitempty"`

	TowerCount  int     `json:"towerCount"`
	TowerPrefix *string `json:"towerPrefix,omitempty"`
	TowerNaming *string `json:"towerNaming,omitempty"`

	PartyRoomName     string   `json:"partyRoomName"`
	PartyRoomCapacity int      `json:"partyRoomCapacity"`
	PartyRoomRules    *string  `json:"partyRoomRules,omitempty"`
	PartyRoomCount    int      `json:"partyRoomCount"`
	PartyRoomNaming   string   `json:"partyRoomNaming"`
	RoomLabels        []string `json:"roomLabels"`

	Configured bool `json:"configured"`
}

// FromDomainCondominium конвертирует domain модель в response.
// condo может быть nil - тогда отдаются значения по умолчанию.
func FromDomainCondominium(condo *domain.Condominium) *SettingsResponse {
	resp := &SettingsResponse{
		PartyRoomName:     domain.DefaultPartyRoomName,
		PartyRoomCapacity: domain.DefaultPartyRoomCapacity,
		PartyRoomCount:    1,
		PartyRoomNaming:   string(domain.NamingNumbers),
		TowerCount:        1,
		Configured:        condo != nil,
	}

	if condo != nil {
		resp.Name = condo.Name
		resp.CNPJ = condo.CNPJ
		resp.Address = condo.Address
		resp.Phone = condo.Phone
		resp.TowerCount = condo.TowerCount
		resp.TowerPrefix = condo.TowerPrefix
		resp.TowerNaming = condo.TowerNaming
		resp.PartyRoomName = condo.PartyRoomName
		resp.PartyRoomCapacity = condo.PartyRoomCapacity
		resp.PartyRoomRules = condo.PartyRoomRules
		resp.PartyRoomCount = condo.RoomCount()
		resp.PartyRoomNaming = string(condo.PartyRoomNaming)
	}

	labels := make([]string, 0, condo.RoomCount())
	for roomID := 1; roomID <= condo.RoomCount(); roomID++ {
		labels = append(labels, condo.RoomLabel(roomID))
	}
	resp.RoomLabels = labels

	return resp
}
