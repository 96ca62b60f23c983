package domain

import (
	"fmt"
	"time"
)

// RoomNaming схема именования залов при party_room_count > 1
type RoomNaming string

const (
	NamingNumbers RoomNaming = "numbers" // "Салон 1", "Салон 2"
	NamingLetters RoomNaming = "letters" // "Салон A", "Салон B"
)

// Condominium represents the single condominium settings record
type Condominium struct {
	ID      int64
	Name    string
	CNPJ    *string
	Address *string
	Phone   *string

	TowerCount  int
	TowerPrefix *string
	TowerNaming *string

	PartyRoomName     string
	PartyRoomCapacity int
	PartyRoomRules    *string
	PartyRoomCount    int
	PartyRoomNaming   RoomNaming

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RoomCount возвращает количество залов (минимум 1)
func (c *Condominium) RoomCount() int {
	if c == nil || c.PartyRoomCount < 1 {
		return 1
	}
	return c.PartyRoomCount
}

// RoomLabel возвращает отображаемое имя зала по его номеру (1..RoomCount).
// При единственном зале возвращается его имя без суффикса.
func (c *Condominium) RoomLabel(roomID int) string {
	name := DefaultPartyRoomName
	if c != nil && c.PartyRoomName != "" {
		name = c.PartyRoomName
	}

	if c.RoomCount() == 1 {
		return name
	}

	if c != nil && c.PartyRoomNaming == NamingLetters {
		return fmt.Sprintf("%s %c", name, 'A'+roomID-1)
	}
	return fmt.Sprintf("%s %d", name, roomID)
}

// ValidRoomID проверяет, что номер зала входит в диапазон 1..RoomCount
func (c *Condominium) ValidRoomID(roomID int) bool {
	return roomID >= 1 && roomID <= c.RoomCount()
}
