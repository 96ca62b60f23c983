package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCondominium_RoomCount(t *testing.T) {
	var nilCondo *Condominium
	assert.Equal(t, 1, nilCondo.RoomCount())

	assert.Equal(t, 1, (&Condominium{PartyRoomCount: 0}).RoomCount())
	assert.Equal(t, 3, (&Condominium{PartyRoomCount: 3}).RoomCount())
}

func TestCondominium_RoomLabel(t *testing.T) {
	var nilCondo *Condominium
	assert.Equal(t, DefaultPartyRoomName, nilCondo.RoomLabel(1))

	single := &Condominium{PartyRoomName: "Салон"}
	assert.Equal(t, "Салон", single.RoomLabel(1))

	numbered := &Condominium{PartyRoomName: "Салон", PartyRoomCount: 2, PartyRoomNaming: NamingNumbers}
	assert.Equal(t, "Салон 1", numbered.RoomLabel(1))
	assert.Equal(t, "Салон 2", numbered.RoomLabel(2))

	lettered := &Condominium{PartyRoomName: "Салон", PartyRoomCount: 3, PartyRoomNaming: NamingLetters}
	assert.Equal(t, "Салон A", lettered.RoomLabel(1))
	assert.Equal(t, "Салон C", lettered.RoomLabel(3))
}

func TestCondominium_ValidRoomID(t *testing.T) {
	condo := &Condominium{PartyRoomCount: 2}

	assert.True(t, condo.ValidRoomID(1))
	assert.True(t, condo.ValidRoomID(2))
	assert.False(t, condo.ValidRoomID(0))
	assert.False(t, condo.ValidRoomID(3))

	var nilCondo *Condominium
	assert.True(t, nilCondo.ValidRoomID(1))
	assert.False(t, nilCondo.ValidRoomID(2))
}
