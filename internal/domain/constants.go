package domain

// Default condominium settings
const (
	DefaultPartyRoomName     = "Салон для мероприятий"
	DefaultPartyRoomCapacity = 50
	DefaultPartyRoomCount    = 1
)

// Business validation constants
const (
	MaxPartyRoomCount    = 26 // ограничение буквенной схемы именования (A..Z)
	MaxDescriptionLength = 500
	MaxNameLength        = 200
)

// Time format constants
const (
	DateFormat        = "2006-01-02" // YYYY-MM-DD
	DisplayDateFormat = "02.01.2006" // для человекочитаемых описаний в журнале
)
