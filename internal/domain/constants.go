package domain

// Slot grid
const (
	SlotStepMinutes        = 30
	DefaultDurationMinutes = 60
)

// Default capacity limits per exact start time
const (
	DefaultMaxBookingsPerSlot     = 4
	DefaultMaxServiceTypesPerSlot = 2
)

// Business validation constants
const (
	MinDurationMinutes = 1
	MaxDurationMinutes = 720 // 12 hours
	MaxNoteLength      = 1000
	MaxNameLength      = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
