package domain

// Default configuration values
const (
	DefaultDays = 14
)

// Business validation constants
const (
	MinDays = 1
	MaxDays = 90
)

// Bed type labels produced by classification
const (
	BedTypeTwin   = "Twin"
	BedTypeDouble = "Double"
)

// Custom field and guest record markers from the Newbook data feed
const (
	BedTypeFieldLabel = "Bed Type"
	PrimaryGuestFlag  = "1"
	UnknownGuestName  = "Unknown Guest"
)

// OverflowMarker rooms whose name contains this substring (any case)
// are auxiliary inventory and never shown on the grid
const OverflowMarker = "overflow"

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
