package domain

import (
	"strings"
	"time"
)

// CustomField is a label/value pair attached to a booking in Newbook
type CustomField struct {
	Label string
	Value string
}

// Guest represents one guest on a booking
type Guest struct {
	Firstname     string
	Lastname      string
	PrimaryClient string // "1" marks the primary guest
}

// Booking represents a stay fetched from the Newbook data feed.
// Arrival and Departure are nil when the feed omitted them.
type Booking struct {
	SiteName     string
	BookingID    *string
	Arrival      *time.Time
	Departure    *time.Time
	CustomFields []CustomField
	Guests       []Guest
}

// Nights returns the number of nights between arrival and departure
// (departure exclusive). Returns 0 when either date is missing or the
// duration is non-positive.
func (b *Booking) Nights() int {
	if b.Arrival == nil || b.Departure == nil {
		return 0
	}
	arrival := DateOnly(*b.Arrival)
	departure := DateOnly(*b.Departure)
	nights := int(departure.Sub(arrival).Hours() / 24)
	if nights < 0 {
		return 0
	}
	return nights
}

// Reference returns the display booking reference, or "N/A" when absent
func (b *Booking) Reference() string {
	if b.BookingID == nil || *b.BookingID == "" {
		return "N/A"
	}
	return *b.BookingID
}

// BedType classifies the booking's "Bed Type" custom field.
// Values containing "twin" or "two singles" map to Twin, values
// containing "double" map to Double, anything else passes through
// unchanged. A booking without the field defaults to Double.
func (b *Booking) BedType() string {
	for _, field := range b.CustomFields {
		if field.Label != BedTypeFieldLabel {
			continue
		}

		value := strings.ToLower(field.Value)
		if strings.Contains(value, "twin") || strings.Contains(value, "two singles") {
			return BedTypeTwin
		}
		if strings.Contains(value, "double") {
			return BedTypeDouble
		}
		return field.Value
	}

	return BedTypeDouble
}

// IsTwin returns true if the classified bed type is Twin
func (b *Booking) IsTwin() bool {
	return strings.EqualFold(b.BedType(), BedTypeTwin)
}

// GuestName returns the display name for the booking: the guest flagged
// as primary, otherwise the first guest, otherwise "Unknown Guest"
func (b *Booking) GuestName() string {
	for _, guest := range b.Guests {
		if guest.PrimaryClient == PrimaryGuestFlag {
			return strings.TrimSpace(guest.Firstname + " " + guest.Lastname)
		}
	}

	if len(b.Guests) > 0 {
		return strings.TrimSpace(b.Guests[0].Firstname + " " + b.Guests[0].Lastname)
	}

	return UnknownGuestName
}

// DateOnly truncates a timestamp to midnight, keeping only the calendar date
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
