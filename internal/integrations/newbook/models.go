package newbook

import (
	"time"

	"github.com/jtricerolph/newbook-twin-optomiser-table/internal/domain"
	"github.com/jtricerolph/newbook-twin-optomiser-table/pkg/ptr"
)

// Site модель комнаты/сайта из Booking Match API
type Site struct {
	SiteName string `json:"site_name"`
}

// CustomField пара метка/значение из Booking Match API
type CustomField struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// GuestRecord модель гостя из Booking Match API
type GuestRecord struct {
	Firstname     string `json:"firstname"`
	Lastname      string `json:"lastname"`
	PrimaryClient string `json:"primary_client"`
}

// BookingRecord модель бронирования из Booking Match API.
// Даты приходят строками и могут отсутствовать.
type BookingRecord struct {
	SiteName         string        `json:"site_name"`
	BookingID        string        `json:"booking_id"`
	BookingArrival   string        `json:"booking_arrival"`
	BookingDeparture string        `json:"booking_departure"`
	CustomFields     []CustomField `json:"custom_fields"`
	Guests           []GuestRecord `json:"guests"`
}

// ErrorResponse модель ошибки от Booking Match API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Форматы времени, встречающиеся в выгрузке Newbook
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	domain.DateFormat,
}

// parseTimestamp парсит временную метку выгрузки.
// Пустая или нераспознанная строка превращается в nil: дальше по
// конвейеру это трактуется как отсутствующая дата.
func parseTimestamp(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// ToDomain конвертирует запись бронирования в доменную модель
func (r *BookingRecord) ToDomain() *domain.Booking {
	booking := &domain.Booking{
		SiteName:  r.SiteName,
		Arrival:   parseTimestamp(r.BookingArrival),
		Departure: parseTimestamp(r.BookingDeparture),
	}

	if r.BookingID != "" {
		booking.BookingID = ptr.Ptr(r.BookingID)
	}

	for _, field := range r.CustomFields {
		booking.CustomFields = append(booking.CustomFields, domain.CustomField{
			Label: field.Label,
			Value: field.Value,
		})
	}

	for _, guest := range r.Guests {
		booking.Guests = append(booking.Guests, domain.Guest{
			Firstname:     guest.Firstname,
			Lastname:      guest.Lastname,
			PrimaryClient: guest.PrimaryClient,
		})
	}

	return booking
}

// ToDomainSites конвертирует список сайтов в доменные комнаты
func ToDomainSites(sites []Site) []domain.Room {
	rooms := make([]domain.Room, 0, len(sites))
	for _, site := range sites {
		rooms = append(rooms, domain.Room{SiteName: site.SiteName})
	}
	return rooms
}

// ToDomainBookings конвертирует список записей в доменные бронирования
func ToDomainBookings(records []BookingRecord) []*domain.Booking {
	bookings := make([]*domain.Booking, 0, len(records))
	for i := range records {
		bookings = append(bookings, records[i].ToDomain())
	}
	return bookings
}
