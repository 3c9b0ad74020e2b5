package newbook

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/jtricerolph/newbook-twin-optomiser-table/internal/domain"
	"github.com/jtricerolph/newbook-twin-optomiser-table/pkg/dbmetrics"
	"github.com/jtricerolph/newbook-twin-optomiser-table/pkg/psqlbuilder"
	"github.com/jtricerolph/newbook-twin-optomiser-table/pkg/ptr"
)

// Repository источник данных о бронированиях для инсталляций,
// зеркалирующих выгрузку Newbook в локальный PostgreSQL
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// customFieldRow структура JSONB-поля custom_fields
type customFieldRow struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// guestRow структура JSONB-поля guests
type guestRow struct {
	Firstname     string `json:"firstname"`
	Lastname      string `json:"lastname"`
	PrimaryClient string `json:"primary_client"`
}

// FetchSites получает полный каталог комнат/сайтов
func (r *Repository) FetchSites(ctx context.Context) ([]domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("site_name").
		From("sites").
		OrderBy("site_name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FetchSites - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FetchSites - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var rooms []domain.Room
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("%w: FetchSites - scan row: %v", ErrScanRow, err)
		}
		rooms = append(rooms, domain.Room{SiteName: name})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: FetchSites - iterate rows: %v", ErrExecQuery, err)
	}

	return rooms, nil
}

// FetchStayingBookings получает бронирования, проживающие в указанную дату
// (arrival <= date < departure, день выезда не считается проживанием)
func (r *Repository) FetchStayingBookings(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	day := date.Format(domain.DateFormat)

	query, args, err := psqlbuilder.Select(
		"site_name",
		"booking_id",
		"arrival",
		"departure",
		"custom_fields",
		"guests",
	).
		From("bookings").
		Where(squirrel.Expr("arrival::date <= ?::date", day)).
		Where(squirrel.Expr("departure::date > ?::date", day)).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FetchStayingBookings - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FetchStayingBookings - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var bookings []*domain.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: FetchStayingBookings - iterate rows: %v", ErrExecQuery, err)
	}

	return bookings, nil
}

func scanBooking(rows *sql.Rows) (*domain.Booking, error) {
	var (
		siteName        string
		bookingID       sql.NullString
		arrival         sql.NullTime
		departure       sql.NullTime
		customFieldsRaw []byte
		guestsRaw       []byte
	)

	if err := rows.Scan(&siteName, &bookingID, &arrival, &departure, &customFieldsRaw, &guestsRaw); err != nil {
		return nil, fmt.Errorf("%w: scanBooking: %v", ErrScanRow, err)
	}

	booking := &domain.Booking{SiteName: siteName}

	if bookingID.Valid && bookingID.String != "" {
		booking.BookingID = ptr.Ptr(bookingID.String)
	}
	if arrival.Valid {
		booking.Arrival = ptr.Ptr(arrival.Time)
	}
	if departure.Valid {
		booking.Departure = ptr.Ptr(departure.Time)
	}

	if len(customFieldsRaw) > 0 {
		var fields []customFieldRow
		if err := json.Unmarshal(customFieldsRaw, &fields); err != nil {
			return nil, fmt.Errorf("%w: scanBooking - custom_fields: %v", ErrDecodePayload, err)
		}
		for _, field := range fields {
			booking.CustomFields = append(booking.CustomFields, domain.CustomField{
				Label: field.Label,
				Value: field.Value,
			})
		}
	}

	if len(guestsRaw) > 0 {
		var guests []guestRow
		if err := json.Unmarshal(guestsRaw, &guests); err != nil {
			return nil, fmt.Errorf("%w: scanBooking - guests: %v", ErrDecodePayload, err)
		}
		for _, guest := range guests {
			booking.Guests = append(booking.Guests, domain.Guest{
				Firstname:     guest.Firstname,
				Lastname:      guest.Lastname,
				PrimaryClient: guest.PrimaryClient,
			})
		}
	}

	return booking, nil
}
