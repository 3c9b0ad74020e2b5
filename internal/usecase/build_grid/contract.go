package build_grid

import (
	"context"
	"time"

	"github.com/jtricerolph/newbook-twin-optomiser-table/internal/domain"
)

// BookingSource интерфейс источника данных о комнатах и бронированиях.
// Реализуется HTTP-клиентом Booking Match API и PostgreSQL-репозиторием.
type BookingSource interface {
	// FetchSites получает полный каталог комнат/сайтов
	FetchSites(ctx context.Context) ([]domain.Room, error)

	// FetchStayingBookings получает бронирования, проживающие в указанную дату
	FetchStayingBookings(ctx context.Context, date time.Time) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
