package build_grid

import (
	"context"

	"github.com/jtricerolph/newbook-twin-optomiser-table/internal/domain"
)

// UseCase use case построения сетки бронирований для видимого окна дат
type UseCase struct {
	source BookingSource
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(source BookingSource, logger Logger) *UseCase {
	return &UseCase{
		source: source,
		logger: logger,
	}
}

// Execute выполняет use case построения сетки.
//
// Недоступность источника данных не является ошибкой: комнаты и
// бронирования в этом случае считаются пустыми, и вызывающая сторона
// отрисовывает заглушку "нет комнат" (поведение исходной системы).
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BuildGrid: start=%s, days=%d", req.StartDate.Format(domain.DateFormat), req.Days)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BuildGrid: validation failed: %v", err)
		return nil, err
	}

	// 2. Видимое окно дат
	dates := domain.DateWindow(req.StartDate, req.Days)

	// 3. Каталог комнат
	rooms, err := uc.source.FetchSites(ctx)
	if err != nil {
		// Источник недоступен: деградируем до пустого каталога
		uc.logger.Error("BuildGrid: failed to fetch sites, degrading to empty catalog: %v", err)
		rooms = nil
	}

	// 4. Фильтрация overflow-комнат и естественная сортировка
	visible := filterAndSortRooms(rooms)
	if len(visible) == 0 {
		uc.logger.Info("BuildGrid: no visible rooms, returning empty grid")
		return &Response{Grid: &domain.Grid{Dates: dates}}, nil
	}

	// 5. Подневные выборки бронирований, строго в порядке дат:
	// от порядка обхода зависит семантика first-write-wins в индексе
	perDate := make([][]*domain.Booking, len(dates))
	for i, date := range dates {
		bookings, err := uc.source.FetchStayingBookings(ctx, date)
		if err != nil {
			uc.logger.Error("BuildGrid: failed to fetch bookings for %s, treating as empty: %v",
				date.Format(domain.DateFormat), err)
			continue
		}
		perDate[i] = bookings
	}

	// 6. Индекс (комната, дата) и строки сетки
	index := buildIndex(dates, perDate)
	rows := buildRows(visible, dates, index)

	uc.logger.Info("BuildGrid: built grid with %d rooms x %d days", len(rows), len(dates))

	return &Response{
		Grid: &domain.Grid{
			Dates: dates,
			Rows:  rows,
		},
	}, nil
}
