package build_grid

import (
	"sort"
	"time"

	"github.com/jtricerolph/newbook-twin-optomiser-table/internal/domain"
)

// filterAndSortRooms убирает overflow-комнаты и сортирует остальные
// по имени в естественном порядке (с учетом чисел), без учета регистра
func filterAndSortRooms(rooms []domain.Room) []domain.Room {
	filtered := make([]domain.Room, 0, len(rooms))
	for _, room := range rooms {
		if room.IsOverflow() {
			continue
		}
		filtered = append(filtered, room)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return domain.NaturalCompare(filtered[i].SiteName, filtered[j].SiteName) < 0
	})

	return filtered
}

// bookingIndex индекс бронирований по (комната, дата)
type bookingIndex map[string]map[string]*domain.Booking

// buildIndex строит индекс (комната, дата) -> бронирование из результатов
// подневных выборок. perDate выровнен с dates и обходится в порядке дат,
// поэтому при дублях для одной пары (комната, дата) остается первая
// встреченная запись, остальные молча отбрасываются. Бронирования
// overflow-комнат в индекс не попадают.
func buildIndex(dates []time.Time, perDate [][]*domain.Booking) bookingIndex {
	index := make(bookingIndex)

	for i, date := range dates {
		if i >= len(perDate) {
			break
		}
		day := date.Format(domain.DateFormat)

		for _, booking := range perDate[i] {
			if booking.SiteName == "" || domain.IsOverflowName(booking.SiteName) {
				continue
			}

			byDate, ok := index[booking.SiteName]
			if !ok {
				byDate = make(map[string]*domain.Booking)
				index[booking.SiteName] = byDate
			}

			// first-write-wins: уже занятая пара (комната, дата) не перезаписывается
			if _, exists := byDate[day]; exists {
				continue
			}
			byDate[day] = booking
		}
	}

	return index
}

// calculateSpan вычисляет, сколько последовательных видимых колонок
// занимает бронирование, начиная с колонки currentIndex.
//
// Бронирование занимает ночи [arrival, departure). Отсутствующие даты и
// неположительная длительность дают вырожденную ячейку в одну колонку.
// Выход за правую границу окна обрезается естественным образом: счет
// останавливается на конце dates.
//
// Сравниваются календарные даты в формате YYYY-MM-DD, а не моменты
// времени: даты окна и метки выгрузки могут жить в разных часовых
// поясах, и граница departure не должна от этого сдвигаться.
func calculateSpan(booking *domain.Booking, dates []time.Time, currentIndex int) int {
	if booking.Nights() < 1 {
		return 1
	}

	arrival := booking.Arrival.Format(domain.DateFormat)
	departure := booking.Departure.Format(domain.DateFormat)

	span := 0
	for i := currentIndex; i < len(dates); i++ {
		day := dates[i].Format(domain.DateFormat)
		if day >= departure {
			break
		}
		if day >= arrival {
			span++
		}
	}

	if span < 1 {
		return 1
	}
	return span
}

// buildRows строит строки сетки: для каждой комнаты обходит окно слева
// направо, колонки внутри объединенной ячейки повторно не оцениваются
func buildRows(rooms []domain.Room, dates []time.Time, index bookingIndex) []domain.GridRow {
	rows := make([]domain.GridRow, 0, len(rooms))

	for _, room := range rooms {
		byDate := index[room.SiteName]
		row := domain.GridRow{Room: room}

		for i := 0; i < len(dates); {
			booking := byDate[dates[i].Format(domain.DateFormat)]
			if booking == nil {
				row.Cells = append(row.Cells, domain.GridCell{Span: 1})
				i++
				continue
			}

			span := calculateSpan(booking, dates, i)
			if remaining := len(dates) - i; span > remaining {
				span = remaining
			}

			row.Cells = append(row.Cells, domain.GridCell{Span: span, Booking: booking})
			i += span
		}

		rows = append(rows, row)
	}

	return rows
}
