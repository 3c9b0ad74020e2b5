package build_grid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jtricerolph/newbook-twin-optomiser-table/internal/domain"
)

func day(d int) time.Time {
	return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(t time.Time) *time.Time {
	return &t
}

func booking(site string, arrival, departure int) *domain.Booking {
	return &domain.Booking{
		SiteName:  site,
		Arrival:   datePtr(day(arrival)),
		Departure: datePtr(day(departure)),
	}
}

func TestFilterAndSortRooms(t *testing.T) {
	rooms := []domain.Room{
		{SiteName: "Room 10"},
		{SiteName: "Room 1-Overflow"},
		{SiteName: "Room 2"},
		{SiteName: "OVERFLOW Annex"},
	}

	got := filterAndSortRooms(rooms)

	require.Len(t, got, 2)
	assert.Equal(t, "Room 2", got[0].SiteName)
	assert.Equal(t, "Room 10", got[1].SiteName)
}

func TestFilterAndSortRooms_Empty(t *testing.T) {
	assert.Empty(t, filterAndSortRooms(nil))
	assert.Empty(t, filterAndSortRooms([]domain.Room{{SiteName: "Overflow 1"}}))
}

func TestCalculateSpan(t *testing.T) {
	window := domain.DateWindow(day(10), 14)

	tests := []struct {
		name         string
		booking      *domain.Booking
		currentIndex int
		want         int
	}{
		{
			"three nights fully visible",
			booking("Room 2", 10, 13),
			0,
			3,
		},
		{
			"window starts mid-stay",
			booking("Room 2", 10, 13),
			2, // column of 01-12, last covered night
			1,
		},
		{
			"booking past right edge truncated",
			booking("Room 2", 20, 30),
			10, // column of 01-20: nights 20..23 visible
			4,
		},
		{
			"departure equals arrival",
			booking("Room 2", 10, 10),
			0,
			1,
		},
		{
			"departure before arrival",
			booking("Room 2", 13, 10),
			0,
			1,
		},
		{
			"missing arrival",
			&domain.Booking{SiteName: "Room 2", Departure: datePtr(day(13))},
			0,
			1,
		},
		{
			"missing departure",
			&domain.Booking{SiteName: "Room 2", Arrival: datePtr(day(10))},
			0,
			1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calculateSpan(tt.booking, window, tt.currentIndex))
		})
	}
}

func TestCalculateSpan_TimeOfDayDiscarded(t *testing.T) {
	window := domain.DateWindow(day(10), 14)

	arrival := time.Date(2024, time.January, 10, 23, 15, 0, 0, time.UTC)
	departure := time.Date(2024, time.January, 13, 1, 0, 0, 0, time.UTC)
	b := &domain.Booking{SiteName: "Room 2", Arrival: &arrival, Departure: &departure}

	assert.Equal(t, 3, calculateSpan(b, window, 0))
}

func TestCalculateSpan_WindowZoneIndependent(t *testing.T) {
	// Даты окна строятся в локальном поясе сервера, метки выгрузки
	// парсятся в UTC; граница departure не должна зависеть от пояса
	zone := time.FixedZone("UTC+5", 5*60*60)
	window := domain.DateWindow(time.Date(2024, time.January, 12, 0, 0, 0, 0, zone), 14)

	stay := booking("Room 2", 10, 13) // даты бронирования в UTC

	// Видна только последняя ночь 01-12: одна колонка
	assert.Equal(t, 1, calculateSpan(stay, window, 0))
}

func TestCalculateSpan_FullStayAcrossZones(t *testing.T) {
	zone := time.FixedZone("UTC-8", -8*60*60)
	window := domain.DateWindow(time.Date(2024, time.January, 10, 0, 0, 0, 0, zone), 14)

	stay := booking("Room 2", 10, 13)

	assert.Equal(t, 3, calculateSpan(stay, window, 0))
}

func TestBuildIndex_FirstWriteWins(t *testing.T) {
	dates := domain.DateWindow(day(1), 2)

	first := booking("R1", 1, 3)
	second := booking("R1", 1, 2)

	index := buildIndex(dates, [][]*domain.Booking{
		{first, second},
		{first},
	})

	require.Contains(t, index, "R1")
	assert.Same(t, first, index["R1"]["2024-01-01"])
	assert.Len(t, index["R1"], 2)
	assert.Same(t, first, index["R1"]["2024-01-02"])
}

func TestBuildIndex_SkipsOverflowAndUnnamed(t *testing.T) {
	dates := domain.DateWindow(day(1), 1)

	index := buildIndex(dates, [][]*domain.Booking{{
		booking("Room 1-Overflow", 1, 2),
		booking("", 1, 2),
		booking("Room 2", 1, 2),
	}})

	assert.Len(t, index, 1)
	assert.Contains(t, index, "Room 2")
}

func TestBuildRows_PartitionInvariant(t *testing.T) {
	dates := domain.DateWindow(day(10), 14)
	rooms := []domain.Room{{SiteName: "Room 2"}, {SiteName: "Room 3"}}

	stay := booking("Room 2", 12, 15)
	perDate := make([][]*domain.Booking, len(dates))
	for i, d := range dates {
		if !d.Before(day(12)) && d.Before(day(15)) {
			perDate[i] = []*domain.Booking{stay}
		}
	}

	rows := buildRows(rooms, dates, buildIndex(dates, perDate))

	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, len(dates), row.SpanTotal(), "row %s must cover the window exactly", row.Room.SiteName)
	}

	// Room 2: два вакантных дня, занятая ячейка на 3 ночи, остальное вакантно
	occupied := rows[0].Cells[2]
	assert.False(t, occupied.IsVacant())
	assert.Equal(t, 3, occupied.Span)
	assert.True(t, rows[0].Cells[0].IsVacant())
	assert.True(t, rows[0].Cells[1].IsVacant())
	assert.Len(t, rows[0].Cells, 2+1+9)

	// Room 3 полностью вакантна
	for _, cell := range rows[1].Cells {
		assert.True(t, cell.IsVacant())
		assert.Equal(t, 1, cell.Span)
	}
}

func TestBuildRows_MergedCellWinsOverIndexEntries(t *testing.T) {
	dates := domain.DateWindow(day(10), 5)
	rooms := []domain.Room{{SiteName: "R1"}}

	long := booking("R1", 10, 13)
	other := booking("R1", 11, 12)

	// other занимает слот индекса на 01-11, но эта колонка уже накрыта
	// объединенной ячейкой long и повторно не оценивается
	perDate := [][]*domain.Booking{
		{long},
		{other, long},
		{long},
		nil,
		nil,
	}

	rows := buildRows(rooms, dates, buildIndex(dates, perDate))

	require.Len(t, rows, 1)
	cells := rows[0].Cells
	require.Len(t, cells, 3)
	assert.Equal(t, 3, cells[0].Span)
	assert.Same(t, long, cells[0].Booking)
	assert.True(t, cells[1].IsVacant())
	assert.True(t, cells[2].IsVacant())
}

func TestBuildRows_DegenerateBookingSingleColumn(t *testing.T) {
	dates := domain.DateWindow(day(10), 3)
	rooms := []domain.Room{{SiteName: "R1"}}

	zero := booking("R1", 11, 11)
	perDate := [][]*domain.Booking{nil, {zero}, nil}

	rows := buildRows(rooms, dates, buildIndex(dates, perDate))

	cells := rows[0].Cells
	require.Len(t, cells, 3)
	assert.True(t, cells[0].IsVacant())
	assert.Equal(t, 1, cells[1].Span)
	assert.Same(t, zero, cells[1].Booking)
	assert.True(t, cells[2].IsVacant())
}
