package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jtricerolph/newbook-twin-optomiser-table/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer("Twin Booking Optimizer", nopLogger{})
	require.NoError(t, err)
	return r
}

func day(d int) time.Time {
	return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC)
}

func testGrid() *domain.Grid {
	id := "NB-1042"
	arrival := day(10)
	departure := day(13)

	stay := &domain.Booking{
		SiteName:  "Room 2",
		BookingID: &id,
		Arrival:   &arrival,
		Departure: &departure,
		CustomFields: []domain.CustomField{
			{Label: domain.BedTypeFieldLabel, Value: "Two Singles"},
		},
		Guests: []domain.Guest{
			{Firstname: "Alice", Lastname: "Adams", PrimaryClient: "1"},
		},
	}

	dates := domain.DateWindow(day(10), 4)
	return &domain.Grid{
		Dates: dates,
		Rows: []domain.GridRow{
			{
				Room: domain.Room{SiteName: "Room 2"},
				Cells: []domain.GridCell{
					{Span: 3, Booking: stay},
					{Span: 1},
				},
			},
		},
	}
}

func TestRenderer_RenderGrid(t *testing.T) {
	r := newTestRenderer(t)

	html, err := r.RenderGrid(testGrid())
	require.NoError(t, err)

	out := string(html)

	// Заголовок: день недели и день/месяц
	assert.Contains(t, out, `<span class="ntot-day">Wed</span>`)
	assert.Contains(t, out, `<span class="ntot-date">10 Jan</span>`)
	assert.Contains(t, out, `<span class="ntot-date">13 Jan</span>`)

	// Строка комнаты
	assert.Contains(t, out, `<td class="ntot-room-cell">Room 2</td>`)

	// Занятая ячейка: colspan, twin-стиль, подсказка с именем гостя
	assert.Contains(t, out, `colspan="3"`)
	assert.Contains(t, out, "ntot-cell-twin")
	assert.Contains(t, out, `<span class="ntot-booking-ref">NB-1042</span>`)
	assert.Contains(t, out, `<span class="ntot-bed-type">Twin</span>`)
	assert.Contains(t, out, `data-guest-name="Alice Adams"`)
	assert.Contains(t, out, `<div class="ntot-tooltip">Alice Adams</div>`)

	// Вакантная ячейка
	assert.Contains(t, out, "ntot-cell-vacant")
}

func TestRenderer_RenderGrid_NonTwinStyle(t *testing.T) {
	r := newTestRenderer(t)

	grid := testGrid()
	grid.Rows[0].Cells[0].Booking.CustomFields = []domain.CustomField{
		{Label: domain.BedTypeFieldLabel, Value: "Queen Double"},
	}

	html, err := r.RenderGrid(grid)
	require.NoError(t, err)

	assert.Contains(t, string(html), "ntot-cell-booked")
	assert.NotContains(t, string(html), "ntot-cell-twin")
}

func TestRenderer_RenderGrid_EscapesUpstreamData(t *testing.T) {
	r := newTestRenderer(t)

	grid := testGrid()
	grid.Rows[0].Room.SiteName = `Room <script>alert("x")</script>`
	grid.Rows[0].Cells[0].Booking.Guests = []domain.Guest{
		{Firstname: `<img src=x onerror=alert(1)>`, Lastname: "Adams", PrimaryClient: "1"},
	}

	html, err := r.RenderGrid(grid)
	require.NoError(t, err)

	out := string(html)
	assert.NotContains(t, out, "<script>alert")
	assert.NotContains(t, out, "<img src=x")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestRenderer_RenderGrid_MissingReference(t *testing.T) {
	r := newTestRenderer(t)

	grid := testGrid()
	grid.Rows[0].Cells[0].Booking.BookingID = nil

	html, err := r.RenderGrid(grid)
	require.NoError(t, err)

	assert.Contains(t, string(html), `<span class="ntot-booking-ref">N/A</span>`)
	assert.Contains(t, string(html), `data-booking-id=""`)
}

func TestRenderer_RenderGrid_EmptyPlaceholder(t *testing.T) {
	r := newTestRenderer(t)

	for _, grid := range []*domain.Grid{
		nil,
		{Dates: domain.DateWindow(day(10), 14)},
	} {
		html, err := r.RenderGrid(grid)
		require.NoError(t, err)
		assert.Contains(t, string(html), "No rooms available.")
		assert.NotContains(t, string(html), "<table")
	}
}

func TestRenderer_RenderPage(t *testing.T) {
	r := newTestRenderer(t)

	page, err := r.RenderPage(testGrid(), day(10), 14, "/api/v1/table/refresh")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(page, "<!DOCTYPE html>"))
	assert.Contains(t, page, "<title>Twin Booking Optimizer</title>")
	assert.Contains(t, page, `value="2024-01-10"`)
	assert.Contains(t, page, `data-days="14"`)
	assert.Contains(t, page, "/api/v1/table/refresh")

	// Фрагмент сетки вставлен без повторного экранирования
	assert.Contains(t, page, `<table class="ntot-booking-grid">`)
}

func TestRenderer_RenderIdempotent(t *testing.T) {
	r := newTestRenderer(t)

	first, err := r.RenderGrid(testGrid())
	require.NoError(t, err)
	second, err := r.RenderGrid(testGrid())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
