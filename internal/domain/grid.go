package domain

import "time"

// GridCell is one rendered cell of a room row. A cell with a nil
// Booking is vacant and occupies exactly one date column; an occupied
// cell is merged across Span consecutive columns.
type GridCell struct {
	Span    int
	Booking *Booking
}

// IsVacant returns true if no booking covers this cell
func (c *GridCell) IsVacant() bool {
	return c.Booking == nil
}

// GridRow is one room row of the grid, cells aligned left to right
// with the visible date window
type GridRow struct {
	Room  Room
	Cells []GridCell
}

// SpanTotal returns the number of date columns covered by the row.
// For a well-formed row this always equals the window length.
func (r *GridRow) SpanTotal() int {
	total := 0
	for _, cell := range r.Cells {
		total += cell.Span
	}
	return total
}

// Grid is the built booking grid: the visible date window plus one row
// per visible room, in display order
type Grid struct {
	Dates []time.Time
	Rows  []GridRow
}

// HasRooms returns true if the grid has at least one visible room row
func (g *Grid) HasRooms() bool {
	return len(g.Rows) > 0
}

// DateWindow returns the ordered sequence of days consecutive calendar
// dates starting at start, time-of-day discarded
func DateWindow(start time.Time, days int) []time.Time {
	startDate := DateOnly(start)
	dates := make([]time.Time, 0, days)
	for i := 0; i < days; i++ {
		dates = append(dates, startDate.AddDate(0, 0, i))
	}
	return dates
}
