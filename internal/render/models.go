package render

import (
	"html/template"

	"github.com/jtricerolph/newbook-twin-optomiser-table/internal/domain"
)

// headerView колонка заголовка: сокращенный день недели и день/месяц
type headerView struct {
	Day  string // "Mon"
	Date string // "2 Jan"
}

// cellView ячейка строки комнаты для шаблона
type cellView struct {
	Vacant    bool
	Span      int
	Class     string // "ntot-cell-twin" или "ntot-cell-booked"
	Reference string
	BedType   string
	GuestName string
	BookingID string
}

// rowView строка комнаты для шаблона
type rowView struct {
	RoomName string
	Cells    []cellView
}

// gridView модель данных шаблона сетки
type gridView struct {
	Headers []headerView
	Rows    []rowView
}

// pageView модель данных шаблона полной страницы
type pageView struct {
	Title      string
	StartDate  string // YYYY-MM-DD для date picker
	Days       int
	GridHTML   template.HTML // уже экранированный фрагмент сетки
	RefreshURL string
}

// toGridView конвертирует построенную сетку в модель шаблона
func toGridView(grid *domain.Grid) *gridView {
	view := &gridView{
		Headers: make([]headerView, 0, len(grid.Dates)),
		Rows:    make([]rowView, 0, len(grid.Rows)),
	}

	for _, date := range grid.Dates {
		view.Headers = append(view.Headers, headerView{
			Day:  date.Format("Mon"),
			Date: date.Format("2 Jan"),
		})
	}

	for _, row := range grid.Rows {
		rv := rowView{
			RoomName: row.Room.SiteName,
			Cells:    make([]cellView, 0, len(row.Cells)),
		}

		for _, cell := range row.Cells {
			if cell.IsVacant() {
				rv.Cells = append(rv.Cells, cellView{Vacant: true, Span: cell.Span})
				continue
			}

			booking := cell.Booking
			class := "ntot-cell-booked"
			if booking.IsTwin() {
				class = "ntot-cell-twin"
			}

			cv := cellView{
				Span:      cell.Span,
				Class:     class,
				Reference: booking.Reference(),
				BedType:   booking.BedType(),
				GuestName: booking.GuestName(),
			}
			if booking.BookingID != nil {
				cv.BookingID = *booking.BookingID
			}

			rv.Cells = append(rv.Cells, cv)
		}

		view.Rows = append(view.Rows, rv)
	}

	return view
}
