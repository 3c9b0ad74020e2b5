package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/jtricerolph/newbook-twin-optomiser-table/internal/domain"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

// Renderer отрисовывает построенную сетку в HTML.
// Вся пользовательская текстовая информация экранируется средствами
// html/template, сырые данные источника в разметку не попадают.
type Renderer struct {
	tmpl   *template.Template
	title  string
	logger Logger
}

// NewRenderer создает рендерер с разобранными шаблонами
func NewRenderer(title string, logger Logger) (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.gohtml")
	if err != nil {
		return nil, fmt.Errorf("render: parse templates: %w", err)
	}

	return &Renderer{
		tmpl:   tmpl,
		title:  title,
		logger: logger,
	}, nil
}

// RenderGrid отрисовывает фрагмент сетки. Для пустого набора комнат
// возвращается заглушка "No rooms available.".
func (r *Renderer) RenderGrid(grid *domain.Grid) (template.HTML, error) {
	name := "grid.gohtml"
	var data interface{}

	if grid == nil || !grid.HasRooms() {
		name = "empty.gohtml"
	} else {
		data = toGridView(grid)
	}

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		r.logger.Error("RenderGrid: template %s failed: %v", name, err)
		return "", fmt.Errorf("%w: %s: %v", ErrRender, name, err)
	}

	return template.HTML(buf.String()), nil
}

// RenderPage отрисовывает полную страницу: шапку с выбором даты и
// фрагмент сетки внутри контейнера для частичного обновления
func (r *Renderer) RenderPage(grid *domain.Grid, startDate time.Time, days int, refreshURL string) (string, error) {
	gridHTML, err := r.RenderGrid(grid)
	if err != nil {
		return "", err
	}

	view := &pageView{
		Title:      r.title,
		StartDate:  startDate.Format(domain.DateFormat),
		Days:       days,
		GridHTML:   gridHTML,
		RefreshURL: refreshURL,
	}

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "page.gohtml", view); err != nil {
		r.logger.Error("RenderPage: template failed: %v", err)
		return "", fmt.Errorf("%w: page.gohtml: %v", ErrRender, err)
	}

	return buf.String(), nil
}
