package get_table_page

import (
	"net/http"
	"strconv"
	"time"

	"github.com/jtricerolph/newbook-twin-optomiser-table/internal/api/handlers"
	"github.com/jtricerolph/newbook-twin-optomiser-table/internal/domain"
	buildGrid "github.com/jtricerolph/newbook-twin-optomiser-table/internal/usecase/build_grid"
)

type Handler struct {
	useCase     BuildGridUseCase
	renderer    PageRenderer
	defaultDays int
	refreshURL  string
	logger      Logger
}

func NewHandler(useCase BuildGridUseCase, renderer PageRenderer, defaultDays int, refreshURL string, logger Logger) *Handler {
	return &Handler{
		useCase:     useCase,
		renderer:    renderer,
		defaultDays: defaultDays,
		refreshURL:  refreshURL,
		logger:      logger,
	}
}

// Handle GET /
// Query params (обе опциональны): start_date (YYYY-MM-DD, по умолчанию
// сегодня), days (по умолчанию из конфигурации). Некорректные значения
// заменяются значениями по умолчанию, страница отдается всегда.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	startDate := domain.DateOnly(time.Now())
	if raw := r.URL.Query().Get("start_date"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET / - Invalid start_date %q, using today: %v", raw, err)
		} else {
			startDate = parsed
		}
	}

	days := h.defaultDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < domain.MinDays || parsed > domain.MaxDays {
			h.logger.Warn("GET / - Invalid days %q, using default %d", raw, h.defaultDays)
		} else {
			days = parsed
		}
	}

	result, err := h.useCase.Execute(r.Context(), &buildGrid.Request{
		StartDate: startDate,
		Days:      days,
	})
	if err != nil {
		h.logger.Error("GET / - Failed to build grid: start=%s, days=%d, error=%v",
			startDate.Format(domain.DateFormat), days, err)
		handlers.RespondInternalError(w)
		return
	}

	page, err := h.renderer.RenderPage(result.Grid, startDate, days, h.refreshURL)
	if err != nil {
		h.logger.Error("GET / - Failed to render page: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET / - Page rendered: start=%s, days=%d, rooms=%d",
		startDate.Format(domain.DateFormat), days, len(result.Grid.Rows))
	handlers.RespondHTML(w, http.StatusOK, page)
}
