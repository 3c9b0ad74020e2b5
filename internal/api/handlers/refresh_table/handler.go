package refresh_table

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/jtricerolph/newbook-twin-optomiser-table/internal/api/handlers"
	"github.com/jtricerolph/newbook-twin-optomiser-table/internal/domain"
	buildGrid "github.com/jtricerolph/newbook-twin-optomiser-table/internal/usecase/build_grid"
)

const (
	msgInvalidStartDate = "invalid start_date, expected YYYY-MM-DD"
	msgInvalidDays      = "invalid days value"
	msgInvalidRequest   = "invalid request parameters"
)

type Handler struct {
	useCase     BuildGridUseCase
	renderer    GridRenderer
	defaultDays int
	logger      Logger
}

func NewHandler(useCase BuildGridUseCase, renderer GridRenderer, defaultDays int, logger Logger) *Handler {
	return &Handler{
		useCase:     useCase,
		renderer:    renderer,
		defaultDays: defaultDays,
		logger:      logger,
	}
}

// Handle GET /api/v1/table/refresh
// Query params: start_date (YYYY-MM-DD, по умолчанию сегодня),
// days (по умолчанию из конфигурации).
// Запрос идемпотентен и не имеет побочных эффектов: одинаковые параметры
// при одинаковых данных источника дают одинаковый фрагмент.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	startDate := domain.DateOnly(time.Now())
	if raw := r.URL.Query().Get("start_date"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /api/v1/table/refresh - Invalid start_date %q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidStartDate)
			return
		}
		startDate = parsed
	}

	days := h.defaultDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /api/v1/table/refresh - Invalid days %q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidDays)
			return
		}
		days = parsed
	}

	result, err := h.useCase.Execute(r.Context(), &buildGrid.Request{
		StartDate: startDate,
		Days:      days,
	})
	if err != nil {
		switch {
		case errors.Is(err, buildGrid.ErrInvalidInput):
			h.logger.Warn("GET /api/v1/table/refresh - Validation failed: start=%s, days=%d, error=%v",
				startDate.Format(domain.DateFormat), days, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /api/v1/table/refresh - Failed to build grid: start=%s, days=%d, error=%v",
				startDate.Format(domain.DateFormat), days, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	fragment, err := h.renderer.RenderGrid(result.Grid)
	if err != nil {
		h.logger.Error("GET /api/v1/table/refresh - Failed to render grid: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /api/v1/table/refresh - Grid refreshed: start=%s, days=%d, rooms=%d",
		startDate.Format(domain.DateFormat), days, len(result.Grid.Rows))
	handlers.RespondJSON(w, http.StatusOK, RefreshResponse{
		Success: true,
		HTML:    string(fragment),
	})
}
