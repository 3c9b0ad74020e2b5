package refresh_table

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jtricerolph/newbook-twin-optomiser-table/internal/domain"
	buildGrid "github.com/jtricerolph/newbook-twin-optomiser-table/internal/usecase/build_grid"
)

type fakeUseCase struct {
	lastReq *buildGrid.Request
	resp    *buildGrid.Response
	err     error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *buildGrid.Request) (*buildGrid.Response, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type fakeRenderer struct {
	err error
}

func (f *fakeRenderer) RenderGrid(grid *domain.Grid) (template.HTML, error) {
	if f.err != nil {
		return "", f.err
	}
	return template.HTML(fmt.Sprintf("<table>%d rooms</table>", len(grid.Rows))), nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func emptyResponse(days int) *buildGrid.Response {
	return &buildGrid.Response{Grid: &domain.Grid{
		Dates: domain.DateWindow(time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC), days),
	}}
}

func TestHandler_Handle(t *testing.T) {
	uc := &fakeUseCase{resp: emptyResponse(7)}
	h := NewHandler(uc, &fakeRenderer{}, 14, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/table/refresh?start_date=2024-01-10&days=7", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	var resp RefreshResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "<table>0 rooms</table>", resp.HTML)

	require.NotNil(t, uc.lastReq)
	assert.Equal(t, time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC), uc.lastReq.StartDate)
	assert.Equal(t, 7, uc.lastReq.Days)
}

func TestHandler_Handle_Defaults(t *testing.T) {
	uc := &fakeUseCase{resp: emptyResponse(14)}
	h := NewHandler(uc, &fakeRenderer{}, 14, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/table/refresh", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.lastReq)
	assert.Equal(t, 14, uc.lastReq.Days)
	assert.Equal(t, domain.DateOnly(time.Now()), uc.lastReq.StartDate)
}

func TestHandler_Handle_InvalidStartDate(t *testing.T) {
	uc := &fakeUseCase{resp: emptyResponse(14)}
	h := NewHandler(uc, &fakeRenderer{}, 14, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/table/refresh?start_date=10-01-2024", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.lastReq)
	assert.Contains(t, rec.Body.String(), msgInvalidStartDate)
}

func TestHandler_Handle_InvalidDays(t *testing.T) {
	uc := &fakeUseCase{resp: emptyResponse(14)}
	h := NewHandler(uc, &fakeRenderer{}, 14, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/table/refresh?days=abc", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.lastReq)
}

func TestHandler_Handle_UseCaseValidationError(t *testing.T) {
	uc := &fakeUseCase{err: fmt.Errorf("%w: days out of range", buildGrid.ErrInvalidInput)}
	h := NewHandler(uc, &fakeRenderer{}, 14, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/table/refresh?days=500", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), msgInvalidRequest)
}

func TestHandler_Handle_InternalErrors(t *testing.T) {
	t.Run("usecase failure", func(t *testing.T) {
		uc := &fakeUseCase{err: errors.New("boom")}
		h := NewHandler(uc, &fakeRenderer{}, 14, nopLogger{})

		rec := httptest.NewRecorder()
		h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/table/refresh", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("render failure", func(t *testing.T) {
		uc := &fakeUseCase{resp: emptyResponse(14)}
		h := NewHandler(uc, &fakeRenderer{err: errors.New("template broken")}, 14, nopLogger{})

		rec := httptest.NewRecorder()
		h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/table/refresh", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
