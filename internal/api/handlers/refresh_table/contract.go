package refresh_table

import (
	"context"
	"html/template"

	"github.com/jtricerolph/newbook-twin-optomiser-table/internal/domain"
	buildGrid "github.com/jtricerolph/newbook-twin-optomiser-table/internal/usecase/build_grid"
)

type BuildGridUseCase interface {
	Execute(ctx context.Context, req *buildGrid.Request) (*buildGrid.Response, error)
}

type GridRenderer interface {
	RenderGrid(grid *domain.Grid) (template.HTML, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
