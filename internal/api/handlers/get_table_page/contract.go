package get_table_page

import (
	"context"
	"time"

	"github.com/jtricerolph/newbook-twin-optomiser-table/internal/domain"
	buildGrid "github.com/jtricerolph/newbook-twin-optomiser-table/internal/usecase/build_grid"
)

type BuildGridUseCase interface {
	Execute(ctx context.Context, req *buildGrid.Request) (*buildGrid.Response, error)
}

type PageRenderer interface {
	RenderPage(grid *domain.Grid, startDate time.Time, days int, refreshURL string) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
