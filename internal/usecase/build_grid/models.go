package build_grid

import (
	"time"

	"github.com/jtricerolph/newbook-twin-optomiser-table/internal/domain"
)

// Request модель запроса на построение сетки бронирований
type Request struct {
	StartDate time.Time // Первый день видимого окна (время отбрасывается)
	Days      int       // Количество дней в окне
}

// Response результат построения сетки
type Response struct {
	Grid *domain.Grid
}
