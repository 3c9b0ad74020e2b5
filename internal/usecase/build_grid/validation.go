package build_grid

import (
	"fmt"

	"github.com/jtricerolph/newbook-twin-optomiser-table/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: start date is required", ErrInvalidInput)
	}

	if req.Days < domain.MinDays || req.Days > domain.MaxDays {
		return fmt.Errorf("%w: days must be between %d and %d", ErrInvalidInput, domain.MinDays, domain.MaxDays)
	}

	return nil
}
