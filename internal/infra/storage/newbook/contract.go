package newbook

import (
	"github.com/jtricerolph/newbook-twin-optomiser-table/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
