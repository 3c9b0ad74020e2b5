package newbook

import "errors"

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("newbook.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("newbook.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("newbook.repository: failed to scan row")

	// ErrDecodePayload возвращается при ошибке разбора JSONB-полей записи
	ErrDecodePayload = errors.New("newbook.repository: failed to decode payload")
)
