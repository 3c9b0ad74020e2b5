package newbook

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("newbook client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от Booking Match API
	ErrInvalidResponse = errors.New("newbook client: invalid response")

	// ErrUnauthorized возвращается, когда Booking Match API отклонил API-ключ
	ErrUnauthorized = errors.New("newbook client: unauthorized")
)
