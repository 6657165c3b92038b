package orderservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента или недоступности сервиса
	ErrInternal = errors.New("orderservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("orderservice client: invalid response")

	// ErrOrderRejected возвращается, когда сервис ответил success=false
	ErrOrderRejected = errors.New("orderservice: order rejected")
)
