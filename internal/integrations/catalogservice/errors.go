package catalogservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("catalogservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("catalogservice client: invalid response")

	// ErrEmptyCatalog возвращается, когда каталог не содержит ни одной услуги
	ErrEmptyCatalog = errors.New("catalogservice: catalog is empty")

	// ErrInvalidCatalog возвращается, когда каталог нарушает правила составления
	ErrInvalidCatalog = errors.New("catalogservice: invalid catalog")
)
