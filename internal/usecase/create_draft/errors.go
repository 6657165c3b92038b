package create_draft

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_draft: invalid input data")

	// ErrCatalogUnavailable возвращается, когда каталог не удалось получить
	ErrCatalogUnavailable = errors.New("create_draft: catalog is unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_draft: internal error")
)
