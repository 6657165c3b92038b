package draft

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден
	ErrDraftNotFound = errors.New("draft.repository: draft not found")

	// ErrNoOperations возвращается при отмене операции в пустом журнале
	ErrNoOperations = errors.New("draft.repository: draft has no operations")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("draft.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("draft.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("draft.repository: failed to scan row")

	// ErrEncode возвращается при ошибке сериализации каталога или операции в JSONB
	ErrEncode = errors.New("draft.repository: failed to encode json")
)
