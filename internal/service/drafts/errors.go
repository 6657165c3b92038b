package drafts

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден
	ErrDraftNotFound = errors.New("drafts: draft not found")

	// ErrAccessDenied возвращается, когда черновик принадлежит другому пользователю
	ErrAccessDenied = errors.New("drafts: access denied")

	// ErrNothingToUndo возвращается, когда журнал операций пуст
	ErrNothingToUndo = errors.New("drafts: nothing to undo")

	// ErrDraftSubmitting возвращается, когда черновик уже передается в OrderService
	ErrDraftSubmitting = errors.New("drafts: draft is being submitted")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("drafts: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("drafts: internal error")
)
