package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidReference возвращается, когда операция ссылается на id,
// которого нет в каталоге. Это ошибка интеграции, а не пользователя.
var ErrInvalidReference = errors.New("engine: invalid reference")

// ErrUnknownOperation возвращается для операции неизвестного вида
var ErrUnknownOperation = errors.New("engine: unknown operation")

func invalidReference(kind, id string) error {
	return fmt.Errorf("%w: %s %q", ErrInvalidReference, kind, id)
}

// ValidationError is a user-correctable problem with one selected item
type ValidationError struct {
	ItemID   string `json:"itemId"`
	ItemName string `json:"itemName"`
	Message  string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.ItemName, e.Message)
}
