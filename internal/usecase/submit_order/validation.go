package submit_order

import (
	"fmt"

	"github.com/google/uuid"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.DraftID == uuid.Nil {
		return fmt.Errorf("%w: draftID is required", ErrInvalidInput)
	}

	return nil
}
