package apply_operation

import (
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-OrderIntakeService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.DraftID == uuid.Nil {
		return fmt.Errorf("%w: draftID is required", ErrInvalidInput)
	}

	op := req.Operation
	if !op.Kind.IsValid() {
		return fmt.Errorf("%w: unknown operation kind %q", ErrInvalidInput, op.Kind)
	}

	if op.ItemID == "" {
		return fmt.Errorf("%w: itemId is required", ErrInvalidInput)
	}

	if err := validateArguments(op); err != nil {
		return err
	}

	if utf8.RuneCountInString(op.Value) > domain.MaxFreeTextValueLength {
		return fmt.Errorf("%w: free text is longer than %d characters", ErrInvalidInput, domain.MaxFreeTextValueLength)
	}

	return nil
}

// validateArguments проверяет, что для вида операции переданы обязательные id
func validateArguments(op domain.Operation) error {
	switch op.Kind {
	case domain.OpChooseComplexity:
		return requireField(op.Kind, "tierId", op.TierID)
	case domain.OpToggleSubType:
		return requireField(op.Kind, "subTypeId", op.SubTypeID)
	case domain.OpChooseSubTypeComplexity:
		if err := requireField(op.Kind, "subTypeId", op.SubTypeID); err != nil {
			return err
		}
		return requireField(op.Kind, "tierId", op.TierID)
	case domain.OpToggleSubOption:
		return requireField(op.Kind, "subOptionId", op.SubOptionID)
	case domain.OpChooseSubOptionRadio:
		if err := requireField(op.Kind, "subOptionId", op.SubOptionID); err != nil {
			return err
		}
		return requireField(op.Kind, "radioId", op.RadioID)
	case domain.OpChooseDirectRadio:
		return requireField(op.Kind, "radioId", op.RadioID)
	}
	return nil
}

func requireField(kind domain.OperationKind, field, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s is required for %s", ErrInvalidInput, field, kind)
	}
	return nil
}

// freeTextLimitReached true, если добавление строки превысит лимит
func freeTextLimitReached(state domain.SelectionState, op domain.Operation) bool {
	if op.Kind != domain.OpAppendFreeText {
		return false
	}
	sel, ok := state.Get(op.ItemID)
	if !ok {
		return false
	}
	return len(sel.FreeTextEntries) >= domain.MaxFreeTextEntries
}
