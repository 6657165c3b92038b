package engine

import (
	"fmt"

	"github.com/m04kA/SMC-OrderIntakeService/internal/domain"
)

// Apply dispatches a logged operation to its transition
func Apply(catalog *domain.Catalog, state domain.SelectionState, op domain.Operation) (domain.SelectionState, error) {
	switch op.Kind {
	case domain.OpToggleItem:
		return ToggleItem(catalog, state, op.ItemID)
	case domain.OpChooseComplexity:
		return ChooseComplexity(catalog, state, op.ItemID, op.TierID)
	case domain.OpToggleSubType:
		return ToggleSubType(catalog, state, op.ItemID, op.SubTypeID)
	case domain.OpChooseSubTypeComplexity:
		return ChooseSubTypeComplexity(catalog, state, op.ItemID, op.SubTypeID, op.TierID)
	case domain.OpToggleSubOption:
		return ToggleSubOption(catalog, state, op.ItemID, op.SubOptionID)
	case domain.OpChooseSubOptionRadio:
		return ChooseSubOptionRadio(catalog, state, op.ItemID, op.SubOptionID, op.RadioID)
	case domain.OpChooseDirectRadio:
		return ChooseDirectRadio(catalog, state, op.ItemID, op.RadioID)
	case domain.OpAppendFreeText:
		return AppendFreeText(catalog, state, op.ItemID)
	case domain.OpSetFreeTextAt:
		return SetFreeTextAt(catalog, state, op.ItemID, op.Index, op.Value)
	case domain.OpRemoveFreeTextAt:
		return RemoveFreeTextAt(catalog, state, op.ItemID, op.Index)
	default:
		return state, fmt.Errorf("%w: %q", ErrUnknownOperation, op.Kind)
	}
}

// Replay rebuilds a selection state by applying ops to an empty state in order.
// The same catalog and log always produce the same state.
func Replay(catalog *domain.Catalog, ops []domain.Operation) (domain.SelectionState, error) {
	state := domain.NewSelectionState()

	for i, op := range ops {
		next, err := Apply(catalog, state, op)
		if err != nil {
			return state, fmt.Errorf("operation #%d (%s): %w", i, op.Kind, err)
		}
		state = next
	}

	return state, nil
}
