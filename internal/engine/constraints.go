package engine

import (
	"fmt"

	"github.com/m04kA/SMC-OrderIntakeService/internal/domain"
)

// IsSelected returns true if the item currently has a selection
func IsSelected(state domain.SelectionState, itemID string) bool {
	return state.Index(itemID) >= 0
}

// IsSelectable returns false while some other selected item declares this
// item's name in its disables list.
//
// Exclusion only needs to be declared on one side: if A disables B, then
// selecting A blocks B, and selecting B first blocks A. The first selected wins.
func IsSelectable(catalog *domain.Catalog, state domain.SelectionState, itemID string) bool {
	item, ok := catalog.Item(itemID)
	if !ok {
		return false
	}

	for _, sel := range state.Selections {
		if sel.ItemID == itemID {
			continue
		}
		other, ok := catalog.Item(sel.ItemID)
		if !ok {
			continue
		}
		if other.DisablesName(item.Name) {
			return false
		}
		// Объявление с одной стороны блокирует обе стороны
		if item.DisablesName(other.Name) {
			return false
		}
	}

	return true
}

// Validate checks every selection in insertion order and returns all problems found.
// Unanswered checkbox radios and empty free-text lists are not errors.
func Validate(catalog *domain.Catalog, state domain.SelectionState) []ValidationError {
	var errs []ValidationError

	for _, sel := range state.Selections {
		item, ok := catalog.Item(sel.ItemID)
		if !ok {
			errs = append(errs, ValidationError{
				ItemID:   sel.ItemID,
				ItemName: sel.ItemID,
				Message:  domain.MsgServiceUnavailable,
			})
			continue
		}

		if item.HasComplexityTiers() && sel.ChosenComplexity == nil {
			errs = append(errs, newValidationError(item, domain.MsgSelectComplexity))
		}

		if item.HasSubTypes() && len(sel.ChosenSubTypes) == 0 {
			errs = append(errs, newValidationError(item, domain.MsgSelectAtLeastOne))
		}

		for _, st := range sel.ChosenSubTypes {
			subType, ok := item.SubType(st.SubTypeID)
			if !ok {
				continue
			}
			if subType.HasComplexityTiers() && st.ChosenComplexity == nil {
				errs = append(errs, newValidationError(item,
					fmt.Sprintf("%s: %s", subType.Name, domain.MsgSelectComplexity)))
			}
		}
	}

	return errs
}

func newValidationError(item *domain.CatalogItem, message string) ValidationError {
	return ValidationError{
		ItemID:   item.ID,
		ItemName: item.Name,
		Message:  message,
	}
}
