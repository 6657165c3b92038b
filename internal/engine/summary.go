package engine

import (
	"github.com/m04kA/SMC-OrderIntakeService/internal/domain"
)

// ItemStatus is what the dashboard needs to render one catalog item
type ItemStatus struct {
	ItemID       string            `json:"itemId"`
	Name         string            `json:"name"`
	IsSelected   bool              `json:"isSelected"`
	IsSelectable bool              `json:"isSelectable"`
	Selection    *domain.Selection `json:"selection,omitempty"`
}

// Summary is a read-only projection of a selection state
type Summary struct {
	Items  []ItemStatus      `json:"items"`
	Errors []ValidationError `json:"errors"`
	Quote  Quote             `json:"quote"`
}

// Valid returns true when the state can be normalized and submitted
func (s Summary) Valid() bool {
	return len(s.Errors) == 0
}

// Summarize reports every catalog item in catalog order together with
// validation errors and the quote. The state is not modified.
func Summarize(catalog *domain.Catalog, state domain.SelectionState) Summary {
	summary := Summary{
		Items:  make([]ItemStatus, 0, len(catalog.Items)),
		Errors: Validate(catalog, state),
		Quote:  CalculateQuote(catalog, state),
	}

	for _, item := range catalog.Items {
		status := ItemStatus{
			ItemID:       item.ID,
			Name:         item.Name,
			IsSelectable: IsSelectable(catalog, state, item.ID),
		}
		if sel, ok := state.Get(item.ID); ok {
			clone := sel.Clone()
			status.IsSelected = true
			status.Selection = &clone
		}
		summary.Items = append(summary.Items, status)
	}

	if summary.Errors == nil {
		summary.Errors = []ValidationError{}
	}

	return summary
}
