package domain

import (
	"time"

	"github.com/google/uuid"
)

// OperationKind names a transition applied to a selection state
type OperationKind string

const (
	OpToggleItem              OperationKind = "toggle_item"
	OpChooseComplexity        OperationKind = "choose_complexity"
	OpToggleSubType           OperationKind = "toggle_sub_type"
	OpChooseSubTypeComplexity OperationKind = "choose_sub_type_complexity"
	OpToggleSubOption         OperationKind = "toggle_sub_option"
	OpChooseSubOptionRadio    OperationKind = "choose_sub_option_radio"
	OpChooseDirectRadio       OperationKind = "choose_direct_radio"
	OpAppendFreeText          OperationKind = "append_free_text"
	OpSetFreeTextAt           OperationKind = "set_free_text_at"
	OpRemoveFreeTextAt        OperationKind = "remove_free_text_at"
)

// OperationKinds all supported operation kinds
var OperationKinds = []OperationKind{
	OpToggleItem,
	OpChooseComplexity,
	OpToggleSubType,
	OpChooseSubTypeComplexity,
	OpToggleSubOption,
	OpChooseSubOptionRadio,
	OpChooseDirectRadio,
	OpAppendFreeText,
	OpSetFreeTextAt,
	OpRemoveFreeTextAt,
}

// IsValid returns true for a known operation kind
func (k OperationKind) IsValid() bool {
	for _, known := range OperationKinds {
		if k == known {
			return true
		}
	}
	return false
}

// Operation is one logged (kind, args) pair; unused args stay empty
type Operation struct {
	Kind        OperationKind `json:"kind"`
	ItemID      string        `json:"itemId"`
	SubTypeID   string        `json:"subTypeId,omitempty"`
	SubOptionID string        `json:"subOptionId,omitempty"`
	TierID      string        `json:"tierId,omitempty"`
	RadioID     string        `json:"radioId,omitempty"`
	Index       int           `json:"index,omitempty"`
	Value       string        `json:"value,omitempty"`
}

// DraftStatus is the lifecycle state of a draft
type DraftStatus string

const (
	// DraftStatusOpen accepts operations and can be submitted
	DraftStatusOpen DraftStatus = "open"
	// DraftStatusSubmitting is claimed by a submission in flight and is read-only
	DraftStatusSubmitting DraftStatus = "submitting"
)

// Draft is an order in progress: a catalog snapshot taken once per draft session
// plus the log of operations applied to an initially empty selection state
type Draft struct {
	ID         uuid.UUID
	UserID     int64
	Status     DraftStatus
	Catalog    *Catalog
	Operations []Operation
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// BelongsTo returns true if the draft was started by the user
func (d *Draft) BelongsTo(userID int64) bool {
	return d.UserID == userID
}

// HasOperations returns true if anything was applied to the draft
func (d *Draft) HasOperations() bool {
	return len(d.Operations) > 0
}

// IsSubmitting returns true while the draft is being handed to the order service
func (d *Draft) IsSubmitting() bool {
	return d.Status == DraftStatusSubmitting
}
