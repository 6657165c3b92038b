package domain

// SubTypeSelection is a toggled-on sub-type with its (possibly unset) tier
type SubTypeSelection struct {
	SubTypeID        string  `json:"subTypeId"`
	ChosenComplexity *string `json:"chosenComplexity,omitempty"`
}

// SubOptionSelection is a toggled-on checkbox with its (possibly unset) radio
type SubOptionSelection struct {
	SubOptionID string  `json:"subOptionId"`
	ChosenRadio *string `json:"chosenRadio,omitempty"`
}

// Selection is the in-progress configuration of one chosen catalog item
type Selection struct {
	ItemID            string               `json:"itemId"`
	ChosenComplexity  *string              `json:"chosenComplexity,omitempty"`
	ChosenSubTypes    []SubTypeSelection   `json:"chosenSubTypes,omitempty"`
	ChosenSubOptions  []SubOptionSelection `json:"chosenSubOptions,omitempty"`
	ChosenDirectRadio *string              `json:"chosenDirectRadio,omitempty"`
	FreeTextEntries   []string             `json:"freeTextEntries,omitempty"`
}

// SubType returns the index of a toggled-on sub-type, or -1
func (s *Selection) SubType(subTypeID string) int {
	for i := range s.ChosenSubTypes {
		if s.ChosenSubTypes[i].SubTypeID == subTypeID {
			return i
		}
	}
	return -1
}

// SubOption returns the index of a toggled-on sub-option, or -1
func (s *Selection) SubOption(subOptionID string) int {
	for i := range s.ChosenSubOptions {
		if s.ChosenSubOptions[i].SubOptionID == subOptionID {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the selection
func (s Selection) Clone() Selection {
	out := Selection{
		ItemID:            s.ItemID,
		ChosenComplexity:  cloneString(s.ChosenComplexity),
		ChosenDirectRadio: cloneString(s.ChosenDirectRadio),
	}

	if len(s.ChosenSubTypes) > 0 {
		out.ChosenSubTypes = make([]SubTypeSelection, len(s.ChosenSubTypes))
		for i, st := range s.ChosenSubTypes {
			out.ChosenSubTypes[i] = SubTypeSelection{
				SubTypeID:        st.SubTypeID,
				ChosenComplexity: cloneString(st.ChosenComplexity),
			}
		}
	}

	if len(s.ChosenSubOptions) > 0 {
		out.ChosenSubOptions = make([]SubOptionSelection, len(s.ChosenSubOptions))
		for i, so := range s.ChosenSubOptions {
			out.ChosenSubOptions[i] = SubOptionSelection{
				SubOptionID: so.SubOptionID,
				ChosenRadio: cloneString(so.ChosenRadio),
			}
		}
	}

	if len(s.FreeTextEntries) > 0 {
		out.FreeTextEntries = append([]string(nil), s.FreeTextEntries...)
	}

	return out
}

// SelectionState is an ordered set of selections keyed by item id.
// Insertion order is the order of lines in the order payload.
type SelectionState struct {
	Selections []Selection `json:"selections"`
}

// NewSelectionState creates an empty state for a new draft
func NewSelectionState() SelectionState {
	return SelectionState{}
}

// Index returns the position of the item's selection, or -1
func (s SelectionState) Index(itemID string) int {
	for i := range s.Selections {
		if s.Selections[i].ItemID == itemID {
			return i
		}
	}
	return -1
}

// Get returns the item's selection if the item is selected
func (s SelectionState) Get(itemID string) (*Selection, bool) {
	i := s.Index(itemID)
	if i < 0 {
		return nil, false
	}
	return &s.Selections[i], true
}

// Len returns the number of selected items
func (s SelectionState) Len() int {
	return len(s.Selections)
}

// Clone returns a deep copy so that a transition never aliases its input
func (s SelectionState) Clone() SelectionState {
	if len(s.Selections) == 0 {
		return SelectionState{}
	}
	out := SelectionState{Selections: make([]Selection, len(s.Selections))}
	for i, sel := range s.Selections {
		out.Selections[i] = sel.Clone()
	}
	return out
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
