package domain

// OrderPayload is the normalized order handed to the order service.
// Every optional key is omitted when unset.
type OrderPayload struct {
	Items []OrderLine `json:"items"`
}

// OrderLine is one normalized selection
type OrderLine struct {
	ItemID     string          `json:"itemId"`
	Name       string          `json:"name"`
	Price      *float64        `json:"price,omitempty"`
	Complexity *ChoiceRef      `json:"complexity,omitempty"`
	SubTypes   []SubTypeLine   `json:"subTypes,omitempty"`
	SubOptions []SubOptionLine `json:"subOptions,omitempty"`
	Radio      *ChoiceRef      `json:"radio,omitempty"`
	FreeText   []string        `json:"freeText,omitempty"`
}

// ChoiceRef references a chosen tier or radio by id and display name
type ChoiceRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SubTypeLine is a chosen sub-type in the payload
type SubTypeLine struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Price      *float64   `json:"price,omitempty"`
	Complexity *ChoiceRef `json:"complexity,omitempty"`
}

// SubOptionLine is a chosen checkbox in the payload
type SubOptionLine struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Radio *ChoiceRef `json:"radio,omitempty"`
}

// SubmitResult is the order service answer; only Success is interpreted
type SubmitResult struct {
	Success bool    `json:"success"`
	OrderID *string `json:"orderID,omitempty"`
	Message *string `json:"message,omitempty"`
}
