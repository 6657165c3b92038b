package domain

// Validation messages shown to the customer
const (
	MsgSelectComplexity   = "Select a complexity."
	MsgSelectAtLeastOne   = "Select at least one type."
	MsgServiceUnavailable = "Service is not available."
)

// Business validation constants
const (
	MaxFreeTextEntries     = 50
	MaxFreeTextValueLength = 200
	MaxOperationsPerDraft  = 1000
)

// PriceScale число знаков после запятой в суммах
const PriceScale = 2
