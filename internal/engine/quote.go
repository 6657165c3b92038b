package engine

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-OrderIntakeService/internal/domain"
)

// LineTotal is the price of one selected item
type LineTotal struct {
	ItemID string          `json:"itemId"`
	Name   string          `json:"name"`
	Total  decimal.Decimal `json:"total"`
}

// Quote is a per-line price summary of a selection state
type Quote struct {
	Lines []LineTotal     `json:"lines"`
	Total decimal.Decimal `json:"total"`
}

// CalculateQuote sums per-line prices: the chosen tier price or else the base price,
// plus each chosen sub-type's own price and chosen tier price.
// No taxes or discounts are applied.
func CalculateQuote(catalog *domain.Catalog, state domain.SelectionState) Quote {
	quote := Quote{
		Lines: make([]LineTotal, 0, state.Len()),
		Total: decimal.Zero,
	}

	for _, sel := range state.Selections {
		item, ok := catalog.Item(sel.ItemID)
		if !ok {
			continue
		}

		total := linePrice(item, sel).Round(domain.PriceScale)
		quote.Lines = append(quote.Lines, LineTotal{
			ItemID: item.ID,
			Name:   item.Name,
			Total:  total,
		})
		quote.Total = quote.Total.Add(total)
	}

	return quote
}

func linePrice(item *domain.CatalogItem, sel domain.Selection) decimal.Decimal {
	total := decimal.Zero

	tierChosen := false
	if sel.ChosenComplexity != nil {
		if tier, ok := item.Tier(*sel.ChosenComplexity); ok {
			total = total.Add(decimal.NewFromFloat(tier.Price))
			tierChosen = true
		}
	}
	if !tierChosen && item.BasePrice != nil {
		total = total.Add(decimal.NewFromFloat(*item.BasePrice))
	}

	for _, st := range sel.ChosenSubTypes {
		subType, ok := item.SubType(st.SubTypeID)
		if !ok {
			continue
		}
		if subType.Price != nil {
			total = total.Add(decimal.NewFromFloat(*subType.Price))
		}
		if st.ChosenComplexity != nil {
			if tier, ok := subType.Tier(*st.ChosenComplexity); ok {
				total = total.Add(decimal.NewFromFloat(tier.Price))
			}
		}
	}

	return total
}
