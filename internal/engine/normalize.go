package engine

import (
	"strings"

	"github.com/m04kA/SMC-OrderIntakeService/internal/domain"
)

// Normalize converts a validated state into the order payload.
// Callers must run Validate first and only normalize a state without errors.
// Selections whose item does not resolve are skipped.
func Normalize(catalog *domain.Catalog, state domain.SelectionState) domain.OrderPayload {
	payload := domain.OrderPayload{
		Items: make([]domain.OrderLine, 0, state.Len()),
	}

	for _, sel := range state.Selections {
		item, ok := catalog.Item(sel.ItemID)
		if !ok {
			continue
		}
		payload.Items = append(payload.Items, normalizeLine(item, sel))
	}

	return payload
}

func normalizeLine(item *domain.CatalogItem, sel domain.Selection) domain.OrderLine {
	line := domain.OrderLine{
		ItemID: item.ID,
		Name:   item.Name,
	}

	if sel.ChosenComplexity != nil {
		if tier, ok := item.Tier(*sel.ChosenComplexity); ok {
			line.Complexity = &domain.ChoiceRef{ID: tier.ID, Name: tier.Name}
		}
	}

	// Базовая цена только если не выбран уровень сложности
	if item.BasePrice != nil && line.Complexity == nil {
		price := *item.BasePrice
		line.Price = &price
	}

	for _, st := range sel.ChosenSubTypes {
		subType, ok := item.SubType(st.SubTypeID)
		if !ok {
			continue
		}
		stLine := domain.SubTypeLine{
			ID:   subType.ID,
			Name: subType.Name,
		}
		if subType.Price != nil {
			price := *subType.Price
			stLine.Price = &price
		}
		if st.ChosenComplexity != nil {
			if tier, ok := subType.Tier(*st.ChosenComplexity); ok {
				stLine.Complexity = &domain.ChoiceRef{ID: tier.ID, Name: tier.Name}
			}
		}
		line.SubTypes = append(line.SubTypes, stLine)
	}

	for _, so := range sel.ChosenSubOptions {
		subOption, ok := item.SubOption(so.SubOptionID)
		if !ok {
			continue
		}
		soLine := domain.SubOptionLine{
			ID:   subOption.ID,
			Name: subOption.Name,
		}
		if so.ChosenRadio != nil {
			if radio, ok := subOption.Radio(*so.ChosenRadio); ok {
				soLine.Radio = &domain.ChoiceRef{ID: radio.ID, Name: radio.Name}
			}
		}
		line.SubOptions = append(line.SubOptions, soLine)
	}

	// Радио на уровне услуги и радио внутри чекбоксов взаимоисключающие
	if !item.HasSubOptions() && sel.ChosenDirectRadio != nil {
		if radio, ok := item.DirectRadio(*sel.ChosenDirectRadio); ok {
			line.Radio = &domain.ChoiceRef{ID: radio.ID, Name: radio.Name}
		}
	}

	line.FreeText = normalizeFreeText(sel.FreeTextEntries)

	return line
}

// normalizeFreeText trims entries and drops blank ones, keeping order
func normalizeFreeText(entries []string) []string {
	var out []string
	for _, e := range entries {
		if v := strings.TrimSpace(e); v != "" {
			out = append(out, v)
		}
	}
	return out
}
