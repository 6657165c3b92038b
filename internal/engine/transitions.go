package engine

import (
	"github.com/m04kA/SMC-OrderIntakeService/internal/domain"
)

// Все переходы чистые: входное состояние не меняется, возвращается новое.
// Запрещённые действия (выбор заблокированной услуги, настройка невыбранной,
// индекс вне диапазона) возвращают состояние без изменений и без ошибки.
// Ошибка возвращается только для id, которых нет в каталоге.

// ToggleItem removes the item's selection with all nested choices if it is selected,
// otherwise appends an empty selection unless the item is currently not selectable
func ToggleItem(catalog *domain.Catalog, state domain.SelectionState, itemID string) (domain.SelectionState, error) {
	if _, ok := catalog.Item(itemID); !ok {
		return state, invalidReference("item", itemID)
	}

	if i := state.Index(itemID); i >= 0 {
		next := state.Clone()
		next.Selections = removeAt(next.Selections, i)
		return next, nil
	}

	if !IsSelectable(catalog, state, itemID) {
		return state, nil
	}

	next := state.Clone()
	next.Selections = append(next.Selections, domain.Selection{ItemID: itemID})
	return next, nil
}

// ChooseComplexity sets the item's complexity tier
func ChooseComplexity(catalog *domain.Catalog, state domain.SelectionState, itemID, tierID string) (domain.SelectionState, error) {
	item, ok := catalog.Item(itemID)
	if !ok {
		return state, invalidReference("item", itemID)
	}
	if _, ok := item.Tier(tierID); !ok {
		return state, invalidReference("complexity tier", tierID)
	}

	return update(state, itemID, func(sel *domain.Selection) {
		sel.ChosenComplexity = &tierID
	}), nil
}

// ToggleSubType adds or removes a sub-type. A newly added sub-type never
// gets a tier automatically, even when it has tiers.
func ToggleSubType(catalog *domain.Catalog, state domain.SelectionState, itemID, subTypeID string) (domain.SelectionState, error) {
	item, ok := catalog.Item(itemID)
	if !ok {
		return state, invalidReference("item", itemID)
	}
	if _, ok := item.SubType(subTypeID); !ok {
		return state, invalidReference("sub-type", subTypeID)
	}

	return update(state, itemID, func(sel *domain.Selection) {
		if i := sel.SubType(subTypeID); i >= 0 {
			sel.ChosenSubTypes = removeAt(sel.ChosenSubTypes, i)
			return
		}
		sel.ChosenSubTypes = append(sel.ChosenSubTypes, domain.SubTypeSelection{SubTypeID: subTypeID})
	}), nil
}

// ChooseSubTypeComplexity sets the tier of a toggled-on sub-type
func ChooseSubTypeComplexity(catalog *domain.Catalog, state domain.SelectionState, itemID, subTypeID, tierID string) (domain.SelectionState, error) {
	item, ok := catalog.Item(itemID)
	if !ok {
		return state, invalidReference("item", itemID)
	}
	subType, ok := item.SubType(subTypeID)
	if !ok {
		return state, invalidReference("sub-type", subTypeID)
	}
	if _, ok := subType.Tier(tierID); !ok {
		return state, invalidReference("complexity tier", tierID)
	}

	return update(state, itemID, func(sel *domain.Selection) {
		if i := sel.SubType(subTypeID); i >= 0 {
			sel.ChosenSubTypes[i].ChosenComplexity = &tierID
		}
	}), nil
}

// ToggleSubOption adds or removes a checkbox; removing it drops its radio answer too
func ToggleSubOption(catalog *domain.Catalog, state domain.SelectionState, itemID, subOptionID string) (domain.SelectionState, error) {
	item, ok := catalog.Item(itemID)
	if !ok {
		return state, invalidReference("item", itemID)
	}
	if _, ok := item.SubOption(subOptionID); !ok {
		return state, invalidReference("sub-option", subOptionID)
	}

	return update(state, itemID, func(sel *domain.Selection) {
		if i := sel.SubOption(subOptionID); i >= 0 {
			sel.ChosenSubOptions = removeAt(sel.ChosenSubOptions, i)
			return
		}
		sel.ChosenSubOptions = append(sel.ChosenSubOptions, domain.SubOptionSelection{SubOptionID: subOptionID})
	}), nil
}

// ChooseSubOptionRadio sets the radio answer of a toggled-on checkbox
func ChooseSubOptionRadio(catalog *domain.Catalog, state domain.SelectionState, itemID, subOptionID, radioID string) (domain.SelectionState, error) {
	item, ok := catalog.Item(itemID)
	if !ok {
		return state, invalidReference("item", itemID)
	}
	subOption, ok := item.SubOption(subOptionID)
	if !ok {
		return state, invalidReference("sub-option", subOptionID)
	}
	if _, ok := subOption.Radio(radioID); !ok {
		return state, invalidReference("radio", radioID)
	}

	return update(state, itemID, func(sel *domain.Selection) {
		if i := sel.SubOption(subOptionID); i >= 0 {
			sel.ChosenSubOptions[i].ChosenRadio = &radioID
		}
	}), nil
}

// ChooseDirectRadio sets the item-level radio; only items without sub-options have one
func ChooseDirectRadio(catalog *domain.Catalog, state domain.SelectionState, itemID, radioID string) (domain.SelectionState, error) {
	item, ok := catalog.Item(itemID)
	if !ok {
		return state, invalidReference("item", itemID)
	}
	if _, ok := item.DirectRadio(radioID); !ok {
		return state, invalidReference("radio", radioID)
	}

	return update(state, itemID, func(sel *domain.Selection) {
		sel.ChosenDirectRadio = &radioID
	}), nil
}

// AppendFreeText adds an empty entry at the end of the item's free-text list
func AppendFreeText(catalog *domain.Catalog, state domain.SelectionState, itemID string) (domain.SelectionState, error) {
	item, ok := catalog.Item(itemID)
	if !ok {
		return state, invalidReference("item", itemID)
	}
	if !item.AcceptsFreeText {
		return state, nil
	}

	return update(state, itemID, func(sel *domain.Selection) {
		sel.FreeTextEntries = append(sel.FreeTextEntries, "")
	}), nil
}

// SetFreeTextAt replaces the entry at index; out-of-range indexes are ignored
func SetFreeTextAt(catalog *domain.Catalog, state domain.SelectionState, itemID string, index int, value string) (domain.SelectionState, error) {
	if _, ok := catalog.Item(itemID); !ok {
		return state, invalidReference("item", itemID)
	}

	sel, ok := state.Get(itemID)
	if !ok || index < 0 || index >= len(sel.FreeTextEntries) {
		return state, nil
	}

	return update(state, itemID, func(sel *domain.Selection) {
		sel.FreeTextEntries[index] = value
	}), nil
}

// RemoveFreeTextAt deletes the entry at index; out-of-range indexes are ignored
func RemoveFreeTextAt(catalog *domain.Catalog, state domain.SelectionState, itemID string, index int) (domain.SelectionState, error) {
	if _, ok := catalog.Item(itemID); !ok {
		return state, invalidReference("item", itemID)
	}

	sel, ok := state.Get(itemID)
	if !ok || index < 0 || index >= len(sel.FreeTextEntries) {
		return state, nil
	}

	return update(state, itemID, func(sel *domain.Selection) {
		sel.FreeTextEntries = removeAt(sel.FreeTextEntries, index)
	}), nil
}

// update применяет fn к копии выбора услуги; если услуга не выбрана, ничего не делает
func update(state domain.SelectionState, itemID string, fn func(sel *domain.Selection)) domain.SelectionState {
	i := state.Index(itemID)
	if i < 0 {
		return state
	}

	next := state.Clone()
	fn(&next.Selections[i])
	return next
}

// removeAt удаляет элемент по индексу; пустой результат превращается в nil,
// чтобы состояние после пары переключений совпадало с исходным
func removeAt[T any](s []T, i int) []T {
	s = append(s[:i], s[i+1:]...)
	if len(s) == 0 {
		return nil
	}
	return s
}
