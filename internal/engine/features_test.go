package engine_test

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/cucumber/godog"

	"github.com/m04kA/SMC-OrderIntakeService/internal/domain"
	"github.com/m04kA/SMC-OrderIntakeService/internal/engine"
)

type selectionTestContext struct {
	items []domain.CatalogItem
	state domain.SelectionState
}

func (c *selectionTestContext) reset() {
	c.items = nil
	c.state = domain.NewSelectionState()
}

func (c *selectionTestContext) catalog() *domain.Catalog {
	return domain.NewCatalog(c.items)
}

func (c *selectionTestContext) item(name string) (*domain.CatalogItem, error) {
	for i := range c.items {
		if c.items[i].Name == name {
			return &c.items[i], nil
		}
	}
	return nil, fmt.Errorf("no catalog item %q", name)
}

func (c *selectionTestContext) apply(op domain.Operation) error {
	next, err := engine.Apply(c.catalog(), c.state, op)
	if err != nil {
		return err
	}
	c.state = next
	return nil
}

func slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}

// parseTiers разбирает "Basic:5, Multi:15"
func parseTiers(list string) ([]domain.Tier, error) {
	var tiers []domain.Tier
	for _, part := range strings.Split(list, ",") {
		name, price, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return nil, fmt.Errorf("tier %q must look like Name:Price", part)
		}
		value, err := strconv.ParseFloat(price, 64)
		if err != nil {
			return nil, err
		}
		tiers = append(tiers, domain.Tier{ID: slug(name), Name: name, Price: value})
	}
	return tiers, nil
}

func (c *selectionTestContext) aCatalogItem(name string) error {
	c.items = append(c.items, domain.CatalogItem{ID: slug(name), Name: name})
	return nil
}

func (c *selectionTestContext) aCatalogItemWithComplexityTiers(name, tiers string) error {
	parsed, err := parseTiers(tiers)
	if err != nil {
		return err
	}
	c.items = append(c.items, domain.CatalogItem{ID: slug(name), Name: name, ComplexityTiers: parsed})
	return nil
}

func (c *selectionTestContext) theItemAcceptsFreeText(name string) error {
	item, err := c.item(name)
	if err != nil {
		return err
	}
	item.AcceptsFreeText = true
	return nil
}

func (c *selectionTestContext) theItemDisables(name, other string) error {
	item, err := c.item(name)
	if err != nil {
		return err
	}
	item.Disables = append(item.Disables, other)
	return nil
}

func (c *selectionTestContext) theItemHasSubTypeWithComplexityTiers(name, subType, tiers string) error {
	item, err := c.item(name)
	if err != nil {
		return err
	}
	parsed, err := parseTiers(tiers)
	if err != nil {
		return err
	}
	item.SubTypes = append(item.SubTypes, domain.SubType{ID: slug(subType), Name: subType, ComplexityTiers: parsed})
	return nil
}

func (c *selectionTestContext) theItemHasSubType(name, subType string) error {
	item, err := c.item(name)
	if err != nil {
		return err
	}
	item.SubTypes = append(item.SubTypes, domain.SubType{ID: slug(subType), Name: subType})
	return nil
}

func (c *selectionTestContext) iToggle(name string) error {
	return c.apply(domain.Operation{Kind: domain.OpToggleItem, ItemID: slug(name)})
}

func (c *selectionTestContext) iChooseComplexityFor(tier, name string) error {
	return c.apply(domain.Operation{Kind: domain.OpChooseComplexity, ItemID: slug(name), TierID: slug(tier)})
}

func (c *selectionTestContext) iToggleSubTypeOf(subType, name string) error {
	return c.apply(domain.Operation{Kind: domain.OpToggleSubType, ItemID: slug(name), SubTypeID: slug(subType)})
}

func (c *selectionTestContext) iAddFreeTextTo(value, name string) error {
	itemID := slug(name)
	if err := c.apply(domain.Operation{Kind: domain.OpAppendFreeText, ItemID: itemID}); err != nil {
		return err
	}
	sel, ok := c.state.Get(itemID)
	if !ok {
		return fmt.Errorf("%q is not selected", name)
	}
	return c.apply(domain.Operation{
		Kind:   domain.OpSetFreeTextAt,
		ItemID: itemID,
		Index:  len(sel.FreeTextEntries) - 1,
		Value:  value,
	})
}

func (c *selectionTestContext) isSelected(name string) error {
	if !engine.IsSelected(c.state, slug(name)) {
		return fmt.Errorf("expected %q to be selected", name)
	}
	return nil
}

func (c *selectionTestContext) isNotSelected(name string) error {
	if engine.IsSelected(c.state, slug(name)) {
		return fmt.Errorf("expected %q not to be selected", name)
	}
	return nil
}

func (c *selectionTestContext) isNotSelectable(name string) error {
	if engine.IsSelectable(c.catalog(), c.state, slug(name)) {
		return fmt.Errorf("expected %q not to be selectable", name)
	}
	return nil
}

func (c *selectionTestContext) validationReportsErrors(n int) error {
	errs := engine.Validate(c.catalog(), c.state)
	if len(errs) != n {
		return fmt.Errorf("expected %d validation errors, got %d: %v", n, len(errs), errs)
	}
	return nil
}

func (c *selectionTestContext) validationErrorIs(pos int, message string) error {
	errs := engine.Validate(c.catalog(), c.state)
	if pos < 1 || pos > len(errs) {
		return fmt.Errorf("no validation error #%d, got %d errors", pos, len(errs))
	}
	if got := errs[pos-1].Error(); got != message {
		return fmt.Errorf("expected validation error %q, got %q", message, got)
	}
	return nil
}

func (c *selectionTestContext) thePayloadIs(doc *godog.DocString) error {
	raw, err := json.Marshal(engine.Normalize(c.catalog(), c.state))
	if err != nil {
		return err
	}
	if got, want := string(raw), strings.TrimSpace(doc.Content); got != want {
		return fmt.Errorf("payload mismatch:\n got: %s\nwant: %s", got, want)
	}
	return nil
}

func (c *selectionTestContext) theDraftIsEmpty() error {
	if c.state.Len() != 0 {
		return fmt.Errorf("expected empty draft, got %d selections", c.state.Len())
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &selectionTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^a catalog item "([^"]*)"$`, tc.aCatalogItem)
	ctx.Step(`^a catalog item "([^"]*)" with complexity tiers "([^"]*)"$`, tc.aCatalogItemWithComplexityTiers)
	ctx.Step(`^the item "([^"]*)" accepts free text$`, tc.theItemAcceptsFreeText)
	ctx.Step(`^the item "([^"]*)" disables "([^"]*)"$`, tc.theItemDisables)
	ctx.Step(`^the item "([^"]*)" has sub-type "([^"]*)" with complexity tiers "([^"]*)"$`, tc.theItemHasSubTypeWithComplexityTiers)
	ctx.Step(`^the item "([^"]*)" has sub-type "([^"]*)"$`, tc.theItemHasSubType)

	// When steps
	ctx.Step(`^I toggle "([^"]*)"$`, tc.iToggle)
	ctx.Step(`^I choose complexity "([^"]*)" for "([^"]*)"$`, tc.iChooseComplexityFor)
	ctx.Step(`^I toggle sub-type "([^"]*)" of "([^"]*)"$`, tc.iToggleSubTypeOf)
	ctx.Step(`^I add free text "([^"]*)" to "([^"]*)"$`, tc.iAddFreeTextTo)

	// Then steps
	ctx.Step(`^"([^"]*)" is selected$`, tc.isSelected)
	ctx.Step(`^"([^"]*)" is not selected$`, tc.isNotSelected)
	ctx.Step(`^"([^"]*)" is not selectable$`, tc.isNotSelectable)
	ctx.Step(`^validation reports (\d+) errors$`, tc.validationReportsErrors)
	ctx.Step(`^validation error (\d+) is "([^"]*)"$`, tc.validationErrorIs)
	ctx.Step(`^the payload is:$`, tc.thePayloadIs)
	ctx.Step(`^the draft is empty$`, tc.theDraftIsEmpty)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
			Strict:   true,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
