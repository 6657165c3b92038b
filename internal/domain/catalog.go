package domain

// Tier is a named, priced, single-choice complexity option
type Tier struct {
	ID    string  `json:"id" yaml:"id"`
	Name  string  `json:"name" yaml:"name"`
	Price float64 `json:"price" yaml:"price"`
}

// Radio is a single-choice answer without its own price
type Radio struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// SubType is an independently toggleable child of an item,
// optionally carrying its own complexity tiers
type SubType struct {
	ID              string   `json:"id" yaml:"id"`
	Name            string   `json:"name" yaml:"name"`
	Price           *float64 `json:"price,omitempty" yaml:"price,omitempty"`
	ComplexityTiers []Tier   `json:"complexityTiers,omitempty" yaml:"complexityTiers,omitempty"`
}

// SubOption is a toggleable checkbox which may require a radio answer
type SubOption struct {
	ID     string  `json:"id" yaml:"id"`
	Name   string  `json:"name" yaml:"name"`
	Radios []Radio `json:"radios,omitempty" yaml:"radios,omitempty"`
}

// CatalogItem describes a selectable service.
// SubTypes, SubOptions/DirectRadios and free text are independent feature flags:
// an item may carry any combination of them.
// DirectRadios is only populated when SubOptions is empty (catalog authoring rule).
type CatalogItem struct {
	ID                  string      `json:"id" yaml:"id"`
	Name                string      `json:"name" yaml:"name"`
	BasePrice           *float64    `json:"basePrice,omitempty" yaml:"basePrice,omitempty"`
	ComplexityTiers     []Tier      `json:"complexityTiers,omitempty" yaml:"complexityTiers,omitempty"`
	SubTypes            []SubType   `json:"subTypes,omitempty" yaml:"subTypes,omitempty"`
	SubOptions          []SubOption `json:"subOptions,omitempty" yaml:"subOptions,omitempty"`
	DirectRadios        []Radio     `json:"directRadios,omitempty" yaml:"directRadios,omitempty"`
	AcceptsFreeText     bool        `json:"acceptsFreeText" yaml:"acceptsFreeText"`
	FreeTextInstruction *string     `json:"freeTextInstruction,omitempty" yaml:"freeTextInstruction,omitempty"`
	Disables            []string    `json:"disables,omitempty" yaml:"disables,omitempty"`
}

// HasComplexityTiers returns true if a complexity must be chosen for the item
func (c *CatalogItem) HasComplexityTiers() bool {
	return len(c.ComplexityTiers) > 0
}

// HasSubTypes returns true if at least one sub-type must be chosen for the item
func (c *CatalogItem) HasSubTypes() bool {
	return len(c.SubTypes) > 0
}

// HasSubOptions returns true if the item uses the checkbox/radio tree
func (c *CatalogItem) HasSubOptions() bool {
	return len(c.SubOptions) > 0
}

// Tier finds a complexity tier of the item by id
func (c *CatalogItem) Tier(id string) (*Tier, bool) {
	return findTier(c.ComplexityTiers, id)
}

// SubType finds a sub-type of the item by id
func (c *CatalogItem) SubType(id string) (*SubType, bool) {
	for i := range c.SubTypes {
		if c.SubTypes[i].ID == id {
			return &c.SubTypes[i], true
		}
	}
	return nil, false
}

// SubOption finds a checkbox sub-option of the item by id
func (c *CatalogItem) SubOption(id string) (*SubOption, bool) {
	for i := range c.SubOptions {
		if c.SubOptions[i].ID == id {
			return &c.SubOptions[i], true
		}
	}
	return nil, false
}

// DirectRadio finds an item-level radio by id
func (c *CatalogItem) DirectRadio(id string) (*Radio, bool) {
	return findRadio(c.DirectRadios, id)
}

// DisablesName returns true if selecting this item blocks the item with the given name
func (c *CatalogItem) DisablesName(name string) bool {
	for _, n := range c.Disables {
		if n == name {
			return true
		}
	}
	return false
}

// Tier finds a complexity tier of the sub-type by id
func (s *SubType) Tier(id string) (*Tier, bool) {
	return findTier(s.ComplexityTiers, id)
}

// HasComplexityTiers returns true if a complexity must be chosen for the sub-type
func (s *SubType) HasComplexityTiers() bool {
	return len(s.ComplexityTiers) > 0
}

// Radio finds a radio of the sub-option by id
func (s *SubOption) Radio(id string) (*Radio, bool) {
	return findRadio(s.Radios, id)
}

// Catalog is an immutable, ordered collection of catalog items
type Catalog struct {
	Items []CatalogItem `json:"items" yaml:"items"`
}

// NewCatalog builds a catalog preserving item order
func NewCatalog(items []CatalogItem) *Catalog {
	return &Catalog{Items: items}
}

// Item finds a catalog item by id
func (c *Catalog) Item(id string) (*CatalogItem, bool) {
	for i := range c.Items {
		if c.Items[i].ID == id {
			return &c.Items[i], true
		}
	}
	return nil, false
}

// ItemByName finds a catalog item by display name; `disables` refers to items by name
func (c *Catalog) ItemByName(name string) (*CatalogItem, bool) {
	for i := range c.Items {
		if c.Items[i].Name == name {
			return &c.Items[i], true
		}
	}
	return nil, false
}

func findTier(tiers []Tier, id string) (*Tier, bool) {
	for i := range tiers {
		if tiers[i].ID == id {
			return &tiers[i], true
		}
	}
	return nil, false
}

func findRadio(radios []Radio, id string) (*Radio, bool) {
	for i := range radios {
		if radios[i].ID == id {
			return &radios[i], true
		}
	}
	return nil, false
}
