package engine

import (
	"github.com/m04kA/SMC-OrderIntakeService/internal/domain"
	"github.com/m04kA/SMC-OrderIntakeService/pkg/ptr"
)

const (
	itemClipping  = "clipping"
	itemRetouch   = "retouch"
	itemBgRemoval = "bg-removal"
	itemFormat    = "format"
	itemGhost     = "ghost"
)

// testCatalog каталог, покрывающий все виды вложенных опций
func testCatalog() *domain.Catalog {
	return domain.NewCatalog([]domain.CatalogItem{
		{
			ID:   itemClipping,
			Name: "Clipping Path",
			ComplexityTiers: []domain.Tier{
				{ID: "basic", Name: "Basic", Price: 5},
				{ID: "multi", Name: "Multi-clipping Path", Price: 15},
			},
			AcceptsFreeText:     true,
			FreeTextInstruction: ptr.Ptr("Name every path"),
		},
		{
			ID:   itemRetouch,
			Name: "Retouching",
			ComplexityTiers: []domain.Tier{
				{ID: "r-basic", Name: "Basic", Price: 2},
				{ID: "r-high", Name: "High-end", Price: 8},
			},
			SubTypes: []domain.SubType{
				{
					ID:   "skin",
					Name: "Skin Retouch",
					ComplexityTiers: []domain.Tier{
						{ID: "light", Name: "Light", Price: 1},
						{ID: "deep", Name: "Deep", Price: 3},
					},
				},
				{ID: "color", Name: "Color Correction", Price: ptr.Ptr(1.5)},
			},
		},
		{
			ID:        itemBgRemoval,
			Name:      "Background Removal",
			BasePrice: ptr.Ptr(0.5),
			SubOptions: []domain.SubOption{
				{
					ID:   "shadow",
					Name: "Drop Shadow",
					Radios: []domain.Radio{
						{ID: "natural", Name: "Natural"},
						{ID: "reflection", Name: "Reflection"},
					},
				},
				{ID: "white", Name: "White Background"},
			},
			AcceptsFreeText: true,
			Disables:        []string{"Clipping Path"},
		},
		{
			ID:        itemFormat,
			Name:      "Output Format",
			BasePrice: ptr.Ptr(0.0),
			DirectRadios: []domain.Radio{
				{ID: "jpg", Name: "JPEG"},
				{ID: "png", Name: "PNG"},
			},
		},
		{
			ID:   itemGhost,
			Name: "Ghost Mannequin",
		},
	})
}

// mustApply применяет цепочку операций и падает на первой ошибке
func mustApply(catalog *domain.Catalog, state domain.SelectionState, ops ...domain.Operation) domain.SelectionState {
	for _, op := range ops {
		next, err := Apply(catalog, state, op)
		if err != nil {
			panic(err)
		}
		state = next
	}
	return state
}

func toggle(itemID string) domain.Operation {
	return domain.Operation{Kind: domain.OpToggleItem, ItemID: itemID}
}
