package shopping

import (
	"math"

	"github.com/AlexLimaDev-IA/estoque-da-casa/domain"
	"github.com/AlexLimaDev-IA/estoque-da-casa/entities"
)

// BuildList derives the shopping list from current stock plus manual
// membership. Low-stock items come first, in product order; manually
// added products follow, unless already auto-detected (auto wins, a
// product never appears twice).
func BuildList(products []*entities.Product, manualIDs map[string]bool) []domain.ShoppingItem {
	items := make([]domain.ShoppingItem, 0, len(products))
	autoIDs := make(map[string]bool, len(products))

	for _, p := range products {
		if p.CurrentQuantity >= p.MinQuantity {
			continue
		}
		autoIDs[p.ID.String()] = true
		items = append(items, toShoppingItem(p, neededQuantity(p), false))
	}

	for _, p := range products {
		id := p.ID.String()
		if !manualIDs[id] || autoIDs[id] {
			continue
		}
		items = append(items, toShoppingItem(p, 1, true))
	}

	return items
}

// neededQuantity suggests how many purchase units restore the minimum.
// Fractional shortfall does not convert to a purchase count, so
// fractional items always suggest a single unit.
func neededQuantity(p *entities.Product) float64 {
	if domain.ConsumptionType(p.ConsumptionType) == domain.ConsumptionWhole {
		return math.Max(1, math.Ceil(p.MinQuantity-p.CurrentQuantity))
	}
	return 1
}

// EvaluateBudget projects the cost of the list against a spending
// ceiling. The percent is clamped to 100 for the progress indicator;
// overage is reported separately.
func EvaluateBudget(items []domain.ShoppingItem, overrides map[string]float64, budget float64) domain.BudgetSummary {
	var total float64
	essentials := 0

	for _, item := range items {
		quantity := item.NeededQuantity
		if override, ok := overrides[item.ID]; ok {
			quantity = override
		}
		total += item.PricePerUnit * quantity
		if item.IsEssential {
			essentials++
		}
	}

	percent := 0.0
	switch {
	case budget > 0:
		percent = math.Min(100, total/budget*100)
	case total > 0:
		percent = 100
	}

	return domain.BudgetSummary{
		Total:            total,
		Budget:           budget,
		IsOverBudget:     total > budget,
		OverBudgetAmount: math.Max(0, total-budget),
		BudgetPercent:    percent,
		EssentialCount:   essentials,
	}
}

func toShoppingItem(p *entities.Product, needed float64, manual bool) domain.ShoppingItem {
	return domain.ShoppingItem{
		ID:              p.ID.String(),
		Name:            p.Name,
		Category:        domain.Category(p.Category),
		Unit:            p.Unit,
		ImageURL:        p.ImageURL,
		PricePerUnit:    p.PricePerUnit,
		CurrentQuantity: p.CurrentQuantity,
		MinQuantity:     p.MinQuantity,
		IsEssential:     p.IsEssential,
		ConsumptionType: domain.ConsumptionType(p.ConsumptionType),
		NeededQuantity:  needed,
		IsManual:        manual,
	}
}
