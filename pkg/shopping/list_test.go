package shopping

import (
	"testing"

	"github.com/AlexLimaDev-IA/estoque-da-casa/domain"
	"github.com/AlexLimaDev-IA/estoque-da-casa/entities"
	"github.com/google/uuid"
)

func newProduct(name string, current, min float64, consumption domain.ConsumptionType) *entities.Product {
	return &entities.Product{
		ID:              uuid.New(),
		Name:            name,
		Category:        string(domain.CategoryOutros),
		CurrentQuantity: current,
		MinQuantity:     min,
		ConsumptionType: string(consumption),
	}
}

func TestBuildListAutoDetection(t *testing.T) {
	low := newProduct("Arroz", 1, 4, domain.ConsumptionWhole)
	fine := newProduct("Feijão", 5, 2, domain.ConsumptionWhole)

	items := BuildList([]*entities.Product{low, fine}, nil)

	if len(items) != 1 {
		t.Fatalf("len(items) = %d, want 1", len(items))
	}
	if items[0].ID != low.ID.String() {
		t.Errorf("listed product = %s, want %s", items[0].Name, low.Name)
	}
	if items[0].IsManual {
		t.Error("auto-detected item must not be marked manual")
	}
	if items[0].NeededQuantity != 3 {
		t.Errorf("needed = %v, want 3", items[0].NeededQuantity)
	}
}

func TestBuildListNeededQuantity(t *testing.T) {
	t.Run("whole restores the minimum", func(t *testing.T) {
		p := newProduct("Leite", 0.5, 3, domain.ConsumptionWhole)
		items := BuildList([]*entities.Product{p}, nil)
		if len(items) != 1 || items[0].NeededQuantity != 3 {
			t.Fatalf("items = %+v, want one entry needing 3", items)
		}
	})

	t.Run("whole never suggests less than one", func(t *testing.T) {
		p := newProduct("Café", 1.9, 2, domain.ConsumptionWhole)
		items := BuildList([]*entities.Product{p}, nil)
		if len(items) != 1 || items[0].NeededQuantity != 1 {
			t.Fatalf("items = %+v, want one entry needing 1", items)
		}
	})

	t.Run("fractional suggests a single unit", func(t *testing.T) {
		p := newProduct("Queijo", 0, 5, domain.ConsumptionFractional)
		items := BuildList([]*entities.Product{p}, nil)
		if len(items) != 1 || items[0].NeededQuantity != 1 {
			t.Fatalf("items = %+v, want one entry needing 1", items)
		}
	})
}

func TestBuildListManualEntries(t *testing.T) {
	low := newProduct("Arroz", 0, 2, domain.ConsumptionWhole)
	stocked := newProduct("Azeite", 3, 1, domain.ConsumptionWhole)

	manual := map[string]bool{
		low.ID.String():     true,
		stocked.ID.String(): true,
	}

	items := BuildList([]*entities.Product{low, stocked}, manual)

	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}

	// Auto-detected entries come first and win over manual membership.
	if items[0].ID != low.ID.String() || items[0].IsManual {
		t.Errorf("first item = %+v, want auto entry for %s", items[0], low.Name)
	}
	if items[1].ID != stocked.ID.String() || !items[1].IsManual {
		t.Errorf("second item = %+v, want manual entry for %s", items[1], stocked.Name)
	}
	if items[1].NeededQuantity != 1 {
		t.Errorf("manual needed = %v, want 1", items[1].NeededQuantity)
	}
}

func TestEvaluateBudget(t *testing.T) {
	items := []domain.ShoppingItem{
		{ID: "a", PricePerUnit: 25, NeededQuantity: 4, IsEssential: true},
		{ID: "b", PricePerUnit: 50, NeededQuantity: 2},
	}

	summary := EvaluateBudget(items, nil, 150)

	if summary.Total != 200 {
		t.Errorf("total = %v, want 200", summary.Total)
	}
	if !summary.IsOverBudget {
		t.Error("expected over budget")
	}
	if summary.OverBudgetAmount != 50 {
		t.Errorf("over budget amount = %v, want 50", summary.OverBudgetAmount)
	}
	if summary.BudgetPercent != 100 {
		t.Errorf("percent = %v, want clamped 100", summary.BudgetPercent)
	}
	if summary.EssentialCount != 1 {
		t.Errorf("essential count = %d, want 1", summary.EssentialCount)
	}
}

func TestEvaluateBudgetUnderBudget(t *testing.T) {
	items := []domain.ShoppingItem{
		{ID: "a", PricePerUnit: 10, NeededQuantity: 5},
	}

	summary := EvaluateBudget(items, nil, 200)

	if summary.Total != 50 {
		t.Errorf("total = %v, want 50", summary.Total)
	}
	if summary.IsOverBudget {
		t.Error("expected under budget")
	}
	if summary.OverBudgetAmount != 0 {
		t.Errorf("over budget amount = %v, want 0", summary.OverBudgetAmount)
	}
	if summary.BudgetPercent != 25 {
		t.Errorf("percent = %v, want 25", summary.BudgetPercent)
	}
}

func TestEvaluateBudgetOverrides(t *testing.T) {
	items := []domain.ShoppingItem{
		{ID: "a", PricePerUnit: 10, NeededQuantity: 5},
	}

	summary := EvaluateBudget(items, map[string]float64{"a": 2}, 100)

	if summary.Total != 20 {
		t.Errorf("total = %v, want 20 with override", summary.Total)
	}
}

func TestEvaluateBudgetWithoutCeiling(t *testing.T) {
	items := []domain.ShoppingItem{
		{ID: "a", PricePerUnit: 10, NeededQuantity: 1},
	}

	summary := EvaluateBudget(items, nil, 0)

	if summary.BudgetPercent != 100 {
		t.Errorf("percent = %v, want 100 when spending against no ceiling", summary.BudgetPercent)
	}

	empty := EvaluateBudget(nil, nil, 0)
	if empty.BudgetPercent != 0 {
		t.Errorf("percent = %v, want 0 for empty list without ceiling", empty.BudgetPercent)
	}
}
