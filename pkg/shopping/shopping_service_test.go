package shopping

import (
	"context"
	"testing"
	"time"

	"github.com/AlexLimaDev-IA/estoque-da-casa/domain"
	"github.com/AlexLimaDev-IA/estoque-da-casa/entities"
)

type stubProductRepository struct {
	products []*entities.Product
}

func (r *stubProductRepository) AddProduct(ctx context.Context, product *entities.Product) error {
	return nil
}

func (r *stubProductRepository) GetProductByID(ctx context.Context, id string) (*entities.Product, error) {
	for _, p := range r.products {
		if p.ID.String() == id {
			return p, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *stubProductRepository) UpdateProduct(ctx context.Context, product *entities.Product) error {
	return nil
}

func (r *stubProductRepository) DeleteProduct(ctx context.Context, id string) error { return nil }

func (r *stubProductRepository) GetProducts(ctx context.Context, userID string, status string, page, limit int) ([]*entities.Product, int64, error) {
	return r.products, int64(len(r.products)), nil
}

func (r *stubProductRepository) GetAllProducts(ctx context.Context, userID string) ([]*entities.Product, error) {
	return r.products, nil
}

func (r *stubProductRepository) GetProductsWithPriceHistory(ctx context.Context, userID string) ([]*entities.Product, error) {
	return r.products, nil
}

func (r *stubProductRepository) AppendPricePoint(ctx context.Context, point *entities.PricePoint) error {
	return nil
}

func (r *stubProductRepository) GetPriceHistory(ctx context.Context, productID string) ([]*entities.PricePoint, error) {
	return nil, nil
}

type stubShoppingRepository struct {
	entries []*entities.ShoppingListEntry
}

func (r *stubShoppingRepository) GetManualEntries(ctx context.Context, userID string) ([]*entities.ShoppingListEntry, error) {
	return r.entries, nil
}

func (r *stubShoppingRepository) AddManualEntry(ctx context.Context, entry *entities.ShoppingListEntry) error {
	return nil
}

func (r *stubShoppingRepository) RemoveManualEntry(ctx context.Context, userID string, productID string) error {
	return nil
}

func (r *stubShoppingRepository) ClearManualEntries(ctx context.Context, userID string) error {
	return nil
}

func (r *stubShoppingRepository) AppendPurchaseRecord(ctx context.Context, record *entities.PurchaseRecord) error {
	return nil
}

func (r *stubShoppingRepository) GetPurchaseRecords(ctx context.Context, userID string) ([]*entities.PurchaseRecord, error) {
	return nil, nil
}

func (r *stubShoppingRepository) GetPurchaseRecordsSince(ctx context.Context, userID string, since time.Time) ([]*entities.PurchaseRecord, error) {
	return nil, nil
}

func TestEvaluateListBudgetAppliesQuantityOverrides(t *testing.T) {
	arroz := newProduct("Arroz", 1, 4, domain.ConsumptionWhole)
	arroz.PricePerUnit = 10

	service := NewShoppingService(
		&stubShoppingRepository{},
		&stubProductRepository{products: []*entities.Product{arroz}},
	)

	summary, err := service.EvaluateListBudget(context.Background(), "user", domain.EvaluateBudgetRequest{
		Budget:     100,
		Quantities: map[string]float64{arroz.ID.String(): 2},
	})
	if err != nil {
		t.Fatalf("EvaluateListBudget returned error: %v", err)
	}

	// suggested needed is 3 (min 4, current 1); the override of 2 wins
	if summary.Total != 20 {
		t.Errorf("total = %v, want 20 from overridden quantity", summary.Total)
	}
	if summary.Budget != 100 {
		t.Errorf("budget = %v, want 100", summary.Budget)
	}
	if summary.IsOverBudget {
		t.Error("expected under budget")
	}
	if summary.BudgetPercent != 20 {
		t.Errorf("percent = %v, want 20", summary.BudgetPercent)
	}
}

func TestEvaluateListBudgetWithoutOverrides(t *testing.T) {
	arroz := newProduct("Arroz", 1, 4, domain.ConsumptionWhole)
	arroz.PricePerUnit = 10

	service := NewShoppingService(
		&stubShoppingRepository{},
		&stubProductRepository{products: []*entities.Product{arroz}},
	)

	summary, err := service.EvaluateListBudget(context.Background(), "user", domain.EvaluateBudgetRequest{Budget: 25})
	if err != nil {
		t.Fatalf("EvaluateListBudget returned error: %v", err)
	}

	if summary.Total != 30 {
		t.Errorf("total = %v, want 30 from suggested quantity", summary.Total)
	}
	if !summary.IsOverBudget {
		t.Error("expected over budget")
	}
	if summary.OverBudgetAmount != 5 {
		t.Errorf("over budget amount = %v, want 5", summary.OverBudgetAmount)
	}
}
