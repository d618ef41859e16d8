package shopping

import (
	"sort"

	"github.com/AlexLimaDev-IA/estoque-da-casa/domain"
	"github.com/AlexLimaDev-IA/estoque-da-casa/entities"
)

// BuildPurchase assembles the purchase lines from confirmed quantities.
// Non-positive quantities and ids no longer present in stock are
// skipped. An empty result is an error: a purchase with nothing in it
// must not be recorded.
func BuildPurchase(products map[string]*entities.Product, quantities map[string]float64) ([]domain.PurchaseItem, float64, error) {
	productIDs := make([]string, 0, len(quantities))
	for productID := range quantities {
		productIDs = append(productIDs, productID)
	}
	sort.Strings(productIDs)

	items := make([]domain.PurchaseItem, 0, len(quantities))
	var totalAmount float64

	for _, productID := range productIDs {
		quantity := quantities[productID]
		if quantity <= 0 {
			continue
		}
		product, ok := products[productID]
		if !ok {
			continue
		}

		total := product.PricePerUnit * quantity
		items = append(items, domain.PurchaseItem{
			ProductID:   productID,
			ProductName: product.Name,
			Category:    domain.Category(product.Category),
			Quantity:    quantity,
			UnitPrice:   product.PricePerUnit,
			Total:       total,
		})
		totalAmount += total
	}

	if len(items) == 0 {
		return nil, 0, domain.ErrEmptyPurchase
	}

	return items, totalAmount, nil
}
