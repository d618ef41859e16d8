package shopping

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/AlexLimaDev-IA/estoque-da-casa/domain"
	"github.com/AlexLimaDev-IA/estoque-da-casa/entities"
	"github.com/AlexLimaDev-IA/estoque-da-casa/pkg/product"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type (
	ShoppingService interface {
		GetShoppingList(ctx context.Context, userID string, budget float64) (domain.ShoppingListResponse, error)
		EvaluateListBudget(ctx context.Context, userID string, req domain.EvaluateBudgetRequest) (domain.BudgetSummary, error)
		ToggleItem(ctx context.Context, userID string, productID string) (bool, error)
		ConfirmPurchase(ctx context.Context, req domain.ConfirmPurchaseRequest, userID string) (domain.PurchaseRecordResponse, error)
		GetPurchaseHistory(ctx context.Context, userID string) ([]domain.PurchaseRecordResponse, error)
	}

	shoppingService struct {
		shoppingRepository ShoppingRepository
		productRepository  product.ProductRepository
	}
)

func NewShoppingService(shoppingRepository ShoppingRepository, productRepository product.ProductRepository) ShoppingService {
	return &shoppingService{
		shoppingRepository: shoppingRepository,
		productRepository:  productRepository,
	}
}

func (s *shoppingService) GetShoppingList(ctx context.Context, userID string, budget float64) (domain.ShoppingListResponse, error) {
	products, err := s.productRepository.GetAllProducts(ctx, userID)
	if err != nil {
		return domain.ShoppingListResponse{}, err
	}

	manualIDs, err := s.manualIDSet(ctx, userID)
	if err != nil {
		return domain.ShoppingListResponse{}, err
	}

	items := BuildList(products, manualIDs)

	response := domain.ShoppingListResponse{Items: items}
	if budget > 0 {
		summary := EvaluateBudget(items, nil, budget)
		response.Budget = &summary
	}

	return response, nil
}

// EvaluateListBudget projects the current list against a spending
// ceiling using the caller's edited quantities in place of the
// suggested ones.
func (s *shoppingService) EvaluateListBudget(ctx context.Context, userID string, req domain.EvaluateBudgetRequest) (domain.BudgetSummary, error) {
	products, err := s.productRepository.GetAllProducts(ctx, userID)
	if err != nil {
		return domain.BudgetSummary{}, err
	}

	manualIDs, err := s.manualIDSet(ctx, userID)
	if err != nil {
		return domain.BudgetSummary{}, err
	}

	items := BuildList(products, manualIDs)
	return EvaluateBudget(items, req.Quantities, req.Budget), nil
}

// ToggleItem flips manual membership: present removes, absent adds.
// The returned bool reports whether the product is on the list after
// the call.
func (s *shoppingService) ToggleItem(ctx context.Context, userID string, productID string) (bool, error) {
	manualIDs, err := s.manualIDSet(ctx, userID)
	if err != nil {
		return false, err
	}

	if manualIDs[productID] {
		if err := s.shoppingRepository.RemoveManualEntry(ctx, userID, productID); err != nil {
			return true, err
		}
		return false, nil
	}

	p, err := s.productRepository.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, domain.ErrProductNotFound
		}
		return false, err
	}
	if p.UserID.String() != userID {
		return false, domain.ErrUnauthorizedAccess
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return false, domain.ErrParseUUID
	}

	entry := &entities.ShoppingListEntry{
		ID:             uuid.New(),
		UserID:         userUUID,
		ProductID:      p.ID,
		NeededQuantity: 1,
		IsCompleted:    false,
	}

	if err := s.shoppingRepository.AddManualEntry(ctx, entry); err != nil {
		return false, err
	}
	return true, nil
}

func (s *shoppingService) ConfirmPurchase(ctx context.Context, req domain.ConfirmPurchaseRequest, userID string) (domain.PurchaseRecordResponse, error) {
	products, err := s.productRepository.GetAllProducts(ctx, userID)
	if err != nil {
		return domain.PurchaseRecordResponse{}, err
	}

	byID := make(map[string]*entities.Product, len(products))
	for _, p := range products {
		byID[p.ID.String()] = p
	}

	items, totalAmount, err := BuildPurchase(byID, req.Quantities)
	if err != nil {
		return domain.PurchaseRecordResponse{}, err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.PurchaseRecordResponse{}, domain.ErrParseUUID
	}

	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return domain.PurchaseRecordResponse{}, err
	}

	now := time.Now()
	record := &entities.PurchaseRecord{
		ID:          uuid.New(),
		UserID:      userUUID,
		Date:        now,
		Items:       datatypes.JSON(itemsJSON),
		TotalAmount: totalAmount,
	}

	// The history insert gates everything else: if it fails, no stock
	// or price-history write happens.
	if err := s.shoppingRepository.AppendPurchaseRecord(ctx, record); err != nil {
		return domain.PurchaseRecordResponse{}, err
	}

	// Per-product updates are applied independently; a failure leaves
	// that product behind and the caller reconciles by refetching.
	for _, item := range items {
		p := byID[item.ProductID]

		point := &entities.PricePoint{
			ID:        uuid.New(),
			ProductID: p.ID,
			Price:     p.PricePerUnit,
			Date:      now,
		}
		if err := s.productRepository.AppendPricePoint(ctx, point); err != nil {
			log.Printf("Error appending price point for %s: %v", item.ProductID, err)
		}

		p.CurrentQuantity += item.Quantity
		// A confirmed purchase is assumed to resolve the shortage.
		p.Status = string(domain.StatusNormal)
		if err := s.productRepository.UpdateProduct(ctx, p); err != nil {
			log.Printf("Error updating product %s after purchase: %v", item.ProductID, err)
		}
	}

	if err := s.shoppingRepository.ClearManualEntries(ctx, userID); err != nil {
		log.Printf("Error clearing manual shopping entries: %v", err)
	}

	return domain.PurchaseRecordResponse{
		ID:          record.ID.String(),
		Date:        record.Date,
		Items:       items,
		TotalAmount: totalAmount,
	}, nil
}

func (s *shoppingService) GetPurchaseHistory(ctx context.Context, userID string) ([]domain.PurchaseRecordResponse, error) {
	records, err := s.shoppingRepository.GetPurchaseRecords(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ToPurchaseResponses(records), nil
}

// ToPurchaseResponses maps stored purchase rows, decoding the item
// snapshot column. Rows with a corrupt snapshot keep their totals and
// lose only the line detail.
func ToPurchaseResponses(records []*entities.PurchaseRecord) []domain.PurchaseRecordResponse {
	response := make([]domain.PurchaseRecordResponse, 0, len(records))
	for _, record := range records {
		var items []domain.PurchaseItem
		if err := json.Unmarshal(record.Items, &items); err != nil {
			log.Printf("Error decoding purchase items for %s: %v", record.ID, err)
		}
		response = append(response, domain.PurchaseRecordResponse{
			ID:          record.ID.String(),
			Date:        record.Date,
			Items:       items,
			TotalAmount: record.TotalAmount,
		})
	}
	return response
}

func (s *shoppingService) manualIDSet(ctx context.Context, userID string) (map[string]bool, error) {
	entries, err := s.shoppingRepository.GetManualEntries(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make(map[string]bool, len(entries))
	for _, entry := range entries {
		ids[entry.ProductID.String()] = true
	}
	return ids, nil
}
