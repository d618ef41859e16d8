package report

import (
	"context"
	"sort"
	"time"

	"github.com/AlexLimaDev-IA/estoque-da-casa/domain"
	"github.com/AlexLimaDev-IA/estoque-da-casa/pkg/product"
	"github.com/AlexLimaDev-IA/estoque-da-casa/pkg/shopping"
)

type (
	ReportService interface {
		GetSpendingReport(ctx context.Context, userID string, period domain.ReportPeriod) (domain.SpendingReportResponse, error)
	}

	reportService struct {
		shoppingRepository shopping.ShoppingRepository
		productRepository  product.ProductRepository
	}
)

func NewReportService(shoppingRepository shopping.ShoppingRepository, productRepository product.ProductRepository) ReportService {
	return &reportService{
		shoppingRepository: shoppingRepository,
		productRepository:  productRepository,
	}
}

func (s *reportService) GetSpendingReport(ctx context.Context, userID string, period domain.ReportPeriod) (domain.SpendingReportResponse, error) {
	if !domain.IsValidReportPeriod(period) {
		return domain.SpendingReportResponse{}, domain.ErrInvalidReportPeriod
	}

	start := PeriodStart(period, time.Now())

	records, err := s.shoppingRepository.GetPurchaseRecordsSince(ctx, userID, start)
	if err != nil {
		return domain.SpendingReportResponse{}, err
	}

	purchases := shopping.ToPurchaseResponses(records)

	var totalSpent float64
	spendByCategory := make(map[domain.Category]float64)
	for _, purchase := range purchases {
		totalSpent += purchase.TotalAmount
		for _, item := range purchase.Items {
			spendByCategory[item.Category] += item.Total
		}
	}

	categories := make([]domain.CategorySpend, 0, len(spendByCategory))
	for category, amount := range spendByCategory {
		categories = append(categories, domain.CategorySpend{Category: category, Amount: amount})
	}
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Amount > categories[j].Amount
	})

	products, err := s.productRepository.GetProductsWithPriceHistory(ctx, userID)
	if err != nil {
		return domain.SpendingReportResponse{}, err
	}

	itemsInAlert := 0
	for _, p := range products {
		if p.CurrentQuantity < p.MinQuantity {
			itemsInAlert++
		}
	}

	return domain.SpendingReportResponse{
		Period:           period,
		TotalSpent:       totalSpent,
		PurchaseCount:    len(purchases),
		ItemsInAlert:     itemsInAlert,
		ActiveCategories: len(categories),
		SpendByCategory:  categories,
		PriceVariations:  PriceVariations(products, start),
		StockAutonomy:    StockAutonomy(products),
		Purchases:        purchases,
	}, nil
}
