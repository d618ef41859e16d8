package product

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AlexLimaDev-IA/estoque-da-casa/domain"
	"github.com/AlexLimaDev-IA/estoque-da-casa/entities"
	"github.com/AlexLimaDev-IA/estoque-da-casa/internal/utils/storage"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ProductService interface {
		AddProduct(ctx context.Context, req domain.AddProductRequest, userID string) (domain.ProductResponse, error)
		UpdateProduct(ctx context.Context, id string, req domain.UpdateProductRequest, userID string) (domain.ProductResponse, error)
		DeleteProduct(ctx context.Context, id string, userID string) error
		GetProducts(ctx context.Context, userID string, status string, page, limit int) ([]domain.ProductResponse, int64, error)
		GetProductByID(ctx context.Context, id string, userID string) (domain.ProductResponse, error)
		Consume(ctx context.Context, id string, req domain.ConsumeProductRequest, userID string) (domain.ProductResponse, error)
		UploadProductImage(ctx context.Context, req domain.UploadProductImageRequest, userID string) (domain.ProductResponse, error)
		GetPriceHistory(ctx context.Context, id string, userID string) ([]domain.PricePointResponse, error)
	}

	productService struct {
		productRepository ProductRepository
		s3                storage.AwsS3
	}
)

func NewProductService(productRepository ProductRepository, s3 storage.AwsS3) ProductService {
	return &productService{
		productRepository: productRepository,
		s3:                s3,
	}
}

func (s *productService) AddProduct(ctx context.Context, req domain.AddProductRequest, userID string) (domain.ProductResponse, error) {
	if !domain.IsValidCategory(req.Category) {
		return domain.ProductResponse{}, domain.ErrInvalidCategory
	}
	if !domain.IsValidMeasurementUnit(req.MeasurementUnit) {
		return domain.ProductResponse{}, domain.ErrInvalidMeasurement
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ProductResponse{}, domain.ErrParseUUID
	}

	var expirationDate *time.Time
	if req.ExpirationDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ExpirationDate)
		if err != nil {
			return domain.ProductResponse{}, domain.ErrInvalidExpirationDate
		}
		expirationDate = &parsed
	}

	contentPerUnit := req.ContentPerUnit
	if contentPerUnit == "" {
		contentPerUnit = "1"
	}

	product := &entities.Product{
		ID:                 uuid.New(),
		UserID:             userUUID,
		Name:               req.Name,
		Category:           string(req.Category),
		Unit:               req.Unit,
		ContentPerUnit:     contentPerUnit,
		MeasurementUnit:    req.MeasurementUnit,
		CurrentQuantity:    req.CurrentQuantity,
		MinQuantity:        req.MinQuantity,
		PricePerUnit:       req.PricePerUnit,
		PricePerKg:         req.PricePerKg,
		IsEssential:        req.IsEssential,
		ConsumptionType:    string(req.ConsumptionType),
		ExpirationDate:     expirationDate,
		AverageConsumption: req.AverageConsumption,
	}

	product.Status = string(ClassifyStatus(product.CurrentQuantity, product.MinQuantity))
	s.recalculateUnitPrice(product)

	if err := s.productRepository.AddProduct(ctx, product); err != nil {
		return domain.ProductResponse{}, err
	}

	return toProductResponse(product), nil
}

func (s *productService) UpdateProduct(ctx context.Context, id string, req domain.UpdateProductRequest, userID string) (domain.ProductResponse, error) {
	product, err := s.getOwnedProduct(ctx, id, userID)
	if err != nil {
		return domain.ProductResponse{}, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Category != nil {
		if !domain.IsValidCategory(*req.Category) {
			return domain.ProductResponse{}, domain.ErrInvalidCategory
		}
		product.Category = string(*req.Category)
	}
	if req.Unit != nil {
		product.Unit = *req.Unit
	}
	if req.ContentPerUnit != nil {
		product.ContentPerUnit = *req.ContentPerUnit
	}
	if req.MeasurementUnit != nil {
		if !domain.IsValidMeasurementUnit(*req.MeasurementUnit) {
			return domain.ProductResponse{}, domain.ErrInvalidMeasurement
		}
		product.MeasurementUnit = *req.MeasurementUnit
	}
	if req.CurrentQuantity != nil {
		product.CurrentQuantity = *req.CurrentQuantity
	}
	if req.MinQuantity != nil {
		product.MinQuantity = *req.MinQuantity
	}
	if req.PricePerUnit != nil {
		product.PricePerUnit = *req.PricePerUnit
	}
	if req.PricePerKg != nil {
		product.PricePerKg = *req.PricePerKg
	}
	if req.IsEssential != nil {
		product.IsEssential = *req.IsEssential
	}
	if req.ConsumptionType != nil {
		product.ConsumptionType = string(*req.ConsumptionType)
	}
	if req.ExpirationDate != nil {
		if *req.ExpirationDate == "" {
			product.ExpirationDate = nil
		} else {
			parsed, err := time.Parse("2006-01-02", *req.ExpirationDate)
			if err != nil {
				return domain.ProductResponse{}, domain.ErrInvalidExpirationDate
			}
			product.ExpirationDate = &parsed
		}
	}
	if req.AverageConsumption != nil {
		product.AverageConsumption = *req.AverageConsumption
	}

	product.Status = string(ClassifyStatus(product.CurrentQuantity, product.MinQuantity))
	s.recalculateUnitPrice(product)

	if err := s.productRepository.UpdateProduct(ctx, product); err != nil {
		return domain.ProductResponse{}, err
	}

	return toProductResponse(product), nil
}

func (s *productService) DeleteProduct(ctx context.Context, id string, userID string) error {
	product, err := s.getOwnedProduct(ctx, id, userID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			// deleting an absent record is a no-op
			return nil
		}
		return err
	}

	if product.ImageURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(product.ImageURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.productRepository.DeleteProduct(ctx, id)
}

func (s *productService) GetProducts(ctx context.Context, userID string, status string, page, limit int) ([]domain.ProductResponse, int64, error) {
	products, count, err := s.productRepository.GetProducts(ctx, userID, status, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, toProductResponse(p))
	}

	return response, count, nil
}

func (s *productService) GetProductByID(ctx context.Context, id string, userID string) (domain.ProductResponse, error) {
	product, err := s.getOwnedProduct(ctx, id, userID)
	if err != nil {
		return domain.ProductResponse{}, err
	}
	return toProductResponse(product), nil
}

func (s *productService) Consume(ctx context.Context, id string, req domain.ConsumeProductRequest, userID string) (domain.ProductResponse, error) {
	product, err := s.getOwnedProduct(ctx, id, userID)
	if err != nil {
		return domain.ProductResponse{}, err
	}

	amount := req.Amount
	if amount <= 0 {
		amount = 1
	}

	ApplyConsumption(product, amount)

	if err := s.productRepository.UpdateProduct(ctx, product); err != nil {
		return domain.ProductResponse{}, err
	}

	return toProductResponse(product), nil
}

func (s *productService) UploadProductImage(ctx context.Context, req domain.UploadProductImageRequest, userID string) (domain.ProductResponse, error) {
	product, err := s.getOwnedProduct(ctx, req.ProductID, userID)
	if err != nil {
		return domain.ProductResponse{}, err
	}

	fileName := fmt.Sprintf("product-%s", product.ID.String())
	var objectKey string
	var uploadErr error

	if product.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(product.ImageURL)
		if existingKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "product-items", storage.AllowImage...)
		}
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "product-items", storage.AllowImage...)
	}

	if uploadErr != nil {
		return domain.ProductResponse{}, uploadErr
	}

	product.ImageURL = s.s3.GetPublicLinkKey(objectKey)

	if err := s.productRepository.UpdateProduct(ctx, product); err != nil {
		return domain.ProductResponse{}, err
	}

	return toProductResponse(product), nil
}

func (s *productService) GetPriceHistory(ctx context.Context, id string, userID string) ([]domain.PricePointResponse, error) {
	if _, err := s.getOwnedProduct(ctx, id, userID); err != nil {
		return nil, err
	}

	points, err := s.productRepository.GetPriceHistory(ctx, id)
	if err != nil {
		return nil, err
	}

	response := make([]domain.PricePointResponse, 0, len(points))
	for _, point := range points {
		response = append(response, domain.PricePointResponse{
			Price: point.Price,
			Date:  point.Date,
		})
	}

	return response, nil
}

func (s *productService) getOwnedProduct(ctx context.Context, id string, userID string) (*entities.Product, error) {
	product, err := s.productRepository.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}

	if product.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedAccess
	}

	return product, nil
}

// recalculateUnitPrice overwrites pricePerUnit with the derived per-kg
// value only when the product qualifies and the value actually changed,
// so user-entered prices and already-synced records stay untouched.
func (s *productService) recalculateUnitPrice(product *entities.Product) {
	price, ok := AutoUnitPrice(product)
	if !ok {
		return
	}
	if product.PricePerUnit != price {
		product.PricePerUnit = price
	}
}

func toProductResponse(p *entities.Product) domain.ProductResponse {
	expiration := ""
	if p.ExpirationDate != nil {
		expiration = p.ExpirationDate.Format("2006-01-02")
	}

	return domain.ProductResponse{
		ID:                 p.ID.String(),
		Name:               p.Name,
		Category:           domain.Category(p.Category),
		Unit:               p.Unit,
		ContentPerUnit:     p.ContentPerUnit,
		MeasurementUnit:    p.MeasurementUnit,
		CurrentQuantity:    p.CurrentQuantity,
		MinQuantity:        p.MinQuantity,
		PricePerUnit:       p.PricePerUnit,
		PricePerKg:         p.PricePerKg,
		IsEssential:        p.IsEssential,
		Status:             domain.Status(p.Status),
		ConsumptionType:    domain.ConsumptionType(p.ConsumptionType),
		ImageURL:           p.ImageURL,
		ExpirationDate:     expiration,
		AverageConsumption: p.AverageConsumption,
		CreatedAt:          p.CreatedAt,
	}
}
