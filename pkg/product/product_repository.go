package product

import (
	"context"

	"github.com/AlexLimaDev-IA/estoque-da-casa/entities"
	"gorm.io/gorm"
)

type (
	ProductRepository interface {
		AddProduct(ctx context.Context, product *entities.Product) error
		GetProductByID(ctx context.Context, id string) (*entities.Product, error)
		UpdateProduct(ctx context.Context, product *entities.Product) error
		DeleteProduct(ctx context.Context, id string) error
		GetProducts(ctx context.Context, userID string, status string, page, limit int) ([]*entities.Product, int64, error)
		GetAllProducts(ctx context.Context, userID string) ([]*entities.Product, error)
		GetProductsWithPriceHistory(ctx context.Context, userID string) ([]*entities.Product, error)
		AppendPricePoint(ctx context.Context, point *entities.PricePoint) error
		GetPriceHistory(ctx context.Context, productID string) ([]*entities.PricePoint, error)
	}

	productRepository struct {
		db *gorm.DB
	}
)

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) AddProduct(ctx context.Context, product *entities.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) GetProductByID(ctx context.Context, id string) (*entities.Product, error) {
	var product entities.Product
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, product *entities.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepository) DeleteProduct(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Product{}).Error
}

func (r *productRepository) GetProducts(ctx context.Context, userID string, status string, page, limit int) ([]*entities.Product, int64, error) {
	var products []*entities.Product
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if status != "all" && status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Model(&entities.Product{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("name asc").Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, count, nil
}

func (r *productRepository) GetAllProducts(ctx context.Context, userID string) ([]*entities.Product, error) {
	var products []*entities.Product
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name asc").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) GetProductsWithPriceHistory(ctx context.Context, userID string) ([]*entities.Product, error) {
	var products []*entities.Product
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("PriceHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("date asc")
		}).
		Order("name asc").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) AppendPricePoint(ctx context.Context, point *entities.PricePoint) error {
	return r.db.WithContext(ctx).Create(point).Error
}

func (r *productRepository) GetPriceHistory(ctx context.Context, productID string) ([]*entities.PricePoint, error) {
	var points []*entities.PricePoint
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("date asc").
		Find(&points).Error; err != nil {
		return nil, err
	}
	return points, nil
}
