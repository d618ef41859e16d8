package shopping

import (
	"context"
	"time"

	"github.com/AlexLimaDev-IA/estoque-da-casa/entities"
	"gorm.io/gorm"
)

type (
	ShoppingRepository interface {
		GetManualEntries(ctx context.Context, userID string) ([]*entities.ShoppingListEntry, error)
		AddManualEntry(ctx context.Context, entry *entities.ShoppingListEntry) error
		RemoveManualEntry(ctx context.Context, userID string, productID string) error
		ClearManualEntries(ctx context.Context, userID string) error
		AppendPurchaseRecord(ctx context.Context, record *entities.PurchaseRecord) error
		GetPurchaseRecords(ctx context.Context, userID string) ([]*entities.PurchaseRecord, error)
		GetPurchaseRecordsSince(ctx context.Context, userID string, since time.Time) ([]*entities.PurchaseRecord, error)
	}

	shoppingRepository struct {
		db *gorm.DB
	}
)

func NewShoppingRepository(db *gorm.DB) ShoppingRepository {
	return &shoppingRepository{db: db}
}

func (r *shoppingRepository) GetManualEntries(ctx context.Context, userID string) ([]*entities.ShoppingListEntry, error) {
	var entries []*entities.ShoppingListEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_completed = ?", userID, false).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *shoppingRepository) AddManualEntry(ctx context.Context, entry *entities.ShoppingListEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *shoppingRepository) RemoveManualEntry(ctx context.Context, userID string, productID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&entities.ShoppingListEntry{}).Error
}

func (r *shoppingRepository) ClearManualEntries(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&entities.ShoppingListEntry{}).Error
}

func (r *shoppingRepository) AppendPurchaseRecord(ctx context.Context, record *entities.PurchaseRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *shoppingRepository) GetPurchaseRecords(ctx context.Context, userID string) ([]*entities.PurchaseRecord, error) {
	var records []*entities.PurchaseRecord
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date desc").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *shoppingRepository) GetPurchaseRecordsSince(ctx context.Context, userID string, since time.Time) ([]*entities.PurchaseRecord, error) {
	var records []*entities.PurchaseRecord
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, since).
		Order("date desc").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
