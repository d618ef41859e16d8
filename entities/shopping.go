package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ShoppingListEntry is a manually added shopping-list membership.
// Low-stock items are derived on the fly and never persisted here.
type ShoppingListEntry struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID         uuid.UUID `gorm:"index" json:"user_id"`
	ProductID      uuid.UUID `gorm:"index" json:"product_id"`
	NeededQuantity float64   `json:"needed_quantity"`
	IsCompleted    bool      `json:"is_completed"`

	User    *User    `gorm:"foreignKey:UserID"`
	Product *Product `gorm:"foreignKey:ProductID"`
	Timestamp
}

// PurchaseRecord is an append-only confirmed purchase. Items holds the
// line snapshot (domain.PurchaseItem slice) as a JSON column, matching
// the shape purchases are displayed with.
type PurchaseRecord struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID      `gorm:"index" json:"user_id"`
	Date        time.Time      `gorm:"type:timestamp" json:"date"`
	Items       datatypes.JSON `json:"items"`
	TotalAmount float64        `json:"total_amount"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
