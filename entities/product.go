package entities

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID             uuid.UUID  `json:"user_id"`
	Name               string     `json:"name"`
	Category           string     `json:"category"`
	Unit               string     `json:"unit"`             // purchase packaging label ("Pacote", "Caixa", ...)
	ContentPerUnit     string     `json:"content_per_unit"` // decimal-as-text, "." or "," separator
	MeasurementUnit    string     `json:"measurement_unit"` // kg, g, L, ml, un, fatia, dose
	CurrentQuantity    float64    `json:"current_quantity"`
	MinQuantity        float64    `json:"min_quantity"`
	PricePerUnit       float64    `json:"price_per_unit"`
	PricePerKg         float64    `json:"price_per_kg,omitempty"`
	IsEssential        bool       `json:"is_essential"`
	Status             string     `json:"status"`           // "Em estoque", "Acabando", "Sem estoque"
	ConsumptionType    string     `json:"consumption_type"` // "WHOLE", "FRACTIONAL"
	ImageURL           string     `json:"image_url,omitempty"`
	ExpirationDate     *time.Time `json:"expiration_date,omitempty"`
	AverageConsumption float64    `json:"average_consumption"` // purchase units per day, 0 = unknown

	User         *User         `gorm:"foreignKey:UserID"`
	PriceHistory []*PricePoint `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"price_history,omitempty"`
	Timestamp
}

// PricePoint is an immutable price snapshot appended at purchase time.
type PricePoint struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ProductID uuid.UUID `gorm:"index" json:"product_id"`
	Price     float64   `json:"price"`
	Date      time.Time `gorm:"type:timestamp" json:"date"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	Product *Product `gorm:"foreignKey:ProductID"`
}
