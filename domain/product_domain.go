package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

type (
	Category        string
	Status          string
	ConsumptionType string
)

const (
	CategoryMercearia  Category = "Mercearia"
	CategoryHortifruti Category = "Hortifrúti"
	CategoryCarnes     Category = "Carnes, aves e peixes"
	CategoryLaticinios Category = "Frios e laticínios"
	CategoryCongelados Category = "Congelados"
	CategoryPadaria    Category = "Padaria e confeitaria"
	CategoryBebidas    Category = "Bebidas"
	CategoryLimpeza    Category = "Limpeza doméstica"
	CategoryHigiene    Category = "Higiene pessoal"
	CategoryOutros     Category = "Outros"
)

const (
	StatusNormal   Status = "Em estoque"
	StatusWarning  Status = "Acabando"
	StatusCritical Status = "Sem estoque"
)

const (
	ConsumptionWhole      ConsumptionType = "WHOLE"
	ConsumptionFractional ConsumptionType = "FRACTIONAL"
)

// Categories lists every accepted product category, in display order.
var Categories = []Category{
	CategoryMercearia,
	CategoryHortifruti,
	CategoryCarnes,
	CategoryLaticinios,
	CategoryCongelados,
	CategoryPadaria,
	CategoryBebidas,
	CategoryLimpeza,
	CategoryHigiene,
	CategoryOutros,
}

// MeasurementUnits are the internal content units a product can declare.
var MeasurementUnits = []string{"kg", "g", "L", "ml", "un", "fatia", "dose"}

// PurchaseUnits is the suggestion list for purchase packaging labels.
// The field itself stays free-form.
var PurchaseUnits = []string{
	"Pacote", "Caixa", "Garrafa", "Lata", "Cartela", "Pote",
	"Saco", "Sacola", "Vidro", "Bandeja", "Unidade", "Rolo", "Bisnaga",
	"Barra", "Kit", "Fardo", "Galão",
}

func IsValidCategory(c Category) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

func IsValidMeasurementUnit(u string) bool {
	for _, v := range MeasurementUnits {
		if v == u {
			return true
		}
	}
	return false
}

var (
	MessageSuccessAddProduct      = "product added successfully"
	MessageSuccessUpdateProduct   = "product updated successfully"
	MessageSuccessDeleteProduct   = "product deleted successfully"
	MessageSuccessGetProducts     = "products retrieved successfully"
	MessageSuccessConsumeProduct  = "consumption registered successfully"
	MessageSuccessUploadImage     = "product image uploaded successfully"
	MessageSuccessGetPriceHistory = "price history retrieved successfully"

	MessageFailedAddProduct      = "failed to add product"
	MessageFailedUpdateProduct   = "failed to update product"
	MessageFailedDeleteProduct   = "failed to delete product"
	MessageFailedGetProducts     = "failed to retrieve products"
	MessageFailedConsumeProduct  = "failed to register consumption"
	MessageFailedUploadImage     = "failed to upload product image"
	MessageFailedGetPriceHistory = "failed to retrieve price history"

	ErrProductNotFound       = errors.New("product not found")
	ErrInvalidCategory       = errors.New("invalid category")
	ErrInvalidMeasurement    = errors.New("invalid measurement unit")
	ErrInvalidQuantity       = errors.New("quantity must not be negative")
	ErrInvalidConsumption    = errors.New("consumption amount must be positive")
	ErrInvalidExpirationDate = errors.New("invalid expiration date")
)

type (
	AddProductRequest struct {
		Name               string          `json:"name" validate:"required"`
		Category           Category        `json:"category" validate:"required"`
		Unit               string          `json:"unit" validate:"required"`
		ContentPerUnit     string          `json:"content_per_unit"`
		MeasurementUnit    string          `json:"measurement_unit" validate:"required"`
		CurrentQuantity    float64         `json:"current_quantity" validate:"min=0"`
		MinQuantity        float64         `json:"min_quantity" validate:"min=0"`
		PricePerUnit       float64         `json:"price_per_unit" validate:"min=0"`
		PricePerKg         float64         `json:"price_per_kg" validate:"min=0"`
		IsEssential        bool            `json:"is_essential"`
		ConsumptionType    ConsumptionType `json:"consumption_type" validate:"required,oneof=WHOLE FRACTIONAL"`
		ExpirationDate     string          `json:"expiration_date" validate:"omitempty"`
		AverageConsumption float64         `json:"average_consumption" validate:"min=0"`
	}

	UpdateProductRequest struct {
		Name               *string          `json:"name"`
		Category           *Category        `json:"category"`
		Unit               *string          `json:"unit"`
		ContentPerUnit     *string          `json:"content_per_unit"`
		MeasurementUnit    *string          `json:"measurement_unit"`
		CurrentQuantity    *float64         `json:"current_quantity" validate:"omitempty,min=0"`
		MinQuantity        *float64         `json:"min_quantity" validate:"omitempty,min=0"`
		PricePerUnit       *float64         `json:"price_per_unit" validate:"omitempty,min=0"`
		PricePerKg         *float64         `json:"price_per_kg" validate:"omitempty,min=0"`
		IsEssential        *bool            `json:"is_essential"`
		ConsumptionType    *ConsumptionType `json:"consumption_type" validate:"omitempty,oneof=WHOLE FRACTIONAL"`
		ExpirationDate     *string          `json:"expiration_date"`
		AverageConsumption *float64         `json:"average_consumption" validate:"omitempty,min=0"`
	}

	ConsumeProductRequest struct {
		Amount float64 `json:"amount" validate:"omitempty,gt=0"`
	}

	UploadProductImageRequest struct {
		ProductID string                `json:"product_id" form:"product_id" validate:"required,uuid"`
		Image     *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	ProductResponse struct {
		ID                 string          `json:"id"`
		Name               string          `json:"name"`
		Category           Category        `json:"category"`
		Unit               string          `json:"unit"`
		ContentPerUnit     string          `json:"content_per_unit"`
		MeasurementUnit    string          `json:"measurement_unit"`
		CurrentQuantity    float64         `json:"current_quantity"`
		MinQuantity        float64         `json:"min_quantity"`
		PricePerUnit       float64         `json:"price_per_unit"`
		PricePerKg         float64         `json:"price_per_kg,omitempty"`
		IsEssential        bool            `json:"is_essential"`
		Status             Status          `json:"status"`
		ConsumptionType    ConsumptionType `json:"consumption_type"`
		ImageURL           string          `json:"image_url,omitempty"`
		ExpirationDate     string          `json:"expiration_date,omitempty"`
		AverageConsumption float64         `json:"average_consumption"`
		CreatedAt          time.Time       `json:"created_at"`
	}

	PricePointResponse struct {
		Price float64   `json:"price"`
		Date  time.Time `json:"date"`
	}
)
