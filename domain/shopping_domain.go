package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetShoppingList = "shopping list retrieved successfully"
	MessageSuccessEvaluateBudget  = "budget evaluated successfully"
	MessageSuccessToggleItem      = "shopping list item toggled successfully"
	MessageSuccessConfirmPurchase = "purchase confirmed successfully"
	MessageSuccessPurchaseHistory = "purchase history retrieved successfully"

	MessageFailedGetShoppingList = "failed to retrieve shopping list"
	MessageFailedEvaluateBudget  = "failed to evaluate budget"
	MessageFailedToggleItem      = "failed to toggle shopping list item"
	MessageFailedConfirmPurchase = "failed to confirm purchase"
	MessageFailedPurchaseHistory = "failed to retrieve purchase history"

	ErrEmptyPurchase = errors.New("purchase has no items with positive quantity")
)

type (
	// ShoppingItem is a product projected onto the shopping list.
	ShoppingItem struct {
		ID              string          `json:"id"`
		Name            string          `json:"name"`
		Category        Category        `json:"category"`
		Unit            string          `json:"unit"`
		ImageURL        string          `json:"image_url,omitempty"`
		PricePerUnit    float64         `json:"price_per_unit"`
		CurrentQuantity float64         `json:"current_quantity"`
		MinQuantity     float64         `json:"min_quantity"`
		IsEssential     bool            `json:"is_essential"`
		ConsumptionType ConsumptionType `json:"consumption_type"`
		NeededQuantity  float64         `json:"needed_quantity"`
		IsManual        bool            `json:"is_manual"`
	}

	// BudgetSummary is the projected cost of the list against a ceiling.
	BudgetSummary struct {
		Total            float64 `json:"total"`
		Budget           float64 `json:"budget"`
		IsOverBudget     bool    `json:"is_over_budget"`
		OverBudgetAmount float64 `json:"over_budget_amount"`
		BudgetPercent    float64 `json:"budget_percent"`
		EssentialCount   int     `json:"essential_count"`
	}

	ShoppingListResponse struct {
		Items  []ShoppingItem `json:"items"`
		Budget *BudgetSummary `json:"budget,omitempty"`
	}

	// EvaluateBudgetRequest carries the edited per-product quantities
	// from the list screen so the projection reflects what the user
	// actually intends to buy, not the suggested amounts.
	EvaluateBudgetRequest struct {
		Budget     float64            `json:"budget" validate:"min=0"`
		Quantities map[string]float64 `json:"quantities" validate:"omitempty"`
	}

	ConfirmPurchaseRequest struct {
		Quantities map[string]float64 `json:"quantities" validate:"required"`
	}

	PurchaseItem struct {
		ProductID   string   `json:"product_id"`
		ProductName string   `json:"product_name"`
		Category    Category `json:"category"`
		Quantity    float64  `json:"quantity"`
		UnitPrice   float64  `json:"unit_price"`
		Total       float64  `json:"total"`
	}

	PurchaseRecordResponse struct {
		ID          string         `json:"id"`
		Date        time.Time      `json:"date"`
		Items       []PurchaseItem `json:"items"`
		TotalAmount float64        `json:"total_amount"`
	}
)
