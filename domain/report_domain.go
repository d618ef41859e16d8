package domain

import "errors"

type ReportPeriod string

const (
	Period7Days  ReportPeriod = "7d"
	Period15Days ReportPeriod = "15d"
	PeriodMonth  ReportPeriod = "month"
	PeriodYear   ReportPeriod = "year"
)

func IsValidReportPeriod(p ReportPeriod) bool {
	switch p {
	case Period7Days, Period15Days, PeriodMonth, PeriodYear:
		return true
	}
	return false
}

// AutonomyTier classifies how long the current stock lasts at the
// household's average consumption.
type AutonomyTier string

const (
	AutonomyNoData      AutonomyTier = "Sem dados"
	AutonomyCritical    AutonomyTier = "Estoque crítico"
	AutonomyModerate    AutonomyTier = "Estoque moderado"
	AutonomyComfortable AutonomyTier = "Estoque confortável"
)

var (
	MessageSuccessGetReport = "spending report retrieved successfully"
	MessageFailedGetReport  = "failed to retrieve spending report"

	ErrInvalidReportPeriod = errors.New("invalid report period")
)

type (
	StockAutonomy struct {
		Days int          `json:"days"`
		Tier AutonomyTier `json:"tier"`
	}

	CategorySpend struct {
		Category Category `json:"category"`
		Amount   float64  `json:"amount"`
	}

	PriceVariation struct {
		ProductID     string   `json:"product_id"`
		Name          string   `json:"name"`
		Category      Category `json:"category"`
		Unit          string   `json:"unit"`
		OldPrice      float64  `json:"old_price"`
		NewPrice      float64  `json:"new_price"`
		ChangePercent float64  `json:"change_percent"`
	}

	SpendingReportResponse struct {
		Period           ReportPeriod             `json:"period"`
		TotalSpent       float64                  `json:"total_spent"`
		PurchaseCount    int                      `json:"purchase_count"`
		ItemsInAlert     int                      `json:"items_in_alert"`
		ActiveCategories int                      `json:"active_categories"`
		SpendByCategory  []CategorySpend          `json:"spend_by_category"`
		PriceVariations  []PriceVariation         `json:"price_variations"`
		StockAutonomy    StockAutonomy            `json:"stock_autonomy"`
		Purchases        []PurchaseRecordResponse `json:"purchases"`
	}
)
