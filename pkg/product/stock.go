package product

import (
	"math"
	"strconv"
	"strings"

	"github.com/AlexLimaDev-IA/estoque-da-casa/domain"
	"github.com/AlexLimaDev-IA/estoque-da-casa/entities"
)

// ClassifyStatus maps stock quantities to the tri-state stock status.
// Quantity mutations must re-run this before persisting; the stored
// status is never an independent fact.
func ClassifyStatus(currentQuantity, minQuantity float64) domain.Status {
	switch {
	case currentQuantity <= 0:
		return domain.StatusCritical
	case currentQuantity <= minQuantity:
		return domain.StatusWarning
	default:
		return domain.StatusNormal
	}
}

// ParseContent parses a decimal-as-text content amount, accepting both
// "." and "," as decimal separator. Invalid or empty input yields 0.
func ParseContent(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// AutoUnitPrice derives the purchase-unit price from a per-kg price for
// weight-based fractional products. ok is false when the product does
// not qualify (whole consumption, non-weight unit, missing per-kg price
// or unparseable content), in which case the stored price must be left
// untouched.
func AutoUnitPrice(p *entities.Product) (float64, bool) {
	if domain.ConsumptionType(p.ConsumptionType) != domain.ConsumptionFractional {
		return 0, false
	}
	if p.MeasurementUnit != "kg" && p.MeasurementUnit != "g" {
		return 0, false
	}
	if p.PricePerKg <= 0 {
		return 0, false
	}

	weight := ParseContent(p.ContentPerUnit)
	if weight <= 0 {
		return 0, false
	}

	totalCost := weight * p.PricePerKg
	if p.MeasurementUnit == "g" {
		totalCost = (weight / 1000) * p.PricePerKg
	}

	quantity := math.Max(1, p.CurrentQuantity)
	return math.Round(totalCost/quantity*100) / 100, true
}

// ApplyConsumption registers one consumption event on the product.
// Whole items always drop exactly one purchase unit, ignoring amount.
// Fractional items drop by amount, floored at zero; consuming an empty
// fractional item is a no-op. Weight-based fractional items also shrink
// their remaining content proportionally so the internal figure stays
// consistent with the unit count. Status is reclassified afterwards.
func ApplyConsumption(p *entities.Product, amount float64) {
	switch domain.ConsumptionType(p.ConsumptionType) {
	case domain.ConsumptionFractional:
		initial := p.CurrentQuantity
		if initial <= 0 {
			return
		}
		newQuantity := math.Max(0, initial-amount)

		if p.MeasurementUnit == "kg" || p.MeasurementUnit == "g" {
			totalWeight := ParseContent(p.ContentPerUnit)
			if totalWeight > 0 {
				weightPerUnit := totalWeight / initial
				p.ContentPerUnit = strconv.FormatFloat(weightPerUnit*newQuantity, 'f', 3, 64)
			}
		}
		p.CurrentQuantity = newQuantity
	default:
		p.CurrentQuantity = math.Max(0, p.CurrentQuantity-1)
	}

	p.Status = string(ClassifyStatus(p.CurrentQuantity, p.MinQuantity))
}
