package report

import (
	"math"
	"sort"
	"time"

	"github.com/AlexLimaDev-IA/estoque-da-casa/domain"
	"github.com/AlexLimaDev-IA/estoque-da-casa/entities"
)

// PeriodStart returns the lower bound of a report window relative to
// now. Month and year snap to calendar boundaries, the day windows are
// rolling.
func PeriodStart(period domain.ReportPeriod, now time.Time) time.Time {
	switch period {
	case domain.Period7Days:
		return now.AddDate(0, 0, -7)
	case domain.Period15Days:
		return now.AddDate(0, 0, -15)
	case domain.PeriodYear:
		return time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
	default:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	}
}

// StockAutonomy estimates how many days the pantry lasts, bounded by
// its fastest-depleting product. Products without a consumption
// average are ignored; when none has one the result is the no-data
// tier.
func StockAutonomy(products []*entities.Product) domain.StockAutonomy {
	days := math.MaxFloat64
	found := false

	for _, p := range products {
		if p.AverageConsumption <= 0 {
			continue
		}
		found = true
		autonomy := p.CurrentQuantity / p.AverageConsumption
		if autonomy < days {
			days = autonomy
		}
	}

	if !found {
		return domain.StockAutonomy{Days: 0, Tier: domain.AutonomyNoData}
	}

	result := domain.StockAutonomy{Days: int(math.Floor(days))}
	switch {
	case result.Days < 3:
		result.Tier = domain.AutonomyCritical
	case result.Days <= 7:
		result.Tier = domain.AutonomyModerate
	default:
		result.Tier = domain.AutonomyComfortable
	}
	return result
}

// PriceVariations compares each product's current unit price against a
// reference taken from its price history: the last point before the
// period, falling back to the first point inside it. Products with
// fewer than two price points, none inside the period, or a
// non-positive reference carry no comparable signal and are skipped.
// The result is ordered by the magnitude of the change.
func PriceVariations(products []*entities.Product, periodStart time.Time) []domain.PriceVariation {
	variations := make([]domain.PriceVariation, 0)

	for _, p := range products {
		if len(p.PriceHistory) < 2 {
			continue
		}

		var reference *entities.PricePoint
		var inPeriod []*entities.PricePoint
		for _, point := range p.PriceHistory {
			if point.Date.Before(periodStart) {
				reference = point
			} else {
				inPeriod = append(inPeriod, point)
			}
		}

		if len(inPeriod) == 0 {
			continue
		}
		if reference == nil {
			reference = inPeriod[0]
		}
		if reference.Price <= 0 {
			continue
		}

		change := (p.PricePerUnit - reference.Price) / reference.Price * 100
		variations = append(variations, domain.PriceVariation{
			ProductID:     p.ID.String(),
			Name:          p.Name,
			Category:      domain.Category(p.Category),
			Unit:          p.Unit,
			OldPrice:      reference.Price,
			NewPrice:      p.PricePerUnit,
			ChangePercent: math.Round(change*100) / 100,
		})
	}

	sort.SliceStable(variations, func(i, j int) bool {
		return math.Abs(variations[i].ChangePercent) > math.Abs(variations[j].ChangePercent)
	})
	return variations
}
