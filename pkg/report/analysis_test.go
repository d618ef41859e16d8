package report

import (
	"testing"
	"time"

	"github.com/AlexLimaDev-IA/estoque-da-casa/domain"
	"github.com/AlexLimaDev-IA/estoque-da-casa/entities"
	"github.com/google/uuid"
)

func TestPeriodStart(t *testing.T) {
	now := time.Date(2025, time.March, 20, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		period domain.ReportPeriod
		want   time.Time
	}{
		{domain.Period7Days, now.AddDate(0, 0, -7)},
		{domain.Period15Days, now.AddDate(0, 0, -15)},
		{domain.PeriodMonth, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)},
		{domain.PeriodYear, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		if got := PeriodStart(tt.period, now); !got.Equal(tt.want) {
			t.Errorf("PeriodStart(%q) = %v, want %v", tt.period, got, tt.want)
		}
	}
}

func TestStockAutonomy(t *testing.T) {
	product := func(current, avg float64) *entities.Product {
		return &entities.Product{
			ID:                 uuid.New(),
			CurrentQuantity:    current,
			AverageConsumption: avg,
		}
	}

	t.Run("bounded by the fastest depleting product", func(t *testing.T) {
		got := StockAutonomy([]*entities.Product{
			product(20, 1),
			product(10, 2),
		})
		if got.Days != 5 {
			t.Errorf("days = %d, want 5", got.Days)
		}
		if got.Tier != domain.AutonomyModerate {
			t.Errorf("tier = %q, want %q", got.Tier, domain.AutonomyModerate)
		}
	})

	t.Run("critical below three days", func(t *testing.T) {
		got := StockAutonomy([]*entities.Product{product(2, 1)})
		if got.Days != 2 || got.Tier != domain.AutonomyCritical {
			t.Errorf("got %+v, want 2 days critical", got)
		}
	})

	t.Run("moderate at the seven day boundary", func(t *testing.T) {
		got := StockAutonomy([]*entities.Product{product(7, 1)})
		if got.Days != 7 || got.Tier != domain.AutonomyModerate {
			t.Errorf("got %+v, want 7 days moderate", got)
		}
	})

	t.Run("comfortable above seven days", func(t *testing.T) {
		got := StockAutonomy([]*entities.Product{product(8, 1)})
		if got.Days != 8 || got.Tier != domain.AutonomyComfortable {
			t.Errorf("got %+v, want 8 days comfortable", got)
		}
	})

	t.Run("fractional days floor", func(t *testing.T) {
		got := StockAutonomy([]*entities.Product{product(5, 2)})
		if got.Days != 2 {
			t.Errorf("days = %d, want 2 (floored)", got.Days)
		}
	})

	t.Run("no consumption data", func(t *testing.T) {
		got := StockAutonomy([]*entities.Product{product(5, 0)})
		if got.Days != 0 || got.Tier != domain.AutonomyNoData {
			t.Errorf("got %+v, want no-data tier", got)
		}
	})
}

func TestPriceVariations(t *testing.T) {
	periodStart := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	before := periodStart.AddDate(0, 0, -10)
	inside := periodStart.AddDate(0, 0, 5)
	later := periodStart.AddDate(0, 0, 10)

	priced := func(currentPrice float64, points ...*entities.PricePoint) *entities.Product {
		return &entities.Product{
			ID:           uuid.New(),
			Name:         "Café",
			PricePerUnit: currentPrice,
			PriceHistory: points,
		}
	}
	point := func(price float64, date time.Time) *entities.PricePoint {
		return &entities.PricePoint{ID: uuid.New(), Price: price, Date: date}
	}

	t.Run("current price against reference before the period", func(t *testing.T) {
		p := priced(15, point(10, before), point(12, inside))
		got := PriceVariations([]*entities.Product{p}, periodStart)
		if len(got) != 1 {
			t.Fatalf("len = %d, want 1", len(got))
		}
		if got[0].OldPrice != 10 || got[0].NewPrice != 15 {
			t.Errorf("prices = %v -> %v, want 10 -> 15", got[0].OldPrice, got[0].NewPrice)
		}
		if got[0].ChangePercent != 50 {
			t.Errorf("change = %v, want 50", got[0].ChangePercent)
		}
	})

	t.Run("reference falls back to first point in period", func(t *testing.T) {
		p := priced(16, point(20, inside), point(18, later))
		got := PriceVariations([]*entities.Product{p}, periodStart)
		if len(got) != 1 {
			t.Fatalf("len = %d, want 1", len(got))
		}
		if got[0].OldPrice != 20 || got[0].NewPrice != 16 {
			t.Errorf("prices = %v -> %v, want 20 -> 16", got[0].OldPrice, got[0].NewPrice)
		}
		if got[0].ChangePercent != -20 {
			t.Errorf("change = %v, want -20", got[0].ChangePercent)
		}
	})

	t.Run("single in-period point is still reported", func(t *testing.T) {
		p := priced(14, point(10, before), point(12, inside))
		got := PriceVariations([]*entities.Product{p}, periodStart)
		if len(got) != 1 {
			t.Fatalf("len = %d, want 1", len(got))
		}
		if got[0].ChangePercent != 40 {
			t.Errorf("change = %v, want 40", got[0].ChangePercent)
		}
	})

	t.Run("single point carries no signal", func(t *testing.T) {
		p := priced(15, point(10, inside))
		if got := PriceVariations([]*entities.Product{p}, periodStart); len(got) != 0 {
			t.Errorf("len = %d, want 0", len(got))
		}
	})

	t.Run("no point inside the period", func(t *testing.T) {
		p := priced(15, point(10, before), point(12, before.AddDate(0, 0, 1)))
		if got := PriceVariations([]*entities.Product{p}, periodStart); len(got) != 0 {
			t.Errorf("len = %d, want 0", len(got))
		}
	})

	t.Run("non positive reference is skipped", func(t *testing.T) {
		p := priced(15, point(0, before), point(12, inside))
		if got := PriceVariations([]*entities.Product{p}, periodStart); len(got) != 0 {
			t.Errorf("len = %d, want 0", len(got))
		}
	})

	t.Run("ordered by change magnitude", func(t *testing.T) {
		small := priced(11, point(10, before), point(10, inside))
		big := priced(20, point(10, before), point(12, inside))
		got := PriceVariations([]*entities.Product{small, big}, periodStart)
		if len(got) != 2 {
			t.Fatalf("len = %d, want 2", len(got))
		}
		if got[0].ChangePercent != 100 || got[1].ChangePercent != 10 {
			t.Errorf("order = %v then %v, want 100 then 10", got[0].ChangePercent, got[1].ChangePercent)
		}
	})
}
