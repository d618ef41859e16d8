package product

import (
	"testing"

	"github.com/AlexLimaDev-IA/estoque-da-casa/domain"
	"github.com/AlexLimaDev-IA/estoque-da-casa/entities"
	"github.com/google/uuid"
)

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		name    string
		current float64
		min     float64
		want    domain.Status
	}{
		{"zero quantity is critical", 0, 2, domain.StatusCritical},
		{"negative quantity is critical", -1, 2, domain.StatusCritical},
		{"at minimum is warning", 2, 2, domain.StatusWarning},
		{"below minimum is warning", 1, 2, domain.StatusWarning},
		{"above minimum is normal", 3, 2, domain.StatusNormal},
		{"zero minimum with stock is normal", 1, 0, domain.StatusNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyStatus(tt.current, tt.min); got != tt.want {
				t.Errorf("ClassifyStatus(%v, %v) = %q, want %q", tt.current, tt.min, got, tt.want)
			}
		})
	}
}

func TestParseContent(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"5", 5},
		{"2.5", 2.5},
		{"2,5", 2.5},
		{" 1.250 ", 1.25},
		{"", 0},
		{"abc", 0},
	}

	for _, tt := range tests {
		if got := ParseContent(tt.in); got != tt.want {
			t.Errorf("ParseContent(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAutoUnitPrice(t *testing.T) {
	base := func() *entities.Product {
		return &entities.Product{
			ID:              uuid.New(),
			ConsumptionType: string(domain.ConsumptionFractional),
			MeasurementUnit: "kg",
			ContentPerUnit:  "2",
			PricePerKg:      10,
			CurrentQuantity: 4,
		}
	}

	t.Run("kilogram content", func(t *testing.T) {
		price, ok := AutoUnitPrice(base())
		if !ok {
			t.Fatal("expected derivable price")
		}
		if price != 5 {
			t.Errorf("price = %v, want 5", price)
		}
	})

	t.Run("gram content divides by thousand", func(t *testing.T) {
		p := base()
		p.MeasurementUnit = "g"
		p.ContentPerUnit = "500"
		p.CurrentQuantity = 1

		price, ok := AutoUnitPrice(p)
		if !ok {
			t.Fatal("expected derivable price")
		}
		if price != 5 {
			t.Errorf("price = %v, want 5", price)
		}
	})

	t.Run("zero quantity falls back to one unit", func(t *testing.T) {
		p := base()
		p.CurrentQuantity = 0

		price, ok := AutoUnitPrice(p)
		if !ok {
			t.Fatal("expected derivable price")
		}
		if price != 20 {
			t.Errorf("price = %v, want 20", price)
		}
	})

	t.Run("whole consumption does not qualify", func(t *testing.T) {
		p := base()
		p.ConsumptionType = string(domain.ConsumptionWhole)
		if _, ok := AutoUnitPrice(p); ok {
			t.Error("expected no derived price for whole consumption")
		}
	})

	t.Run("volume unit does not qualify", func(t *testing.T) {
		p := base()
		p.MeasurementUnit = "L"
		if _, ok := AutoUnitPrice(p); ok {
			t.Error("expected no derived price for non-weight unit")
		}
	})

	t.Run("missing per kg price does not qualify", func(t *testing.T) {
		p := base()
		p.PricePerKg = 0
		if _, ok := AutoUnitPrice(p); ok {
			t.Error("expected no derived price without per-kg price")
		}
	})

	t.Run("unparseable content does not qualify", func(t *testing.T) {
		p := base()
		p.ContentPerUnit = "n/a"
		if _, ok := AutoUnitPrice(p); ok {
			t.Error("expected no derived price with invalid content")
		}
	})
}

func TestApplyConsumptionWhole(t *testing.T) {
	p := &entities.Product{
		ConsumptionType: string(domain.ConsumptionWhole),
		CurrentQuantity: 3,
		MinQuantity:     2,
	}

	ApplyConsumption(p, 10)

	if p.CurrentQuantity != 2 {
		t.Errorf("quantity = %v, want 2 (whole items drop exactly one)", p.CurrentQuantity)
	}
	if p.Status != string(domain.StatusWarning) {
		t.Errorf("status = %q, want %q", p.Status, domain.StatusWarning)
	}
}

func TestApplyConsumptionWholeFloorsAtZero(t *testing.T) {
	p := &entities.Product{
		ConsumptionType: string(domain.ConsumptionWhole),
		CurrentQuantity: 0,
		MinQuantity:     1,
	}

	ApplyConsumption(p, 1)

	if p.CurrentQuantity != 0 {
		t.Errorf("quantity = %v, want 0", p.CurrentQuantity)
	}
	if p.Status != string(domain.StatusCritical) {
		t.Errorf("status = %q, want %q", p.Status, domain.StatusCritical)
	}
}

func TestApplyConsumptionFractional(t *testing.T) {
	p := &entities.Product{
		ConsumptionType: string(domain.ConsumptionFractional),
		MeasurementUnit: "kg",
		ContentPerUnit:  "5",
		CurrentQuantity: 5,
		MinQuantity:     1,
	}

	ApplyConsumption(p, 2)

	if p.CurrentQuantity != 3 {
		t.Errorf("quantity = %v, want 3", p.CurrentQuantity)
	}
	if p.ContentPerUnit != "3.000" {
		t.Errorf("content = %q, want %q", p.ContentPerUnit, "3.000")
	}
	if p.Status != string(domain.StatusNormal) {
		t.Errorf("status = %q, want %q", p.Status, domain.StatusNormal)
	}
}

func TestApplyConsumptionFractionalOverdraw(t *testing.T) {
	p := &entities.Product{
		ConsumptionType: string(domain.ConsumptionFractional),
		MeasurementUnit: "un",
		CurrentQuantity: 1.5,
		MinQuantity:     1,
	}

	ApplyConsumption(p, 4)

	if p.CurrentQuantity != 0 {
		t.Errorf("quantity = %v, want 0", p.CurrentQuantity)
	}
	if p.Status != string(domain.StatusCritical) {
		t.Errorf("status = %q, want %q", p.Status, domain.StatusCritical)
	}
}

func TestApplyConsumptionFractionalEmptyIsNoop(t *testing.T) {
	p := &entities.Product{
		ConsumptionType: string(domain.ConsumptionFractional),
		MeasurementUnit: "kg",
		ContentPerUnit:  "0.000",
		CurrentQuantity: 0,
		MinQuantity:     1,
		Status:          string(domain.StatusCritical),
	}

	ApplyConsumption(p, 1)

	if p.CurrentQuantity != 0 {
		t.Errorf("quantity = %v, want 0", p.CurrentQuantity)
	}
	if p.ContentPerUnit != "0.000" {
		t.Errorf("content = %q, want unchanged", p.ContentPerUnit)
	}
}
