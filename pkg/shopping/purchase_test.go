package shopping

import (
	"errors"
	"testing"

	"github.com/AlexLimaDev-IA/estoque-da-casa/domain"
	"github.com/AlexLimaDev-IA/estoque-da-casa/entities"
	"github.com/google/uuid"
)

func TestBuildPurchase(t *testing.T) {
	arroz := newProduct("Arroz", 1, 4, domain.ConsumptionWhole)
	arroz.PricePerUnit = 25
	leite := newProduct("Leite", 0, 6, domain.ConsumptionWhole)
	leite.PricePerUnit = 5.5

	products := map[string]*entities.Product{
		arroz.ID.String(): arroz,
		leite.ID.String(): leite,
	}
	quantities := map[string]float64{
		arroz.ID.String(): 3,
		leite.ID.String(): 6,
	}

	items, total, err := BuildPurchase(products, quantities)
	if err != nil {
		t.Fatalf("BuildPurchase returned error: %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}
	if total != 25*3+5.5*6 {
		t.Errorf("total = %v, want %v", total, 25*3+5.5*6)
	}

	for _, item := range items {
		if item.ProductID == arroz.ID.String() && item.Total != 75 {
			t.Errorf("arroz line total = %v, want 75", item.Total)
		}
	}
}

func TestBuildPurchaseSkipsNonPositiveAndUnknown(t *testing.T) {
	arroz := newProduct("Arroz", 1, 4, domain.ConsumptionWhole)
	arroz.PricePerUnit = 10

	products := map[string]*entities.Product{arroz.ID.String(): arroz}
	quantities := map[string]float64{
		arroz.ID.String(): 2,
		"deleted-product": 5,
		uuid.NewString():  -1,
	}

	items, total, err := BuildPurchase(products, quantities)
	if err != nil {
		t.Fatalf("BuildPurchase returned error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("len(items) = %d, want 1", len(items))
	}
	if total != 20 {
		t.Errorf("total = %v, want 20", total)
	}
}

func TestBuildPurchaseEmptyIsError(t *testing.T) {
	arroz := newProduct("Arroz", 1, 4, domain.ConsumptionWhole)
	products := map[string]*entities.Product{arroz.ID.String(): arroz}

	_, _, err := BuildPurchase(products, map[string]float64{arroz.ID.String(): 0})
	if !errors.Is(err, domain.ErrEmptyPurchase) {
		t.Fatalf("err = %v, want %v", err, domain.ErrEmptyPurchase)
	}

	_, _, err = BuildPurchase(products, nil)
	if !errors.Is(err, domain.ErrEmptyPurchase) {
		t.Fatalf("err = %v, want %v", err, domain.ErrEmptyPurchase)
	}
}
