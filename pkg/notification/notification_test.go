package notification

import (
	"fmt"
	"testing"
	"time"

	"github.com/AlexLimaDev-IA/estoque-da-casa/domain"
	"github.com/AlexLimaDev-IA/estoque-da-casa/entities"
	"github.com/google/uuid"
)

func newProduct(name string, current, min float64) *entities.Product {
	return &entities.Product{
		ID:              uuid.New(),
		Name:            name,
		CurrentQuantity: current,
		MinQuantity:     min,
	}
}

func TestGenerateStockAlerts(t *testing.T) {
	now := time.Now()
	out := newProduct("Arroz", 0, 2)
	low := newProduct("Feijão", 1, 3)
	fine := newProduct("Azeite", 5, 1)

	got := Generate([]*entities.Product{out, low, fine}, nil, nil, now)

	// out alert, low alert and the shopping summary
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}

	if got[0].ID != fmt.Sprintf("out_%s", out.ID) {
		t.Errorf("first id = %q, want out alert for %s", got[0].ID, out.Name)
	}
	if got[0].Type != domain.NotificationItemOut {
		t.Errorf("first type = %q, want %q", got[0].Type, domain.NotificationItemOut)
	}

	if got[1].ID != fmt.Sprintf("low_%s", low.ID) {
		t.Errorf("second id = %q, want low alert for %s", got[1].ID, low.Name)
	}
	if got[1].Type != domain.NotificationItemLow {
		t.Errorf("second type = %q, want %q", got[1].Type, domain.NotificationItemLow)
	}

	if got[2].ID != "list_ready" {
		t.Errorf("third id = %q, want list_ready", got[2].ID)
	}
	if got[2].Message != "Há 2 itens para comprar." {
		t.Errorf("summary message = %q", got[2].Message)
	}
}

func TestGenerateOutTakesPrecedenceOverLow(t *testing.T) {
	p := newProduct("Leite", 0, 5)

	got := Generate([]*entities.Product{p}, nil, nil, time.Now())

	for _, n := range got {
		if n.Type == domain.NotificationItemLow {
			t.Errorf("empty product produced a low alert: %+v", n)
		}
	}
}

func TestGenerateListReadyCountsManualItems(t *testing.T) {
	stocked := newProduct("Café", 4, 1)
	manual := map[string]bool{stocked.ID.String(): true}

	got := Generate([]*entities.Product{stocked}, manual, nil, time.Now())

	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].ID != "list_ready" {
		t.Errorf("id = %q, want list_ready", got[0].ID)
	}
	if got[0].Message != "Há 1 item para comprar." {
		t.Errorf("message = %q, want singular form", got[0].Message)
	}
}

func TestGenerateNothingToReport(t *testing.T) {
	fine := newProduct("Azeite", 5, 1)

	if got := Generate([]*entities.Product{fine}, nil, nil, time.Now()); len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestGenerateRespectsDismissals(t *testing.T) {
	out := newProduct("Arroz", 0, 2)
	dismissed := map[string]bool{
		fmt.Sprintf("out_%s", out.ID): true,
		"list_ready":                  true,
	}

	if got := Generate([]*entities.Product{out}, nil, dismissed, time.Now()); len(got) != 0 {
		t.Errorf("len = %d, want 0 after dismissal", len(got))
	}
}

func TestGenerateDeterministicIDs(t *testing.T) {
	out := newProduct("Arroz", 0, 2)

	first := Generate([]*entities.Product{out}, nil, nil, time.Now())
	second := Generate([]*entities.Product{out}, nil, nil, time.Now())

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("id %d differs between runs: %q vs %q", i, first[i].ID, second[i].ID)
		}
	}
}
