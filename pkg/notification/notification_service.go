package notification

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/AlexLimaDev-IA/estoque-da-casa/domain"
	"github.com/AlexLimaDev-IA/estoque-da-casa/entities"
	"github.com/AlexLimaDev-IA/estoque-da-casa/pkg/product"
	"github.com/AlexLimaDev-IA/estoque-da-casa/pkg/shopping"
)

type (
	NotificationService interface {
		GetNotifications(ctx context.Context, userID string) ([]domain.AppNotification, error)
		Dismiss(ctx context.Context, userID string, notificationID string) error
		DismissAll(ctx context.Context, userID string) error
	}

	notificationService struct {
		productRepository  product.ProductRepository
		shoppingRepository shopping.ShoppingRepository

		mu        sync.RWMutex
		dismissed map[string]map[string]bool
	}
)

func NewNotificationService(productRepository product.ProductRepository, shoppingRepository shopping.ShoppingRepository) NotificationService {
	return &notificationService{
		productRepository:  productRepository,
		shoppingRepository: shoppingRepository,
		dismissed:          make(map[string]map[string]bool),
	}
}

// Generate derives the alert set from the current stock state. IDs are
// deterministic per product so a dismissal holds until the underlying
// condition changes.
func Generate(products []*entities.Product, manualIDs map[string]bool, dismissed map[string]bool, now time.Time) []domain.AppNotification {
	notifications := make([]domain.AppNotification, 0)

	shoppingCount := 0
	for _, p := range products {
		if p.CurrentQuantity < p.MinQuantity || manualIDs[p.ID.String()] {
			shoppingCount++
		}

		var n domain.AppNotification
		switch {
		case p.CurrentQuantity <= 0:
			n = domain.AppNotification{
				ID:       fmt.Sprintf("out_%s", p.ID),
				Category: domain.NotificationStock,
				Type:     domain.NotificationItemOut,
				Title:    "Sem Estoque",
				Message:  fmt.Sprintf("%s está sem estoque.", p.Name),
			}
		case p.CurrentQuantity <= p.MinQuantity:
			n = domain.AppNotification{
				ID:       fmt.Sprintf("low_%s", p.ID),
				Category: domain.NotificationStock,
				Type:     domain.NotificationItemLow,
				Title:    "Item Acabando",
				Message:  fmt.Sprintf("%s está abaixo do mínimo (%g/%g).", p.Name, p.CurrentQuantity, p.MinQuantity),
			}
		default:
			continue
		}

		if dismissed[n.ID] {
			continue
		}
		n.Timestamp = now
		notifications = append(notifications, n)
	}

	if shoppingCount > 0 && !dismissed["list_ready"] {
		unit := "itens"
		if shoppingCount == 1 {
			unit = "item"
		}
		notifications = append(notifications, domain.AppNotification{
			ID:        "list_ready",
			Category:  domain.NotificationShopping,
			Type:      domain.NotificationListReady,
			Title:     "Lista Pronta",
			Message:   fmt.Sprintf("Há %d %s para comprar.", shoppingCount, unit),
			Timestamp: now,
		})
	}

	return notifications
}

func (s *notificationService) GetNotifications(ctx context.Context, userID string) ([]domain.AppNotification, error) {
	products, err := s.productRepository.GetAllProducts(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries, err := s.shoppingRepository.GetManualEntries(ctx, userID)
	if err != nil {
		return nil, err
	}
	manualIDs := make(map[string]bool, len(entries))
	for _, entry := range entries {
		manualIDs[entry.ProductID.String()] = true
	}

	s.mu.RLock()
	dismissed := s.dismissed[userID]
	s.mu.RUnlock()

	return Generate(products, manualIDs, dismissed, time.Now()), nil
}

func (s *notificationService) Dismiss(ctx context.Context, userID string, notificationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dismissed[userID] == nil {
		s.dismissed[userID] = make(map[string]bool)
	}
	s.dismissed[userID][notificationID] = true
	return nil
}

func (s *notificationService) DismissAll(ctx context.Context, userID string) error {
	notifications, err := s.GetNotifications(ctx, userID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dismissed[userID] == nil {
		s.dismissed[userID] = make(map[string]bool)
	}
	for _, n := range notifications {
		s.dismissed[userID][n.ID] = true
	}
	return nil
}
