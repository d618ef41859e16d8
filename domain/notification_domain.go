package domain

import "time"

type (
	NotificationCategory string
	NotificationType     string
)

const (
	NotificationStock    NotificationCategory = "stock"
	NotificationShopping NotificationCategory = "shopping"
)

const (
	NotificationItemOut   NotificationType = "item_out"
	NotificationItemLow   NotificationType = "item_low"
	NotificationListReady NotificationType = "list_ready"
)

var (
	MessageSuccessGetNotifications = "notifications retrieved successfully"
	MessageSuccessDismiss          = "notification dismissed"
	MessageSuccessDismissAll       = "all notifications dismissed"

	MessageFailedGetNotifications = "failed to retrieve notifications"
	MessageFailedDismiss          = "failed to dismiss notification"
)

type (
	// AppNotification is derived from current state and never persisted.
	// The ID is deterministic ("out_<productId>", "low_<productId>",
	// "list_ready") so a dismissal keeps suppressing the same alert when
	// it is regenerated.
	AppNotification struct {
		ID        string               `json:"id"`
		Category  NotificationCategory `json:"category"`
		Type      NotificationType     `json:"type"`
		Title     string               `json:"title"`
		Message   string               `json:"message"`
		Timestamp time.Time            `json:"timestamp"`
	}

	DismissNotificationRequest struct {
		ID string `json:"id" validate:"required"`
	}
)
