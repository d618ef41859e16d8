package handlers

import (
	"github.com/AlexLimaDev-IA/estoque-da-casa/domain"
	"github.com/AlexLimaDev-IA/estoque-da-casa/internal/api/presenters"
	"github.com/AlexLimaDev-IA/estoque-da-casa/pkg/notification"
	"github.com/gofiber/fiber/v2"
)

type (
	NotificationHandler interface {
		GetNotifications(c *fiber.Ctx) error
		DismissNotification(c *fiber.Ctx) error
		DismissAllNotifications(c *fiber.Ctx) error
	}

	notificationHandler struct {
		notificationService notification.NotificationService
	}
)

func NewNotificationHandler(notificationService notification.NotificationService) NotificationHandler {
	return &notificationHandler{notificationService: notificationService}
}

func (h *notificationHandler) GetNotifications(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.notificationService.GetNotifications(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetNotifications, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetNotifications)
}

func (h *notificationHandler) DismissNotification(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	notificationID := c.Params("id")

	if err := h.notificationService.Dismiss(c.Context(), userID, notificationID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDismiss, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDismiss)
}

func (h *notificationHandler) DismissAllNotifications(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.notificationService.DismissAll(c.Context(), userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDismiss, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDismissAll)
}
