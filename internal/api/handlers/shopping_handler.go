package handlers

import (
	"strconv"

	"github.com/AlexLimaDev-IA/estoque-da-casa/domain"
	"github.com/AlexLimaDev-IA/estoque-da-casa/internal/api/presenters"
	"github.com/AlexLimaDev-IA/estoque-da-casa/pkg/shopping"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ShoppingHandler interface {
		GetShoppingList(c *fiber.Ctx) error
		EvaluateBudget(c *fiber.Ctx) error
		ToggleItem(c *fiber.Ctx) error
		ConfirmPurchase(c *fiber.Ctx) error
		GetPurchaseHistory(c *fiber.Ctx) error
	}

	shoppingHandler struct {
		shoppingService shopping.ShoppingService
		validator       *validator.Validate
	}
)

func NewShoppingHandler(shoppingService shopping.ShoppingService, validator *validator.Validate) ShoppingHandler {
	return &shoppingHandler{
		shoppingService: shoppingService,
		validator:       validator,
	}
}

func (h *shoppingHandler) GetShoppingList(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	budget, err := strconv.ParseFloat(c.Query("budget", "0"), 64)
	if err != nil || budget < 0 {
		budget = 0
	}

	res, err := h.shoppingService.GetShoppingList(c.Context(), userID, budget)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetShoppingList, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetShoppingList)
}

func (h *shoppingHandler) EvaluateBudget(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.EvaluateBudgetRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedEvaluateBudget, err)
	}

	res, err := h.shoppingService.EvaluateListBudget(c.Context(), userID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedEvaluateBudget, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessEvaluateBudget)
}

func (h *shoppingHandler) ToggleItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	productID := c.Params("id")

	onList, err := h.shoppingService.ToggleItem(c.Context(), userID, productID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedToggleItem, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"on_list": onList}, fiber.StatusOK, domain.MessageSuccessToggleItem)
}

func (h *shoppingHandler) ConfirmPurchase(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.ConfirmPurchaseRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedConfirmPurchase, err)
	}

	res, err := h.shoppingService.ConfirmPurchase(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedConfirmPurchase, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessConfirmPurchase)
}

func (h *shoppingHandler) GetPurchaseHistory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.shoppingService.GetPurchaseHistory(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPurchaseHistory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessPurchaseHistory)
}
