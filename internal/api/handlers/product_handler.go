package handlers

import (
	"strconv"

	"github.com/AlexLimaDev-IA/estoque-da-casa/domain"
	"github.com/AlexLimaDev-IA/estoque-da-casa/internal/api/presenters"
	"github.com/AlexLimaDev-IA/estoque-da-casa/pkg/product"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ProductHandler interface {
		AddProduct(c *fiber.Ctx) error
		UpdateProduct(c *fiber.Ctx) error
		DeleteProduct(c *fiber.Ctx) error
		GetProducts(c *fiber.Ctx) error
		GetProductDetails(c *fiber.Ctx) error
		ConsumeProduct(c *fiber.Ctx) error
		UploadProductImage(c *fiber.Ctx) error
		GetPriceHistory(c *fiber.Ctx) error
	}

	productHandler struct {
		productService product.ProductService
		validator      *validator.Validate
	}
)

func NewProductHandler(productService product.ProductService, validator *validator.Validate) ProductHandler {
	return &productHandler{
		productService: productService,
		validator:      validator,
	}
}

func (h *productHandler) AddProduct(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddProductRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddProduct, err)
	}

	res, err := h.productService.AddProduct(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddProduct, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddProduct)
}

func (h *productHandler) UpdateProduct(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	productID := c.Params("id")
	req := new(domain.UpdateProductRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateProduct, err)
	}

	res, err := h.productService.UpdateProduct(c.Context(), productID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateProduct, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateProduct)
}

func (h *productHandler) DeleteProduct(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	productID := c.Params("id")

	if err := h.productService.DeleteProduct(c.Context(), productID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteProduct, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteProduct)
}

func (h *productHandler) GetProducts(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	status := c.Query("status", "all")

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	items, count, err := h.productService.GetProducts(c.Context(), userID, status, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetProducts, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items": items,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetProducts)
}

func (h *productHandler) GetProductDetails(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	productID := c.Params("id")

	res, err := h.productService.GetProductByID(c.Context(), productID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetProducts, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetProducts)
}

func (h *productHandler) ConsumeProduct(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	productID := c.Params("id")
	req := new(domain.ConsumeProductRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedConsumeProduct, err)
	}

	res, err := h.productService.Consume(c.Context(), productID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedConsumeProduct, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessConsumeProduct)
}

func (h *productHandler) UploadProductImage(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	productID := c.Params("id")

	image, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImage, err)
	}

	req := domain.UploadProductImageRequest{ProductID: productID, Image: image}
	res, err := h.productService.UploadProductImage(c.Context(), req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImage, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUploadImage)
}

func (h *productHandler) GetPriceHistory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	productID := c.Params("id")

	res, err := h.productService.GetPriceHistory(c.Context(), productID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPriceHistory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPriceHistory)
}
