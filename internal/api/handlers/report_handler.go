package handlers

import (
	"github.com/AlexLimaDev-IA/estoque-da-casa/domain"
	"github.com/AlexLimaDev-IA/estoque-da-casa/internal/api/presenters"
	"github.com/AlexLimaDev-IA/estoque-da-casa/pkg/report"
	"github.com/gofiber/fiber/v2"
)

type (
	ReportHandler interface {
		GetSpendingReport(c *fiber.Ctx) error
	}

	reportHandler struct {
		reportService report.ReportService
	}
)

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandler{reportService: reportService}
}

func (h *reportHandler) GetSpendingReport(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	period := domain.ReportPeriod(c.Query("period", string(domain.PeriodMonth)))

	res, err := h.reportService.GetSpendingReport(c.Context(), userID, period)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetReport, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReport)
}
