package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/canal-admin-api/internal/application/report"
)

// ReportHandler endpoints de reportes del tablero.
type ReportHandler struct {
	uc *report.SummaryUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.SummaryUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// GetSummary devuelve los KPIs actuales de facturación, inventario y canjes.
// GET /api/reports/summary
//
// Respuesta: DashboardSummaryDTO. No requiere parámetros.
func (h *ReportHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
