package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/canal-admin-api/internal/application/dto"
	"github.com/jhoicas/canal-admin-api/internal/application/exchange"
)

// ExchangeHandler maneja el registro de canjes.
type ExchangeHandler struct {
	uc *exchange.ExchangeUseCase
}

// NewExchangeHandler construye el handler.
func NewExchangeHandler(uc *exchange.ExchangeUseCase) *ExchangeHandler {
	return &ExchangeHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar canje
// @Tags         exchanges
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateExchangeRequest  true  "company, description, apply_tax, active, fechas YYYY-MM-DD opcionales"
// @Success      201   {object}  dto.ExchangeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/exchanges [post]
func (h *ExchangeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateExchangeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Add(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/exchanges (orden de registro)
func (h *ExchangeHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}
