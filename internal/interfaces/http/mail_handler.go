package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/canal-admin-api/internal/application/dto"
	"github.com/jhoicas/canal-admin-api/internal/application/notification"
	"github.com/jhoicas/canal-admin-api/internal/domain"
)

// MailHandler expone el envío de correos del tablero.
type MailHandler struct {
	uc *notification.MailUseCase
}

// NewMailHandler construye el handler.
func NewMailHandler(uc *notification.MailUseCase) *MailHandler {
	return &MailHandler{uc: uc}
}

// Send godoc
// @Summary      Enviar correo
// @Description  Devuelve el resultado de la entrega; un fallo del proveedor responde 502 con delivered=false.
// @Tags         mail
// @Accept       json
// @Produce      json
// @Param        body  body      dto.SendMailRequest  true  "to, subject, description y/o html"
// @Success      200   {object}  dto.DeliveryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.DeliveryResponse
// @Router       /api/mail [post]
func (h *MailHandler) Send(c *fiber.Ctx) error {
	var in dto.SendMailRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Send(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrDeliveryFailed) {
			return c.Status(fiber.StatusBadGateway).JSON(out)
		}
		return respondError(c, err)
	}
	return c.JSON(out)
}
