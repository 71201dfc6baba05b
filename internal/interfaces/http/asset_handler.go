package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/canal-admin-api/internal/application/dto"
	"github.com/jhoicas/canal-admin-api/internal/application/inventory"
)

// AssetHandler maneja las peticiones HTTP de inventario (activos y movimientos).
type AssetHandler struct {
	assets    *inventory.AssetUseCase
	movements *inventory.MovementUseCase
}

// NewAssetHandler construye el handler.
func NewAssetHandler(assets *inventory.AssetUseCase, movements *inventory.MovementUseCase) *AssetHandler {
	return &AssetHandler{assets: assets, movements: movements}
}

// Create godoc
// @Summary      Registrar activo
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateAssetRequest  true  "code, name, quantity inicial"
// @Success      201   {object}  dto.AssetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/assets [post]
func (h *AssetHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAssetRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.assets.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar activos
// @Tags         inventory
// @Produce      json
// @Param        limit   query     int  false  "máximo 100"
// @Param        offset  query     int  false  "desplazamiento"
// @Success      200     {array}   dto.AssetResponse
// @Router       /api/assets [get]
func (h *AssetHandler) List(c *fiber.Ctx) error {
	list, err := h.assets.List(c.UserContext(), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/assets/:id
func (h *AssetHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.assets.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ApplyMovement godoc
// @Summary      Registrar movimiento de inventario
// @Description  ENTRADA suma la cantidad; SALIDA la resta y falla con 409 si no hay stock suficiente.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "ID del activo"
// @Param        body  body      dto.MovementRequest  true  "quantity > 0, kind ENTRADA|SALIDA"
// @Success      200   {object}  dto.AssetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/assets/{id}/movements [post]
func (h *AssetHandler) ApplyMovement(c *fiber.Ctx) error {
	var in dto.MovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.movements.ApplyMovement(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
