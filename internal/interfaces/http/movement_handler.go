package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/OnKodr-dev/inventory-app/internal/application/dto"
	"github.com/OnKodr-dev/inventory-app/internal/application/inventory"
	"github.com/OnKodr-dev/inventory-app/internal/application/snapshot"
	invrules "github.com/OnKodr-dev/inventory-app/internal/domain/inventory"
)

// MovementHandler maneja las peticiones HTTP del libro de movimientos.
type MovementHandler struct {
	ledger   *inventory.LedgerService
	stock    *inventory.StockService
	register *inventory.RegisterMovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(ledger *inventory.LedgerService, stock *inventory.StockService, register *inventory.RegisterMovementUseCase) *MovementHandler {
	return &MovementHandler{ledger: ledger, stock: stock, register: register}
}

// List godoc
// @Summary      Movimientos recientes
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "máximo de movimientos (0 = todos)"
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)
	if limit < 0 {
		return badRequest(c, "limit no puede ser negativo")
	}
	views := h.stock.RecentMovements(limit)
	return c.JSON(dto.MovementListResponse{
		State:     string(h.ledger.State()),
		Total:     len(views),
		Movements: toMovementViews(views),
	})
}

// Create godoc
// @Summary      Registrar movimiento
// @Description  IN/OUT exigen qty > 0, ADJUST qty distinto de 0, OUT no puede superar el stock.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "itemId, type, qty, note"
// @Success      201  {object}  dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	qty, ok := invrules.ParseQuantity(in.Qty.String())
	if !ok {
		return badRequest(c, "qty debe ser numérico")
	}
	m, err := h.register.RegisterMovement(c.Context(), inventory.RegisterMovementInput{
		ItemID: in.ItemID,
		Type:   in.Type,
		Qty:    qty,
		Note:   in.Note,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(m))
}

// Replace godoc
// @Summary      Reemplazar el libro completo
// @Description  Acepta un arreglo o {"movements": [...]}; cualquier otra forma se ignora (applied=false).
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.ReplaceResponse
// @Router       /api/movements [put]
func (h *MovementHandler) Replace(c *fiber.Ctx) error {
	d := snapshot.DecodeLedger(c.Body())
	if d.UseDefault {
		return c.JSON(dto.ReplaceResponse{Applied: false, Count: len(h.ledger.Movements())})
	}
	applied := h.ledger.ReplaceLedger(c.Context(), d.Data)
	return c.JSON(dto.ReplaceResponse{Applied: applied, Count: len(h.ledger.Movements())})
}

// Reset godoc
// @Summary      Restaurar el libro por defecto
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ReplaceResponse
// @Router       /api/movements/reset [post]
func (h *MovementHandler) Reset(c *fiber.Ctx) error {
	h.ledger.ResetLedger(c.Context())
	return c.JSON(dto.ReplaceResponse{Applied: true, Count: len(h.ledger.Movements())})
}
