package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/OnKodr-dev/inventory-app/internal/application/dto"
	"github.com/OnKodr-dev/inventory-app/internal/application/inventory"
	"github.com/OnKodr-dev/inventory-app/internal/application/snapshot"
	invrules "github.com/OnKodr-dev/inventory-app/internal/domain/inventory"
	"github.com/OnKodr-dev/inventory-app/internal/infrastructure/xmlexport"
)

// ItemHandler maneja las peticiones HTTP del catálogo.
type ItemHandler struct {
	catalog *inventory.CatalogService
	stock   *inventory.StockService
}

// NewItemHandler construye el handler.
func NewItemHandler(catalog *inventory.CatalogService, stock *inventory.StockService) *ItemHandler {
	return &ItemHandler{catalog: catalog, stock: stock}
}

// List godoc
// @Summary      Listar artículos con stock
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        filter  query  string  false  "ALL | LOW | OUT"
// @Success      200  {object}  dto.ItemListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	filter, err := invrules.ParseStockFilter(c.Query("filter"))
	if err != nil {
		return badRequest(c, "filter debe ser ALL, LOW u OUT")
	}
	levels, counts := h.stock.Levels(filter)
	return c.JSON(dto.ItemListResponse{
		Filter: string(filter),
		Items:  toLevelResponses(levels),
		Counts: toCountsResponse(counts),
	})
}

// GetByID godoc
// @Summary      Obtener artículo con su stock
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del artículo"
// @Success      200  {object}  dto.StockLevelResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [get]
func (h *ItemHandler) GetByID(c *fiber.Ctx) error {
	lvl, ok := h.stock.Level(c.Params("id"))
	if !ok {
		return notFound(c)
	}
	return c.JSON(toLevelResponse(lvl))
}

// Create godoc
// @Summary      Crear artículo
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "name, sku, unit, minStock"
// @Success      201  {object}  dto.ItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/items [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	item, err := h.catalog.AddItem(c.Context(), invrules.ItemInput{
		Name:     in.Name,
		SKU:      in.SKU,
		Unit:     in.Unit,
		MinStock: in.MinStock.String(),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toItemResponse(item))
}

// Update godoc
// @Summary      Actualizar artículo (parcial)
// @Description  Los campos vacíos conservan su valor; minStock no numérico se ignora.
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del artículo"
// @Param        body  body  dto.UpdateItemRequest   true  "campos a cambiar"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [patch]
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	item, found, err := h.catalog.UpdateItem(c.Context(), c.Params("id"), invrules.ItemPatch{
		Name:     in.Name,
		SKU:      in.SKU,
		Unit:     in.Unit,
		MinStock: in.MinStock.String(),
	})
	if err != nil {
		return writeError(c, err)
	}
	if !found {
		return notFound(c)
	}
	return c.JSON(toItemResponse(item))
}

// Delete godoc
// @Summary      Borrar artículo
// @Tags         items
// @Security     Bearer
// @Param        id   path  string  true  "ID del artículo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [delete]
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	removed, err := h.catalog.DeleteItem(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if !removed {
		return notFound(c)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Replace godoc
// @Summary      Reemplazar el catálogo completo
// @Description  Acepta un arreglo JSON, un objeto {"items": [...]} o XML (<items><item .../></items>).
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Accept       xml
// @Produce      json
// @Success      200  {object}  dto.ReplaceResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/items [put]
func (h *ItemHandler) Replace(c *fiber.Ctx) error {
	var entries []invrules.ItemEntry
	if strings.Contains(c.Get(fiber.HeaderContentType), "xml") {
		decoded, err := xmlexport.DecodeCatalog(c.Body())
		if err != nil {
			return badRequest(c, "XML de catálogo inválido")
		}
		entries = decoded
	} else {
		d := snapshot.DecodeCatalog(c.Body())
		if d.UseDefault {
			return badRequest(c, "se esperaba un arreglo de artículos")
		}
		entries = d.Data
	}
	if err := h.catalog.ReplaceCatalog(c.Context(), entries); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ReplaceResponse{Applied: true, Count: len(h.catalog.Items())})
}

// Reset godoc
// @Summary      Restaurar el catálogo por defecto
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ReplaceResponse
// @Router       /api/items/reset [post]
func (h *ItemHandler) Reset(c *fiber.Ctx) error {
	h.catalog.ResetCatalog(c.Context())
	return c.JSON(dto.ReplaceResponse{Applied: true, Count: len(h.catalog.Items())})
}
