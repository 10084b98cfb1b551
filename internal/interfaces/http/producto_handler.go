package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/agoramarket/agora-api/internal/application/dto"
	"github.com/agoramarket/agora-api/internal/application/market"
	"github.com/agoramarket/agora-api/internal/domain"
	"github.com/agoramarket/agora-api/internal/domain/entity"
)

// ProductoHandler maneja el catálogo de productos.
type ProductoHandler struct {
	uc *market.CatalogoUseCase
}

// NewProductoHandler construye el handler de catálogo.
func NewProductoHandler(uc *market.CatalogoUseCase) *ProductoHandler {
	return &ProductoHandler{uc: uc}
}

// Publicar godoc
// @Summary      Publicar un producto
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PublicarRequest  true  "nombre, descripcion, precio, stock, categoria"
// @Success      201   {object}  dto.PublicarResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/productos [post]
func (h *ProductoHandler) Publicar(c *fiber.Ctx) error {
	var in dto.PublicarRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	id, err := h.uc.Publicar(c.UserContext(), GetCuenta(c), market.PublicarInput{
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		Precio:      in.Precio,
		Stock:       in.Stock,
		Categoria:   in.Categoria,
	})
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.PublicarResponse{ID: id})
}

// Obtener godoc
// @Summary      Consultar un producto
// @Tags         productos
// @Produce      json
// @Param        id   path      int  true  "ID del producto"
// @Success      200  {object}  dto.ProductoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [get]
func (h *ProductoHandler) Obtener(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return responderError(c, domain.ErrInvalidParam)
	}
	producto, err := h.uc.ObtenerProducto(id)
	if err != nil {
		return responderError(c, err)
	}
	if producto == nil {
		return responderError(c, domain.ErrProductNotFound)
	}
	return c.JSON(toProductoResponse(producto))
}

// Listar godoc
// @Summary      Listar el catálogo (opcionalmente por vendedor)
// @Tags         productos
// @Produce      json
// @Param        vendedor  query     string  false  "filtrar por vendedor"
// @Success      200       {object}  dto.ProductoListResponse
// @Router       /api/productos [get]
func (h *ProductoHandler) Listar(c *fiber.Ctx) error {
	var productos []*entity.Producto
	var err error
	if vendedor := c.Query("vendedor"); vendedor != "" {
		productos, err = h.uc.ListarPorVendedor(vendedor)
	} else {
		productos, err = h.uc.Listar()
	}
	if err != nil {
		return responderError(c, err)
	}
	items := make([]dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		items = append(items, toProductoResponse(p))
	}
	return c.JSON(dto.ProductoListResponse{Items: items})
}

func toProductoResponse(p *entity.Producto) dto.ProductoResponse {
	return dto.ProductoResponse{
		ID:          p.ID,
		Vendedor:    p.Vendedor,
		Nombre:      p.Nombre,
		Descripcion: p.Descripcion,
		Categoria:   p.Categoria,
		Precio:      p.Precio,
		Stock:       p.Stock,
		CreatedAt:   p.CreatedAt,
	}
}

// parseID interpreta un path param como identificador u32.
func parseID(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(n), nil
}
