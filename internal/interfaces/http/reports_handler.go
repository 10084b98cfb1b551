package http

import (
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/agoramarket/agora-api/internal/application/reports"
	"github.com/agoramarket/agora-api/internal/domain"
)

// ReportsHandler expone los reportes de solo lectura sobre el ledger.
type ReportsHandler struct {
	uc *reports.ReportsUseCase
}

// NewReportsHandler construye el handler de reportes.
func NewReportsHandler(uc *reports.ReportsUseCase) *ReportsHandler {
	return &ReportsHandler{uc: uc}
}

// TopVendedores godoc
// @Summary      Top de vendedores por reputación
// @Tags         reportes
// @Produce      json
// @Param        limite  query     int  false  "máximo de filas (default 5)"
// @Success      200     {array}   dto.TopReputacionDTO
// @Router       /api/reportes/top-vendedores [get]
func (h *ReportsHandler) TopVendedores(c *fiber.Ctx) error {
	out, err := h.uc.TopVendedores(limite(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// TopCompradores godoc
// @Summary      Top de compradores por reputación
// @Tags         reportes
// @Produce      json
// @Param        limite  query     int  false  "máximo de filas (default 5)"
// @Success      200     {array}   dto.TopReputacionDTO
// @Router       /api/reportes/top-compradores [get]
func (h *ReportsHandler) TopCompradores(c *fiber.Ctx) error {
	out, err := h.uc.TopCompradores(limite(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// ProductosMasVendidos godoc
// @Summary      Productos con más unidades vendidas (órdenes recibidas)
// @Tags         reportes
// @Produce      json
// @Param        limite  query     int  false  "máximo de filas (default 5)"
// @Success      200     {array}   dto.ProductoVendidoDTO
// @Router       /api/reportes/productos-mas-vendidos [get]
func (h *ReportsHandler) ProductosMasVendidos(c *fiber.Ctx) error {
	out, err := h.uc.ProductosMasVendidos(limite(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// EstadisticasCategorias godoc
// @Summary      Estadísticas agregadas por categoría
// @Tags         reportes
// @Produce      json
// @Success      200  {array}  dto.CategoriaStatsDTO
// @Router       /api/reportes/categorias [get]
func (h *ReportsHandler) EstadisticasCategorias(c *fiber.Ctx) error {
	out, err := h.uc.EstadisticasCategorias()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// EstadisticaCategoria godoc
// @Summary      Estadísticas de una categoría
// @Tags         reportes
// @Produce      json
// @Param        nombre  path      string  true  "nombre de la categoría"
// @Success      200     {object}  dto.CategoriaStatsDTO
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/reportes/categorias/{nombre} [get]
func (h *ReportsHandler) EstadisticaCategoria(c *fiber.Ctx) error {
	nombre, err := urlParam(c, "nombre")
	if err != nil {
		return responderError(c, err)
	}
	out, err := h.uc.EstadisticaCategoria(nombre)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// OrdenesDeUsuario godoc
// @Summary      Conteos de órdenes de una cuenta (sin exponer el listado)
// @Tags         reportes
// @Produce      json
// @Param        cuenta  path      string  true  "handle de la cuenta"
// @Success      200     {object}  dto.OrdenesUsuarioDTO
// @Router       /api/reportes/usuarios/{cuenta}/ordenes [get]
func (h *ReportsHandler) OrdenesDeUsuario(c *fiber.Ctx) error {
	cuenta, err := urlParam(c, "cuenta")
	if err != nil {
		return responderError(c, err)
	}
	out, err := h.uc.OrdenesDeUsuario(cuenta)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// limite lee el query param limite; 0 aplica el default del caso de uso.
func limite(c *fiber.Ctx) int {
	n, err := strconv.Atoi(c.Query("limite"))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// urlParam devuelve un path param decodificado (las categorías pueden llevar
// espacios o acentos escapados en la URL).
func urlParam(c *fiber.Ctx, nombre string) (string, error) {
	valor, err := url.PathUnescape(c.Params(nombre))
	if err != nil {
		return "", domain.ErrInvalidParam
	}
	return valor, nil
}
