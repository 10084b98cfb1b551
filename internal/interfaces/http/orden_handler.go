package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/agoramarket/agora-api/internal/application/dto"
	"github.com/agoramarket/agora-api/internal/application/market"
	"github.com/agoramarket/agora-api/internal/domain"
	"github.com/agoramarket/agora-api/internal/domain/entity"
)

// OrdenHandler maneja el ciclo de vida de órdenes: compra, envío, recepción,
// cancelación mutua y consultas de fondos.
type OrdenHandler struct {
	ordenes     *market.OrdenesUseCase
	cancelacion *market.CancelacionUseCase
}

// NewOrdenHandler construye el handler de órdenes.
func NewOrdenHandler(ordenes *market.OrdenesUseCase, cancelacion *market.CancelacionUseCase) *OrdenHandler {
	return &OrdenHandler{ordenes: ordenes, cancelacion: cancelacion}
}

// Comprar godoc
// @Summary      Crear una orden (el pago queda en custodia)
// @Tags         ordenes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ComprarRequest  true  "producto_id, cantidad, pago"
// @Success      201   {object}  dto.ComprarResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/ordenes [post]
func (h *OrdenHandler) Comprar(c *fiber.Ctx) error {
	var in dto.ComprarRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	id, err := h.ordenes.Comprar(c.UserContext(), GetCuenta(c), in.ProductoID, in.Cantidad, in.Pago)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ComprarResponse{ID: id})
}

// MarcarEnviado godoc
// @Summary      Marcar la orden como enviada (solo el vendedor)
// @Tags         ordenes
// @Produce      json
// @Param        id   path      int  true  "ID de la orden"
// @Success      200  {object}  dto.OrdenResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/ordenes/{id}/envio [post]
func (h *OrdenHandler) MarcarEnviado(c *fiber.Ctx) error {
	return h.transicion(c, h.ordenes.MarcarEnviado)
}

// MarcarRecibido godoc
// @Summary      Confirmar recepción (solo el comprador; libera la custodia al vendedor)
// @Tags         ordenes
// @Produce      json
// @Param        id   path      int  true  "ID de la orden"
// @Success      200  {object}  dto.OrdenResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/ordenes/{id}/recepcion [post]
func (h *OrdenHandler) MarcarRecibido(c *fiber.Ctx) error {
	return h.transicion(c, h.ordenes.MarcarRecibido)
}

// SolicitarCancelacion godoc
// @Summary      Solicitar la cancelación de la orden (cualquiera de las partes)
// @Tags         ordenes
// @Produce      json
// @Param        id   path      int  true  "ID de la orden"
// @Success      200  {object}  dto.OrdenResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/ordenes/{id}/cancelacion [post]
func (h *OrdenHandler) SolicitarCancelacion(c *fiber.Ctx) error {
	return h.transicion(c, h.cancelacion.Solicitar)
}

// AceptarCancelacion godoc
// @Summary      Aceptar la cancelación pedida por la contraparte (restaura stock y reembolsa)
// @Tags         ordenes
// @Produce      json
// @Param        id   path      int  true  "ID de la orden"
// @Success      200  {object}  dto.OrdenResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/ordenes/{id}/cancelacion/aceptar [post]
func (h *OrdenHandler) AceptarCancelacion(c *fiber.Ctx) error {
	return h.transicion(c, h.cancelacion.Aceptar)
}

// RechazarCancelacion godoc
// @Summary      Rechazar la cancelación pedida por la contraparte
// @Tags         ordenes
// @Produce      json
// @Param        id   path      int  true  "ID de la orden"
// @Success      200  {object}  dto.OrdenResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/ordenes/{id}/cancelacion/rechazar [post]
func (h *OrdenHandler) RechazarCancelacion(c *fiber.Ctx) error {
	return h.transicion(c, h.cancelacion.Rechazar)
}

// Obtener godoc
// @Summary      Consultar una orden (solo sus partes)
// @Tags         ordenes
// @Produce      json
// @Param        id   path      int  true  "ID de la orden"
// @Success      200  {object}  dto.OrdenResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/ordenes/{id} [get]
func (h *OrdenHandler) Obtener(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return responderError(c, domain.ErrInvalidParam)
	}
	orden, err := h.ordenes.ObtenerOrden(GetCuenta(c), id)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(toOrdenResponse(orden))
}

// ListarPropias godoc
// @Summary      Listar las órdenes de la cuenta como comprador
// @Tags         ordenes
// @Produce      json
// @Success      200  {object}  dto.OrdenListResponse
// @Security     BearerAuth
// @Router       /api/ordenes [get]
func (h *OrdenHandler) ListarPropias(c *fiber.Ctx) error {
	ordenes, err := h.ordenes.ListarPropias(GetCuenta(c))
	if err != nil {
		return responderError(c, err)
	}
	items := make([]dto.OrdenResponse, 0, len(ordenes))
	for _, o := range ordenes {
		items = append(items, toOrdenResponse(o))
	}
	return c.JSON(dto.OrdenListResponse{Items: items})
}

// Fondos godoc
// @Summary      Consultar los fondos en custodia de una orden (solo sus partes)
// @Tags         ordenes
// @Produce      json
// @Param        id   path      int  true  "ID de la orden"
// @Success      200  {object}  dto.FondosResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/ordenes/{id}/fondos [get]
func (h *OrdenHandler) Fondos(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return responderError(c, domain.ErrInvalidParam)
	}
	retenido, err := h.ordenes.FondosRetenidos(GetCuenta(c), id)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.FondosResponse{OrdenID: id, Retenido: retenido})
}

// Saldo godoc
// @Summary      Consultar el saldo liquidado de la cuenta
// @Tags         ordenes
// @Produce      json
// @Success      200  {object}  dto.SaldoResponse
// @Security     BearerAuth
// @Router       /api/saldo [get]
func (h *OrdenHandler) Saldo(c *fiber.Ctx) error {
	cuenta := GetCuenta(c)
	saldo, err := h.ordenes.Saldo(cuenta)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.SaldoResponse{Cuenta: cuenta, Saldo: saldo})
}

// transicion aplica una transición sobre la orden del path y responde con la
// orden resultante.
func (h *OrdenHandler) transicion(c *fiber.Ctx, fn func(ctx context.Context, caller string, ordenID uint32) error) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return responderError(c, domain.ErrInvalidParam)
	}
	caller := GetCuenta(c)
	if err := fn(c.UserContext(), caller, id); err != nil {
		return responderError(c, err)
	}
	orden, err := h.ordenes.ObtenerOrden(caller, id)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(toOrdenResponse(orden))
}

func toOrdenResponse(o *entity.Orden) dto.OrdenResponse {
	return dto.OrdenResponse{
		ID:                   o.ID,
		Comprador:            o.Comprador,
		Vendedor:             o.Vendedor,
		ProductoID:           o.ProductoID,
		Cantidad:             o.Cantidad,
		PrecioUnitario:       o.PrecioUnitario,
		Monto:                o.Monto(),
		Estado:               string(o.Estado),
		CancelacionPedidaPor: o.CancelacionPedidaPor,
		CreatedAt:            o.CreatedAt,
		UpdatedAt:            o.UpdatedAt,
	}
}
