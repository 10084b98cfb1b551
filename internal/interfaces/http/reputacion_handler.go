package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agoramarket/agora-api/internal/application/dto"
	"github.com/agoramarket/agora-api/internal/application/market"
	"github.com/agoramarket/agora-api/internal/domain"
	"github.com/agoramarket/agora-api/internal/domain/entity"
)

// ReputacionHandler maneja calificaciones y consultas de reputación.
type ReputacionHandler struct {
	uc *market.ReputacionUseCase
}

// NewReputacionHandler construye el handler de reputación.
func NewReputacionHandler(uc *market.ReputacionUseCase) *ReputacionHandler {
	return &ReputacionHandler{uc: uc}
}

// Calificar godoc
// @Summary      Calificar a la contraparte de una orden recibida
// @Tags         reputacion
// @Accept       json
// @Produce      json
// @Param        id    path  int                  true  "ID de la orden"
// @Param        body  body  dto.CalificarRequest true  "puntos 1..5"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/ordenes/{id}/calificacion [post]
func (h *ReputacionHandler) Calificar(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return responderError(c, domain.ErrInvalidParam)
	}
	var in dto.CalificarRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Calificar(c.UserContext(), GetCuenta(c), id, in.Puntos); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Obtener godoc
// @Summary      Consultar la reputación de una cuenta
// @Tags         reputacion
// @Produce      json
// @Param        cuenta  path      string  true  "handle de la cuenta"
// @Success      200     {object}  dto.ReputacionResponse
// @Router       /api/reputacion/{cuenta} [get]
func (h *ReputacionHandler) Obtener(c *fiber.Ctx) error {
	cuenta := c.Params("cuenta")
	rep, err := h.uc.ObtenerReputacion(cuenta)
	if err != nil {
		return responderError(c, err)
	}
	out := dto.ReputacionResponse{Cuenta: cuenta}
	if rep != nil {
		out.ComoComprador = toDireccion(rep.ComoComprador)
		out.ComoVendedor = toDireccion(rep.ComoVendedor)
	}
	return c.JSON(out)
}

func toDireccion(a entity.Acumulado) dto.ReputacionDireccionDTO {
	return dto.ReputacionDireccionDTO{
		Calificaciones: a.Cantidad,
		Promedio:       a.Promedio(),
	}
}
