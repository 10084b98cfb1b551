package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/agoramarket/agora-api/internal/application/dto"
	"github.com/agoramarket/agora-api/internal/domain"
)

// responderError traduce errores de dominio a respuestas HTTP. Cualquier
// error no reconocido es un 500 genérico: los mensajes internos no se filtran
// al cliente.
func responderError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidParam):
		return respuesta(c, fiber.StatusBadRequest, "VALIDATION", err)
	case errors.Is(err, domain.ErrInsufficientPayment):
		return respuesta(c, fiber.StatusBadRequest, "INSUFFICIENT_PAYMENT", err)
	case errors.Is(err, domain.ErrExcessivePayment):
		return respuesta(c, fiber.StatusBadRequest, "EXCESSIVE_PAYMENT", err)

	case errors.Is(err, domain.ErrNotPermitted):
		return respuesta(c, fiber.StatusForbidden, "NOT_PERMITTED", err)
	case errors.Is(err, domain.ErrSelfPurchase):
		return respuesta(c, fiber.StatusForbidden, "SELF_PURCHASE", err)

	case errors.Is(err, domain.ErrProductNotFound):
		return respuesta(c, fiber.StatusNotFound, "PRODUCT_NOT_FOUND", err)
	case errors.Is(err, domain.ErrOrderNotFound):
		return respuesta(c, fiber.StatusNotFound, "ORDER_NOT_FOUND", err)
	case errors.Is(err, domain.ErrNotFound):
		return respuesta(c, fiber.StatusNotFound, "NOT_FOUND", err)

	case errors.Is(err, domain.ErrAlreadyRegistered):
		return respuesta(c, fiber.StatusConflict, "ALREADY_REGISTERED", err)
	case errors.Is(err, domain.ErrNotRegistered):
		return respuesta(c, fiber.StatusConflict, "NOT_REGISTERED", err)
	case errors.Is(err, domain.ErrInvalidState):
		return respuesta(c, fiber.StatusConflict, "INVALID_STATE", err)
	case errors.Is(err, domain.ErrInsufficientStock):
		return respuesta(c, fiber.StatusConflict, "INSUFFICIENT_STOCK", err)
	case errors.Is(err, domain.ErrStockOverflow):
		return respuesta(c, fiber.StatusConflict, "STOCK_OVERFLOW", err)
	case errors.Is(err, domain.ErrAlreadyRated):
		return respuesta(c, fiber.StatusConflict, "ALREADY_RATED", err)
	case errors.Is(err, domain.ErrIDOverflow):
		return respuesta(c, fiber.StatusConflict, "ID_OVERFLOW", err)
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}

func respuesta(c *fiber.Ctx, status int, code string, err error) error {
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}
