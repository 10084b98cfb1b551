package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agoramarket/agora-api/internal/application/dto"
	"github.com/agoramarket/agora-api/internal/application/market"
	"github.com/agoramarket/agora-api/internal/domain/entity"
)

// RegistroHandler maneja el registro de roles en el mercado.
type RegistroHandler struct {
	uc *market.RegistroUseCase
}

// NewRegistroHandler construye el handler de registro.
func NewRegistroHandler(uc *market.RegistroUseCase) *RegistroHandler {
	return &RegistroHandler{uc: uc}
}

// Registrar godoc
// @Summary      Registrarse en el mercado con un rol
// @Tags         registro
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistroRequest  true  "rol: comprador | vendedor | ambos"
// @Success      201   {object}  dto.RolResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/market/registro [post]
func (h *RegistroHandler) Registrar(c *fiber.Ctx) error {
	var in dto.RegistroRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cuenta := GetCuenta(c)
	if err := h.uc.Registrar(c.UserContext(), cuenta, entity.Rol(in.Rol)); err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RolResponse{Cuenta: cuenta, Rol: in.Rol, Registrada: true})
}

// ModificarRol godoc
// @Summary      Cambiar el rol de la cuenta
// @Tags         registro
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistroRequest  true  "rol nuevo"
// @Success      200   {object}  dto.RolResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/market/registro [put]
func (h *RegistroHandler) ModificarRol(c *fiber.Ctx) error {
	var in dto.RegistroRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cuenta := GetCuenta(c)
	if err := h.uc.ModificarRol(c.UserContext(), cuenta, entity.Rol(in.Rol)); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.RolResponse{Cuenta: cuenta, Rol: in.Rol, Registrada: true})
}

// ObtenerRol godoc
// @Summary      Consultar el rol de una cuenta
// @Description  Sin :cuenta consulta la cuenta autenticada. Una cuenta sin registro no es un error: registrada=false.
// @Tags         registro
// @Produce      json
// @Param        cuenta  path  string  false  "cuenta a consultar"
// @Success      200  {object}  dto.RolResponse
// @Router       /api/market/rol/{cuenta} [get]
func (h *RegistroHandler) ObtenerRol(c *fiber.Ctx) error {
	cuenta := c.Params("cuenta")
	if cuenta == "" {
		cuenta = GetCuenta(c)
	}
	rol, err := h.uc.ObtenerRol(cuenta)
	if err != nil {
		return responderError(c, err)
	}
	out := dto.RolResponse{Cuenta: cuenta}
	if rol != nil {
		out.Rol = string(*rol)
		out.Registrada = true
	}
	return c.JSON(out)
}
