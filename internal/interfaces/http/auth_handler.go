package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/saborurbano/backoffice/internal/application/auth"
	"github.com/saborurbano/backoffice/internal/application/dto"
)

// AuthHandler maneja registro, login y perfil.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register crea una cuenta de acceso al back-office.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Cuerpo de la petición inválido")
	}
	out, err := h.uc.Register(in)
	if err != nil {
		return fallo(c, err, "No se pudo registrar el usuario")
	}
	return created(c, "Usuario registrado", out)
}

// Login valida credenciales y devuelve un token JWT.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Cuerpo de la petición inválido")
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return fallo(c, err, "Credenciales inválidas")
	}
	return okMensaje(c, "Sesión iniciada", out)
}

// Perfil devuelve el perfil del usuario autenticado (requiere AuthMiddleware).
func (h *AuthHandler) Perfil(c *fiber.Ctx) error {
	out, err := h.uc.Perfil(GetUserID(c))
	if err != nil {
		return fallo(c, err, "No se pudo obtener el perfil")
	}
	if out == nil {
		return notFound(c, "Usuario no encontrado")
	}
	return ok(c, out)
}
