package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/saborurbano/backoffice/internal/application/dto"
	"github.com/saborurbano/backoffice/internal/domain"
)

// exposeErrors controla si los 500 incluyen el detalle interno del error.
// Se habilita solo en desarrollo, desde el arranque.
var exposeErrors bool

// ExposeInternalErrors habilita el detalle de errores internos en las respuestas.
func ExposeInternalErrors(enable bool) {
	exposeErrors = enable
}

func ok(c *fiber.Ctx, data any) error {
	return c.JSON(dto.OK(data))
}

func okMensaje(c *fiber.Ctx, mensaje string, data any) error {
	return c.JSON(dto.OKMensaje(mensaje, data))
}

func created(c *fiber.Ctx, mensaje string, data any) error {
	return c.Status(fiber.StatusCreated).JSON(dto.OKMensaje(mensaje, data))
}

func lista(c *fiber.Ctx, data any, total int) error {
	return c.JSON(dto.Lista(data, total))
}

func badRequest(c *fiber.Ctx, mensaje string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo(mensaje))
}

func notFound(c *fiber.Ctx, mensaje string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.Fallo(mensaje))
}

// fallo mapea los errores de dominio al código HTTP del contrato:
// entrada inválida 400, no encontrado 404, duplicados y conflictos 409,
// credenciales 401/403 y el resto 500. El detalle del 500 solo se expone
// en desarrollo; en producción se loguea y se responde un mensaje genérico.
func fallo(c *fiber.Ctx, err error, mensaje string) error {
	switch {
	// Stock insuficiente es un error de validación del monto pedido, no un conflicto.
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo(mensaje))
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Fallo(mensaje))
	case errors.Is(err, domain.ErrDuplicate),
		errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.Fallo(mensaje))
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fallo(mensaje))
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.Fallo(mensaje))
	}
	log.Error().Err(err).Str("path", c.Path()).Msg("error interno")
	if exposeErrors {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.FalloDetalle("Error interno del servidor", err.Error()))
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.Fallo("Error interno del servidor"))
}
