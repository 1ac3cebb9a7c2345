package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/saborurbano/backoffice/internal/application/dto"
	"github.com/saborurbano/backoffice/internal/application/usecase"
)

// InsumoHandler maneja las peticiones HTTP para Insumo.
type InsumoHandler struct {
	uc *usecase.InsumoUseCase
}

// NewInsumoHandler construye el handler.
func NewInsumoHandler(uc *usecase.InsumoUseCase) *InsumoHandler {
	return &InsumoHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar insumo
// @Tags         insumos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInsumoRequest  true  "Datos del insumo"
// @Success      201   {object}  dto.Respuesta
// @Failure      400   {object}  dto.Respuesta
// @Router       /api/insumos [post]
func (h *InsumoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInsumoRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Cuerpo de la petición inválido")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return fallo(c, err, "No se pudo registrar el insumo")
	}
	return created(c, "Insumo registrado", out)
}

// List lista todos los insumos.
func (h *InsumoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return fallo(c, err, "No se pudieron listar los insumos")
	}
	return lista(c, out, len(out))
}

// ListBajoStock lista los insumos con stock menor o igual al mínimo.
func (h *InsumoHandler) ListBajoStock(c *fiber.Ctx) error {
	out, err := h.uc.ListBajoStock()
	if err != nil {
		return fallo(c, err, "No se pudieron listar los insumos en bajo stock")
	}
	return lista(c, out, len(out))
}

// Alertas devuelve el panel de reposición.
func (h *InsumoHandler) Alertas(c *fiber.Ctx) error {
	out, err := h.uc.Alertas()
	if err != nil {
		return fallo(c, err, "No se pudieron obtener las alertas de stock")
	}
	return lista(c, out, len(out))
}

// ListByCategoria lista insumos de una categoría.
func (h *InsumoHandler) ListByCategoria(c *fiber.Ctx) error {
	out, err := h.uc.ListByCategoria(c.Params("categoria"))
	if err != nil {
		return fallo(c, err, "No se pudieron listar los insumos de la categoría")
	}
	return lista(c, out, len(out))
}

// GetByID obtiene un insumo por ID.
func (h *InsumoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fallo(c, err, "No se pudo obtener el insumo")
	}
	if out == nil {
		return notFound(c, "Insumo no encontrado")
	}
	return ok(c, out)
}

// Update actualiza parcialmente un insumo.
func (h *InsumoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInsumoRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Cuerpo de la petición inválido")
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return fallo(c, err, "No se pudo actualizar el insumo")
	}
	if out == nil {
		return notFound(c, "Insumo no encontrado")
	}
	return okMensaje(c, "Insumo actualizado", out)
}

// SetStock fija el stock absoluto.
func (h *InsumoHandler) SetStock(c *fiber.Ctx) error {
	var in dto.StockRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Cuerpo de la petición inválido")
	}
	out, err := h.uc.SetStock(c.Params("id"), in)
	if err != nil {
		return fallo(c, err, "No se pudo actualizar el stock")
	}
	if out == nil {
		return notFound(c, "Insumo no encontrado")
	}
	return okMensaje(c, "Stock actualizado", out)
}

// Descontar godoc
// @Summary      Descontar stock
// @Tags         insumos
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del insumo"
// @Param        body  body  dto.DescontarRequest  true  "Cantidad a descontar"
// @Success      200   {object}  dto.Respuesta
// @Failure      400   {object}  dto.Respuesta  "Stock insuficiente"
// @Router       /api/insumos/{id}/descontar [put]
func (h *InsumoHandler) Descontar(c *fiber.Ctx) error {
	var in dto.DescontarRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Cuerpo de la petición inválido")
	}
	out, err := h.uc.Descontar(c.Params("id"), in)
	if err != nil {
		return fallo(c, err, "No se pudo descontar el stock")
	}
	return okMensaje(c, "Stock descontado", out)
}

// Delete elimina un insumo.
func (h *InsumoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return fallo(c, err, "Insumo no encontrado")
	}
	return okMensaje(c, "Insumo eliminado", nil)
}
