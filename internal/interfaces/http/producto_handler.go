package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/saborurbano/backoffice/internal/application/dto"
	"github.com/saborurbano/backoffice/internal/application/usecase"
)

// ProductoHandler maneja las peticiones HTTP para Producto.
type ProductoHandler struct {
	uc *usecase.ProductoUseCase
}

// NewProductoHandler construye el handler.
func NewProductoHandler(uc *usecase.ProductoUseCase) *ProductoHandler {
	return &ProductoHandler{uc: uc}
}

// Create registra un producto en el catálogo.
func (h *ProductoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Cuerpo de la petición inválido")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return fallo(c, err, "No se pudo registrar el producto")
	}
	return created(c, "Producto registrado", out)
}

// List lista el catálogo completo.
func (h *ProductoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return fallo(c, err, "No se pudieron listar los productos")
	}
	return lista(c, out, len(out))
}

// GetByID obtiene un producto por ID.
func (h *ProductoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fallo(c, err, "No se pudo obtener el producto")
	}
	if out == nil {
		return notFound(c, "Producto no encontrado")
	}
	return ok(c, out)
}

// Update actualiza parcialmente un producto.
func (h *ProductoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Cuerpo de la petición inválido")
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return fallo(c, err, "No se pudo actualizar el producto")
	}
	if out == nil {
		return notFound(c, "Producto no encontrado")
	}
	return okMensaje(c, "Producto actualizado", out)
}

// Delete elimina un producto del catálogo.
func (h *ProductoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return fallo(c, err, "Producto no encontrado")
	}
	return okMensaje(c, "Producto eliminado", nil)
}
