package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/saborurbano/backoffice/internal/application/dto"
	"github.com/saborurbano/backoffice/internal/application/usecase"
)

// PedidoHandler maneja las peticiones HTTP para Pedido.
type PedidoHandler struct {
	uc *usecase.PedidoUseCase
}

// NewPedidoHandler construye el handler.
func NewPedidoHandler(uc *usecase.PedidoUseCase) *PedidoHandler {
	return &PedidoHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar pedido
// @Tags         pedidos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePedidoRequest  true  "Selección de productos y datos del pedido"
// @Success      201   {object}  dto.Respuesta
// @Failure      400   {object}  dto.Respuesta
// @Router       /api/pedidos [post]
func (h *PedidoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePedidoRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Cuerpo de la petición inválido")
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return fallo(c, err, "No se pudo registrar el pedido")
	}
	return created(c, "Pedido registrado", out)
}

// List lista todos los pedidos.
func (h *PedidoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return fallo(c, err, "No se pudieron listar los pedidos")
	}
	return lista(c, out, len(out))
}

// ListByTipo lista pedidos por tipo (presencial o delivery).
func (h *PedidoHandler) ListByTipo(c *fiber.Ctx) error {
	out, err := h.uc.ListByTipo(c.Params("tipo"))
	if err != nil {
		return fallo(c, err, "Tipo de pedido inválido")
	}
	return lista(c, out, len(out))
}

// ListByPlataforma lista pedidos por plataforma de origen.
func (h *PedidoHandler) ListByPlataforma(c *fiber.Ctx) error {
	out, err := h.uc.ListByPlataforma(c.Params("plataforma"))
	if err != nil {
		return fallo(c, err, "Plataforma inválida")
	}
	return lista(c, out, len(out))
}

// ListByEstado lista pedidos por estado.
func (h *PedidoHandler) ListByEstado(c *fiber.Ctx) error {
	out, err := h.uc.ListByEstado(c.Params("estado"))
	if err != nil {
		return fallo(c, err, "Estado de pedido inválido")
	}
	return lista(c, out, len(out))
}

// GetByID obtiene un pedido por ID.
func (h *PedidoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fallo(c, err, "No se pudo obtener el pedido")
	}
	if out == nil {
		return notFound(c, "Pedido no encontrado")
	}
	return ok(c, out)
}

// Update actualiza parcialmente un pedido.
func (h *PedidoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePedidoRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Cuerpo de la petición inválido")
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return fallo(c, err, "No se pudo actualizar el pedido")
	}
	if out == nil {
		return notFound(c, "Pedido no encontrado")
	}
	return okMensaje(c, "Pedido actualizado", out)
}

// Delete elimina un pedido.
func (h *PedidoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return fallo(c, err, "Pedido no encontrado")
	}
	return okMensaje(c, "Pedido eliminado", nil)
}

// Estadisticas devuelve los conteos por tipo, plataforma y estado.
func (h *PedidoHandler) Estadisticas(c *fiber.Ctx) error {
	out, err := h.uc.Estadisticas()
	if err != nil {
		return fallo(c, err, "No se pudieron calcular las estadísticas")
	}
	return ok(c, out)
}
