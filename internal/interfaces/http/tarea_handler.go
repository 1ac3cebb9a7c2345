package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/saborurbano/backoffice/internal/application/dto"
	"github.com/saborurbano/backoffice/internal/application/usecase"
)

// TareaHandler maneja las peticiones HTTP para Tarea.
type TareaHandler struct {
	uc *usecase.TareaUseCase
}

// NewTareaHandler construye el handler.
func NewTareaHandler(uc *usecase.TareaUseCase) *TareaHandler {
	return &TareaHandler{uc: uc}
}

// Create registra una tarea en estado pendiente.
func (h *TareaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTareaRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Cuerpo de la petición inválido")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return fallo(c, err, "No se pudo registrar la tarea")
	}
	return created(c, "Tarea registrada", out)
}

// List lista todas las tareas con sus referencias resueltas.
func (h *TareaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return fallo(c, err, "No se pudieron listar las tareas")
	}
	return lista(c, out, len(out))
}

// Filtrar godoc
// @Summary      Filtrar tareas
// @Tags         tareas
// @Produce      json
// @Param        estado            query  string  false  "pendiente | en_proceso | finalizada"
// @Param        prioridad         query  string  false  "alta | media | baja"
// @Param        area              query  string  false  "gestion_pedidos | control_inventario"
// @Param        empleadoAsignado  query  string  false  "ID del empleado"
// @Param        tipoPedido        query  string  false  "presencial | delivery"
// @Param        plataforma        query  string  false  "rappi | pedidosya | propia | local"
// @Param        fechaDesde        query  string  false  "YYYY-MM-DD"
// @Param        fechaHasta        query  string  false  "YYYY-MM-DD"
// @Success      200  {object}  dto.Respuesta
// @Router       /api/tareas/filtrar [get]
func (h *TareaHandler) Filtrar(c *fiber.Ctx) error {
	var in dto.FiltroTareasRequest
	if err := c.QueryParser(&in); err != nil {
		return badRequest(c, "Parámetros de filtro inválidos")
	}
	out, err := h.uc.Filtrar(in)
	if err != nil {
		return fallo(c, err, "Parámetros de filtro inválidos")
	}
	return lista(c, out, len(out))
}

// Urgentes lista las tareas pendientes de prioridad alta.
func (h *TareaHandler) Urgentes(c *fiber.Ctx) error {
	out, err := h.uc.Urgentes()
	if err != nil {
		return fallo(c, err, "No se pudieron listar las tareas urgentes")
	}
	return lista(c, out, len(out))
}

// ListByArea lista tareas de un área.
func (h *TareaHandler) ListByArea(c *fiber.Ctx) error {
	out, err := h.uc.ListByArea(c.Params("area"))
	if err != nil {
		return fallo(c, err, "Área inválida")
	}
	return lista(c, out, len(out))
}

// GetByID obtiene una tarea por ID.
func (h *TareaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fallo(c, err, "No se pudo obtener la tarea")
	}
	if out == nil {
		return notFound(c, "Tarea no encontrada")
	}
	return ok(c, out)
}

// Update actualiza parcialmente una tarea. El cambio de estado respeta la
// máquina de estados; reabrir una finalizada responde 409.
func (h *TareaHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTareaRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Cuerpo de la petición inválido")
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return fallo(c, err, "No se pudo actualizar la tarea")
	}
	if out == nil {
		return notFound(c, "Tarea no encontrada")
	}
	return okMensaje(c, "Tarea actualizada", out)
}

// Delete elimina una tarea.
func (h *TareaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return fallo(c, err, "Tarea no encontrada")
	}
	return okMensaje(c, "Tarea eliminada", nil)
}

// Estadisticas devuelve los conteos por estado agrupados por área.
func (h *TareaHandler) Estadisticas(c *fiber.Ctx) error {
	out, err := h.uc.EstadisticasPorArea()
	if err != nil {
		return fallo(c, err, "No se pudieron calcular las estadísticas")
	}
	return ok(c, out)
}
