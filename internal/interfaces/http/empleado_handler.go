package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/saborurbano/backoffice/internal/application/dto"
	"github.com/saborurbano/backoffice/internal/application/usecase"
)

// EmpleadoHandler maneja las peticiones HTTP para Empleado.
type EmpleadoHandler struct {
	uc *usecase.EmpleadoUseCase
}

// NewEmpleadoHandler construye el handler.
func NewEmpleadoHandler(uc *usecase.EmpleadoUseCase) *EmpleadoHandler {
	return &EmpleadoHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar empleado
// @Tags         empleados
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEmpleadoRequest  true  "Datos del empleado"
// @Success      201   {object}  dto.Respuesta
// @Failure      400   {object}  dto.Respuesta
// @Failure      409   {object}  dto.Respuesta
// @Router       /api/empleados [post]
func (h *EmpleadoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmpleadoRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Cuerpo de la petición inválido")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return fallo(c, err, "No se pudo registrar el empleado")
	}
	return created(c, "Empleado registrado", out)
}

// List godoc
// @Summary      Listar empleados (incluye dados de baja)
// @Tags         empleados
// @Produce      json
// @Success      200  {object}  dto.Respuesta
// @Router       /api/empleados [get]
func (h *EmpleadoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return fallo(c, err, "No se pudieron listar los empleados")
	}
	return lista(c, out, len(out))
}

// ListActivos lista solo los empleados activos.
func (h *EmpleadoHandler) ListActivos(c *fiber.Ctx) error {
	out, err := h.uc.ListActivos()
	if err != nil {
		return fallo(c, err, "No se pudieron listar los empleados activos")
	}
	return lista(c, out, len(out))
}

// ListByRol lista empleados activos de un rol.
func (h *EmpleadoHandler) ListByRol(c *fiber.Ctx) error {
	out, err := h.uc.ListByRol(c.Params("rol"))
	if err != nil {
		return fallo(c, err, "Rol inválido")
	}
	return lista(c, out, len(out))
}

// ListByArea lista empleados activos de un área.
func (h *EmpleadoHandler) ListByArea(c *fiber.Ctx) error {
	out, err := h.uc.ListByArea(c.Params("area"))
	if err != nil {
		return fallo(c, err, "Área inválida")
	}
	return lista(c, out, len(out))
}

// GetByID obtiene un empleado por ID.
func (h *EmpleadoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fallo(c, err, "No se pudo obtener el empleado")
	}
	if out == nil {
		return notFound(c, "Empleado no encontrado")
	}
	return ok(c, out)
}

// Update godoc
// @Summary      Actualizar empleado
// @Tags         empleados
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del empleado"
// @Param        body  body  dto.UpdateEmpleadoRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.Respuesta
// @Failure      404   {object}  dto.Respuesta
// @Failure      409   {object}  dto.Respuesta
// @Router       /api/empleados/{id} [put]
func (h *EmpleadoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEmpleadoRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Cuerpo de la petición inválido")
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return fallo(c, err, "No se pudo actualizar el empleado")
	}
	if out == nil {
		return notFound(c, "Empleado no encontrado")
	}
	return okMensaje(c, "Empleado actualizado", out)
}

// Delete da de baja lógica a un empleado.
func (h *EmpleadoHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.Params("id"))
	if err != nil {
		return fallo(c, err, "No se pudo dar de baja al empleado")
	}
	if out == nil {
		return notFound(c, "Empleado no encontrado")
	}
	return okMensaje(c, "Empleado dado de baja", out)
}

// Roles devuelve el catálogo de roles.
func (h *EmpleadoHandler) Roles(c *fiber.Ctx) error {
	return ok(c, h.uc.Roles())
}

// Areas devuelve el catálogo de áreas.
func (h *EmpleadoHandler) Areas(c *fiber.Ctx) error {
	return ok(c, h.uc.Areas())
}

// ValidarRol valida un rol contra el catálogo.
func (h *EmpleadoHandler) ValidarRol(c *fiber.Ctx) error {
	return ok(c, h.uc.ValidarRol(c.Params("rol")))
}

// ValidarArea valida un área contra el catálogo.
func (h *EmpleadoHandler) ValidarArea(c *fiber.Ctx) error {
	return ok(c, h.uc.ValidarArea(c.Params("area")))
}

// ValidarEmail verifica la disponibilidad de un email (?email=&excluirId=).
// excluirId es opcional y excluye a ese empleado de la comprobación.
func (h *EmpleadoHandler) ValidarEmail(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return badRequest(c, "El parámetro email es requerido")
	}
	out, err := h.uc.EmailDisponible(email, c.Query("excluirId"))
	if err != nil {
		return fallo(c, err, "Email inválido")
	}
	return ok(c, out)
}

// Estadisticas devuelve los conteos de empleados activos por rol y área.
func (h *EmpleadoHandler) Estadisticas(c *fiber.Ctx) error {
	out, err := h.uc.Estadisticas()
	if err != nil {
		return fallo(c, err, "No se pudieron calcular las estadísticas")
	}
	return ok(c, out)
}
