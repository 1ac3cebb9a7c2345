package dto

// CreateEmpleadoRequest alta de empleado. nombre, apellido, email, rol y área son obligatorios.
type CreateEmpleadoRequest struct {
	Nombre       string `json:"nombre"`
	Apellido     string `json:"apellido"`
	Email        string `json:"email"`
	Telefono     string `json:"telefono"`
	Rol          string `json:"rol"`
	Area         string `json:"area"`
	FechaIngreso string `json:"fechaIngreso"`
}

// UpdateEmpleadoRequest actualización parcial: solo los campos presentes se aplican.
type UpdateEmpleadoRequest struct {
	Nombre       *string `json:"nombre"`
	Apellido     *string `json:"apellido"`
	Email        *string `json:"email"`
	Telefono     *string `json:"telefono"`
	Rol          *string `json:"rol"`
	Area         *string `json:"area"`
	FechaIngreso *string `json:"fechaIngreso"`
	Activo       *bool   `json:"activo"`
}

// EmpleadoResponse representación pública de un empleado.
type EmpleadoResponse struct {
	ID           string `json:"id"`
	Nombre       string `json:"nombre"`
	Apellido     string `json:"apellido"`
	Email        string `json:"email"`
	Telefono     string `json:"telefono"`
	Rol          string `json:"rol"`
	Area         string `json:"area"`
	FechaIngreso string `json:"fechaIngreso"`
	Activo       bool   `json:"activo"`
}

// EstadisticasEmpleadosResponse conteos de empleados activos por rol y área.
type EstadisticasEmpleadosResponse struct {
	Total   int            `json:"total"`
	PorRol  map[string]int `json:"porRol"`
	PorArea map[string]int `json:"porArea"`
}

// EmailDisponibleResponse resultado del chequeo de disponibilidad de email.
type EmailDisponibleResponse struct {
	Email      string `json:"email"`
	Disponible bool   `json:"disponible"`
}

// ValidacionCatalogoResponse resultado de validar un rol o un área contra el catálogo.
type ValidacionCatalogoResponse struct {
	Valor   string `json:"valor"`
	Valido  bool   `json:"valido"`
	Mensaje string `json:"mensaje"`
}
