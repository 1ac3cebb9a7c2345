package repository

import "github.com/saborurbano/backoffice/internal/domain/entity"

// EstadisticasEmpleados conteos de empleados activos agrupados por rol y área.
type EstadisticasEmpleados struct {
	Total   int
	PorRol  map[string]int
	PorArea map[string]int
}

// EmpleadoRepository define el puerto de persistencia para Empleado (DIP).
type EmpleadoRepository interface {
	List() ([]*entity.Empleado, error)
	ListActivos() ([]*entity.Empleado, error)
	ListByRol(rol string) ([]*entity.Empleado, error)
	ListByArea(area string) ([]*entity.Empleado, error)
	GetByID(id string) (*entity.Empleado, error)
	// GetActivoByEmail busca un empleado ACTIVO con ese email, excluyendo
	// opcionalmente un id (para updates). Devuelve nil si el email está libre.
	GetActivoByEmail(email, excluirID string) (*entity.Empleado, error)
	Create(e *entity.Empleado) error
	Update(e *entity.Empleado) error
	Estadisticas() (*EstadisticasEmpleados, error)
}
