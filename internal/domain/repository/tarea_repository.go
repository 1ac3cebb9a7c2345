package repository

import (
	"time"

	"github.com/saborurbano/backoffice/internal/domain/entity"
)

// FiltroTareas criterios combinables para listar tareas. Los campos vacíos no filtran.
// El cruce por tipo/plataforma de pedido se resuelve en el caso de uso, no aquí.
type FiltroTareas struct {
	Estado           string
	Prioridad        string
	Area             string
	EmpleadoAsignado string
	FechaDesde       *time.Time
	FechaHasta       *time.Time
}

// EstadisticasTareas conteos por estado para un área.
type EstadisticasTareas struct {
	Total       int
	Pendientes  int
	EnProceso   int
	Finalizadas int
}

// TareaRepository define el puerto de persistencia para Tarea (DIP).
type TareaRepository interface {
	List() ([]*entity.Tarea, error)
	Filtrar(f FiltroTareas) ([]*entity.Tarea, error)
	ListByArea(area string) ([]*entity.Tarea, error)
	GetByID(id string) (*entity.Tarea, error)
	Create(t *entity.Tarea) error
	Update(t *entity.Tarea) error
	Delete(id string) error
	EstadisticasPorArea() (map[string]*EstadisticasTareas, error)
}
