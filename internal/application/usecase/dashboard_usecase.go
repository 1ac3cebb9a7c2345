package usecase

import (
	"github.com/saborurbano/backoffice/internal/domain/entity"
	"github.com/saborurbano/backoffice/internal/domain/repository"
)

// ResumenDashboard indicadores del panel principal del back-office.
type ResumenDashboard struct {
	TareasPendientes  int `json:"tareasPendientes"`
	EmpleadosActivos  int `json:"empleadosActivos"`
	InsumosEnAlerta   int `json:"insumosEnAlerta"`
	PedidosPendientes int `json:"pedidosPendientes"`
}

// DashboardUseCase agrega los conteos del panel a partir de los repos.
type DashboardUseCase struct {
	tareas    repository.TareaRepository
	empleados repository.EmpleadoRepository
	insumos   repository.InsumoRepository
	pedidos   repository.PedidoRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	tareas repository.TareaRepository,
	empleados repository.EmpleadoRepository,
	insumos repository.InsumoRepository,
	pedidos repository.PedidoRepository,
) *DashboardUseCase {
	return &DashboardUseCase{tareas: tareas, empleados: empleados, insumos: insumos, pedidos: pedidos}
}

// Resumen calcula los indicadores del panel.
func (uc *DashboardUseCase) Resumen() (*ResumenDashboard, error) {
	tareas, err := uc.tareas.Filtrar(repository.FiltroTareas{Estado: entity.TareaPendiente})
	if err != nil {
		return nil, err
	}
	empleados, err := uc.empleados.ListActivos()
	if err != nil {
		return nil, err
	}
	alertas, err := uc.insumos.ListBajoStock()
	if err != nil {
		return nil, err
	}
	pedidos, err := uc.pedidos.ListByEstado(entity.PedidoPendiente)
	if err != nil {
		return nil, err
	}
	return &ResumenDashboard{
		TareasPendientes:  len(tareas),
		EmpleadosActivos:  len(empleados),
		InsumosEnAlerta:   len(alertas),
		PedidosPendientes: len(pedidos),
	}, nil
}
