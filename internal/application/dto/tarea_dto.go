package dto

import "time"

// CreateTareaRequest alta de tarea. titulo y area son obligatorios;
// empleadoAsignado y pedidoAsociado son opcionales pero, si vienen, deben existir.
type CreateTareaRequest struct {
	Titulo           string  `json:"titulo"`
	Descripcion      string  `json:"descripcion"`
	Area             string  `json:"area"`
	Prioridad        string  `json:"prioridad"`
	EmpleadoAsignado *string `json:"empleadoAsignado"`
	PedidoAsociado   *string `json:"pedidoAsociado"`
	Observaciones    string  `json:"observaciones"`
}

// UpdateTareaRequest actualización parcial. El cambio de estado pasa por la
// máquina de estados de la tarea.
type UpdateTareaRequest struct {
	Titulo           *string `json:"titulo"`
	Descripcion      *string `json:"descripcion"`
	Area             *string `json:"area"`
	Estado           *string `json:"estado"`
	Prioridad        *string `json:"prioridad"`
	EmpleadoAsignado *string `json:"empleadoAsignado"`
	PedidoAsociado   *string `json:"pedidoAsociado"`
	Observaciones    *string `json:"observaciones"`
}

// FiltroTareasRequest criterios de /api/tareas/filtrar; todos opcionales.
type FiltroTareasRequest struct {
	Estado           string `query:"estado" json:"estado"`
	Prioridad        string `query:"prioridad" json:"prioridad"`
	Area             string `query:"area" json:"area"`
	EmpleadoAsignado string `query:"empleadoAsignado" json:"empleadoAsignado"`
	TipoPedido       string `query:"tipoPedido" json:"tipoPedido"`
	Plataforma       string `query:"plataforma" json:"plataforma"`
	FechaDesde       string `query:"fechaDesde" json:"fechaDesde"` // YYYY-MM-DD
	FechaHasta       string `query:"fechaHasta" json:"fechaHasta"` // YYYY-MM-DD
}

// TareaResponse representación pública de una tarea con las referencias
// débiles ya resueltas: empleado como nombre completo (o "No asignado") y
// pedido como número de orden.
type TareaResponse struct {
	ID                string     `json:"id"`
	Titulo            string     `json:"titulo"`
	Descripcion       string     `json:"descripcion"`
	Area              string     `json:"area"`
	Estado            string     `json:"estado"`
	Prioridad         string     `json:"prioridad"`
	EmpleadoAsignado  *string    `json:"empleadoAsignado"`
	Empleado          string     `json:"empleado"`
	PedidoAsociado    *string    `json:"pedidoAsociado"`
	Pedido            string     `json:"pedido,omitempty"`
	FechaCreacion     time.Time  `json:"fechaCreacion"`
	FechaInicio       *time.Time `json:"fechaInicio"`
	FechaFinalizacion *time.Time `json:"fechaFinalizacion"`
	Observaciones     string     `json:"observaciones"`
}

// EstadisticasTareasResponse conteos por estado de un área.
type EstadisticasTareasResponse struct {
	Total       int `json:"total"`
	Pendientes  int `json:"pendientes"`
	EnProceso   int `json:"enProceso"`
	Finalizadas int `json:"finalizadas"`
}
