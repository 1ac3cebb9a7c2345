package entity

import "time"

// Áreas operativas de una tarea.
const (
	TareaGestionPedidos    = "gestion_pedidos"
	TareaControlInventario = "control_inventario"
)

// Estados de una tarea: pendiente -> en_proceso -> finalizada (terminal).
const (
	TareaPendiente  = "pendiente"
	TareaEnProceso  = "en_proceso"
	TareaFinalizada = "finalizada"
)

// Prioridades de una tarea.
const (
	PrioridadAlta  = "alta"
	PrioridadMedia = "media"
	PrioridadBaja  = "baja"
)

// Tarea representa una tarea interna de operación.
// EmpleadoAsignado y PedidoAsociado son referencias débiles: se resuelven por
// lookup al listar y no se limpian en cascada al borrar el referenciado.
type Tarea struct {
	ID                string
	Titulo            string
	Descripcion       string
	Area              string
	Estado            string
	Prioridad         string
	EmpleadoAsignado  *string
	PedidoAsociado    *string
	FechaCreacion     time.Time
	FechaInicio       *time.Time
	FechaFinalizacion *time.Time
	Observaciones     string
}

// AreaTareaValida, EstadoTareaValido y PrioridadValida validan contra las enumeraciones.
func AreaTareaValida(area string) bool {
	return area == TareaGestionPedidos || area == TareaControlInventario
}

func EstadoTareaValido(estado string) bool {
	return estado == TareaPendiente || estado == TareaEnProceso || estado == TareaFinalizada
}

func PrioridadValida(p string) bool {
	return p == PrioridadAlta || p == PrioridadMedia || p == PrioridadBaja
}

// Transicionar aplica el cambio de estado respetando la máquina de estados:
//   - una tarea finalizada no admite más cambios de estado;
//   - entrar a en_proceso fija FechaInicio solo la primera vez;
//   - entrar a finalizada fija FechaFinalizacion una sola vez y rellena
//     FechaInicio si la tarea saltó directo desde pendiente.
//
// Devuelve false si la transición no está permitida.
func (t *Tarea) Transicionar(nuevoEstado string, now time.Time) bool {
	if !EstadoTareaValido(nuevoEstado) {
		return false
	}
	if t.Estado == TareaFinalizada && nuevoEstado != TareaFinalizada {
		return false
	}
	switch nuevoEstado {
	case TareaEnProceso:
		if t.FechaInicio == nil {
			ts := now
			t.FechaInicio = &ts
		}
	case TareaFinalizada:
		if t.FechaInicio == nil {
			ts := now
			t.FechaInicio = &ts
		}
		if t.FechaFinalizacion == nil {
			ts := now
			t.FechaFinalizacion = &ts
		}
	}
	t.Estado = nuevoEstado
	return true
}
