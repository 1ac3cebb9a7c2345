package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/saborurbano/backoffice/internal/application/dto"
	"github.com/saborurbano/backoffice/internal/domain"
	"github.com/saborurbano/backoffice/internal/domain/entity"
	"github.com/saborurbano/backoffice/internal/domain/repository"
)

// EmpleadoNoAsignado es el texto que reemplaza a un empleado ausente o no resoluble.
const EmpleadoNoAsignado = "No asignado"

// TareaUseCase casos de uso de tareas internas. Las referencias a empleado y
// pedido son débiles: se validan al asignar pero no en cascada, y al listar se
// resuelven por lookup puntual.
type TareaUseCase struct {
	repo      repository.TareaRepository
	empleados repository.EmpleadoRepository
	pedidos   repository.PedidoRepository
}

// NewTareaUseCase construye el caso de uso.
func NewTareaUseCase(repo repository.TareaRepository, empleados repository.EmpleadoRepository, pedidos repository.PedidoRepository) *TareaUseCase {
	return &TareaUseCase{repo: repo, empleados: empleados, pedidos: pedidos}
}

// Create da de alta una tarea en estado pendiente. El empleado asignado debe
// existir y estar activo; el pedido asociado debe existir.
func (uc *TareaUseCase) Create(in dto.CreateTareaRequest) (*dto.TareaResponse, error) {
	if in.Titulo == "" || in.Area == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.AreaTareaValida(in.Area) {
		return nil, domain.ErrInvalidInput
	}
	prioridad := in.Prioridad
	if prioridad == "" {
		prioridad = entity.PrioridadMedia
	}
	if !entity.PrioridadValida(prioridad) {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.validarReferencias(in.EmpleadoAsignado, in.PedidoAsociado); err != nil {
		return nil, err
	}
	t := &entity.Tarea{
		ID:               uuid.New().String(),
		Titulo:           in.Titulo,
		Descripcion:      in.Descripcion,
		Area:             in.Area,
		Estado:           entity.TareaPendiente,
		Prioridad:        prioridad,
		EmpleadoAsignado: normalizarRef(in.EmpleadoAsignado),
		PedidoAsociado:   normalizarRef(in.PedidoAsociado),
		FechaCreacion:    time.Now(),
		Observaciones:    in.Observaciones,
	}
	if err := uc.repo.Create(t); err != nil {
		return nil, err
	}
	return uc.toTareaResponse(t), nil
}

// GetByID obtiene una tarea por ID con sus referencias resueltas. Devuelve nil si no existe.
func (uc *TareaUseCase) GetByID(id string) (*dto.TareaResponse, error) {
	t, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}
	return uc.toTareaResponse(t), nil
}

// List lista todas las tareas.
func (uc *TareaUseCase) List() ([]dto.TareaResponse, error) {
	return uc.mapList(uc.repo.List())
}

// ListByArea lista tareas de un área válida.
func (uc *TareaUseCase) ListByArea(area string) ([]dto.TareaResponse, error) {
	if !entity.AreaTareaValida(area) {
		return nil, domain.ErrInvalidInput
	}
	return uc.mapList(uc.repo.ListByArea(area))
}

// Urgentes lista las tareas pendientes de prioridad alta.
func (uc *TareaUseCase) Urgentes() ([]dto.TareaResponse, error) {
	return uc.mapList(uc.repo.Filtrar(repository.FiltroTareas{
		Estado:    entity.TareaPendiente,
		Prioridad: entity.PrioridadAlta,
	}))
}

// Filtrar combina los criterios soportados. El cruce por tipo o plataforma
// del pedido asociado se resuelve aquí: las tareas sin pedido asociado pasan
// esos dos filtros, porque el formulario los usa para acotar, no para exigir pedido.
func (uc *TareaUseCase) Filtrar(in dto.FiltroTareasRequest) ([]dto.TareaResponse, error) {
	if in.Estado != "" && !entity.EstadoTareaValido(in.Estado) {
		return nil, domain.ErrInvalidInput
	}
	if in.Prioridad != "" && !entity.PrioridadValida(in.Prioridad) {
		return nil, domain.ErrInvalidInput
	}
	if in.Area != "" && !entity.AreaTareaValida(in.Area) {
		return nil, domain.ErrInvalidInput
	}
	if in.TipoPedido != "" && !entity.TipoPedidoValido(in.TipoPedido) {
		return nil, domain.ErrInvalidInput
	}
	if in.Plataforma != "" && !entity.PlataformaValida(in.Plataforma) {
		return nil, domain.ErrInvalidInput
	}
	filtro := repository.FiltroTareas{
		Estado:           in.Estado,
		Prioridad:        in.Prioridad,
		Area:             in.Area,
		EmpleadoAsignado: in.EmpleadoAsignado,
	}
	if in.FechaDesde != "" {
		desde, err := time.Parse("2006-01-02", in.FechaDesde)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		filtro.FechaDesde = &desde
	}
	if in.FechaHasta != "" {
		hasta, err := time.Parse("2006-01-02", in.FechaHasta)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		// Límite superior inclusivo: cubre todo el día indicado.
		fin := hasta.Add(24*time.Hour - time.Nanosecond)
		filtro.FechaHasta = &fin
	}
	if filtro.FechaDesde != nil && filtro.FechaHasta != nil && filtro.FechaDesde.After(*filtro.FechaHasta) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.Filtrar(filtro)
	if err != nil {
		return nil, err
	}
	if in.TipoPedido != "" || in.Plataforma != "" {
		filtradas := list[:0]
		for _, t := range list {
			if t.PedidoAsociado == nil {
				filtradas = append(filtradas, t)
				continue
			}
			p, err := uc.pedidos.GetByID(*t.PedidoAsociado)
			if err != nil {
				return nil, err
			}
			if p == nil {
				continue
			}
			if in.TipoPedido != "" && p.Tipo != in.TipoPedido {
				continue
			}
			if in.Plataforma != "" && p.Plataforma != in.Plataforma {
				continue
			}
			filtradas = append(filtradas, t)
		}
		list = filtradas
	}
	return uc.mapList(list, nil)
}

// Update actualiza parcialmente una tarea. El cambio de estado pasa por la
// máquina de estados: una tarea finalizada no admite más transiciones (409).
func (uc *TareaUseCase) Update(id string, in dto.UpdateTareaRequest) (*dto.TareaResponse, error) {
	t, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}
	if in.Area != nil {
		if !entity.AreaTareaValida(*in.Area) {
			return nil, domain.ErrInvalidInput
		}
		t.Area = *in.Area
	}
	if in.Prioridad != nil {
		if !entity.PrioridadValida(*in.Prioridad) {
			return nil, domain.ErrInvalidInput
		}
		t.Prioridad = *in.Prioridad
	}
	if in.EmpleadoAsignado != nil || in.PedidoAsociado != nil {
		if err := uc.validarReferencias(in.EmpleadoAsignado, in.PedidoAsociado); err != nil {
			return nil, err
		}
	}
	if in.EmpleadoAsignado != nil {
		t.EmpleadoAsignado = normalizarRef(in.EmpleadoAsignado)
	}
	if in.PedidoAsociado != nil {
		t.PedidoAsociado = normalizarRef(in.PedidoAsociado)
	}
	if in.Titulo != nil {
		if *in.Titulo == "" {
			return nil, domain.ErrInvalidInput
		}
		t.Titulo = *in.Titulo
	}
	if in.Descripcion != nil {
		t.Descripcion = *in.Descripcion
	}
	if in.Observaciones != nil {
		t.Observaciones = *in.Observaciones
	}
	if in.Estado != nil {
		if !entity.EstadoTareaValido(*in.Estado) {
			return nil, domain.ErrInvalidInput
		}
		if !t.Transicionar(*in.Estado, time.Now()) {
			return nil, domain.ErrConflict
		}
	}
	if err := uc.repo.Update(t); err != nil {
		return nil, err
	}
	return uc.toTareaResponse(t), nil
}

// Delete elimina una tarea. Devuelve domain.ErrNotFound si no existe.
func (uc *TareaUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// EstadisticasPorArea devuelve los conteos por estado agrupados por área.
func (uc *TareaUseCase) EstadisticasPorArea() (map[string]dto.EstadisticasTareasResponse, error) {
	st, err := uc.repo.EstadisticasPorArea()
	if err != nil {
		return nil, err
	}
	out := make(map[string]dto.EstadisticasTareasResponse, len(st))
	for area, s := range st {
		out[area] = dto.EstadisticasTareasResponse{
			Total:       s.Total,
			Pendientes:  s.Pendientes,
			EnProceso:   s.EnProceso,
			Finalizadas: s.Finalizadas,
		}
	}
	return out, nil
}

// validarReferencias exige que el empleado referenciado exista y esté activo
// y que el pedido referenciado exista. Referencias vacías o nil no validan nada.
func (uc *TareaUseCase) validarReferencias(empleadoID, pedidoID *string) error {
	if empleadoID != nil && *empleadoID != "" {
		emp, err := uc.empleados.GetByID(*empleadoID)
		if err != nil {
			return err
		}
		if emp == nil || !emp.Activo {
			return domain.ErrInvalidInput
		}
	}
	if pedidoID != nil && *pedidoID != "" {
		p, err := uc.pedidos.GetByID(*pedidoID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrInvalidInput
		}
	}
	return nil
}

// normalizarRef colapsa punteros a cadena vacía en nil.
func normalizarRef(ref *string) *string {
	if ref == nil || *ref == "" {
		return nil
	}
	return ref
}

func (uc *TareaUseCase) mapList(list []*entity.Tarea, err error) ([]dto.TareaResponse, error) {
	if err != nil {
		return nil, err
	}
	out := make([]dto.TareaResponse, 0, len(list))
	for _, t := range list {
		out = append(out, *uc.toTareaResponse(t))
	}
	return out, nil
}

// toTareaResponse resuelve las referencias débiles por lookup puntual. Un
// lookup que falla o no encuentra al referenciado degrada al texto de
// reemplazo en lugar de tumbar el listado completo.
func (uc *TareaUseCase) toTareaResponse(t *entity.Tarea) *dto.TareaResponse {
	resp := &dto.TareaResponse{
		ID:                t.ID,
		Titulo:            t.Titulo,
		Descripcion:       t.Descripcion,
		Area:              t.Area,
		Estado:            t.Estado,
		Prioridad:         t.Prioridad,
		EmpleadoAsignado:  t.EmpleadoAsignado,
		Empleado:          EmpleadoNoAsignado,
		PedidoAsociado:    t.PedidoAsociado,
		FechaCreacion:     t.FechaCreacion,
		FechaInicio:       t.FechaInicio,
		FechaFinalizacion: t.FechaFinalizacion,
		Observaciones:     t.Observaciones,
	}
	if t.EmpleadoAsignado != nil {
		if emp, err := uc.empleados.GetByID(*t.EmpleadoAsignado); err == nil && emp != nil {
			resp.Empleado = emp.NombreCompleto()
		}
	}
	if t.PedidoAsociado != nil {
		if p, err := uc.pedidos.GetByID(*t.PedidoAsociado); err == nil && p != nil {
			resp.Pedido = p.NumeroOrden
		}
	}
	return resp
}
