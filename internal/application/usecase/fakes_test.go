package usecase_test

import (
	"context"
	"sort"
	"time"

	"github.com/saborurbano/backoffice/internal/domain"
	"github.com/saborurbano/backoffice/internal/domain/entity"
	"github.com/saborurbano/backoffice/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeEmpleadoRepo struct {
	items map[string]*entity.Empleado
}

func newFakeEmpleadoRepo() *fakeEmpleadoRepo {
	return &fakeEmpleadoRepo{items: map[string]*entity.Empleado{}}
}

func (f *fakeEmpleadoRepo) List() ([]*entity.Empleado, error) {
	out := make([]*entity.Empleado, 0, len(f.items))
	for _, e := range f.items {
		copia := *e
		out = append(out, &copia)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeEmpleadoRepo) ListActivos() ([]*entity.Empleado, error) {
	all, _ := f.List()
	out := all[:0]
	for _, e := range all {
		if e.Activo {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEmpleadoRepo) ListByRol(rol string) ([]*entity.Empleado, error) {
	activos, _ := f.ListActivos()
	out := activos[:0]
	for _, e := range activos {
		if e.Rol == rol {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEmpleadoRepo) ListByArea(area string) ([]*entity.Empleado, error) {
	activos, _ := f.ListActivos()
	out := activos[:0]
	for _, e := range activos {
		if e.Area == area {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEmpleadoRepo) GetByID(id string) (*entity.Empleado, error) {
	e, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	copia := *e
	return &copia, nil
}

func (f *fakeEmpleadoRepo) GetActivoByEmail(email, excluirID string) (*entity.Empleado, error) {
	for _, e := range f.items {
		if e.Activo && e.Email == email && e.ID != excluirID {
			copia := *e
			return &copia, nil
		}
	}
	return nil, nil
}

func (f *fakeEmpleadoRepo) Create(e *entity.Empleado) error {
	copia := *e
	f.items[e.ID] = &copia
	return nil
}

func (f *fakeEmpleadoRepo) Update(e *entity.Empleado) error {
	if _, ok := f.items[e.ID]; !ok {
		return domain.ErrNotFound
	}
	copia := *e
	f.items[e.ID] = &copia
	return nil
}

func (f *fakeEmpleadoRepo) Estadisticas() (*repository.EstadisticasEmpleados, error) {
	st := &repository.EstadisticasEmpleados{PorRol: map[string]int{}, PorArea: map[string]int{}}
	for _, e := range f.items {
		if !e.Activo {
			continue
		}
		st.Total++
		st.PorRol[e.Rol]++
		st.PorArea[e.Area]++
	}
	return st, nil
}

type fakeInsumoRepo struct {
	items map[string]*entity.Insumo
}

func newFakeInsumoRepo() *fakeInsumoRepo {
	return &fakeInsumoRepo{items: map[string]*entity.Insumo{}}
}

func (f *fakeInsumoRepo) List() ([]*entity.Insumo, error) {
	out := make([]*entity.Insumo, 0, len(f.items))
	for _, i := range f.items {
		copia := *i
		out = append(out, &copia)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeInsumoRepo) ListBajoStock() ([]*entity.Insumo, error) {
	all, _ := f.List()
	out := all[:0]
	for _, i := range all {
		if i.EnAlerta() {
			out = append(out, i)
		}
	}
	return out, nil
}

func (f *fakeInsumoRepo) ListByCategoria(categoria string) ([]*entity.Insumo, error) {
	all, _ := f.List()
	out := all[:0]
	for _, i := range all {
		if i.Categoria == categoria {
			out = append(out, i)
		}
	}
	return out, nil
}

func (f *fakeInsumoRepo) GetByID(id string) (*entity.Insumo, error) {
	i, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	copia := *i
	return &copia, nil
}

func (f *fakeInsumoRepo) Create(i *entity.Insumo) error {
	copia := *i
	f.items[i.ID] = &copia
	return nil
}

func (f *fakeInsumoRepo) Update(i *entity.Insumo) error {
	if _, ok := f.items[i.ID]; !ok {
		return domain.ErrNotFound
	}
	copia := *i
	f.items[i.ID] = &copia
	return nil
}

func (f *fakeInsumoRepo) Descontar(id string, cantidad int, now time.Time) (*entity.Insumo, error) {
	i, ok := f.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if i.Stock < cantidad {
		return nil, domain.ErrInsufficientStock
	}
	i.Stock -= cantidad
	i.RecalcularEstado(now)
	copia := *i
	return &copia, nil
}

func (f *fakeInsumoRepo) Delete(id string) error {
	if _, ok := f.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

type fakeProductoRepo struct {
	items map[string]*entity.Producto
}

func newFakeProductoRepo() *fakeProductoRepo {
	return &fakeProductoRepo{items: map[string]*entity.Producto{}}
}

func (f *fakeProductoRepo) List() ([]*entity.Producto, error) {
	out := make([]*entity.Producto, 0, len(f.items))
	for _, p := range f.items {
		copia := *p
		out = append(out, &copia)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeProductoRepo) GetByID(id string) (*entity.Producto, error) {
	p, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	copia := *p
	return &copia, nil
}

func (f *fakeProductoRepo) Create(p *entity.Producto) error {
	copia := *p
	f.items[p.ID] = &copia
	return nil
}

func (f *fakeProductoRepo) Update(p *entity.Producto) error {
	if _, ok := f.items[p.ID]; !ok {
		return domain.ErrNotFound
	}
	copia := *p
	f.items[p.ID] = &copia
	return nil
}

func (f *fakeProductoRepo) Delete(id string) error {
	if _, ok := f.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

type fakePedidoRepo struct {
	items    map[string]*entity.Pedido
	proximoN int
}

func newFakePedidoRepo() *fakePedidoRepo {
	return &fakePedidoRepo{items: map[string]*entity.Pedido{}, proximoN: 1}
}

func (f *fakePedidoRepo) List() ([]*entity.Pedido, error) {
	out := make([]*entity.Pedido, 0, len(f.items))
	for _, p := range f.items {
		copia := *p
		out = append(out, &copia)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NumeroOrden < out[j].NumeroOrden })
	return out, nil
}

func (f *fakePedidoRepo) filtrar(pred func(*entity.Pedido) bool) ([]*entity.Pedido, error) {
	all, _ := f.List()
	out := all[:0]
	for _, p := range all {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePedidoRepo) ListByTipo(tipo string) ([]*entity.Pedido, error) {
	return f.filtrar(func(p *entity.Pedido) bool { return p.Tipo == tipo })
}

func (f *fakePedidoRepo) ListByPlataforma(plataforma string) ([]*entity.Pedido, error) {
	return f.filtrar(func(p *entity.Pedido) bool { return p.Plataforma == plataforma })
}

func (f *fakePedidoRepo) ListByEstado(estado string) ([]*entity.Pedido, error) {
	return f.filtrar(func(p *entity.Pedido) bool { return p.Estado == estado })
}

func (f *fakePedidoRepo) GetByID(id string) (*entity.Pedido, error) {
	p, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	copia := *p
	return &copia, nil
}

func (f *fakePedidoRepo) NextNumeroOrden() (int, error) {
	return f.proximoN, nil
}

func (f *fakePedidoRepo) Create(p *entity.Pedido) error {
	copia := *p
	f.items[p.ID] = &copia
	f.proximoN++
	return nil
}

func (f *fakePedidoRepo) Update(p *entity.Pedido) error {
	if _, ok := f.items[p.ID]; !ok {
		return domain.ErrNotFound
	}
	copia := *p
	f.items[p.ID] = &copia
	return nil
}

func (f *fakePedidoRepo) Delete(id string) error {
	if _, ok := f.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakePedidoRepo) Estadisticas() (*repository.EstadisticasPedidos, error) {
	st := &repository.EstadisticasPedidos{
		PorTipo:       map[string]int{},
		PorPlataforma: map[string]int{},
		PorEstado:     map[string]int{},
	}
	for _, p := range f.items {
		st.Total++
		st.PorTipo[p.Tipo]++
		st.PorPlataforma[p.Plataforma]++
		st.PorEstado[p.Estado]++
	}
	return st, nil
}

type fakeTareaRepo struct {
	items map[string]*entity.Tarea
}

func newFakeTareaRepo() *fakeTareaRepo {
	return &fakeTareaRepo{items: map[string]*entity.Tarea{}}
}

func (f *fakeTareaRepo) List() ([]*entity.Tarea, error) {
	out := make([]*entity.Tarea, 0, len(f.items))
	for _, t := range f.items {
		copia := *t
		out = append(out, &copia)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeTareaRepo) Filtrar(filtro repository.FiltroTareas) ([]*entity.Tarea, error) {
	all, _ := f.List()
	out := all[:0]
	for _, t := range all {
		if filtro.Estado != "" && t.Estado != filtro.Estado {
			continue
		}
		if filtro.Prioridad != "" && t.Prioridad != filtro.Prioridad {
			continue
		}
		if filtro.Area != "" && t.Area != filtro.Area {
			continue
		}
		if filtro.EmpleadoAsignado != "" {
			if t.EmpleadoAsignado == nil || *t.EmpleadoAsignado != filtro.EmpleadoAsignado {
				continue
			}
		}
		if filtro.FechaDesde != nil && t.FechaCreacion.Before(*filtro.FechaDesde) {
			continue
		}
		if filtro.FechaHasta != nil && t.FechaCreacion.After(*filtro.FechaHasta) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeTareaRepo) ListByArea(area string) ([]*entity.Tarea, error) {
	return f.Filtrar(repository.FiltroTareas{Area: area})
}

func (f *fakeTareaRepo) GetByID(id string) (*entity.Tarea, error) {
	t, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	copia := *t
	return &copia, nil
}

func (f *fakeTareaRepo) Create(t *entity.Tarea) error {
	copia := *t
	f.items[t.ID] = &copia
	return nil
}

func (f *fakeTareaRepo) Update(t *entity.Tarea) error {
	if _, ok := f.items[t.ID]; !ok {
		return domain.ErrNotFound
	}
	copia := *t
	f.items[t.ID] = &copia
	return nil
}

func (f *fakeTareaRepo) Delete(id string) error {
	if _, ok := f.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeTareaRepo) EstadisticasPorArea() (map[string]*repository.EstadisticasTareas, error) {
	out := map[string]*repository.EstadisticasTareas{}
	for _, t := range f.items {
		st, ok := out[t.Area]
		if !ok {
			st = &repository.EstadisticasTareas{}
			out[t.Area] = st
		}
		st.Total++
		switch t.Estado {
		case entity.TareaPendiente:
			st.Pendientes++
		case entity.TareaEnProceso:
			st.EnProceso++
		case entity.TareaFinalizada:
			st.Finalizadas++
		}
	}
	return out, nil
}

// fakeTxRunner ejecuta el callback sin transacción real, contra los fakes.
type fakeTxRunner struct {
	pedidos   repository.PedidoRepository
	productos repository.ProductoRepository
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	pedidoRepo repository.PedidoRepository,
	productoRepo repository.ProductoRepository,
) error) error {
	return fn(f.pedidos, f.productos)
}
