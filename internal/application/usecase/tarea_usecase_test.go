package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saborurbano/backoffice/internal/application/dto"
	"github.com/saborurbano/backoffice/internal/application/usecase"
	"github.com/saborurbano/backoffice/internal/domain"
	"github.com/saborurbano/backoffice/internal/domain/entity"
)

func strPtr(s string) *string { return &s }

type tareaFixture struct {
	uc        *usecase.TareaUseCase
	empleados *fakeEmpleadoRepo
	pedidos   *fakePedidoRepo
}

func nuevaTareaFixture(t *testing.T) *tareaFixture {
	t.Helper()
	empleados := newFakeEmpleadoRepo()
	pedidos := newFakePedidoRepo()
	require.NoError(t, empleados.Create(&entity.Empleado{
		ID: "emp-1", Nombre: "Ana", Apellido: "García",
		Email: "ana@saborurbano.com", Rol: entity.RolCocinero,
		Area: entity.AreaCocina, Activo: true,
	}))
	require.NoError(t, empleados.Create(&entity.Empleado{
		ID: "emp-baja", Nombre: "Luis", Apellido: "Pérez",
		Email: "luis@saborurbano.com", Rol: entity.RolMozo,
		Area: entity.AreaSalon, Activo: false,
	}))
	require.NoError(t, pedidos.Create(&entity.Pedido{
		ID: "ped-1", NumeroOrden: "ORD-001",
		Tipo: entity.TipoDelivery, Plataforma: entity.PlataformaRappi,
		Estado: entity.PedidoPendiente, Total: decimal.NewFromInt(1000),
		FechaCreacion: time.Now(),
	}))
	return &tareaFixture{
		uc:        usecase.NewTareaUseCase(newFakeTareaRepo(), empleados, pedidos),
		empleados: empleados,
		pedidos:   pedidos,
	}
}

func (f *tareaFixture) crear(t *testing.T, in dto.CreateTareaRequest) *dto.TareaResponse {
	t.Helper()
	if in.Titulo == "" {
		in.Titulo = "Tarea de prueba"
	}
	if in.Area == "" {
		in.Area = entity.TareaGestionPedidos
	}
	out, err := f.uc.Create(in)
	require.NoError(t, err)
	return out
}

func TestTareaCreate_EmpleadoInactivoRechazado(t *testing.T) {
	f := nuevaTareaFixture(t)

	_, err := f.uc.Create(dto.CreateTareaRequest{
		Titulo:           "Preparar pedido",
		Area:             entity.TareaGestionPedidos,
		EmpleadoAsignado: strPtr("emp-baja"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.Create(dto.CreateTareaRequest{
		Titulo:           "Preparar pedido",
		Area:             entity.TareaGestionPedidos,
		EmpleadoAsignado: strPtr("emp-fantasma"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTareaCreate_PedidoInexistenteRechazado(t *testing.T) {
	f := nuevaTareaFixture(t)
	_, err := f.uc.Create(dto.CreateTareaRequest{
		Titulo:         "Seguimiento",
		Area:           entity.TareaGestionPedidos,
		PedidoAsociado: strPtr("ped-fantasma"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Las referencias se resuelven al listar: nombre completo del empleado y
// número de orden del pedido, con "No asignado" como reemplazo.
func TestTareaResponse_ResuelveReferencias(t *testing.T) {
	f := nuevaTareaFixture(t)

	conTodo := f.crear(t, dto.CreateTareaRequest{
		EmpleadoAsignado: strPtr("emp-1"),
		PedidoAsociado:   strPtr("ped-1"),
	})
	assert.Equal(t, "Ana García", conTodo.Empleado)
	assert.Equal(t, "ORD-001", conTodo.Pedido)

	sinNada := f.crear(t, dto.CreateTareaRequest{})
	assert.Equal(t, usecase.EmpleadoNoAsignado, sinNada.Empleado)
	assert.Empty(t, sinNada.Pedido)
}

func TestTareaUpdate_MaquinaDeEstados(t *testing.T) {
	f := nuevaTareaFixture(t)
	creada := f.crear(t, dto.CreateTareaRequest{})

	out, err := f.uc.Update(creada.ID, dto.UpdateTareaRequest{Estado: strPtr(entity.TareaEnProceso)})
	require.NoError(t, err)
	assert.Equal(t, entity.TareaEnProceso, out.Estado)
	require.NotNil(t, out.FechaInicio)
	inicio := *out.FechaInicio

	out, err = f.uc.Update(creada.ID, dto.UpdateTareaRequest{Estado: strPtr(entity.TareaFinalizada)})
	require.NoError(t, err)
	assert.Equal(t, entity.TareaFinalizada, out.Estado)
	require.NotNil(t, out.FechaFinalizacion)
	assert.Equal(t, inicio, *out.FechaInicio, "la fecha de inicio no se pisa al finalizar")

	// Reabrir una finalizada responde conflicto.
	_, err = f.uc.Update(creada.ID, dto.UpdateTareaRequest{Estado: strPtr(entity.TareaPendiente)})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// Finalizar directo desde pendiente rellena la fecha de inicio.
func TestTareaUpdate_FinalizarDirectoRellenaInicio(t *testing.T) {
	f := nuevaTareaFixture(t)
	creada := f.crear(t, dto.CreateTareaRequest{})

	out, err := f.uc.Update(creada.ID, dto.UpdateTareaRequest{Estado: strPtr(entity.TareaFinalizada)})
	require.NoError(t, err)
	require.NotNil(t, out.FechaInicio)
	require.NotNil(t, out.FechaFinalizacion)
}

// El filtro por tipo de pedido deja pasar las tareas sin pedido asociado y
// cruza las demás contra el pedido real.
func TestTareaFiltrar_TipoPedidoDejaPasarSinPedido(t *testing.T) {
	f := nuevaTareaFixture(t)

	conPedido := f.crear(t, dto.CreateTareaRequest{PedidoAsociado: strPtr("ped-1")})
	sinPedido := f.crear(t, dto.CreateTareaRequest{})

	// ped-1 es delivery: ambas pasan el filtro delivery.
	out, err := f.uc.Filtrar(dto.FiltroTareasRequest{TipoPedido: entity.TipoDelivery})
	require.NoError(t, err)
	require.Len(t, out, 2)
	ids := []string{out[0].ID, out[1].ID}
	assert.Contains(t, ids, conPedido.ID)
	assert.Contains(t, ids, sinPedido.ID)

	// Con presencial solo pasa la tarea sin pedido.
	out, err = f.uc.Filtrar(dto.FiltroTareasRequest{TipoPedido: entity.TipoPresencial})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, sinPedido.ID, out[0].ID)
}

func TestTareaFiltrar_CombinaCriterios(t *testing.T) {
	f := nuevaTareaFixture(t)

	f.crear(t, dto.CreateTareaRequest{
		Titulo:           "Urgente de cocina",
		Area:             entity.TareaGestionPedidos,
		Prioridad:        entity.PrioridadAlta,
		EmpleadoAsignado: strPtr("emp-1"),
	})
	f.crear(t, dto.CreateTareaRequest{
		Titulo:    "Inventario semanal",
		Area:      entity.TareaControlInventario,
		Prioridad: entity.PrioridadBaja,
	})

	out, err := f.uc.Filtrar(dto.FiltroTareasRequest{
		Area:             entity.TareaGestionPedidos,
		Prioridad:        entity.PrioridadAlta,
		EmpleadoAsignado: "emp-1",
	})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Urgente de cocina", out[0].Titulo)

	_, err = f.uc.Filtrar(dto.FiltroTareasRequest{Estado: "archivada"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTareaUrgentes_ExcluyeFinalizadas(t *testing.T) {
	f := nuevaTareaFixture(t)

	abierta := f.crear(t, dto.CreateTareaRequest{Titulo: "Abierta", Prioridad: entity.PrioridadAlta})
	cerrada := f.crear(t, dto.CreateTareaRequest{Titulo: "Cerrada", Prioridad: entity.PrioridadAlta})
	f.crear(t, dto.CreateTareaRequest{Titulo: "Tranquila", Prioridad: entity.PrioridadBaja})

	_, err := f.uc.Update(cerrada.ID, dto.UpdateTareaRequest{Estado: strPtr(entity.TareaFinalizada)})
	require.NoError(t, err)

	out, err := f.uc.Urgentes()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, abierta.ID, out[0].ID)
}

func TestTareaEstadisticasPorArea(t *testing.T) {
	f := nuevaTareaFixture(t)

	f.crear(t, dto.CreateTareaRequest{Area: entity.TareaGestionPedidos})
	enProceso := f.crear(t, dto.CreateTareaRequest{Area: entity.TareaGestionPedidos})
	f.crear(t, dto.CreateTareaRequest{Area: entity.TareaControlInventario})

	_, err := f.uc.Update(enProceso.ID, dto.UpdateTareaRequest{Estado: strPtr(entity.TareaEnProceso)})
	require.NoError(t, err)

	st, err := f.uc.EstadisticasPorArea()
	require.NoError(t, err)
	assert.Equal(t, 2, st[entity.TareaGestionPedidos].Total)
	assert.Equal(t, 1, st[entity.TareaGestionPedidos].Pendientes)
	assert.Equal(t, 1, st[entity.TareaGestionPedidos].EnProceso)
	assert.Equal(t, 1, st[entity.TareaControlInventario].Total)
}
