package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saborurbano/backoffice/internal/application/usecase"
	"github.com/saborurbano/backoffice/internal/domain/entity"
)

func TestDashboardResumen(t *testing.T) {
	tareas := newFakeTareaRepo()
	empleados := newFakeEmpleadoRepo()
	insumos := newFakeInsumoRepo()
	pedidos := newFakePedidoRepo()

	require.NoError(t, tareas.Create(&entity.Tarea{ID: "t1", Titulo: "A", Area: entity.TareaGestionPedidos, Estado: entity.TareaPendiente, Prioridad: entity.PrioridadMedia, FechaCreacion: time.Now()}))
	require.NoError(t, tareas.Create(&entity.Tarea{ID: "t2", Titulo: "B", Area: entity.TareaGestionPedidos, Estado: entity.TareaFinalizada, Prioridad: entity.PrioridadMedia, FechaCreacion: time.Now()}))
	require.NoError(t, empleados.Create(&entity.Empleado{ID: "e1", Email: "a@b.co", Activo: true}))
	require.NoError(t, empleados.Create(&entity.Empleado{ID: "e2", Email: "c@d.co", Activo: false}))
	require.NoError(t, insumos.Create(&entity.Insumo{ID: "i1", Stock: 1, StockMinimo: 5, Estado: entity.EstadoBajoStock}))
	require.NoError(t, insumos.Create(&entity.Insumo{ID: "i2", Stock: 20, StockMinimo: 5, Estado: entity.EstadoDisponible}))
	require.NoError(t, pedidos.Create(&entity.Pedido{ID: "p1", NumeroOrden: "ORD-001", Tipo: entity.TipoPresencial, Plataforma: entity.PlataformaLocal, Estado: entity.PedidoPendiente, Total: decimal.Zero, FechaCreacion: time.Now()}))

	uc := usecase.NewDashboardUseCase(tareas, empleados, insumos, pedidos)
	out, err := uc.Resumen()
	require.NoError(t, err)

	assert.Equal(t, 1, out.TareasPendientes)
	assert.Equal(t, 1, out.EmpleadosActivos)
	assert.Equal(t, 1, out.InsumosEnAlerta)
	assert.Equal(t, 1, out.PedidosPendientes)
}
