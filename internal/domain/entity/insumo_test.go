package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/saborurbano/backoffice/internal/domain/entity"
)

// La regla de estado evalúa primero stock==0: un insumo agotado reporta
// sin_stock incluso con stock mínimo en cero.
func TestEstadoInsumo_Derivacion(t *testing.T) {
	casos := []struct {
		nombre      string
		stock       int
		stockMinimo int
		esperado    string
	}{
		{"agotado", 0, 5, entity.EstadoSinStock},
		{"agotado con minimo cero", 0, 0, entity.EstadoSinStock},
		{"igual al minimo", 5, 5, entity.EstadoBajoStock},
		{"debajo del minimo", 3, 5, entity.EstadoBajoStock},
		{"apenas arriba del minimo", 6, 5, entity.EstadoDisponible},
		{"sobrado", 100, 5, entity.EstadoDisponible},
		{"minimo cero con stock", 1, 0, entity.EstadoDisponible},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			assert.Equal(t, c.esperado, entity.EstadoInsumo(c.stock, c.stockMinimo))
		})
	}
}

// Escenario de cocina: la harina baja del mínimo al descontar y el estado
// derivado acompaña cada escritura.
func TestRecalcularEstado_SigueAlStock(t *testing.T) {
	now := time.Now()
	harina := &entity.Insumo{
		Nombre:      "Harina 000",
		Categoria:   "secos",
		Stock:       10,
		StockMinimo: 5,
	}

	harina.RecalcularEstado(now)
	assert.Equal(t, entity.EstadoDisponible, harina.Estado)
	assert.False(t, harina.EnAlerta())

	harina.Stock = 4
	harina.RecalcularEstado(now)
	assert.Equal(t, entity.EstadoBajoStock, harina.Estado)
	assert.True(t, harina.EnAlerta())

	harina.Stock = 0
	harina.RecalcularEstado(now)
	assert.Equal(t, entity.EstadoSinStock, harina.Estado)
	assert.True(t, harina.EnAlerta())
	assert.Equal(t, now, harina.UltimaActualizacion)
}
