package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/saborurbano/backoffice/internal/domain/entity"
)

func TestNuevaLinea_CalculaSubtotal(t *testing.T) {
	prod := &entity.Producto{
		ID:                  "p1",
		Nombre:              "Hamburguesa completa",
		Precio:              decimal.NewFromFloat(8500.50),
		Stock:               true,
		UltimaActualizacion: time.Now(),
	}

	linea := entity.NuevaLinea(prod, 3)

	assert.Equal(t, "p1", linea.ProductoID)
	assert.Equal(t, "Hamburguesa completa", linea.Nombre)
	assert.True(t, decimal.NewFromFloat(25501.50).Equal(linea.Subtotal),
		"subtotal debe ser precio x cantidad, obtuvo %s", linea.Subtotal)
}

func TestTotalPedido_SumaSubtotales(t *testing.T) {
	items := []entity.ItemPedido{
		{Subtotal: decimal.NewFromInt(1000)},
		{Subtotal: decimal.NewFromFloat(2500.25)},
	}
	assert.True(t, decimal.NewFromFloat(3500.25).Equal(entity.TotalPedido(items)))
	assert.True(t, decimal.Zero.Equal(entity.TotalPedido(nil)))
}

func TestFormatoNumeroOrden(t *testing.T) {
	assert.Equal(t, "ORD-001", entity.FormatoNumeroOrden(1))
	assert.Equal(t, "ORD-042", entity.FormatoNumeroOrden(42))
	assert.Equal(t, "ORD-1000", entity.FormatoNumeroOrden(1000))
}
