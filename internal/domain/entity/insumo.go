package entity

import "time"

// Estados derivados de un insumo según stock vs. stock mínimo.
const (
	EstadoSinStock   = "sin_stock"
	EstadoBajoStock  = "bajo_stock"
	EstadoDisponible = "disponible"
)

// StockMinimoDefault se aplica al crear un insumo sin stock mínimo explícito.
const StockMinimoDefault = 5

// Insumo representa un insumo de cocina con control de stock.
// Estado es derivado: debe recomputarse con EstadoInsumo en cada escritura.
type Insumo struct {
	ID                  string
	Nombre              string
	Categoria           string
	Stock               int // nunca negativo
	StockMinimo         int // nunca negativo
	UnidadMedida        string
	Proveedor           string
	Estado              string
	UltimaActualizacion time.Time
}

// EstadoInsumo deriva el estado a partir de stock y stock mínimo.
// Regla canónica: el caso stock==0 se evalúa primero, de modo que un insumo
// agotado reporta sin_stock incluso con stockMinimo==0.
func EstadoInsumo(stock, stockMinimo int) string {
	switch {
	case stock == 0:
		return EstadoSinStock
	case stock <= stockMinimo:
		return EstadoBajoStock
	default:
		return EstadoDisponible
	}
}

// RecalcularEstado aplica EstadoInsumo sobre los valores actuales y refresca la marca temporal.
func (i *Insumo) RecalcularEstado(now time.Time) {
	i.Estado = EstadoInsumo(i.Stock, i.StockMinimo)
	i.UltimaActualizacion = now
}

// EnAlerta indica si el insumo entra en el listado de bajo stock (stock <= mínimo).
func (i *Insumo) EnAlerta() bool {
	return i.Stock <= i.StockMinimo
}
