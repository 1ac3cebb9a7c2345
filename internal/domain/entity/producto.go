package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa un producto del catálogo de venta.
// Stock es un flag de disponibilidad, no una cantidad.
type Producto struct {
	ID                  string
	Nombre              string
	Precio              decimal.Decimal // nunca negativo
	Stock               bool
	UltimaActualizacion time.Time
}
