package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductoRequest alta de producto. nombre, precio y stock son obligatorios.
// Stock acepta las formas booleanas laxas de los clientes (FlexBool).
type CreateProductoRequest struct {
	Nombre string           `json:"nombre"`
	Precio *decimal.Decimal `json:"precio"`
	Stock  *FlexBool        `json:"stock"`
}

// UpdateProductoRequest actualización parcial con la misma coerción de stock.
type UpdateProductoRequest struct {
	Nombre *string          `json:"nombre"`
	Precio *decimal.Decimal `json:"precio"`
	Stock  *FlexBool        `json:"stock"`
}

// ProductoResponse representación pública de un producto.
type ProductoResponse struct {
	ID                  string          `json:"id"`
	Nombre              string          `json:"nombre"`
	Precio              decimal.Decimal `json:"precio"`
	Stock               bool            `json:"stock"`
	UltimaActualizacion time.Time       `json:"ultimaActualizacion"`
}
