package dto

import "time"

// CreateInsumoRequest alta de insumo. nombre y categoría son obligatorios;
// stock y stockMinimo aceptan número o texto numérico y se fuerzan a enteros
// no negativos.
type CreateInsumoRequest struct {
	Nombre       string   `json:"nombre"`
	Categoria    string   `json:"categoria"`
	Stock        *FlexInt `json:"stock"`
	StockMinimo  *FlexInt `json:"stockMinimo"`
	UnidadMedida string   `json:"unidadMedida"`
	Proveedor    string   `json:"proveedor"`
}

// UpdateInsumoRequest actualización parcial de un insumo.
type UpdateInsumoRequest struct {
	Nombre       *string  `json:"nombre"`
	Categoria    *string  `json:"categoria"`
	Stock        *FlexInt `json:"stock"`
	StockMinimo  *FlexInt `json:"stockMinimo"`
	UnidadMedida *string  `json:"unidadMedida"`
	Proveedor    *string  `json:"proveedor"`
}

// StockRequest fija el stock absoluto de un insumo.
type StockRequest struct {
	Stock *FlexInt `json:"stock"`
}

// DescontarRequest descuenta una cantidad del stock.
type DescontarRequest struct {
	Cantidad *FlexInt `json:"cantidad"`
}

// InsumoResponse representación pública de un insumo.
type InsumoResponse struct {
	ID                  string    `json:"id"`
	Nombre              string    `json:"nombre"`
	Categoria           string    `json:"categoria"`
	Stock               int       `json:"stock"`
	StockMinimo         int       `json:"stockMinimo"`
	UnidadMedida        string    `json:"unidadMedida"`
	Proveedor           string    `json:"proveedor"`
	Estado              string    `json:"estado"`
	UltimaActualizacion time.Time `json:"ultimaActualizacion"`
}

// AlertaInsumoResponse proyección reducida para el panel de alertas de stock.
type AlertaInsumoResponse struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	StockActual int    `json:"stockActual"`
	StockMinimo int    `json:"stockMinimo"`
	Estado      string `json:"estado"`
	Proveedor   string `json:"proveedor"`
}
