package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/saborurbano/backoffice/internal/domain/entity"
)

// SeleccionItem es la selección de un producto dentro del formulario de pedido.
// Solo las entradas con Seleccionado == true generan líneas.
type SeleccionItem struct {
	Seleccionado FlexBool `json:"seleccionado"`
	Cantidad     int      `json:"cantidad"`
}

// CreatePedidoRequest alta de pedido. Las claves de productos son IDs de
// producto; el precio y el subtotal se resuelven en el servidor.
type CreatePedidoRequest struct {
	Tipo             string                   `json:"tipo"`
	Plataforma       string                   `json:"plataforma"`
	Productos        map[string]SeleccionItem `json:"productos"`
	NombreCliente    string                   `json:"nombreCliente"`
	TelefonoCliente  string                   `json:"telefonoCliente"`
	DireccionCliente string                   `json:"direccionCliente"`
	TiempoEstimado   *int                     `json:"tiempoEstimado"`
	Observaciones    string                   `json:"observaciones"`
}

// UpdatePedidoRequest actualización parcial. Si Productos viene presente,
// las líneas se reemplazan completas y el total se recalcula.
type UpdatePedidoRequest struct {
	Tipo             *string                  `json:"tipo"`
	Plataforma       *string                  `json:"plataforma"`
	Estado           *string                  `json:"estado"`
	Productos        map[string]SeleccionItem `json:"productos"`
	NombreCliente    *string                  `json:"nombreCliente"`
	TelefonoCliente  *string                  `json:"telefonoCliente"`
	DireccionCliente *string                  `json:"direccionCliente"`
	TiempoEstimado   *int                     `json:"tiempoEstimado"`
	Observaciones    *string                  `json:"observaciones"`
}

// PedidoResponse representación pública de un pedido.
type PedidoResponse struct {
	ID               string              `json:"id"`
	NumeroOrden      string              `json:"numeroOrden"`
	Tipo             string              `json:"tipo"`
	Plataforma       string              `json:"plataforma"`
	Items            []entity.ItemPedido `json:"items"`
	Total            decimal.Decimal     `json:"total"`
	Estado           string              `json:"estado"`
	NombreCliente    string              `json:"nombreCliente"`
	TelefonoCliente  string              `json:"telefonoCliente"`
	DireccionCliente string              `json:"direccionCliente"`
	TiempoEstimado   int                 `json:"tiempoEstimado"`
	Observaciones    string              `json:"observaciones"`
	FechaCreacion    time.Time           `json:"fechaCreacion"`
}

// EstadisticasPedidosResponse conteos de pedidos por tipo, plataforma y estado.
type EstadisticasPedidosResponse struct {
	Total         int            `json:"total"`
	PorTipo       map[string]int `json:"porTipo"`
	PorPlataforma map[string]int `json:"porPlataforma"`
	PorEstado     map[string]int `json:"porEstado"`
}
