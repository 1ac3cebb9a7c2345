package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de pedido.
const (
	TipoPresencial = "presencial"
	TipoDelivery   = "delivery"
)

// Plataformas de origen del pedido.
const (
	PlataformaRappi     = "rappi"
	PlataformaPedidosYa = "pedidosya"
	PlataformaPropia    = "propia"
	PlataformaLocal     = "local"
)

// Estados de un pedido.
const (
	PedidoPendiente     = "pendiente"
	PedidoEnPreparacion = "en_preparacion"
	PedidoListo         = "listo"
	PedidoEnCamino      = "en_camino"
	PedidoEntregado     = "entregado"
	PedidoFinalizado    = "finalizado"
)

// TiposPedido, PlataformasPedido y EstadosPedido enumeran los valores válidos para validación.
var (
	TiposPedido       = []string{TipoPresencial, TipoDelivery}
	PlataformasPedido = []string{PlataformaRappi, PlataformaPedidosYa, PlataformaPropia, PlataformaLocal}
	EstadosPedido     = []string{PedidoPendiente, PedidoEnPreparacion, PedidoListo, PedidoEnCamino, PedidoEntregado, PedidoFinalizado}
)

// ItemPedido es una línea de pedido ya resuelta contra el catálogo.
// Subtotal = Precio × Cantidad; se calcula en el servidor, nunca se confía al cliente.
type ItemPedido struct {
	ProductoID     string          `json:"productoId"`
	Nombre         string          `json:"nombre"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	Cantidad       int             `json:"cantidad"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

// Cliente datos de contacto del cliente; obligatorios solo cuando el pedido es delivery.
type Cliente struct {
	Nombre    string `json:"nombreCliente"`
	Telefono  string `json:"telefonoCliente"`
	Direccion string `json:"direccionCliente"`
}

// Pedido representa un pedido de clientes con sus líneas resueltas.
// NumeroOrden se asigna una sola vez al crear y nunca cambia; FechaCreacion es inmutable.
type Pedido struct {
	ID             string
	NumeroOrden    string
	Tipo           string
	Plataforma     string
	Items          []ItemPedido
	Total          decimal.Decimal
	Estado         string
	Cliente        Cliente
	TiempoEstimado int // minutos
	Observaciones  string
	FechaCreacion  time.Time
}

// NuevaLinea resuelve una línea contra un producto del catálogo.
func NuevaLinea(p *Producto, cantidad int) ItemPedido {
	return ItemPedido{
		ProductoID:     p.ID,
		Nombre:         p.Nombre,
		PrecioUnitario: p.Precio,
		Cantidad:       cantidad,
		Subtotal:       p.Precio.Mul(decimal.NewFromInt(int64(cantidad))),
	}
}

// TotalPedido suma los subtotales de las líneas. Es la única fuente del total.
func TotalPedido(items []ItemPedido) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal)
	}
	return total
}

// FormatoNumeroOrden arma el número legible a partir del consecutivo (ORD-001, ORD-002, ...).
func FormatoNumeroOrden(n int) string {
	return fmt.Sprintf("ORD-%03d", n)
}

// TipoPedidoValido, PlataformaValida y EstadoPedidoValido validan contra las enumeraciones.
func TipoPedidoValido(tipo string) bool       { return contiene(TiposPedido, tipo) }
func PlataformaValida(plataforma string) bool { return contiene(PlataformasPedido, plataforma) }
func EstadoPedidoValido(estado string) bool   { return contiene(EstadosPedido, estado) }

func contiene(valores []string, v string) bool {
	for _, s := range valores {
		if s == v {
			return true
		}
	}
	return false
}
