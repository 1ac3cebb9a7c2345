package repository

import "github.com/saborurbano/backoffice/internal/domain/entity"

// EstadisticasPedidos conteos de pedidos agrupados por tipo, plataforma y estado.
type EstadisticasPedidos struct {
	Total         int
	PorTipo       map[string]int
	PorPlataforma map[string]int
	PorEstado     map[string]int
}

// PedidoRepository define el puerto de persistencia para Pedido (DIP).
type PedidoRepository interface {
	List() ([]*entity.Pedido, error)
	ListByTipo(tipo string) ([]*entity.Pedido, error)
	ListByPlataforma(plataforma string) ([]*entity.Pedido, error)
	ListByEstado(estado string) ([]*entity.Pedido, error)
	GetByID(id string) (*entity.Pedido, error)
	// NextNumeroOrden devuelve el siguiente consecutivo (max+1). Debe
	// invocarse dentro de la misma transacción que Create para que el
	// número asignado sea único.
	NextNumeroOrden() (int, error)
	Create(p *entity.Pedido) error
	Update(p *entity.Pedido) error
	Delete(id string) error
	Estadisticas() (*EstadisticasPedidos, error)
}
