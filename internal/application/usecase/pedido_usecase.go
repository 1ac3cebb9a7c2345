package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/saborurbano/backoffice/internal/application/dto"
	"github.com/saborurbano/backoffice/internal/domain"
	"github.com/saborurbano/backoffice/internal/domain/entity"
	"github.com/saborurbano/backoffice/internal/domain/repository"
)

// PedidoTxRunner ejecuta un callback con repos de pedidos y productos atados
// a una misma transacción. La transacción no serializa el cálculo del
// consecutivo: dos altas concurrentes pueden leer el mismo máximo, y es el
// índice único de numero_orden quien detecta a la perdedora.
type PedidoTxRunner interface {
	Run(ctx context.Context, fn func(
		pedidoRepo repository.PedidoRepository,
		productoRepo repository.ProductoRepository,
	) error) error
}

// PedidoUseCase casos de uso de pedidos. El total y los subtotales se
// calculan siempre en el servidor a partir del catálogo vigente.
type PedidoUseCase struct {
	repo repository.PedidoRepository
	tx   PedidoTxRunner
}

// NewPedidoUseCase construye el caso de uso.
func NewPedidoUseCase(repo repository.PedidoRepository, tx PedidoTxRunner) *PedidoUseCase {
	return &PedidoUseCase{repo: repo, tx: tx}
}

// Create da de alta un pedido: resuelve la selección de productos contra el
// catálogo, calcula el total y asigna el número de orden dentro de una
// transacción. Si otra alta concurrente ganó el mismo consecutivo, se
// recalcula y reintenta una vez en lugar de devolver un conflicto espurio.
// Un pedido delivery exige nombre, teléfono y dirección del cliente.
func (uc *PedidoUseCase) Create(ctx context.Context, in dto.CreatePedidoRequest) (*dto.PedidoResponse, error) {
	if !entity.TipoPedidoValido(in.Tipo) || !entity.PlataformaValida(in.Plataforma) {
		return nil, domain.ErrInvalidInput
	}
	if in.Tipo == entity.TipoDelivery {
		if in.NombreCliente == "" || in.TelefonoCliente == "" || in.DireccionCliente == "" {
			return nil, domain.ErrInvalidInput
		}
	}
	tiempoEstimado := 0
	if in.TiempoEstimado != nil {
		if *in.TiempoEstimado < 0 {
			return nil, domain.ErrInvalidInput
		}
		tiempoEstimado = *in.TiempoEstimado
	}

	pedido := &entity.Pedido{
		ID:         uuid.New().String(),
		Tipo:       in.Tipo,
		Plataforma: in.Plataforma,
		Estado:     entity.PedidoPendiente,
		Cliente: entity.Cliente{
			Nombre:    in.NombreCliente,
			Telefono:  in.TelefonoCliente,
			Direccion: in.DireccionCliente,
		},
		TiempoEstimado: tiempoEstimado,
		Observaciones:  in.Observaciones,
		FechaCreacion:  time.Now(),
	}

	insertar := func() error {
		return uc.tx.Run(ctx, func(pedidoRepo repository.PedidoRepository, productoRepo repository.ProductoRepository) error {
			items, err := resolverItems(productoRepo, in.Productos)
			if err != nil {
				return err
			}
			pedido.Items = items
			pedido.Total = entity.TotalPedido(items)

			n, err := pedidoRepo.NextNumeroOrden()
			if err != nil {
				return err
			}
			pedido.NumeroOrden = entity.FormatoNumeroOrden(n)
			return pedidoRepo.Create(pedido)
		})
	}
	err := insertar()
	if errors.Is(err, domain.ErrDuplicate) {
		err = insertar()
	}
	if err != nil {
		return nil, err
	}
	return toPedidoResponse(pedido), nil
}

// GetByID obtiene un pedido por ID. Devuelve nil si no existe.
func (uc *PedidoUseCase) GetByID(id string) (*dto.PedidoResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toPedidoResponse(p), nil
}

// List lista todos los pedidos.
func (uc *PedidoUseCase) List() ([]dto.PedidoResponse, error) {
	return uc.mapList(uc.repo.List())
}

// ListByTipo lista pedidos de un tipo válido.
func (uc *PedidoUseCase) ListByTipo(tipo string) ([]dto.PedidoResponse, error) {
	if !entity.TipoPedidoValido(tipo) {
		return nil, domain.ErrInvalidInput
	}
	return uc.mapList(uc.repo.ListByTipo(tipo))
}

// ListByPlataforma lista pedidos de una plataforma válida.
func (uc *PedidoUseCase) ListByPlataforma(plataforma string) ([]dto.PedidoResponse, error) {
	if !entity.PlataformaValida(plataforma) {
		return nil, domain.ErrInvalidInput
	}
	return uc.mapList(uc.repo.ListByPlataforma(plataforma))
}

// ListByEstado lista pedidos en un estado válido.
func (uc *PedidoUseCase) ListByEstado(estado string) ([]dto.PedidoResponse, error) {
	if !entity.EstadoPedidoValido(estado) {
		return nil, domain.ErrInvalidInput
	}
	return uc.mapList(uc.repo.ListByEstado(estado))
}

// Update actualiza parcialmente un pedido. NumeroOrden y FechaCreacion son
// inmutables; si viene una nueva selección de productos, las líneas se
// reemplazan completas y el total se recalcula contra el catálogo vigente.
func (uc *PedidoUseCase) Update(ctx context.Context, id string, in dto.UpdatePedidoRequest) (*dto.PedidoResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	if in.Tipo != nil {
		if !entity.TipoPedidoValido(*in.Tipo) {
			return nil, domain.ErrInvalidInput
		}
		p.Tipo = *in.Tipo
	}
	if in.Plataforma != nil {
		if !entity.PlataformaValida(*in.Plataforma) {
			return nil, domain.ErrInvalidInput
		}
		p.Plataforma = *in.Plataforma
	}
	if in.Estado != nil {
		if !entity.EstadoPedidoValido(*in.Estado) {
			return nil, domain.ErrInvalidInput
		}
		p.Estado = *in.Estado
	}
	if in.NombreCliente != nil {
		p.Cliente.Nombre = *in.NombreCliente
	}
	if in.TelefonoCliente != nil {
		p.Cliente.Telefono = *in.TelefonoCliente
	}
	if in.DireccionCliente != nil {
		p.Cliente.Direccion = *in.DireccionCliente
	}
	if in.TiempoEstimado != nil {
		if *in.TiempoEstimado < 0 {
			return nil, domain.ErrInvalidInput
		}
		p.TiempoEstimado = *in.TiempoEstimado
	}
	if in.Observaciones != nil {
		p.Observaciones = *in.Observaciones
	}
	if p.Tipo == entity.TipoDelivery {
		if p.Cliente.Nombre == "" || p.Cliente.Telefono == "" || p.Cliente.Direccion == "" {
			return nil, domain.ErrInvalidInput
		}
	}

	if in.Productos != nil {
		err = uc.tx.Run(ctx, func(pedidoRepo repository.PedidoRepository, productoRepo repository.ProductoRepository) error {
			items, err := resolverItems(productoRepo, in.Productos)
			if err != nil {
				return err
			}
			p.Items = items
			p.Total = entity.TotalPedido(items)
			return pedidoRepo.Update(p)
		})
	} else {
		err = uc.repo.Update(p)
	}
	if err != nil {
		return nil, err
	}
	return toPedidoResponse(p), nil
}

// Delete elimina un pedido. Las tareas que lo referencian conservan el ID y
// al listarlas el lookup simplemente no resuelve.
func (uc *PedidoUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// Estadisticas devuelve los conteos de pedidos por tipo, plataforma y estado.
func (uc *PedidoUseCase) Estadisticas() (*dto.EstadisticasPedidosResponse, error) {
	st, err := uc.repo.Estadisticas()
	if err != nil {
		return nil, err
	}
	return &dto.EstadisticasPedidosResponse{
		Total:         st.Total,
		PorTipo:       st.PorTipo,
		PorPlataforma: st.PorPlataforma,
		PorEstado:     st.PorEstado,
	}, nil
}

// resolverItems convierte la selección del formulario en líneas resueltas
// contra el catálogo. Rechaza IDs desconocidos, cantidades inválidas y
// selecciones sin ningún producto marcado.
func resolverItems(productoRepo repository.ProductoRepository, seleccion map[string]dto.SeleccionItem) ([]entity.ItemPedido, error) {
	ids := make([]string, 0, len(seleccion))
	for id, sel := range seleccion {
		if !sel.Seleccionado.Bool() {
			continue
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, domain.ErrInvalidInput
	}
	sort.Strings(ids)

	items := make([]entity.ItemPedido, 0, len(ids))
	for _, id := range ids {
		sel := seleccion[id]
		cantidad := sel.Cantidad
		if cantidad == 0 {
			cantidad = 1
		}
		if cantidad < 0 {
			return nil, domain.ErrInvalidInput
		}
		prod, err := productoRepo.GetByID(id)
		if err != nil {
			return nil, err
		}
		if prod == nil {
			return nil, domain.ErrInvalidInput
		}
		items = append(items, entity.NuevaLinea(prod, cantidad))
	}
	return items, nil
}

func (uc *PedidoUseCase) mapList(list []*entity.Pedido, err error) ([]dto.PedidoResponse, error) {
	if err != nil {
		return nil, err
	}
	out := make([]dto.PedidoResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toPedidoResponse(p))
	}
	return out, nil
}

func toPedidoResponse(p *entity.Pedido) *dto.PedidoResponse {
	return &dto.PedidoResponse{
		ID:               p.ID,
		NumeroOrden:      p.NumeroOrden,
		Tipo:             p.Tipo,
		Plataforma:       p.Plataforma,
		Items:            p.Items,
		Total:            p.Total,
		Estado:           p.Estado,
		NombreCliente:    p.Cliente.Nombre,
		TelefonoCliente:  p.Cliente.Telefono,
		DireccionCliente: p.Cliente.Direccion,
		TiempoEstimado:   p.TiempoEstimado,
		Observaciones:    p.Observaciones,
		FechaCreacion:    p.FechaCreacion,
	}
}
