package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/saborurbano/backoffice/internal/domain"
	"github.com/saborurbano/backoffice/internal/domain/entity"
	"github.com/saborurbano/backoffice/internal/domain/repository"
)

var _ repository.PedidoRepository = (*PedidoRepo)(nil)

const pedidoCols = `id, numero_orden, tipo, plataforma, items, total, estado,
	nombre_cliente, telefono_cliente, direccion_cliente, tiempo_estimado, observaciones, fecha_creacion`

// PedidoRepo implementación del puerto PedidoRepository sobre PostgreSQL (usable con pool o tx).
// Las líneas del pedido viven como JSONB en la misma fila: el pedido es dueño
// exclusivo de sus items y siempre se leen/escriben juntos.
type PedidoRepo struct {
	q Querier
}

// NewPedidoRepository construye el adaptador de persistencia para pedidos. Pasar pool o tx (Querier).
func NewPedidoRepository(q Querier) *PedidoRepo {
	return &PedidoRepo{q: q}
}

func scanPedido(row pgx.Row) (*entity.Pedido, error) {
	var p entity.Pedido
	var items []byte
	err := row.Scan(&p.ID, &p.NumeroOrden, &p.Tipo, &p.Plataforma, &items, &p.Total, &p.Estado,
		&p.Cliente.Nombre, &p.Cliente.Telefono, &p.Cliente.Direccion,
		&p.TiempoEstimado, &p.Observaciones, &p.FechaCreacion)
	if err != nil {
		return nil, err
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &p.Items); err != nil {
			return nil, fmt.Errorf("decode items: %w", err)
		}
	}
	return &p, nil
}

func (r *PedidoRepo) list(query string, args ...any) ([]*entity.Pedido, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pedidos: %w", err)
	}
	defer rows.Close()
	var out []*entity.Pedido
	for rows.Next() {
		p, err := scanPedido(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pedido: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// List devuelve todos los pedidos, más recientes primero.
func (r *PedidoRepo) List() ([]*entity.Pedido, error) {
	return r.list(`SELECT ` + pedidoCols + ` FROM pedidos ORDER BY fecha_creacion DESC`)
}

// ListByTipo filtra pedidos por tipo.
func (r *PedidoRepo) ListByTipo(tipo string) ([]*entity.Pedido, error) {
	return r.list(`SELECT `+pedidoCols+` FROM pedidos WHERE tipo = $1 ORDER BY fecha_creacion DESC`, tipo)
}

// ListByPlataforma filtra pedidos por plataforma.
func (r *PedidoRepo) ListByPlataforma(plataforma string) ([]*entity.Pedido, error) {
	return r.list(`SELECT `+pedidoCols+` FROM pedidos WHERE plataforma = $1 ORDER BY fecha_creacion DESC`, plataforma)
}

// ListByEstado filtra pedidos por estado.
func (r *PedidoRepo) ListByEstado(estado string) ([]*entity.Pedido, error) {
	return r.list(`SELECT `+pedidoCols+` FROM pedidos WHERE estado = $1 ORDER BY fecha_creacion DESC`, estado)
}

// GetByID obtiene un pedido por ID. Devuelve nil si no existe.
func (r *PedidoRepo) GetByID(id string) (*entity.Pedido, error) {
	p, err := scanPedido(r.q.QueryRow(context.Background(),
		`SELECT `+pedidoCols+` FROM pedidos WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pedido: %w", err)
	}
	return p, nil
}

// NextNumeroOrden devuelve max+1 sobre el consecutivo embebido en numero_orden.
// No serializa lectores concurrentes: dos transacciones pueden leer el mismo
// máximo y la unicidad la garantiza el índice de numero_orden, que hace fallar
// el insert de la perdedora con domain.ErrDuplicate (el caso de uso reintenta).
func (r *PedidoRepo) NextNumeroOrden() (int, error) {
	var next int
	err := r.q.QueryRow(context.Background(), `
		SELECT COALESCE(MAX(CAST(SUBSTRING(numero_orden FROM 'ORD-(\d+)') AS INT)), 0) + 1
		FROM pedidos`).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("next numero de orden: %w", err)
	}
	return next, nil
}

// Create persiste un nuevo pedido con sus líneas ya resueltas.
func (r *PedidoRepo) Create(p *entity.Pedido) error {
	items, err := json.Marshal(p.Items)
	if err != nil {
		return fmt.Errorf("encode items: %w", err)
	}
	_, err = r.q.Exec(context.Background(), `
		INSERT INTO pedidos (id, numero_orden, tipo, plataforma, items, total, estado,
			nombre_cliente, telefono_cliente, direccion_cliente, tiempo_estimado, observaciones, fecha_creacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		p.ID, p.NumeroOrden, p.Tipo, p.Plataforma, items, p.Total, p.Estado,
		p.Cliente.Nombre, p.Cliente.Telefono, p.Cliente.Direccion,
		p.TiempoEstimado, p.Observaciones, p.FechaCreacion,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert pedido: %w", err)
	}
	return nil
}

// Update actualiza un pedido. numero_orden y fecha_creacion no se tocan: son inmutables.
func (r *PedidoRepo) Update(p *entity.Pedido) error {
	items, err := json.Marshal(p.Items)
	if err != nil {
		return fmt.Errorf("encode items: %w", err)
	}
	cmd, err := r.q.Exec(context.Background(), `
		UPDATE pedidos
		SET tipo = $2, plataforma = $3, items = $4, total = $5, estado = $6,
		    nombre_cliente = $7, telefono_cliente = $8, direccion_cliente = $9,
		    tiempo_estimado = $10, observaciones = $11
		WHERE id = $1`,
		p.ID, p.Tipo, p.Plataforma, items, p.Total, p.Estado,
		p.Cliente.Nombre, p.Cliente.Telefono, p.Cliente.Direccion,
		p.TiempoEstimado, p.Observaciones,
	)
	if err != nil {
		return fmt.Errorf("update pedido: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un pedido (borrado físico).
func (r *PedidoRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM pedidos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete pedido: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Estadisticas cuenta pedidos agrupados por tipo, plataforma y estado (enums en cero si no hay filas).
func (r *PedidoRepo) Estadisticas() (*repository.EstadisticasPedidos, error) {
	stats := &repository.EstadisticasPedidos{
		PorTipo:       zeroMap(entity.TiposPedido),
		PorPlataforma: zeroMap(entity.PlataformasPedido),
		PorEstado:     zeroMap(entity.EstadosPedido),
	}
	grupos := []struct {
		query string
		dest  map[string]int
	}{
		{`SELECT tipo, COUNT(*) FROM pedidos GROUP BY tipo`, stats.PorTipo},
		{`SELECT plataforma, COUNT(*) FROM pedidos GROUP BY plataforma`, stats.PorPlataforma},
		{`SELECT estado, COUNT(*) FROM pedidos GROUP BY estado`, stats.PorEstado},
	}
	for _, g := range grupos {
		rows, err := r.q.Query(context.Background(), g.query)
		if err != nil {
			return nil, fmt.Errorf("estadisticas pedidos: %w", err)
		}
		for rows.Next() {
			var clave string
			var n int
			if err := rows.Scan(&clave, &n); err != nil {
				rows.Close()
				return nil, fmt.Errorf("scan estadisticas: %w", err)
			}
			g.dest[clave] = n
		}
		err = rows.Err()
		rows.Close()
		if err != nil {
			return nil, err
		}
	}
	for _, n := range stats.PorTipo {
		stats.Total += n
	}
	return stats, nil
}

func zeroMap(claves []string) map[string]int {
	m := make(map[string]int, len(claves))
	for _, k := range claves {
		m[k] = 0
	}
	return m
}
