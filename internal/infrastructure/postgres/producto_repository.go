package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/saborurbano/backoffice/internal/domain"
	"github.com/saborurbano/backoffice/internal/domain/entity"
	"github.com/saborurbano/backoffice/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

// List devuelve todos los productos del catálogo.
func (r *ProductoRepo) List() ([]*entity.Producto, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, nombre, precio, stock, ultima_actualizacion FROM productos ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var out []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Precio, &p.Stock, &p.UltimaActualizacion); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (r *ProductoRepo) GetByID(id string) (*entity.Producto, error) {
	var p entity.Producto
	err := r.q.QueryRow(context.Background(),
		`SELECT id, nombre, precio, stock, ultima_actualizacion FROM productos WHERE id = $1`, id).
		Scan(&p.ID, &p.Nombre, &p.Precio, &p.Stock, &p.UltimaActualizacion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// Create persiste un nuevo producto.
func (r *ProductoRepo) Create(p *entity.Producto) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO productos (id, nombre, precio, stock, ultima_actualizacion)
		VALUES ($1, $2, $3, $4, $5)`,
		p.ID, p.Nombre, p.Precio, p.Stock, p.UltimaActualizacion,
	)
	if err != nil {
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// Update actualiza un producto existente.
func (r *ProductoRepo) Update(p *entity.Producto) error {
	cmd, err := r.q.Exec(context.Background(), `
		UPDATE productos SET nombre = $2, precio = $3, stock = $4, ultima_actualizacion = $5
		WHERE id = $1`,
		p.ID, p.Nombre, p.Precio, p.Stock, p.UltimaActualizacion,
	)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto (borrado físico).
func (r *ProductoRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
