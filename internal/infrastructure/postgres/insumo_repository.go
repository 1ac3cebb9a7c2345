package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/saborurbano/backoffice/internal/domain"
	"github.com/saborurbano/backoffice/internal/domain/entity"
	"github.com/saborurbano/backoffice/internal/domain/repository"
)

var _ repository.InsumoRepository = (*InsumoRepo)(nil)

const insumoCols = `id, nombre, categoria, stock, stock_minimo, unidad_medida, proveedor, estado, ultima_actualizacion`

// InsumoRepo implementación del puerto InsumoRepository sobre PostgreSQL (usable con pool o tx).
type InsumoRepo struct {
	q Querier
}

// NewInsumoRepository construye el adaptador de persistencia para insumos. Pasar pool o tx (Querier).
func NewInsumoRepository(q Querier) *InsumoRepo {
	return &InsumoRepo{q: q}
}

func scanInsumo(row pgx.Row) (*entity.Insumo, error) {
	var i entity.Insumo
	err := row.Scan(&i.ID, &i.Nombre, &i.Categoria, &i.Stock, &i.StockMinimo,
		&i.UnidadMedida, &i.Proveedor, &i.Estado, &i.UltimaActualizacion)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *InsumoRepo) list(query string, args ...any) ([]*entity.Insumo, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list insumos: %w", err)
	}
	defer rows.Close()
	var out []*entity.Insumo
	for rows.Next() {
		i, err := scanInsumo(rows)
		if err != nil {
			return nil, fmt.Errorf("scan insumo: %w", err)
		}
		out = append(out, i)
	}
	return out, rows.Err()
}

// List devuelve todos los insumos.
func (r *InsumoRepo) List() ([]*entity.Insumo, error) {
	return r.list(`SELECT ` + insumoCols + ` FROM insumos ORDER BY nombre`)
}

// ListBajoStock devuelve los insumos con stock igual o menor al mínimo.
func (r *InsumoRepo) ListBajoStock() ([]*entity.Insumo, error) {
	return r.list(`SELECT ` + insumoCols + ` FROM insumos WHERE stock <= stock_minimo ORDER BY nombre`)
}

// ListByCategoria filtra insumos por categoría.
func (r *InsumoRepo) ListByCategoria(categoria string) ([]*entity.Insumo, error) {
	return r.list(`SELECT `+insumoCols+` FROM insumos WHERE categoria = $1 ORDER BY nombre`, categoria)
}

// GetByID obtiene un insumo por ID. Devuelve nil si no existe.
func (r *InsumoRepo) GetByID(id string) (*entity.Insumo, error) {
	i, err := scanInsumo(r.q.QueryRow(context.Background(),
		`SELECT `+insumoCols+` FROM insumos WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get insumo: %w", err)
	}
	return i, nil
}

// Create persiste un nuevo insumo con su estado ya derivado.
func (r *InsumoRepo) Create(i *entity.Insumo) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO insumos (id, nombre, categoria, stock, stock_minimo, unidad_medida, proveedor, estado, ultima_actualizacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		i.ID, i.Nombre, i.Categoria, i.Stock, i.StockMinimo, i.UnidadMedida, i.Proveedor, i.Estado, i.UltimaActualizacion,
	)
	if err != nil {
		return fmt.Errorf("insert insumo: %w", err)
	}
	return nil
}

// Update actualiza un insumo existente. El caso de uso recalcula el estado antes de llamar.
func (r *InsumoRepo) Update(i *entity.Insumo) error {
	cmd, err := r.q.Exec(context.Background(), `
		UPDATE insumos
		SET nombre = $2, categoria = $3, stock = $4, stock_minimo = $5, unidad_medida = $6, proveedor = $7, estado = $8, ultima_actualizacion = $9
		WHERE id = $1`,
		i.ID, i.Nombre, i.Categoria, i.Stock, i.StockMinimo, i.UnidadMedida, i.Proveedor, i.Estado, i.UltimaActualizacion,
	)
	if err != nil {
		return fmt.Errorf("update insumo: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Descontar resta cantidad de forma atómica: el UPDATE condicional (stock >= cantidad)
// descarta la resta que dejaría stock negativo y recalcula estado en la misma sentencia,
// de modo que dos descuentos concurrentes nunca pierden escrituras.
func (r *InsumoRepo) Descontar(id string, cantidad int, now time.Time) (*entity.Insumo, error) {
	i, err := scanInsumo(r.q.QueryRow(context.Background(), `
		UPDATE insumos
		SET stock = stock - $2,
		    estado = CASE
		        WHEN stock - $2 = 0 THEN 'sin_stock'
		        WHEN stock - $2 <= stock_minimo THEN 'bajo_stock'
		        ELSE 'disponible'
		    END,
		    ultima_actualizacion = $3
		WHERE id = $1 AND stock >= $2
		RETURNING `+insumoCols,
		id, cantidad, now,
	))
	if err == nil {
		return i, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("descontar insumo: %w", err)
	}
	// Sin filas afectadas: distinguir inexistente de stock insuficiente.
	existente, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existente == nil {
		return nil, domain.ErrNotFound
	}
	return nil, domain.ErrInsufficientStock
}

// Delete elimina un insumo (borrado físico).
func (r *InsumoRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM insumos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete insumo: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
