package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/saborurbano/backoffice/internal/domain"
	"github.com/saborurbano/backoffice/internal/domain/entity"
	"github.com/saborurbano/backoffice/internal/domain/repository"
)

var _ repository.TareaRepository = (*TareaRepo)(nil)

const tareaCols = `id, titulo, descripcion, area, estado, prioridad, empleado_asignado,
	pedido_asociado, fecha_creacion, fecha_inicio, fecha_finalizacion, observaciones`

// TareaRepo implementación del puerto TareaRepository sobre PostgreSQL (usable con pool o tx).
type TareaRepo struct {
	q Querier
}

// NewTareaRepository construye el adaptador de persistencia para tareas. Pasar pool o tx (Querier).
func NewTareaRepository(q Querier) *TareaRepo {
	return &TareaRepo{q: q}
}

func scanTarea(row pgx.Row) (*entity.Tarea, error) {
	var t entity.Tarea
	err := row.Scan(&t.ID, &t.Titulo, &t.Descripcion, &t.Area, &t.Estado, &t.Prioridad,
		&t.EmpleadoAsignado, &t.PedidoAsociado, &t.FechaCreacion, &t.FechaInicio,
		&t.FechaFinalizacion, &t.Observaciones)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TareaRepo) list(query string, args ...any) ([]*entity.Tarea, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tareas: %w", err)
	}
	defer rows.Close()
	var out []*entity.Tarea
	for rows.Next() {
		t, err := scanTarea(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tarea: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// List devuelve todas las tareas, más recientes primero.
func (r *TareaRepo) List() ([]*entity.Tarea, error) {
	return r.list(`SELECT ` + tareaCols + ` FROM tareas ORDER BY fecha_creacion DESC`)
}

// Filtrar arma el WHERE a partir de los criterios presentes. El cruce por
// tipo/plataforma de pedido se resuelve en el caso de uso intersectando ids.
func (r *TareaRepo) Filtrar(f repository.FiltroTareas) ([]*entity.Tarea, error) {
	var conds []string
	var args []any
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.Estado != "" {
		add("estado = $%d", f.Estado)
	}
	if f.Prioridad != "" {
		add("prioridad = $%d", f.Prioridad)
	}
	if f.Area != "" {
		add("area = $%d", f.Area)
	}
	if f.EmpleadoAsignado != "" {
		add("empleado_asignado = $%d", f.EmpleadoAsignado)
	}
	if f.FechaDesde != nil {
		add("fecha_creacion >= $%d", *f.FechaDesde)
	}
	if f.FechaHasta != nil {
		add("fecha_creacion <= $%d", *f.FechaHasta)
	}
	query := `SELECT ` + tareaCols + ` FROM tareas`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY fecha_creacion DESC`
	return r.list(query, args...)
}

// ListByArea filtra tareas por área operativa.
func (r *TareaRepo) ListByArea(area string) ([]*entity.Tarea, error) {
	return r.list(`SELECT `+tareaCols+` FROM tareas WHERE area = $1 ORDER BY fecha_creacion DESC`, area)
}

// GetByID obtiene una tarea por ID. Devuelve nil si no existe.
func (r *TareaRepo) GetByID(id string) (*entity.Tarea, error) {
	t, err := scanTarea(r.q.QueryRow(context.Background(),
		`SELECT `+tareaCols+` FROM tareas WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tarea: %w", err)
	}
	return t, nil
}

// Create persiste una nueva tarea.
func (r *TareaRepo) Create(t *entity.Tarea) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO tareas (id, titulo, descripcion, area, estado, prioridad, empleado_asignado,
			pedido_asociado, fecha_creacion, fecha_inicio, fecha_finalizacion, observaciones)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		t.ID, t.Titulo, t.Descripcion, t.Area, t.Estado, t.Prioridad, t.EmpleadoAsignado,
		t.PedidoAsociado, t.FechaCreacion, t.FechaInicio, t.FechaFinalizacion, t.Observaciones,
	)
	if err != nil {
		return fmt.Errorf("insert tarea: %w", err)
	}
	return nil
}

// Update actualiza una tarea existente. fecha_creacion no se toca.
func (r *TareaRepo) Update(t *entity.Tarea) error {
	cmd, err := r.q.Exec(context.Background(), `
		UPDATE tareas
		SET titulo = $2, descripcion = $3, area = $4, estado = $5, prioridad = $6,
		    empleado_asignado = $7, pedido_asociado = $8, fecha_inicio = $9,
		    fecha_finalizacion = $10, observaciones = $11
		WHERE id = $1`,
		t.ID, t.Titulo, t.Descripcion, t.Area, t.Estado, t.Prioridad,
		t.EmpleadoAsignado, t.PedidoAsociado, t.FechaInicio, t.FechaFinalizacion, t.Observaciones,
	)
	if err != nil {
		return fmt.Errorf("update tarea: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una tarea (borrado físico).
func (r *TareaRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM tareas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tarea: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// EstadisticasPorArea cuenta tareas por estado dentro de cada área operativa.
func (r *TareaRepo) EstadisticasPorArea() (map[string]*repository.EstadisticasTareas, error) {
	stats := map[string]*repository.EstadisticasTareas{
		entity.TareaGestionPedidos:    {},
		entity.TareaControlInventario: {},
	}
	rows, err := r.q.Query(context.Background(),
		`SELECT area, estado, COUNT(*) FROM tareas GROUP BY area, estado`)
	if err != nil {
		return nil, fmt.Errorf("estadisticas tareas: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var area, estado string
		var n int
		if err := rows.Scan(&area, &estado, &n); err != nil {
			return nil, fmt.Errorf("scan estadisticas: %w", err)
		}
		s, ok := stats[area]
		if !ok {
			continue
		}
		s.Total += n
		switch estado {
		case entity.TareaPendiente:
			s.Pendientes = n
		case entity.TareaEnProceso:
			s.EnProceso = n
		case entity.TareaFinalizada:
			s.Finalizadas = n
		}
	}
	return stats, rows.Err()
}
