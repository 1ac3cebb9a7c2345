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

var _ repository.EmpleadoRepository = (*EmpleadoRepo)(nil)

const empleadoCols = `id, nombre, apellido, email, telefono, rol, area, fecha_ingreso, activo`

// EmpleadoRepo implementación del puerto EmpleadoRepository sobre PostgreSQL (usable con pool o tx).
type EmpleadoRepo struct {
	q Querier
}

// NewEmpleadoRepository construye el adaptador de persistencia para empleados. Pasar pool o tx (Querier).
func NewEmpleadoRepository(q Querier) *EmpleadoRepo {
	return &EmpleadoRepo{q: q}
}

func scanEmpleado(row pgx.Row) (*entity.Empleado, error) {
	var e entity.Empleado
	err := row.Scan(&e.ID, &e.Nombre, &e.Apellido, &e.Email, &e.Telefono, &e.Rol, &e.Area, &e.FechaIngreso, &e.Activo)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EmpleadoRepo) list(query string, args ...any) ([]*entity.Empleado, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list empleados: %w", err)
	}
	defer rows.Close()
	var out []*entity.Empleado
	for rows.Next() {
		e, err := scanEmpleado(rows)
		if err != nil {
			return nil, fmt.Errorf("scan empleado: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// List devuelve todos los empleados, activos e inactivos.
func (r *EmpleadoRepo) List() ([]*entity.Empleado, error) {
	return r.list(`SELECT ` + empleadoCols + ` FROM empleados ORDER BY apellido, nombre`)
}

// ListActivos devuelve solo empleados con activo = true.
func (r *EmpleadoRepo) ListActivos() ([]*entity.Empleado, error) {
	return r.list(`SELECT ` + empleadoCols + ` FROM empleados WHERE activo ORDER BY apellido, nombre`)
}

// ListByRol filtra por rol, solo activos.
func (r *EmpleadoRepo) ListByRol(rol string) ([]*entity.Empleado, error) {
	return r.list(`SELECT `+empleadoCols+` FROM empleados WHERE rol = $1 AND activo ORDER BY apellido, nombre`, rol)
}

// ListByArea filtra por área, solo activos.
func (r *EmpleadoRepo) ListByArea(area string) ([]*entity.Empleado, error) {
	return r.list(`SELECT `+empleadoCols+` FROM empleados WHERE area = $1 AND activo ORDER BY apellido, nombre`, area)
}

// GetByID obtiene un empleado por ID. Devuelve nil si no existe.
func (r *EmpleadoRepo) GetByID(id string) (*entity.Empleado, error) {
	e, err := scanEmpleado(r.q.QueryRow(context.Background(),
		`SELECT `+empleadoCols+` FROM empleados WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empleado: %w", err)
	}
	return e, nil
}

// GetActivoByEmail busca un empleado activo con ese email, excluyendo excluirID si no está vacío.
func (r *EmpleadoRepo) GetActivoByEmail(email, excluirID string) (*entity.Empleado, error) {
	e, err := scanEmpleado(r.q.QueryRow(context.Background(),
		`SELECT `+empleadoCols+` FROM empleados WHERE email = $1 AND activo AND ($2 = '' OR id <> $2)`,
		email, excluirID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empleado by email: %w", err)
	}
	return e, nil
}

// Create persiste un nuevo empleado.
func (r *EmpleadoRepo) Create(e *entity.Empleado) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO empleados (id, nombre, apellido, email, telefono, rol, area, fecha_ingreso, activo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		e.ID, e.Nombre, e.Apellido, e.Email, e.Telefono, e.Rol, e.Area, e.FechaIngreso, e.Activo,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert empleado: %w", err)
	}
	return nil
}

// Update actualiza un empleado existente (incluida la baja lógica vía Activo).
func (r *EmpleadoRepo) Update(e *entity.Empleado) error {
	cmd, err := r.q.Exec(context.Background(), `
		UPDATE empleados
		SET nombre = $2, apellido = $3, email = $4, telefono = $5, rol = $6, area = $7, fecha_ingreso = $8, activo = $9
		WHERE id = $1`,
		e.ID, e.Nombre, e.Apellido, e.Email, e.Telefono, e.Rol, e.Area, e.FechaIngreso, e.Activo,
	)
	if err != nil {
		return fmt.Errorf("update empleado: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Estadisticas cuenta empleados activos agrupados por rol y por área.
// Los valores del enum sin ocurrencias salen en cero.
func (r *EmpleadoRepo) Estadisticas() (*repository.EstadisticasEmpleados, error) {
	stats := &repository.EstadisticasEmpleados{
		PorRol:  make(map[string]int),
		PorArea: make(map[string]int),
	}
	for _, rol := range entity.Roles() {
		stats.PorRol[rol.Nombre] = 0
	}
	for _, area := range entity.Areas() {
		stats.PorArea[area.Nombre] = 0
	}

	if err := r.groupCount(`SELECT rol, COUNT(*) FROM empleados WHERE activo GROUP BY rol`, stats.PorRol); err != nil {
		return nil, err
	}
	if err := r.groupCount(`SELECT area, COUNT(*) FROM empleados WHERE activo GROUP BY area`, stats.PorArea); err != nil {
		return nil, err
	}
	for _, n := range stats.PorRol {
		stats.Total += n
	}
	return stats, nil
}

func (r *EmpleadoRepo) groupCount(query string, dest map[string]int) error {
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return fmt.Errorf("estadisticas empleados: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var clave string
		var n int
		if err := rows.Scan(&clave, &n); err != nil {
			return fmt.Errorf("scan estadisticas: %w", err)
		}
		dest[clave] = n
	}
	return rows.Err()
}
