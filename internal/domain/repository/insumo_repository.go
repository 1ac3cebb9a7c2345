package repository

import (
	"time"

	"github.com/saborurbano/backoffice/internal/domain/entity"
)

// InsumoRepository define el puerto de persistencia para Insumo (DIP).
type InsumoRepository interface {
	List() ([]*entity.Insumo, error)
	ListBajoStock() ([]*entity.Insumo, error)
	ListByCategoria(categoria string) ([]*entity.Insumo, error)
	GetByID(id string) (*entity.Insumo, error)
	Create(i *entity.Insumo) error
	Update(i *entity.Insumo) error
	// Descontar resta cantidad del stock de forma atómica y recalcula el
	// estado en la misma sentencia. Devuelve domain.ErrInsufficientStock si
	// el stock quedaría negativo (sin modificarlo) y domain.ErrNotFound si
	// el insumo no existe.
	Descontar(id string, cantidad int, now time.Time) (*entity.Insumo, error)
	Delete(id string) error
}
