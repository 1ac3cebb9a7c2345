package repository

import "github.com/saborurbano/backoffice/internal/domain/entity"

// ProductoRepository define el puerto de persistencia para Producto (DIP).
type ProductoRepository interface {
	List() ([]*entity.Producto, error)
	GetByID(id string) (*entity.Producto, error)
	Create(p *entity.Producto) error
	Update(p *entity.Producto) error
	Delete(id string) error
}
