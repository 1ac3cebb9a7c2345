package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/saborurbano/backoffice/internal/application/dto"
	"github.com/saborurbano/backoffice/internal/domain"
	"github.com/saborurbano/backoffice/internal/domain/entity"
	"github.com/saborurbano/backoffice/internal/domain/repository"
)

// ProductoUseCase casos de uso del catálogo de productos vendibles.
type ProductoUseCase struct {
	repo repository.ProductoRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo}
}

// Create da de alta un producto. El precio no puede ser negativo.
func (uc *ProductoUseCase) Create(in dto.CreateProductoRequest) (*dto.ProductoResponse, error) {
	if in.Nombre == "" || in.Precio == nil || in.Stock == nil {
		return nil, domain.ErrInvalidInput
	}
	if in.Precio.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	p := &entity.Producto{
		ID:                  uuid.New().String(),
		Nombre:              in.Nombre,
		Precio:              *in.Precio,
		Stock:               in.Stock.Bool(),
		UltimaActualizacion: time.Now(),
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toProductoResponse(p), nil
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (uc *ProductoUseCase) GetByID(id string) (*dto.ProductoResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toProductoResponse(p), nil
}

// List lista el catálogo completo.
func (uc *ProductoUseCase) List() ([]dto.ProductoResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toProductoResponse(p))
	}
	return out, nil
}

// Update actualiza parcialmente un producto.
func (uc *ProductoUseCase) Update(id string, in dto.UpdateProductoRequest) (*dto.ProductoResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	if in.Precio != nil {
		if in.Precio.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		p.Precio = *in.Precio
	}
	if in.Nombre != nil {
		p.Nombre = *in.Nombre
	}
	if in.Stock != nil {
		p.Stock = in.Stock.Bool()
	}
	p.UltimaActualizacion = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toProductoResponse(p), nil
}

// Delete elimina un producto del catálogo. Los pedidos existentes conservan
// sus líneas porque llevan nombre y precio copiados.
func (uc *ProductoUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ID:                  p.ID,
		Nombre:              p.Nombre,
		Precio:              p.Precio,
		Stock:               p.Stock,
		UltimaActualizacion: p.UltimaActualizacion,
	}
}
