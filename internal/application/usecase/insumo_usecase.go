package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/saborurbano/backoffice/internal/application/dto"
	"github.com/saborurbano/backoffice/internal/domain"
	"github.com/saborurbano/backoffice/internal/domain/entity"
	"github.com/saborurbano/backoffice/internal/domain/repository"
)

// InsumoUseCase casos de uso de inventario de insumos. El estado
// (disponible / bajo_stock / sin_stock) es derivado y se recalcula en cada escritura.
type InsumoUseCase struct {
	repo repository.InsumoRepository
}

// NewInsumoUseCase construye el caso de uso.
func NewInsumoUseCase(repo repository.InsumoRepository) *InsumoUseCase {
	return &InsumoUseCase{repo: repo}
}

// Create da de alta un insumo. Stock ausente arranca en 0 y stockMinimo
// ausente toma el valor por defecto; los negativos se rechazan.
func (uc *InsumoUseCase) Create(in dto.CreateInsumoRequest) (*dto.InsumoResponse, error) {
	if in.Nombre == "" || in.Categoria == "" {
		return nil, domain.ErrInvalidInput
	}
	stock := 0
	if in.Stock != nil {
		stock = in.Stock.Int()
	}
	stockMinimo := entity.StockMinimoDefault
	if in.StockMinimo != nil {
		stockMinimo = in.StockMinimo.Int()
	}
	if stock < 0 || stockMinimo < 0 {
		return nil, domain.ErrInvalidInput
	}
	ins := &entity.Insumo{
		ID:           uuid.New().String(),
		Nombre:       in.Nombre,
		Categoria:    in.Categoria,
		Stock:        stock,
		StockMinimo:  stockMinimo,
		UnidadMedida: in.UnidadMedida,
		Proveedor:    in.Proveedor,
	}
	ins.RecalcularEstado(time.Now())
	if err := uc.repo.Create(ins); err != nil {
		return nil, err
	}
	return toInsumoResponse(ins), nil
}

// GetByID obtiene un insumo por ID. Devuelve nil si no existe.
func (uc *InsumoUseCase) GetByID(id string) (*dto.InsumoResponse, error) {
	ins, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ins == nil {
		return nil, nil
	}
	return toInsumoResponse(ins), nil
}

// List lista todos los insumos.
func (uc *InsumoUseCase) List() ([]dto.InsumoResponse, error) {
	return uc.mapList(uc.repo.List())
}

// ListBajoStock lista los insumos con stock <= mínimo (incluye los agotados).
func (uc *InsumoUseCase) ListBajoStock() ([]dto.InsumoResponse, error) {
	return uc.mapList(uc.repo.ListBajoStock())
}

// ListByCategoria lista insumos de una categoría.
func (uc *InsumoUseCase) ListByCategoria(categoria string) ([]dto.InsumoResponse, error) {
	return uc.mapList(uc.repo.ListByCategoria(categoria))
}

// Alertas arma el panel de reposición con los insumos en alerta.
func (uc *InsumoUseCase) Alertas() ([]dto.AlertaInsumoResponse, error) {
	list, err := uc.repo.ListBajoStock()
	if err != nil {
		return nil, err
	}
	out := make([]dto.AlertaInsumoResponse, 0, len(list))
	for _, i := range list {
		out = append(out, dto.AlertaInsumoResponse{
			ID:          i.ID,
			Nombre:      i.Nombre,
			StockActual: i.Stock,
			StockMinimo: i.StockMinimo,
			Estado:      i.Estado,
			Proveedor:   i.Proveedor,
		})
	}
	return out, nil
}

// Update actualiza parcialmente un insumo y recalcula el estado derivado.
func (uc *InsumoUseCase) Update(id string, in dto.UpdateInsumoRequest) (*dto.InsumoResponse, error) {
	ins, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ins == nil {
		return nil, nil
	}
	if in.Stock != nil {
		if in.Stock.Int() < 0 {
			return nil, domain.ErrInvalidInput
		}
		ins.Stock = in.Stock.Int()
	}
	if in.StockMinimo != nil {
		if in.StockMinimo.Int() < 0 {
			return nil, domain.ErrInvalidInput
		}
		ins.StockMinimo = in.StockMinimo.Int()
	}
	if in.Nombre != nil {
		ins.Nombre = *in.Nombre
	}
	if in.Categoria != nil {
		ins.Categoria = *in.Categoria
	}
	if in.UnidadMedida != nil {
		ins.UnidadMedida = *in.UnidadMedida
	}
	if in.Proveedor != nil {
		ins.Proveedor = *in.Proveedor
	}
	ins.RecalcularEstado(time.Now())
	if err := uc.repo.Update(ins); err != nil {
		return nil, err
	}
	return toInsumoResponse(ins), nil
}

// SetStock fija el stock absoluto de un insumo.
func (uc *InsumoUseCase) SetStock(id string, in dto.StockRequest) (*dto.InsumoResponse, error) {
	if in.Stock == nil || in.Stock.Int() < 0 {
		return nil, domain.ErrInvalidInput
	}
	ins, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ins == nil {
		return nil, nil
	}
	ins.Stock = in.Stock.Int()
	ins.RecalcularEstado(time.Now())
	if err := uc.repo.Update(ins); err != nil {
		return nil, err
	}
	return toInsumoResponse(ins), nil
}

// Descontar resta una cantidad del stock de forma atómica; nunca deja stock
// negativo. Devuelve domain.ErrInsufficientStock si la cantidad supera el stock.
func (uc *InsumoUseCase) Descontar(id string, in dto.DescontarRequest) (*dto.InsumoResponse, error) {
	if in.Cantidad == nil || in.Cantidad.Int() <= 0 {
		return nil, domain.ErrInvalidInput
	}
	ins, err := uc.repo.Descontar(id, in.Cantidad.Int(), time.Now())
	if err != nil {
		return nil, err
	}
	return toInsumoResponse(ins), nil
}

// Delete elimina un insumo. Devuelve domain.ErrNotFound si no existe.
func (uc *InsumoUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func (uc *InsumoUseCase) mapList(list []*entity.Insumo, err error) ([]dto.InsumoResponse, error) {
	if err != nil {
		return nil, err
	}
	out := make([]dto.InsumoResponse, 0, len(list))
	for _, i := range list {
		out = append(out, *toInsumoResponse(i))
	}
	return out, nil
}

func toInsumoResponse(i *entity.Insumo) *dto.InsumoResponse {
	return &dto.InsumoResponse{
		ID:                  i.ID,
		Nombre:              i.Nombre,
		Categoria:           i.Categoria,
		Stock:               i.Stock,
		StockMinimo:         i.StockMinimo,
		UnidadMedida:        i.UnidadMedida,
		Proveedor:           i.Proveedor,
		Estado:              i.Estado,
		UltimaActualizacion: i.UltimaActualizacion,
	}
}
