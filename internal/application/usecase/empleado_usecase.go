package usecase

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/saborurbano/backoffice/internal/application/dto"
	"github.com/saborurbano/backoffice/internal/domain"
	"github.com/saborurbano/backoffice/internal/domain/entity"
	"github.com/saborurbano/backoffice/internal/domain/repository"
)

var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// EmpleadoUseCase casos de uso del personal: CRUD con baja lógica y
// unicidad de email solo entre empleados activos.
type EmpleadoUseCase struct {
	repo repository.EmpleadoRepository
}

// NewEmpleadoUseCase construye el caso de uso.
func NewEmpleadoUseCase(repo repository.EmpleadoRepository) *EmpleadoUseCase {
	return &EmpleadoUseCase{repo: repo}
}

// Create da de alta un empleado. Valida obligatorios, formato de email,
// rol y área de catálogo, y que el email no esté en uso por un activo.
func (uc *EmpleadoUseCase) Create(in dto.CreateEmpleadoRequest) (*dto.EmpleadoResponse, error) {
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	if in.Nombre == "" || in.Apellido == "" || in.Email == "" || in.Rol == "" || in.Area == "" {
		return nil, domain.ErrInvalidInput
	}
	if !emailRegexp.MatchString(in.Email) {
		return nil, domain.ErrInvalidInput
	}
	if !entity.RolValido(in.Rol) || !entity.AreaValida(in.Area) {
		return nil, domain.ErrInvalidInput
	}
	existente, err := uc.repo.GetActivoByEmail(in.Email, "")
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	fechaIngreso := in.FechaIngreso
	if fechaIngreso == "" {
		fechaIngreso = time.Now().Format("2006-01-02")
	}
	emp := &entity.Empleado{
		ID:           uuid.New().String(),
		Nombre:       in.Nombre,
		Apellido:     in.Apellido,
		Email:        in.Email,
		Telefono:     in.Telefono,
		Rol:          in.Rol,
		Area:         in.Area,
		FechaIngreso: fechaIngreso,
		Activo:       true,
	}
	if err := uc.repo.Create(emp); err != nil {
		return nil, err
	}
	return toEmpleadoResponse(emp), nil
}

// GetByID obtiene un empleado por ID. Devuelve nil si no existe.
func (uc *EmpleadoUseCase) GetByID(id string) (*dto.EmpleadoResponse, error) {
	emp, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, nil
	}
	return toEmpleadoResponse(emp), nil
}

// List lista todos los empleados, incluidos los dados de baja.
func (uc *EmpleadoUseCase) List() ([]dto.EmpleadoResponse, error) {
	return uc.mapList(uc.repo.List())
}

// ListActivos lista solo los empleados activos.
func (uc *EmpleadoUseCase) ListActivos() ([]dto.EmpleadoResponse, error) {
	return uc.mapList(uc.repo.ListActivos())
}

// ListByRol lista empleados activos de un rol. El rol debe ser de catálogo.
func (uc *EmpleadoUseCase) ListByRol(rol string) ([]dto.EmpleadoResponse, error) {
	if !entity.RolValido(rol) {
		return nil, domain.ErrInvalidInput
	}
	return uc.mapList(uc.repo.ListByRol(rol))
}

// ListByArea lista empleados activos de un área. El área debe ser de catálogo.
func (uc *EmpleadoUseCase) ListByArea(area string) ([]dto.EmpleadoResponse, error) {
	if !entity.AreaValida(area) {
		return nil, domain.ErrInvalidInput
	}
	return uc.mapList(uc.repo.ListByArea(area))
}

// Update actualiza parcialmente un empleado. Si cambia el email se vuelve a
// exigir formato y unicidad entre activos (excluyendo al propio empleado).
func (uc *EmpleadoUseCase) Update(id string, in dto.UpdateEmpleadoRequest) (*dto.EmpleadoResponse, error) {
	emp, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, nil
	}
	if in.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*in.Email))
		if !emailRegexp.MatchString(email) {
			return nil, domain.ErrInvalidInput
		}
		existente, err := uc.repo.GetActivoByEmail(email, id)
		if err != nil {
			return nil, err
		}
		if existente != nil {
			return nil, domain.ErrEmailAlreadyExists
		}
		emp.Email = email
	}
	if in.Rol != nil {
		if !entity.RolValido(*in.Rol) {
			return nil, domain.ErrInvalidInput
		}
		emp.Rol = *in.Rol
	}
	if in.Area != nil {
		if !entity.AreaValida(*in.Area) {
			return nil, domain.ErrInvalidInput
		}
		emp.Area = *in.Area
	}
	if in.Nombre != nil {
		emp.Nombre = *in.Nombre
	}
	if in.Apellido != nil {
		emp.Apellido = *in.Apellido
	}
	if in.Telefono != nil {
		emp.Telefono = *in.Telefono
	}
	if in.FechaIngreso != nil {
		emp.FechaIngreso = *in.FechaIngreso
	}
	if in.Activo != nil {
		emp.Activo = *in.Activo
	}
	if err := uc.repo.Update(emp); err != nil {
		return nil, err
	}
	return toEmpleadoResponse(emp), nil
}

// Delete da de baja lógica a un empleado: Activo pasa a false y su email
// queda libre para nuevos activos. Devuelve nil, nil si no existe.
func (uc *EmpleadoUseCase) Delete(id string) (*dto.EmpleadoResponse, error) {
	emp, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, nil
	}
	emp.Activo = false
	if err := uc.repo.Update(emp); err != nil {
		return nil, err
	}
	return toEmpleadoResponse(emp), nil
}

// EmailDisponible indica si un email puede usarse para un empleado activo.
// excluirID deja fuera de la comprobación a un empleado concreto, para que un
// formulario de edición pueda validar el email sin chocar contra sí mismo.
func (uc *EmpleadoUseCase) EmailDisponible(email, excluirID string) (*dto.EmailDisponibleResponse, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if !emailRegexp.MatchString(email) {
		return nil, domain.ErrInvalidInput
	}
	existente, err := uc.repo.GetActivoByEmail(email, excluirID)
	if err != nil {
		return nil, err
	}
	return &dto.EmailDisponibleResponse{Email: email, Disponible: existente == nil}, nil
}

// Roles devuelve el catálogo de roles.
func (uc *EmpleadoUseCase) Roles() []entity.CatalogoItem { return entity.Roles() }

// Areas devuelve el catálogo de áreas.
func (uc *EmpleadoUseCase) Areas() []entity.CatalogoItem { return entity.Areas() }

// ValidarRol valida un rol contra el catálogo sin fallar la petición.
func (uc *EmpleadoUseCase) ValidarRol(rol string) dto.ValidacionCatalogoResponse {
	if entity.RolValido(rol) {
		return dto.ValidacionCatalogoResponse{Valor: rol, Valido: true, Mensaje: "Rol válido"}
	}
	return dto.ValidacionCatalogoResponse{Valor: rol, Valido: false, Mensaje: "Rol no reconocido"}
}

// ValidarArea valida un área contra el catálogo sin fallar la petición.
func (uc *EmpleadoUseCase) ValidarArea(area string) dto.ValidacionCatalogoResponse {
	if entity.AreaValida(area) {
		return dto.ValidacionCatalogoResponse{Valor: area, Valido: true, Mensaje: "Área válida"}
	}
	return dto.ValidacionCatalogoResponse{Valor: area, Valido: false, Mensaje: "Área no reconocida"}
}

// Estadisticas devuelve los conteos de empleados activos por rol y por área.
func (uc *EmpleadoUseCase) Estadisticas() (*dto.EstadisticasEmpleadosResponse, error) {
	st, err := uc.repo.Estadisticas()
	if err != nil {
		return nil, err
	}
	return &dto.EstadisticasEmpleadosResponse{
		Total:   st.Total,
		PorRol:  st.PorRol,
		PorArea: st.PorArea,
	}, nil
}

func (uc *EmpleadoUseCase) mapList(list []*entity.Empleado, err error) ([]dto.EmpleadoResponse, error) {
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmpleadoResponse, 0, len(list))
	for _, e := range list {
		out = append(out, *toEmpleadoResponse(e))
	}
	return out, nil
}

func toEmpleadoResponse(e *entity.Empleado) *dto.EmpleadoResponse {
	return &dto.EmpleadoResponse{
		ID:           e.ID,
		Nombre:       e.Nombre,
		Apellido:     e.Apellido,
		Email:        e.Email,
		Telefono:     e.Telefono,
		Rol:          e.Rol,
		Area:         e.Area,
		FechaIngreso: e.FechaIngreso,
		Activo:       e.Activo,
	}
}
