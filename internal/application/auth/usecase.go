package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/saborurbano/backoffice/internal/application/dto"
	"github.com/saborurbano/backoffice/internal/domain"
	"github.com/saborurbano/backoffice/internal/domain/entity"
	"github.com/saborurbano/backoffice/internal/domain/repository"
	"github.com/saborurbano/backoffice/pkg/config"
	"github.com/saborurbano/backoffice/pkg/jwt"
)

// UseCase registro y login de cuentas del back-office.
type UseCase struct {
	repo repository.UsuarioRepository
	jwt  config.JWTConfig
}

// NewUseCase construye el caso de uso de autenticación.
func NewUseCase(repo repository.UsuarioRepository, jwtCfg config.JWTConfig) *UseCase {
	return &UseCase{repo: repo, jwt: jwtCfg}
}

// Register crea una cuenta nueva. El password se guarda solo como hash bcrypt
// y el rol por defecto es administrador.
func (uc *UseCase) Register(in dto.RegisterRequest) (*dto.UsuarioResponse, error) {
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	if in.Email == "" || len(in.Password) < 6 || in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	existente, err := uc.repo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	rol := in.Rol
	if rol == "" {
		rol = entity.RolAdministrador
	}
	now := time.Now()
	u := &entity.Usuario{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Nombre:       in.Nombre,
		Rol:          rol,
		Activo:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(u); err != nil {
		return nil, err
	}
	return toUsuarioResponse(u), nil
}

// Login valida credenciales y emite un token JWT. Credenciales incorrectas
// devuelven el mismo error sin distinguir email inexistente de password malo.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	u, err := uc.repo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !u.Activo {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwt.Secret, u.ID, u.Rol, uc.jwt.Issuer, uc.jwt.Expiration)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Usuario: *toUsuarioResponse(u)}, nil
}

// Perfil devuelve el perfil del usuario autenticado. Devuelve nil si no existe.
func (uc *UseCase) Perfil(userID string) (*dto.UsuarioResponse, error) {
	u, err := uc.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	return toUsuarioResponse(u), nil
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	return &dto.UsuarioResponse{
		ID:     u.ID,
		Email:  u.Email,
		Nombre: u.Nombre,
		Rol:    u.Rol,
		Activo: u.Activo,
	}
}
