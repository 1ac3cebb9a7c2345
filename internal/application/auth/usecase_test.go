package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saborurbano/backoffice/internal/application/auth"
	"github.com/saborurbano/backoffice/internal/application/dto"
	"github.com/saborurbano/backoffice/internal/domain"
	"github.com/saborurbano/backoffice/internal/domain/entity"
	"github.com/saborurbano/backoffice/pkg/config"
)

type fakeUsuarioRepo struct {
	items map[string]*entity.Usuario
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{items: map[string]*entity.Usuario{}}
}

func (f *fakeUsuarioRepo) Create(u *entity.Usuario) error {
	for _, e := range f.items {
		if e.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	copia := *u
	f.items[u.ID] = &copia
	return nil
}

func (f *fakeUsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	u, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	copia := *u
	return &copia, nil
}

func (f *fakeUsuarioRepo) GetByEmail(email string) (*entity.Usuario, error) {
	for _, u := range f.items {
		if u.Email == email {
			copia := *u
			return &copia, nil
		}
	}
	return nil, nil
}

func (f *fakeUsuarioRepo) Update(u *entity.Usuario) error {
	if _, ok := f.items[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	copia := *u
	f.items[u.ID] = &copia
	return nil
}

func jwtTestConfig() config.JWTConfig {
	return config.JWTConfig{Secret: "secret-de-test", Expiration: 60, Issuer: "sabor-urbano-test"}
}

func TestRegister_HasheaPasswordYAsignaRolPorDefecto(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := auth.NewUseCase(repo, jwtTestConfig())

	out, err := uc.Register(dto.RegisterRequest{
		Email:    "Admin@SaborUrbano.com",
		Password: "secreto123",
		Nombre:   "Admin",
	})
	require.NoError(t, err)
	assert.Equal(t, "admin@saborurbano.com", out.Email, "el email se normaliza en minúsculas")
	assert.Equal(t, entity.RolAdministrador, out.Rol)
	assert.True(t, out.Activo)

	guardado, err := repo.GetByEmail("admin@saborurbano.com")
	require.NoError(t, err)
	require.NotNil(t, guardado)
	assert.NotEqual(t, "secreto123", guardado.PasswordHash, "el password nunca se guarda plano")
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc := auth.NewUseCase(newFakeUsuarioRepo(), jwtTestConfig())

	_, err := uc.Register(dto.RegisterRequest{Email: "a@b.co", Password: "secreto123", Nombre: "A"})
	require.NoError(t, err)
	_, err = uc.Register(dto.RegisterRequest{Email: "a@b.co", Password: "otro-pass", Nombre: "B"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_PasswordCorto(t *testing.T) {
	uc := auth.NewUseCase(newFakeUsuarioRepo(), jwtTestConfig())
	_, err := uc.Register(dto.RegisterRequest{Email: "a@b.co", Password: "123", Nombre: "A"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_EmiteToken(t *testing.T) {
	uc := auth.NewUseCase(newFakeUsuarioRepo(), jwtTestConfig())
	_, err := uc.Register(dto.RegisterRequest{Email: "a@b.co", Password: "secreto123", Nombre: "A"})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "a@b.co", Password: "secreto123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "a@b.co", out.Usuario.Email)
}

// Email inexistente y password incorrecto devuelven el mismo error.
func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc := auth.NewUseCase(newFakeUsuarioRepo(), jwtTestConfig())
	_, err := uc.Register(dto.RegisterRequest{Email: "a@b.co", Password: "secreto123", Nombre: "A"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "a@b.co", Password: "equivocado"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Email: "nadie@b.co", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := auth.NewUseCase(repo, jwtTestConfig())
	out, err := uc.Register(dto.RegisterRequest{Email: "a@b.co", Password: "secreto123", Nombre: "A"})
	require.NoError(t, err)

	u, err := repo.GetByID(out.ID)
	require.NoError(t, err)
	u.Activo = false
	require.NoError(t, repo.Update(u))

	_, err = uc.Login(dto.LoginRequest{Email: "a@b.co", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
