package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockswift-api/internal/application/auth"
	"github.com/jhoicas/stockswift-api/internal/application/dto"
	"github.com/jhoicas/stockswift-api/internal/domain"
	"github.com/jhoicas/stockswift-api/internal/domain/entity"
	"github.com/jhoicas/stockswift-api/internal/infrastructure/memory"
	pkgjwt "github.com/jhoicas/stockswift-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func newAuthUC() *auth.AuthUseCase {
	return auth.NewAuthUseCase(memory.NewUserRepository(memory.NewLedger()), auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "stockswift-test",
	})
}

func TestRegisterUser_ClientPorDefecto(t *testing.T) {
	uc := newAuthUC()

	out, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "acme@test.dev",
		Password: "secreto",
		Company:  "ACME",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleClient, out.Role, "sin rol explícito el usuario es client")
	assert.Equal(t, "ACME", out.Company)
	assert.Equal(t, "active", out.Status)
}

func TestRegisterUser_ClientRequiereCompany(t *testing.T) {
	uc := newAuthUC()

	_, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "acme@test.dev",
		Password: "secreto",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterUser_StaffSinCompany(t *testing.T) {
	uc := newAuthUC()

	out, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "ops@test.dev",
		Password: "secreto",
		Role:     entity.RoleStaff,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleStaff, out.Role)
	assert.Empty(t, out.Company)
}

func TestRegisterUser_RolDesconocido(t *testing.T) {
	uc := newAuthUC()

	_, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "x@test.dev",
		Password: "secreto",
		Role:     "admin",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterUser_EmailDuplicado(t *testing.T) {
	uc := newAuthUC()
	in := dto.RegisterRequest{Email: "acme@test.dev", Password: "secreto", Company: "ACME"}

	_, err := uc.RegisterUser(in)
	require.NoError(t, err)

	_, err = uc.RegisterUser(in)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_TokenConClaims(t *testing.T) {
	uc := newAuthUC()
	_, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "acme@test.dev",
		Password: "secreto",
		Company:  "ACME",
	})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "acme@test.dev", Password: "secreto"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	userID, company, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, "ACME", company)
	assert.Equal(t, entity.RoleClient, role)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc := newAuthUC()
	_, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "acme@test.dev",
		Password: "secreto",
		Company:  "ACME",
	})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "acme@test.dev", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := newAuthUC()

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@test.dev", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
