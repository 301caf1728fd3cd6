package auth_test

import (
	"context"
	"testing"

	"github.com/jhoicas/fishstock-api/internal/application/auth"
	"github.com/jhoicas/fishstock-api/internal/application/dto"
	"github.com/jhoicas/fishstock-api/internal/domain"
	"github.com/jhoicas/fishstock-api/internal/infrastructure/memory"
	"github.com/jhoicas/fishstock-api/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const secret = "test-secret"

func newAuth() *auth.AuthUseCase {
	store := memory.NewStore()
	return auth.NewAuthUseCase(store.Users(), auth.JWTConfig{Secret: secret, ExpMinutes: 60, Issuer: "fishstock"}).
		WithBcryptCost(bcrypt.MinCost)
}

func TestRegisterYLogin(t *testing.T) {
	ctx := context.Background()
	uc := newAuth()

	u, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: " Admin@Market.in ", Password: "secreto123", Name: "Admin", Role: "admin"})
	require.NoError(t, err)
	assert.Equal(t, "admin@market.in", u.Email)
	assert.Equal(t, "admin", u.Role)

	out, err := uc.Login(ctx, dto.LoginRequest{Email: "admin@market.in", Password: "secreto123"})
	require.NoError(t, err)
	userID, role, err := jwt.Parse(secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, userID)
	assert.Equal(t, "admin", role)
}

func TestRegister_RolPorDefectoYEmailDuplicado(t *testing.T) {
	ctx := context.Background()
	uc := newAuth()

	u, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: "staff@market.in", Password: "secreto123", Name: "Staff"})
	require.NoError(t, err)
	assert.Equal(t, "staff", u.Role)

	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Email: "STAFF@market.in", Password: "otro12345", Name: "Otro"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_Errores(t *testing.T) {
	ctx := context.Background()
	uc := newAuth()
	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: "a@market.in", Password: "secreto123", Name: "A"})
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "a@market.in", Password: "malo"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "nadie@market.in", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
