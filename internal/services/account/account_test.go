package account_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MyelinBots/ecochat-go/internal/apperr"
	"github.com/MyelinBots/ecochat-go/internal/db/dbtest"
	"github.com/MyelinBots/ecochat-go/internal/db/repositories/user_stats"
	"github.com/MyelinBots/ecochat-go/internal/services/account"
)

func TestRegister(t *testing.T) {
	ctx := context.Background()
	database := dbtest.New(t)
	svc := account.New(database, bcrypt.MinCost)

	u, err := svc.Register(ctx, " ana@eco.com ", "segredo", "Ana")
	require.NoError(t, err)
	assert.Equal(t, "ana@eco.com", u.Email)
	assert.Equal(t, "Ana", u.Name)
	assert.NotEqual(t, "segredo", u.PasswordHash)

	st, err := user_stats.NewUserStatsRepository(database).GetStatsByUserID(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, st, "stats created at registration")
	assert.Equal(t, 0, st.Points)

	noName, err := svc.Register(ctx, "bia@eco.com", "segredo", "")
	require.NoError(t, err)
	assert.Equal(t, "bia", noName.Name)

	n, err := svc.CountUsers(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

func TestRegister_Errors(t *testing.T) {
	ctx := context.Background()
	svc := account.New(dbtest.New(t), bcrypt.MinCost)

	_, err := svc.Register(ctx, "ana@eco.com", "segredo", "Ana")
	require.NoError(t, err)

	tests := []struct {
		name, email, password string
		want                  error
	}{
		{"duplicate email", "ana@eco.com", "outrasenha", apperr.ErrConflict},
		{"empty email", "", "segredo", apperr.ErrInvalidInput},
		{"no at sign", "ana.eco.com", "segredo", apperr.ErrInvalidInput},
		{"short password", "bia@eco.com", "12345", apperr.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.email, tt.password, "x")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc := account.New(dbtest.New(t), bcrypt.MinCost)

	registered, err := svc.Register(ctx, "ana@eco.com", "segredo", "Ana")
	require.NoError(t, err)

	u, err := svc.Authenticate(ctx, "ana@eco.com", "segredo")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, u.ID)

	_, err = svc.Authenticate(ctx, "ana@eco.com", "errada")
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)

	_, err = svc.Authenticate(ctx, "ghost@eco.com", "segredo")
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	svc := account.New(dbtest.New(t), bcrypt.MinCost)

	ana, err := svc.Register(ctx, "ana@eco.com", "segredo", "Ana")
	require.NoError(t, err)
	_, err = svc.Register(ctx, "bia@eco.com", "segredo", "Bia")
	require.NoError(t, err)

	u, err := svc.UpdateProfile(ctx, ana.ID, "Ana Maria", "")
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", u.Name)
	assert.Equal(t, "ana@eco.com", u.Email)

	_, err = svc.UpdateProfile(ctx, ana.ID, "", "bia@eco.com")
	assert.ErrorIs(t, err, apperr.ErrConflict)

	_, err = svc.UpdateProfile(ctx, ana.ID, "", "invalid")
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	_, err = svc.UpdateProfile(ctx, 999, "X", "x@eco.com")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	got, err := svc.GetUser(ctx, ana.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", got.Name)
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	svc := account.New(dbtest.New(t), bcrypt.MinCost)

	ana, err := svc.Register(ctx, "ana@eco.com", "segredo", "Ana")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.ChangePassword(ctx, ana.ID, "errada", "novasenha"), apperr.ErrUnauthorized)
	assert.ErrorIs(t, svc.ChangePassword(ctx, ana.ID, "segredo", "123"), apperr.ErrInvalidInput)
	require.NoError(t, svc.ChangePassword(ctx, ana.ID, "segredo", "novasenha"))

	_, err = svc.Authenticate(ctx, "ana@eco.com", "segredo")
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)
	_, err = svc.Authenticate(ctx, "ana@eco.com", "novasenha")
	assert.NoError(t, err)
}

func TestEnsureDefaultUser_Idempotent(t *testing.T) {
	ctx := context.Background()
	svc := account.New(dbtest.New(t), bcrypt.MinCost)

	first, created, err := svc.EnsureDefaultUser(ctx, "teste@eco.com", "123456", "Usuário Teste")
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := svc.EnsureDefaultUser(ctx, "teste@eco.com", "123456", "Usuário Teste")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	_, err = svc.Authenticate(ctx, "teste@eco.com", "123456")
	assert.NoError(t, err)
}
