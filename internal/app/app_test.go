package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MyelinBots/ecochat-go/config"
	"github.com/MyelinBots/ecochat-go/internal/db"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		AppConfig: config.AppConfig{Port: 0},
		DBConfig: config.DBConfig{
			Driver:      db.DriverSQLite,
			SQLitePath:  filepath.Join(t.TempDir(), "ecochat.db"),
			AutoMigrate: true,
		},
		AuthConfig: config.AuthConfig{
			JWTSecret:         "0123456789abcdef0123456789abcdef",
			AccessTokenTTLSec: 3600,
			BcryptCost:        bcrypt.MinCost,
		},
		SeedConfig: config.SeedConfig{
			SeedCatalog:     true,
			DefaultEmail:    "teste@eco.com",
			DefaultPassword: "123456",
			DefaultName:     "Usuário Teste",
		},
	}
}

func TestApp_SeedAndLogin(t *testing.T) {
	ctx := context.Background()

	a, err := New(ctx, testConfig(t), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	require.NoError(t, a.Seed(ctx))
	// second run must not fail on existing rows
	require.NoError(t, a.Seed(ctx))

	h := a.Server().Handler()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"email":"teste@eco.com","senha":"123456"}`))
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var login struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))
	require.NotEmpty(t, login.Data.Token)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.Header.Set("Authorization", "Bearer "+login.Data.Token)
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var tasks struct {
		Data []json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tasks))
	assert.Len(t, tasks.Data, 8)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	a.refreshUsersGauge(ctx)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), "ecochat_users_registered 1")
}

func TestNew_UnknownDriver(t *testing.T) {
	cfg := testConfig(t)
	cfg.DBConfig.Driver = "oracle"

	_, err := New(context.Background(), cfg, nil)
	assert.Error(t, err)
}

func TestNew_RejectsWeakJWTSecret(t *testing.T) {
	for _, secret := range []string{"", "change-me", "0123456789abcdef0123456789abcde"} {
		cfg := testConfig(t)
		cfg.AuthConfig.JWTSecret = secret

		_, err := New(context.Background(), cfg, nil)
		assert.Error(t, err, "secret %q", secret)
	}
}
