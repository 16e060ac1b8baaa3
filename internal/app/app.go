// Package app wires configuration, storage and services into a runnable server.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/MyelinBots/ecochat-go/config"
	"github.com/MyelinBots/ecochat-go/internal/api"
	"github.com/MyelinBots/ecochat-go/internal/db"
	"github.com/MyelinBots/ecochat-go/internal/db/repositories"
	"github.com/MyelinBots/ecochat-go/internal/metrics"
	"github.com/MyelinBots/ecochat-go/internal/services/account"
	"github.com/MyelinBots/ecochat-go/internal/services/ecobot"
	"github.com/MyelinBots/ecochat-go/internal/services/friends"
	"github.com/MyelinBots/ecochat-go/internal/services/progression"
	"github.com/MyelinBots/ecochat-go/internal/services/timer"
)

const (
	usersGaugeInterval = time.Minute

	// MinJWTSecretLength is the shortest HS256 signing secret New accepts.
	MinJWTSecretLength = 32
)

type App struct {
	cfg      config.Config
	db       *db.DB
	accounts account.Service
	server   *api.Server
}

// New opens the database, prepares the schema when configured to and builds
// every service. Close releases the database.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	if len(cfg.AuthConfig.JWTSecret) < MinJWTSecretLength {
		return nil, fmt.Errorf("JWT_SECRET must be at least %d bytes", MinJWTSecretLength)
	}

	database, err := db.Open(ctx, cfg.DBConfig)
	if err != nil {
		return nil, err
	}

	if cfg.DBConfig.AutoMigrate {
		if err := repositories.AutoMigrate(ctx, database); err != nil {
			_ = database.Close()
			return nil, err
		}
	}

	repos := repositories.New(database)
	friendsService := friends.New(repos.Users, repos.Friendships)
	accounts := account.New(database, cfg.AuthConfig.BcryptCost)

	a := &App{
		cfg:      cfg,
		db:       database,
		accounts: accounts,
	}
	a.server = api.NewServer(api.Deps{
		Accounts:       accounts,
		Friends:        friendsService,
		Progression:    progression.New(database, friendsService),
		Bot:            ecobot.New(),
		Tokens:         api.NewTokenIssuer(cfg.AuthConfig.JWTSecret, cfg.AuthConfig.AccessTokenTTL()),
		DB:             database,
		Logger:         logger,
		AllowedOrigins: cfg.AppConfig.AllowedOrigins(),
	})
	return a, nil
}

// Seed loads the task catalog and the demo account. Both steps are idempotent.
func (a *App) Seed(ctx context.Context) error {
	return Seed(ctx, a.db, a.accounts, a.cfg.SeedConfig)
}

func Seed(ctx context.Context, database *db.DB, accounts account.Service, cfg config.SeedConfig) error {
	if cfg.SeedCatalog {
		if err := repositories.SeedCatalog(ctx, database); err != nil {
			return err
		}
	}

	if cfg.DefaultEmail == "" {
		return nil
	}
	u, created, err := accounts.EnsureDefaultUser(ctx, cfg.DefaultEmail, cfg.DefaultPassword, cfg.DefaultName)
	if err != nil {
		return fmt.Errorf("seed default user: %w", err)
	}
	if created {
		slog.Info("created default user", slog.Uint64("user_id", uint64(u.ID)), slog.String("email", u.Email))
	}
	return nil
}

// Run serves HTTP until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	a.refreshUsersGauge(ctx)
	refresher := timer.NewRepeatedTimer(usersGaugeInterval, func() {
		a.refreshUsersGauge(ctx)
	})
	defer refresher.Stop()

	return a.server.ListenAndServe(ctx, a.cfg.AppConfig.Port)
}

func (a *App) refreshUsersGauge(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	n, err := a.accounts.CountUsers(ctx)
	if err != nil {
		slog.Warn("count users", slog.String("error", err.Error()))
		return
	}
	metrics.SetUsersRegistered(n)
}

func (a *App) Server() *api.Server {
	return a.server
}

func (a *App) Close() error {
	return a.db.Close()
}
