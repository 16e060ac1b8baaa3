// Package api exposes the engines over HTTP.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/MyelinBots/ecochat-go/internal/healthcheck"
	"github.com/MyelinBots/ecochat-go/internal/services/account"
	"github.com/MyelinBots/ecochat-go/internal/services/ecobot"
	"github.com/MyelinBots/ecochat-go/internal/services/friends"
	"github.com/MyelinBots/ecochat-go/internal/services/progression"
)

type Deps struct {
	Accounts    account.Service
	Friends     friends.Service
	Progression progression.Service
	Bot         ecobot.Service
	Tokens      *TokenIssuer
	DB          healthcheck.Pinger

	Logger         *slog.Logger
	AllowedOrigins []string
}

type Server struct {
	accounts    account.Service
	friends     friends.Service
	progression progression.Service
	bot         ecobot.Service
	tokens      *TokenIssuer
	db          healthcheck.Pinger

	logger   *slog.Logger
	validate *validator.Validate
	router   chi.Router
}

func NewServer(deps Deps) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		accounts:    deps.Accounts,
		friends:     deps.Friends,
		progression: deps.Progression,
		bot:         deps.Bot,
		tokens:      deps.Tokens,
		db:          deps.DB,
		logger:      logger,
		validate:    validator.New(),
	}
	s.router = s.routes(deps.AllowedOrigins)
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on port until ctx is cancelled, then drains
// in-flight requests for up to five seconds.
func (s *Server) ListenAndServe(ctx context.Context, port int) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      s.router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	shutdownErr := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		shutdownErr <- srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info("starting server", slog.Int("port", port))
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	if err := <-shutdownErr; err != nil {
		return err
	}
	s.logger.Info("stopped server", slog.Int("port", port))
	return nil
}
