package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MyelinBots/ecochat-go/internal/healthcheck"
)

func (s *Server) routes(origins []string) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(requestMetrics)
	if len(origins) > 0 {
		r.Use(corsHandler(origins))
	}

	r.Get("/healthz", healthcheck.HealthCheckHandler())
	r.Get("/readyz", healthcheck.ReadinessHandler(s.db))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", s.handleRegister)
		r.Post("/login", s.handleLogin)
		r.Get("/status", s.handleStatus)
		r.Post("/chat", s.handleChat)

		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)

			r.Get("/profile", s.handleGetProfile)
			r.Post("/profile/update", s.handleUpdateProfile)
			r.Post("/profile/change-password", s.handleChangePassword)

			r.Get("/tasks", s.handleListTasks)
			r.Post("/tasks/{id}/complete", s.handleCompleteTask)
			r.Delete("/tasks/{id}/complete", s.handleUncompleteTask)

			r.Get("/ranking", s.handleRanking)

			r.Get("/friends", s.handleListFriends)
			r.Get("/friends/pending", s.handleListPending)
			r.Post("/friends/request", s.handleSendRequest)
			r.Post("/friends/{id}/accept", s.handleAcceptRequest)
			r.Post("/friends/{id}/decline", s.handleDeclineRequest)
			r.Delete("/friends/{id}", s.handleRemoveFriend)
		})
	})

	return r
}
