package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MyelinBots/ecochat-go/internal/apperr"
)

// pathID parses a positive integer URL parameter.
func pathID(r *http.Request, name string) (uint, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, apperr.New(apperr.KindInvalidInput, name+" must be a positive integer")
	}
	return uint(id), nil
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	userID, err := actor(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	tasks, err := s.progression.ListTasks(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, tasks)
}

func (s *Server) handleCompleteTask(w http.ResponseWriter, r *http.Request) {
	userID, err := actor(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	taskID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	sum, err := s.progression.CompleteTask(r.Context(), userID, taskID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, sum)
}

func (s *Server) handleUncompleteTask(w http.ResponseWriter, r *http.Request) {
	userID, err := actor(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	taskID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	sum, err := s.progression.UncompleteTask(r.Context(), userID, taskID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, sum)
}

func (s *Server) handleRanking(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, r, apperr.New(apperr.KindInvalidInput, "limit must be a positive integer"))
			return
		}
		limit = n
	}

	board, err := s.progression.Leaderboard(r.Context(), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, board)
}
