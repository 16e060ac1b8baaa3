package api

import (
	"net/http"
	"time"

	"github.com/MyelinBots/ecochat-go/internal/db/repositories/user"
)

type userView struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func toUserView(u *user.User) userView {
	return userView{ID: u.ID, Name: u.Name, Email: u.Email}
}

type authResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      userView  `json:"user"`
}

// senha and nome are accepted as aliases used by older clients.
type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Senha    string `json:"senha"`
	Name     string `json:"name"`
	Nome     string `json:"nome"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Senha    string `json:"senha"`
}

type updateProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"omitempty,email"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
}

type chatRequest struct {
	Message string `json:"message"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.Password == "" {
		req.Password = req.Senha
	}
	if req.Name == "" {
		req.Name = req.Nome
	}
	if err := s.check(&req); err != nil {
		writeError(w, r, err)
		return
	}

	u, err := s.accounts.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := s.authResponse(u)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeCreated(w, resp)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.Password == "" {
		req.Password = req.Senha
	}
	if err := s.check(&req); err != nil {
		writeError(w, r, err)
		return
	}

	u, err := s.accounts.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := s.authResponse(u)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, resp)
}

func (s *Server) authResponse(u *user.User) (authResponse, error) {
	token, expiry, err := s.tokens.Issue(u.ID, u.Email)
	if err != nil {
		return authResponse{}, err
	}
	return authResponse{Token: token, ExpiresAt: expiry, User: toUserView(u)}, nil
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	n, err := s.accounts.CountUsers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, map[string]any{"status": "ok", "users": n})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, map[string]string{"response": s.bot.Reply(req.Message)})
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := actor(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	profile, err := s.progression.GetProfile(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, profile)
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := actor(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req updateProfileRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := s.check(&req); err != nil {
		writeError(w, r, err)
		return
	}

	u, err := s.accounts.UpdateProfile(r.Context(), userID, req.Name, req.Email)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, toUserView(u))
}

func (s *Server) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	userID, err := actor(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req changePasswordRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := s.check(&req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := s.accounts.ChangePassword(r.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, map[string]string{"status": "password changed"})
}
