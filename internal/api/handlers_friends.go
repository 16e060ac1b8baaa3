package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MyelinBots/ecochat-go/internal/apperr"
	"github.com/MyelinBots/ecochat-go/internal/services/friends"
)

type friendRequest struct {
	Target json.RawMessage `json:"target" validate:"required"`
}

// parseTarget picks the variant from the JSON type: numbers are ids and
// strings are handles. A numeric string is still a handle.
func parseTarget(raw json.RawMessage) (friends.Target, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, apperr.Wrap(apperr.KindInvalidInput, "invalid target", err)
	}

	switch t := v.(type) {
	case json.Number:
		id, err := strconv.ParseUint(t.String(), 10, 64)
		if err != nil || id == 0 {
			return nil, apperr.New(apperr.KindInvalidInput, "target id must be a positive integer")
		}
		return friends.ByID(id), nil
	case string:
		return friends.ByHandle(t), nil
	default:
		return nil, apperr.New(apperr.KindInvalidInput, "target must be a user id or an email or name")
	}
}

func (s *Server) handleListFriends(w http.ResponseWriter, r *http.Request) {
	userID, err := actor(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	list, err := s.friends.ListFriends(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, list)
}

func (s *Server) handleListPending(w http.ResponseWriter, r *http.Request) {
	userID, err := actor(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	list, err := s.friends.ListPending(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, list)
}

func (s *Server) handleSendRequest(w http.ResponseWriter, r *http.Request) {
	userID, err := actor(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req friendRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := s.check(&req); err != nil {
		writeError(w, r, err)
		return
	}
	target, err := parseTarget(req.Target)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := s.friends.SendRequest(r.Context(), userID, target); err != nil {
		writeError(w, r, err)
		return
	}
	writeCreated(w, map[string]string{"status": "pending"})
}

func (s *Server) handleAcceptRequest(w http.ResponseWriter, r *http.Request) {
	userID, err := actor(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	requesterID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := s.friends.AcceptRequest(r.Context(), userID, requesterID); err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, map[string]string{"status": "accepted"})
}

func (s *Server) handleDeclineRequest(w http.ResponseWriter, r *http.Request) {
	userID, err := actor(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	requesterID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := s.friends.DeclineRequest(r.Context(), userID, requesterID); err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, map[string]string{"status": "declined"})
}

func (s *Server) handleRemoveFriend(w http.ResponseWriter, r *http.Request) {
	userID, err := actor(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	friendID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := s.friends.RemoveFriendship(r.Context(), userID, friendID); err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, map[string]string{"status": "removed"})
}
