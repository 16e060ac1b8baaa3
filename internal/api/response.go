package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"github.com/MyelinBots/ecochat-go/internal/apperr"
)

// Response is the envelope of every JSON body.
type Response struct {
	Data  any        `json:"data,omitempty"`
	Error *ErrorBody `json:"error,omitempty"`
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(Response{Data: data}); err != nil {
		slog.Error("encode response", slog.String("error", err.Error()))
	}
}

func writeOK(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, data)
}

func writeCreated(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusCreated, data)
}

// writeError maps domain kinds to status codes. Anything without a kind is
// logged and reported as an opaque internal error.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	body := ErrorBody{Code: "INTERNAL", Message: "internal server error"}
	status := http.StatusInternalServerError

	var e *apperr.Error
	if errors.As(err, &e) {
		status = statusFor(e.Kind)
		body = ErrorBody{Code: string(e.Kind), Message: e.Message}
	} else {
		slog.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("request_id", chimiddleware.GetReqID(r.Context())),
			slog.String("error", err.Error()),
		)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Response{Error: &body})
}

func statusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindInvalidInput, apperr.KindSelfReferential:
		return http.StatusBadRequest
	case apperr.KindAlreadyFriends, apperr.KindRequestAlreadyPending,
		apperr.KindAlreadyCompleted, apperr.KindNotCompleted, apperr.KindConflict:
		return http.StatusConflict
	case apperr.KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.Wrap(apperr.KindInvalidInput, "invalid request body", err)
	}
	return nil
}

// check runs the validate struct tags on dst.
func (s *Server) check(dst any) error {
	if err := s.validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return apperr.Wrap(apperr.KindInvalidInput, fe.Field()+" failed "+fe.Tag()+" validation", err)
		}
		return apperr.Wrap(apperr.KindInvalidInput, "invalid request body", err)
	}
	return nil
}
