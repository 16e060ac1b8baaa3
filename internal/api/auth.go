package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/MyelinBots/ecochat-go/internal/apperr"
	"github.com/MyelinBots/ecochat-go/internal/services/context_manager"
)

const tokenScope = "authentication"

type Claims struct {
	UserID uint   `json:"uid"`
	Email  string `json:"email"`
	Scope  string `json:"scope"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS256 access tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (i *TokenIssuer) Issue(userID uint, email string) (string, time.Time, error) {
	now := i.now()
	expiry := now.Add(i.ttl)

	claims := Claims{
		UserID: userID,
		Email:  email,
		Scope:  tokenScope,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ExpiresAt: jwt.NewNumericDate(expiry),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiry, nil
}

func (i *TokenIssuer) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(i.now))
	if err != nil || !token.Valid {
		return nil, apperr.Wrap(apperr.KindUnauthorized, "invalid token", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || claims.Scope != tokenScope || claims.UserID == 0 {
		return nil, apperr.New(apperr.KindUnauthorized, "invalid token claims")
	}
	return claims, nil
}

// requireAuth resolves the bearer token into the acting user id. Handlers
// read the id back with context_manager.GetUserFromContext.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(raw) == "" {
			writeError(w, r, apperr.New(apperr.KindUnauthorized, "missing bearer token"))
			return
		}

		claims, err := s.tokens.Parse(strings.TrimSpace(raw))
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx := context_manager.SetUserContext(r.Context(), claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// actor returns the authenticated user id. requireAuth guarantees it is set.
func actor(r *http.Request) (uint, error) {
	id, ok := context_manager.GetUserFromContext(r.Context())
	if !ok {
		return 0, apperr.New(apperr.KindUnauthorized, "not authenticated")
	}
	return id, nil
}
