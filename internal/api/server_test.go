package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MyelinBots/ecochat-go/internal/apperr"
	"github.com/MyelinBots/ecochat-go/internal/db/repositories/user"
	accountmocks "github.com/MyelinBots/ecochat-go/internal/services/account/mocks"
	"github.com/MyelinBots/ecochat-go/internal/services/ecobot"
	"github.com/MyelinBots/ecochat-go/internal/services/friends"
	friendsmocks "github.com/MyelinBots/ecochat-go/internal/services/friends/mocks"
	"github.com/MyelinBots/ecochat-go/internal/services/levels"
	"github.com/MyelinBots/ecochat-go/internal/services/progression"
	progressionmocks "github.com/MyelinBots/ecochat-go/internal/services/progression/mocks"
)

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

type testServer struct {
	srv         *Server
	accounts    *accountmocks.MockService
	friends     *friendsmocks.MockService
	progression *progressionmocks.MockService
	tokens      *TokenIssuer
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctrl := gomock.NewController(t)

	ts := &testServer{
		accounts:    accountmocks.NewMockService(ctrl),
		friends:     friendsmocks.NewMockService(ctrl),
		progression: progressionmocks.NewMockService(ctrl),
		tokens:      NewTokenIssuer("test-secret", time.Hour),
	}
	ts.srv = NewServer(Deps{
		Accounts:    ts.accounts,
		Friends:     ts.friends,
		Progression: ts.progression,
		Bot:         ecobot.New(),
		Tokens:      ts.tokens,
		DB:          pinger{},
	})
	return ts
}

// do sends a request, authenticated as userID when it is non-zero.
func (ts *testServer) do(t *testing.T, method, path, body string, userID uint) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if userID != 0 {
		token, _, err := ts.tokens.Issue(userID, "user@eco.com")
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ts.srv.Handler().ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *ErrorBody      `json:"error"`
}

func readEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"english fields", `{"email":"ana@eco.com","password":"segredo","name":"Ana"}`},
		{"legacy fields", `{"email":"ana@eco.com","senha":"segredo","nome":"Ana"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			ts.accounts.EXPECT().
				Register(gomock.Any(), "ana@eco.com", "segredo", "Ana").
				Return(&user.User{ID: 7, Email: "ana@eco.com", Name: "Ana"}, nil)

			rec := ts.do(t, http.MethodPost, "/api/register", tt.body, 0)
			require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

			var resp authResponse
			require.NoError(t, json.Unmarshal(readEnvelope(t, rec).Data, &resp))
			assert.Equal(t, userView{ID: 7, Name: "Ana", Email: "ana@eco.com"}, resp.User)

			claims, err := ts.tokens.Parse(resp.Token)
			require.NoError(t, err)
			assert.Equal(t, uint(7), claims.UserID)
		})
	}
}

func TestRegister_InvalidBody(t *testing.T) {
	ts := newTestServer(t)

	for _, body := range []string{
		`{"password":"segredo"}`,
		`{"email":"not-an-email","password":"segredo"}`,
		`{"email":"ana@eco.com"}`,
		`{`,
	} {
		rec := ts.do(t, http.MethodPost, "/api/register", body, 0)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Equal(t, string(apperr.KindInvalidInput), readEnvelope(t, rec).Error.Code, body)
	}
}

func TestRegister_Conflict(t *testing.T) {
	ts := newTestServer(t)
	ts.accounts.EXPECT().
		Register(gomock.Any(), "ana@eco.com", "segredo", "").
		Return(nil, apperr.New(apperr.KindConflict, "email already registered"))

	rec := ts.do(t, http.MethodPost, "/api/register", `{"email":"ana@eco.com","password":"segredo"}`, 0)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "email already registered", readEnvelope(t, rec).Error.Message)
}

func TestLogin(t *testing.T) {
	ts := newTestServer(t)
	ts.accounts.EXPECT().
		Authenticate(gomock.Any(), "teste@eco.com", "123456").
		Return(&user.User{ID: 1, Email: "teste@eco.com", Name: "Teste"}, nil)
	ts.accounts.EXPECT().
		Authenticate(gomock.Any(), "teste@eco.com", "errada").
		Return(nil, apperr.New(apperr.KindUnauthorized, "invalid email or password"))

	rec := ts.do(t, http.MethodPost, "/api/login", `{"email":"teste@eco.com","senha":"123456"}`, 0)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = ts.do(t, http.MethodPost, "/api/login", `{"email":"teste@eco.com","password":"errada"}`, 0)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth(t *testing.T) {
	ts := newTestServer(t)

	expired := NewTokenIssuer("test-secret", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	staleToken, _, err := expired.Issue(1, "a@eco.com")
	require.NoError(t, err)

	otherKey, _, err := NewTokenIssuer("other-secret", time.Hour).Issue(1, "a@eco.com")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"missing", ""},
		{"wrong scheme", "Basic abc"},
		{"garbage", "Bearer not-a-jwt"},
		{"expired", "Bearer " + staleToken},
		{"wrong key", "Bearer " + otherKey},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			ts.srv.Handler().ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestGetProfile(t *testing.T) {
	ts := newTestServer(t)
	ts.progression.EXPECT().GetProfile(gomock.Any(), uint(9)).Return(progression.Profile{
		UserID:             9,
		Name:               "Ana",
		Points:             2050,
		Level:              levels.EcoMaster,
		NextLevelThreshold: 3000,
	}, nil)

	rec := ts.do(t, http.MethodGet, "/api/profile", "", 9)
	require.Equal(t, http.StatusOK, rec.Code)

	var p progression.Profile
	require.NoError(t, json.Unmarshal(readEnvelope(t, rec).Data, &p))
	assert.Equal(t, levels.EcoMaster, p.Level)
	assert.Equal(t, 3000, p.NextLevelThreshold)
}

func TestSendRequest_TargetVariant(t *testing.T) {
	tests := []struct {
		name string
		body string
		want friends.Target
	}{
		{"number is id", `{"target": 7}`, friends.ByID(7)},
		{"string is handle", `{"target": "bia@eco.com"}`, friends.ByHandle("bia@eco.com")},
		{"numeric string is still a handle", `{"target": "7"}`, friends.ByHandle("7")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			ts.friends.EXPECT().SendRequest(gomock.Any(), uint(3), tt.want).Return(nil)

			rec := ts.do(t, http.MethodPost, "/api/friends/request", tt.body, 3)
			assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		})
	}
}

func TestSendRequest_BadTarget(t *testing.T) {
	ts := newTestServer(t)

	for _, body := range []string{
		`{}`,
		`{"target": null}`,
		`{"target": -1}`,
		`{"target": 1.5}`,
		`{"target": 0}`,
		`{"target": true}`,
		`{"target": [1]}`,
	} {
		rec := ts.do(t, http.MethodPost, "/api/friends/request", body, 3)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}

func TestFriendErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"pending", apperr.New(apperr.KindRequestAlreadyPending, "friend request already pending"), http.StatusConflict},
		{"friends", apperr.New(apperr.KindAlreadyFriends, "users are already friends"), http.StatusConflict},
		{"self", apperr.New(apperr.KindSelfReferential, "cannot send a friend request to yourself"), http.StatusBadRequest},
		{"missing", apperr.New(apperr.KindNotFound, "user not found"), http.StatusNotFound},
		{"infra", context.DeadlineExceeded, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			ts.friends.EXPECT().SendRequest(gomock.Any(), uint(3), friends.ByID(4)).Return(tt.err)

			rec := ts.do(t, http.MethodPost, "/api/friends/request", `{"target": 4}`, 3)
			assert.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusInternalServerError {
				assert.Equal(t, "internal server error", readEnvelope(t, rec).Error.Message)
			}
		})
	}
}

func TestFriendTransitions_UseActorAndPath(t *testing.T) {
	ts := newTestServer(t)
	gomock.InOrder(
		ts.friends.EXPECT().AcceptRequest(gomock.Any(), uint(2), uint(5)).Return(nil),
		ts.friends.EXPECT().DeclineRequest(gomock.Any(), uint(2), uint(6)).Return(nil),
		ts.friends.EXPECT().RemoveFriendship(gomock.Any(), uint(2), uint(5)).Return(nil),
	)

	assert.Equal(t, http.StatusOK, ts.do(t, http.MethodPost, "/api/friends/5/accept", "", 2).Code)
	assert.Equal(t, http.StatusOK, ts.do(t, http.MethodPost, "/api/friends/6/decline", "", 2).Code)
	assert.Equal(t, http.StatusOK, ts.do(t, http.MethodDelete, "/api/friends/5", "", 2).Code)

	assert.Equal(t, http.StatusBadRequest, ts.do(t, http.MethodPost, "/api/friends/abc/accept", "", 2).Code)
	assert.Equal(t, http.StatusBadRequest, ts.do(t, http.MethodDelete, "/api/friends/0", "", 2).Code)
}

func TestListFriendsAndPending(t *testing.T) {
	ts := newTestServer(t)
	ts.friends.EXPECT().ListFriends(gomock.Any(), uint(2)).
		Return([]friends.PublicProfile{{ID: 5, Name: "Bia", Email: "bia@eco.com"}}, nil)
	ts.friends.EXPECT().ListPending(gomock.Any(), uint(2)).
		Return([]friends.PendingRequest{}, nil)

	rec := ts.do(t, http.MethodGet, "/api/friends", "", 2)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []friends.PublicProfile
	require.NoError(t, json.Unmarshal(readEnvelope(t, rec).Data, &list))
	assert.Equal(t, []friends.PublicProfile{{ID: 5, Name: "Bia", Email: "bia@eco.com"}}, list)

	rec = ts.do(t, http.MethodGet, "/api/friends/pending", "", 2)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[]}`, rec.Body.String())
}

func TestTasks(t *testing.T) {
	ts := newTestServer(t)
	ts.progression.EXPECT().CompleteTask(gomock.Any(), uint(2), uint(5)).
		Return(progression.Summary{Points: 50, Level: levels.EcoIniciante, TasksCompleted: 1}, nil)
	ts.progression.EXPECT().CompleteTask(gomock.Any(), uint(2), uint(5)).
		Return(progression.Summary{}, apperr.New(apperr.KindAlreadyCompleted, "task already completed"))
	ts.progression.EXPECT().UncompleteTask(gomock.Any(), uint(2), uint(6)).
		Return(progression.Summary{}, apperr.New(apperr.KindNotCompleted, "task not completed"))

	rec := ts.do(t, http.MethodPost, "/api/tasks/5/complete", "", 2)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"points":50,"level":"Eco Iniciante","tasks_completed":1}}`, rec.Body.String())

	rec = ts.do(t, http.MethodPost, "/api/tasks/5/complete", "", 2)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, string(apperr.KindAlreadyCompleted), readEnvelope(t, rec).Error.Code)

	rec = ts.do(t, http.MethodDelete, "/api/tasks/6/complete", "", 2)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRanking(t *testing.T) {
	ts := newTestServer(t)
	ts.progression.EXPECT().Leaderboard(gomock.Any(), 0).Return([]progression.RankEntry{}, nil)
	ts.progression.EXPECT().Leaderboard(gomock.Any(), 3).Return([]progression.RankEntry{}, nil)

	assert.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/api/ranking", "", 1).Code)
	assert.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/api/ranking?limit=3", "", 1).Code)
	assert.Equal(t, http.StatusBadRequest, ts.do(t, http.MethodGet, "/api/ranking?limit=x", "", 1).Code)
}

func TestChatAndStatus(t *testing.T) {
	ts := newTestServer(t)
	ts.accounts.EXPECT().CountUsers(gomock.Any()).Return(int64(4), nil)

	rec := ts.do(t, http.MethodPost, "/api/chat", `{"message":"Dicas de ENERGIA"}`, 0)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "LED")

	rec = ts.do(t, http.MethodGet, "/api/status", "", 0)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"status":"ok","users":4}}`, rec.Body.String())
}

func TestProbes(t *testing.T) {
	ts := newTestServer(t)

	assert.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/healthz", "", 0).Code)
	assert.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/readyz", "", 0).Code)

	rec := ts.do(t, http.MethodGet, "/metrics", "", 0)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ecochat_http_requests_total")
}

func TestStatusFor(t *testing.T) {
	tests := map[apperr.Kind]int{
		apperr.KindNotFound:              http.StatusNotFound,
		apperr.KindSelfReferential:       http.StatusBadRequest,
		apperr.KindAlreadyFriends:        http.StatusConflict,
		apperr.KindRequestAlreadyPending: http.StatusConflict,
		apperr.KindAlreadyCompleted:      http.StatusConflict,
		apperr.KindNotCompleted:          http.StatusConflict,
		apperr.KindInvalidInput:          http.StatusBadRequest,
		apperr.KindConflict:              http.StatusConflict,
		apperr.KindUnauthorized:          http.StatusUnauthorized,
		apperr.Kind("SOMETHING_ELSE"):    http.StatusInternalServerError,
	}
	for kind, want := range tests {
		if got := statusFor(kind); got != want {
			t.Errorf("statusFor(%q) = %d, want %d", kind, got, want)
		}
	}
}
