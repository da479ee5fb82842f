package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/scorecard/internal/adapters/repository/memory"
	"github.com/vncsmyrnk/scorecard/internal/core/domain"
	"github.com/vncsmyrnk/scorecard/internal/core/ports"
	"github.com/vncsmyrnk/scorecard/internal/core/services"
)

const (
	adminEmail    = "admin@example.com"
	adminPassword = "admin-pass"
	judgePassword = "judge-pass"
)

type testApp struct {
	Server *httptest.Server
	Client *http.Client
	Users  ports.UserService
}

func setupTestApp(t *testing.T) *testApp {
	t.Helper()

	candidateRepo := memory.NewCandidateRepository()
	criterionRepo := memory.NewCriterionRepository()
	voteRepo := memory.NewVoteRepository()
	userRepo := memory.NewUserRepository()

	userService := services.NewUserService(userRepo, nil)
	authService := services.NewAuthService(userRepo, "test-secret", nil)

	_, err := userService.EnsureAdmin(context.Background(), ports.CreateUserInput{Email: adminEmail, Password: adminPassword})
	require.NoError(t, err)

	handler := NewHandler(Handlers{
		Auth:      NewAuthHandler(authService, "", false, nil),
		User:      NewUserHandler(userService, nil),
		Vote:      NewVoteHandler(services.NewVoteService(candidateRepo, criterionRepo, voteRepo, nil), nil),
		Results:   NewResultsHandler(services.NewResultsService(candidateRepo, criterionRepo, voteRepo, domain.NonNumericZero, nil), nil),
		Criterion: NewCriterionHandler(services.NewCriterionService(criterionRepo, nil), nil),
		Candidate: NewCandidateHandler(services.NewCandidateService(candidateRepo, nil), nil),
	}, authService, RouterConfig{AllowedOrigins: []string{"http://localhost:5173"}})

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return &testApp{Server: server, Client: server.Client(), Users: userService}
}

func (a *testApp) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, ok := body.(string)
		if !ok {
			encoded, err := json.Marshal(body)
			require.NoError(t, err)
			raw = string(encoded)
		}
		reader = bytes.NewReader([]byte(raw))
	}

	req, err := http.NewRequest(method, a.Server.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.Client.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func (a *testApp) login(t *testing.T, email, password string) string {
	t.Helper()
	resp := a.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"email": email, "password": password})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out loginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out.Token
}

func (a *testApp) adminToken(t *testing.T) string {
	return a.login(t, adminEmail, adminPassword)
}

func (a *testApp) judgeToken(t *testing.T, email string) string {
	t.Helper()
	_, err := a.Users.CreateJudge(context.Background(), ports.CreateUserInput{Name: email, Email: email, Password: judgePassword})
	require.NoError(t, err)
	return a.login(t, email, judgePassword)
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}
