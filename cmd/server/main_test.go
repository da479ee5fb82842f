package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	stdhttp "net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/vncsmyrnk/scorecard/internal/config"
	"github.com/vncsmyrnk/scorecard/internal/core/domain"
)

func testConfig(storage string) config.Config {
	return config.Config{
		Storage:       storage,
		Migrate:       true,
		JWTSecret:     "test-secret",
		AdminEmail:    "admin@example.com",
		AdminPassword: "admin-pass",
		NonNumeric:    domain.NonNumericZero,
	}
}

func startServer(t *testing.T, cfg config.Config) *httptest.Server {
	t.Helper()
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	repos, closeRepos, err := openRepositories(ctx, cfg, logger)
	require.NoError(t, err)
	t.Cleanup(closeRepos)

	handler, err := newHandler(ctx, cfg, repos, logger)
	require.NoError(t, err)

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func call(t *testing.T, server *httptest.Server, method, path, token string, body any, out any) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req, err := stdhttp.NewRequest(method, server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func login(t *testing.T, server *httptest.Server, email, password string) string {
	t.Helper()
	var out struct {
		Token string `json:"token"`
	}
	require.Equal(t, stdhttp.StatusOK, call(t, server, stdhttp.MethodPost, "/api/auth/login", "", map[string]string{"email": email, "password": password}, &out))
	return out.Token
}

// judgingRound drives a full contest through the API: registry setup,
// judges voting, a racing duplicate and the final ranking.
func judgingRound(t *testing.T, server *httptest.Server) {
	admin := login(t, server, "admin@example.com", "admin-pass")

	var voice, stage domain.Criterion
	require.Equal(t, stdhttp.StatusCreated, call(t, server, stdhttp.MethodPost, "/api/admin/criterion", admin,
		map[string]any{"label": "Voice", "weight": 2}, &voice))
	require.Equal(t, stdhttp.StatusCreated, call(t, server, stdhttp.MethodPost, "/api/admin/criterion", admin,
		map[string]any{"label": "Stage", "numericMin": 0, "numericMax": 10}, &stage))

	for _, n := range []int{1, 2, 3, 4} {
		require.Equal(t, stdhttp.StatusCreated, call(t, server, stdhttp.MethodPost, "/api/admin/candidate", admin,
			map[string]any{"number": n, "name": fmt.Sprintf("Candidate %d", n)}, nil))
	}

	judges := make([]string, 2)
	for i := range judges {
		email := fmt.Sprintf("judge%d@example.com", i)
		require.Equal(t, stdhttp.StatusCreated, call(t, server, stdhttp.MethodPost, "/api/admin/judge", admin,
			map[string]string{"name": email, "email": email, "password": "pw"}, nil))
		judges[i] = login(t, server, email, "pw")
	}

	vote := func(token string, number int, v, s float64) int {
		return call(t, server, stdhttp.MethodPost, "/api/vote", token, map[string]any{
			"candidateNumber": number,
			"answers": []map[string]any{
				{"criterionId": voice.ID.String(), "value": v},
				{"criterionId": stage.ID.String(), "value": s},
			},
		}, nil)
	}

	// weighted: (4*2 + 1*1) / 3 = 3
	require.Equal(t, stdhttp.StatusCreated, vote(judges[0], 1, 4, 1))
	// (5*2 + 5*1) / 3 = 5
	require.Equal(t, stdhttp.StatusCreated, vote(judges[0], 2, 5, 5))
	// (3*2 + 0*1) / 3 = 2
	require.Equal(t, stdhttp.StatusCreated, vote(judges[1], 2, 3, 0))

	var wg sync.WaitGroup
	statuses := make([]int, 6)
	for i := range statuses {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			statuses[i] = vote(judges[1], 3, 4, 4)
		}(i)
	}
	wg.Wait()

	created := 0
	for _, s := range statuses {
		if s == stdhttp.StatusCreated {
			created++
		} else {
			assert.Equal(t, stdhttp.StatusConflict, s)
		}
	}
	assert.Equal(t, 1, created, "only one concurrent vote for the same pair is stored")

	var results domain.Results
	require.Equal(t, stdhttp.StatusOK, call(t, server, stdhttp.MethodGet, "/api/results/top", "", nil, &results))

	require.Len(t, results.Results, 4)
	got := make(map[int]domain.RankedEntry)
	for _, e := range results.Results {
		got[e.Candidate.Number] = e
	}
	assert.InDelta(t, 3.0, got[1].Average, 1e-9)
	assert.InDelta(t, 3.5, got[2].Average, 1e-9)
	assert.Equal(t, 2, got[2].Votes)
	assert.InDelta(t, 4.0, got[3].Average, 1e-9)
	assert.Equal(t, domain.RankedEntry{Candidate: domain.CandidateSummary{Number: 4, Name: "Candidate 4"}}, got[4])

	require.Len(t, results.Top3, 3)
	assert.Equal(t, 3, results.Top3[0].Candidate.Number)
	assert.Equal(t, 2, results.Top3[1].Candidate.Number)
	assert.Equal(t, 1, results.Top3[2].Candidate.Number)
}

func TestServer_Memory(t *testing.T) {
	judgingRound(t, startServer(t, testConfig(config.StorageMemory)))
}

func TestServer_Postgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	pgContainer, err := tcpostgres.Run(ctx, "postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("user"),
		tcpostgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pgContainer.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	cfg := testConfig(config.StoragePostgres)
	cfg.DatabaseURL = connStr
	judgingRound(t, startServer(t, cfg))
}
