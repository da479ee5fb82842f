package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/vncsmyrnk/scorecard/internal/adapters/handler/http"
	"github.com/vncsmyrnk/scorecard/internal/adapters/repository/memory"
	"github.com/vncsmyrnk/scorecard/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/scorecard/internal/config"
	"github.com/vncsmyrnk/scorecard/internal/core/ports"
	"github.com/vncsmyrnk/scorecard/internal/core/services"
)

type repositories struct {
	candidates ports.CandidateRepository
	criteria   ports.CriterionRepository
	votes      ports.VoteRepository
	users      ports.UserRepository
}

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := config.NewLogger(os.Stdout, cfg.LogFormat, cfg.LogLevel)
	slog.SetDefault(logger)
	if envErr != nil {
		logger.Info("no .env file found")
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, closeRepos, err := openRepositories(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeRepos()

	handler, err := newHandler(ctx, cfg, repos, logger)
	if err != nil {
		return err
	}

	server := &stdhttp.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%d", cfg.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", server.Addr, "storage", cfg.Storage)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("gracefully shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}

func newHandler(ctx context.Context, cfg config.Config, repos repositories, logger *slog.Logger) (stdhttp.Handler, error) {
	userService := services.NewUserService(repos.users, logger)
	authService := services.NewAuthService(repos.users, cfg.JWTSecret, logger)

	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		if _, err := userService.EnsureAdmin(ctx, ports.CreateUserInput{
			Name:     cfg.AdminName,
			Email:    cfg.AdminEmail,
			Password: cfg.AdminPassword,
		}); err != nil {
			return nil, fmt.Errorf("failed to seed admin: %w", err)
		}
	}

	return http.NewHandler(http.Handlers{
		Auth:      http.NewAuthHandler(authService, cfg.CookieDomain, cfg.CookieSecure, logger),
		User:      http.NewUserHandler(userService, logger),
		Vote:      http.NewVoteHandler(services.NewVoteService(repos.candidates, repos.criteria, repos.votes, logger), logger),
		Results:   http.NewResultsHandler(services.NewResultsService(repos.candidates, repos.criteria, repos.votes, cfg.NonNumeric, logger), logger),
		Criterion: http.NewCriterionHandler(services.NewCriterionService(repos.criteria, logger), logger),
		Candidate: http.NewCandidateHandler(services.NewCandidateService(repos.candidates, logger), logger),
	}, authService, http.RouterConfig{AllowedOrigins: cfg.AllowedOrigins, Logger: logger}), nil
}

func openRepositories(ctx context.Context, cfg config.Config, logger *slog.Logger) (repositories, func(), error) {
	if cfg.Storage == config.StorageMemory {
		logger.Warn("using in-memory storage; data is lost on restart")
		return repositories{
			candidates: memory.NewCandidateRepository(),
			criteria:   memory.NewCriterionRepository(),
			votes:      memory.NewVoteRepository(),
			users:      memory.NewUserRepository(),
		}, func() {}, nil
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return repositories{}, nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return repositories{}, nil, fmt.Errorf("failed to reach database: %w", err)
	}

	if cfg.Migrate {
		if err := postgres.Migrate(ctx, db); err != nil {
			db.Close()
			return repositories{}, nil, err
		}
		logger.Info("migrations applied")
	}

	return repositories{
		candidates: postgres.NewCandidateRepository(db, logger),
		criteria:   postgres.NewCriterionRepository(db, logger),
		votes:      postgres.NewVoteRepository(db, logger),
		users:      postgres.NewUserRepository(db, logger),
	}, func() { db.Close() }, nil
}
