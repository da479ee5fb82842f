package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/vncsmyrnk/scorecard/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/scorecard/internal/config"
	"github.com/vncsmyrnk/scorecard/internal/core/domain"
	"github.com/vncsmyrnk/scorecard/internal/core/services"
)

// resultsreport prints the current ranking as JSON. It reads the same
// tables as the API and never writes.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	var dbURL, nonNumeric string
	var topOnly bool

	flag.StringVar(&dbURL, "db", config.DatabaseURL(), "Postgres connection URL")
	flag.StringVar(&nonNumeric, "non-numeric", os.Getenv("RESULTS_NON_NUMERIC"), "Stored non-numeric answers: zero or skip")
	flag.BoolVar(&topOnly, "top", false, "Print only the top three")
	flag.Parse()

	policy, ok := domain.ParseNonNumericPolicy(nonNumeric)
	if !ok {
		log.Fatalf("invalid non-numeric policy %q", nonNumeric)
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}

	logger := config.NewLogger(os.Stderr, "text", os.Getenv("LOG_LEVEL"))

	resultsService := services.NewResultsService(
		postgres.NewCandidateRepository(db, logger),
		postgres.NewCriterionRepository(db, logger),
		postgres.NewVoteRepository(db, logger),
		policy,
		logger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	results, err := resultsService.ComputeResults(ctx)
	if err != nil {
		log.Fatalf("Error computing results: %v", err)
	}

	var out any = results
	if topOnly {
		out = results.Top3
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatal(err)
	}
}
