package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/study-buddy/internal/adapter"
	"github.com/MKhiriev/study-buddy/internal/config"
	"github.com/MKhiriev/study-buddy/internal/logger"
	"github.com/MKhiriev/study-buddy/internal/service"
	"github.com/joho/godotenv"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// A local .env is optional; real deployments set env vars directly.
	_ = godotenv.Load()

	log := logger.NewClientLogger("study-buddy-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAPI, err := adapter.NewHTTPServerAPI(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	services := service.NewClientServices(serverAPI, nil, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, services, log); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

// run drives a headless matching session: log in with env credentials,
// load the candidate pool, and report what a mobile shell would render.
// This binary exists for smoke testing a deployment end to end.
func run(ctx context.Context, services *service.ClientServices, log *logger.Logger) error {
	username := os.Getenv("STUDYBUDDY_USERNAME")
	password := os.Getenv("STUDYBUDDY_PASSWORD")
	if username == "" {
		return fmt.Errorf("STUDYBUDDY_USERNAME is not set")
	}

	if err := services.Session.LogIn(ctx, username, password); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	if err := services.Session.RefreshProfile(ctx); err != nil {
		return fmt.Errorf("profile refresh failed: %w", err)
	}

	if err := services.Matching.LoadCandidates(ctx); err != nil {
		return fmt.Errorf("candidate load failed: %w", err)
	}
	defer services.Matching.Drain()

	_, total := services.Matching.Position()
	log.Info().Int("candidates", total).Msg("matching session ready")

	matched, err := services.Session.FetchMatchedUsers(ctx)
	if err != nil {
		return fmt.Errorf("match list failed: %w", err)
	}
	log.Info().Int("matches", len(matched)).Msg("existing matches fetched")

	return nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
