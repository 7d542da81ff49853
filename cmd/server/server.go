package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/ironvale/campaign-api/internal/clients/catalog"
	"github.com/ironvale/campaign-api/internal/events"
	v1 "github.com/ironvale/campaign-api/internal/handlers/api/v1"
	"github.com/ironvale/campaign-api/internal/orchestrators/rest"
	"github.com/ironvale/campaign-api/internal/orchestrators/spellbook"
	"github.com/ironvale/campaign-api/internal/orchestrators/summon"
	"github.com/ironvale/campaign-api/internal/orchestrators/wildshape"
	redisclient "github.com/ironvale/campaign-api/internal/redis"
	"github.com/ironvale/campaign-api/internal/repositories/character"
	"github.com/ironvale/campaign-api/internal/repositories/gamesession"
	"github.com/ironvale/campaign-api/internal/rules"
)

// serverConfig is populated from the environment.
type serverConfig struct {
	Port          int           `env:"PORT" envDefault:"8080"`
	RedisAddr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	CatalogURL    string        `env:"CATALOG_BASE_URL"`
	CatalogTTL    time.Duration `env:"CATALOG_CACHE_TTL" envDefault:"24h"`
	ShutdownGrace time.Duration `env:"SHUTDOWN_GRACE" envDefault:"30s"`
}

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Start the campaign API HTTP server with all configured services.`,
	RunE:  runServer,
}

func runServer(cmd *cobra.Command, args []string) error {
	var cfg serverConfig
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	redisClient, err := redisclient.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err)
		}
	}()

	charRepo, err := character.NewRedis(&character.RedisConfig{Client: redisClient})
	if err != nil {
		return fmt.Errorf("failed to create character repository: %w", err)
	}

	sessionRepo, err := gamesession.NewRedis(&gamesession.RedisConfig{Client: redisClient})
	if err != nil {
		return fmt.Errorf("failed to create session repository: %w", err)
	}

	publisher, err := events.NewRedis(&events.RedisConfig{Client: redisClient})
	if err != nil {
		return fmt.Errorf("failed to create event publisher: %w", err)
	}

	catalogClient, err := catalog.New(&catalog.Config{
		BaseURL:  cfg.CatalogURL,
		CacheTTL: cfg.CatalogTTL,
	})
	if err != nil {
		return fmt.Errorf("failed to create catalog client: %w", err)
	}

	ruleset := rules.NewSRD()

	spellbookService, err := spellbook.NewOrchestrator(&spellbook.Config{
		CharacterRepo: charRepo,
		Catalog:       catalogClient,
		Rules:         ruleset,
		Publisher:     publisher,
	})
	if err != nil {
		return fmt.Errorf("failed to create spellbook service: %w", err)
	}

	restService, err := rest.NewOrchestrator(&rest.Config{
		CharacterRepo: charRepo,
		Rules:         ruleset,
		Publisher:     publisher,
	})
	if err != nil {
		return fmt.Errorf("failed to create rest service: %w", err)
	}

	wildShapeService, err := wildshape.NewOrchestrator(&wildshape.Config{
		CharacterRepo: charRepo,
		Catalog:       catalogClient,
		Rules:         ruleset,
		Publisher:     publisher,
	})
	if err != nil {
		return fmt.Errorf("failed to create wild shape service: %w", err)
	}

	summonService, err := summon.NewOrchestrator(&summon.Config{
		CharacterRepo: charRepo,
		Catalog:       catalogClient,
		Publisher:     publisher,
	})
	if err != nil {
		return fmt.Errorf("failed to create summon service: %w", err)
	}

	handler, err := v1.NewHandler(&v1.Config{
		SpellbookService: spellbookService,
		RestService:      restService,
		WildShapeService: wildShapeService,
		SummonService:    summonService,
		CharacterRepo:    charRepo,
		SessionRepo:      sessionRepo,
	})
	if err != nil {
		return fmt.Errorf("failed to create API handler: %w", err)
	}

	mux := handler.Routes()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := redisClient.Ping(r.Context()).Err(); err != nil {
			http.Error(w, "redis unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down HTTP server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownGrace)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("graceful shutdown timed out, forcing close", "error", err)
			return srv.Close()
		}
		slog.Info("server stopped gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}
