package main

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	gormlogger "gorm.io/gorm/logger"

	"companion-api/internal/config"
	"companion-api/internal/domain/chat"
	"companion-api/internal/domain/game"
	"companion-api/internal/domain/relationship"
	"companion-api/internal/domain/settings"
	"companion-api/internal/domain/turn"
	"companion-api/internal/infrastructure/attraction"
	"companion-api/internal/infrastructure/database"
	"companion-api/internal/infrastructure/llmprovider"
	"companion-api/internal/infrastructure/logger"
	"companion-api/internal/infrastructure/observability"
	chatrepo "companion-api/internal/infrastructure/repository/chat"
	relationshiprepo "companion-api/internal/infrastructure/repository/relationship"
	settingsrepo "companion-api/internal/infrastructure/repository/settings"
	"companion-api/internal/interfaces/httpserver"
)

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown telemetry")
		}
	}()

	db, err := database.Connect(database.Config{
		DSN:             cfg.DatabaseURL,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
		LogLevel:        gormlogger.Warn,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}

	if err := database.AutoMigrate(ctx, db, log); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	transcript := chatrepo.NewRepository(db)
	settingsStore := settingsrepo.NewStore(db, seedDefaults(cfg))

	var scoreStore relationship.Store
	if cfg.AttractionServiceURL != "" {
		log.Info().Str("url", cfg.AttractionServiceURL).Msg("Using remote attraction service")
		scoreStore = attraction.NewClient(cfg.AttractionServiceURL, cfg.ProviderTimeout)
	} else {
		scoreStore = relationshiprepo.NewStore(db)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	tracker, err := relationship.NewTracker(ctx, scoreStore, rng)
	if err != nil {
		log.Fatal().Err(err).Msg("load relationship score")
	}

	factory := llmprovider.NewFactory(cfg)
	completer := llmprovider.NewSettingsCompleter(factory, settingsStore)
	gameSink := &deferredGameSink{}
	games := game.NewManager(
		game.DefaultProcessors(completer, rng),
		gameSink,
		log,
	)

	orchestrator := turn.NewOrchestrator(
		transcript,
		games,
		tracker,
		factory,
		settingsStore,
		log,
		turn.WithHistoryWindow(cfg.HistoryWindow),
	)
	gameSink.turns = orchestrator

	httpServer := httpserver.New(
		cfg,
		log,
		orchestrator,
		transcript,
		gameService{games, orchestrator},
		tracker,
		settingsStore,
	)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var eg errgroup.Group
	eg.Go(func() error {
		err := httpServer.Run(runCtx)
		cancel()
		return err
	})
	eg.Go(func() error {
		err := runMetricsServer(runCtx, cfg, log)
		cancel()
		return err
	})

	if err := eg.Wait(); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

// deferredGameSink routes deferred game messages through the orchestrator so
// they wait out any in-flight turn instead of landing mid-turn. The
// orchestrator is bound after both sides are constructed.
type deferredGameSink struct{ turns *turn.Orchestrator }

func (s *deferredGameSink) Append(ctx context.Context, msg chat.Message) error {
	return s.turns.EmitGameMessage(ctx, msg)
}

// gameService combines the catalog view of the manager with the
// transcript-aware start and exit paths of the orchestrator.
type gameService struct {
	*game.Manager
	*turn.Orchestrator
}

func seedDefaults(cfg *config.Config) settings.Settings {
	defaults := settings.Default()
	defaults.GeminiAPIKey = cfg.GeminiAPIKey
	defaults.GrokAPIKey = cfg.GrokAPIKey
	defaults.GroqAPIKey = cfg.GroqAPIKey
	return defaults
}

func runMetricsServer(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:    cfg.MetricsAddr(),
		Handler: mux,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.MetricsAddr()).Msg("Metrics server listening")
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
