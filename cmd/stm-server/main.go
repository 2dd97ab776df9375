package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/smartgic/ovos-skill-share-to-mirror/internal/adapters/httpapi"
	"github.com/smartgic/ovos-skill-share-to-mirror/internal/adapters/memorybus"
	"github.com/smartgic/ovos-skill-share-to-mirror/internal/adapters/mirror"
	"github.com/smartgic/ovos-skill-share-to-mirror/internal/adapters/sqlite"
	"github.com/smartgic/ovos-skill-share-to-mirror/internal/adapters/youtube"
	"github.com/smartgic/ovos-skill-share-to-mirror/internal/app"
	"github.com/smartgic/ovos-skill-share-to-mirror/internal/buildinfo"
	"github.com/smartgic/ovos-skill-share-to-mirror/internal/config"
)

func main() {
	configPath := flag.String("config", os.Getenv("STM_CONFIG"), "Chemin du fichier de configuration YAML (optionnel)")
	addr := flag.String("addr", "", "Adresse d'écoute (ex: 127.0.0.1:8571)")
	dbPath := flag.String("db", "", "Chemin SQLite (ex: stm.db)")
	mirrorURL := flag.String("mirror", "", "URL de base du mirror (ex: http://mirror.local:8570)")
	flag.Parse()

	logger := zerolog.New(os.Stdout).With().Timestamp().Str("app", "stm-server").Logger()
	log.Logger = logger

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}
	if *mirrorURL != "" {
		cfg.MirrorBaseURL = *mirrorURL
	}

	logger.Info().
		Interface("build", buildinfo.Current()).
		Str("db", cfg.DBPath).
		Str("mirror", cfg.MirrorEndpoint().BaseURL).
		Str("search_backend", cfg.SearchBackend).
		Msg("starting")

	ctx := context.Background()
	db, err := sqlite.Open(ctx, cfg.DBPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open db")
	}
	defer func() { _ = db.Close() }()

	bus := memorybus.New()
	defer bus.Close()

	prefsRepo := sqlite.NewPreferencesRepository(db.SQL)
	prefsSvc := app.NewPreferencesService(prefsRepo)
	searcher := youtube.NewSearcher(logger.With().Str("component", "search").Logger(), cfg.SearchBackend, cfg.YouTubeAPIKey)
	mirrorClient := mirror.NewClient(cfg.MirrorEndpoint())
	session := app.NewSession()

	skill := app.NewSkillService(
		logger.With().Str("component", "skill").Logger(),
		searcher,
		mirrorClient,
		prefsSvc,
		session,
		bus,
	)

	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := httpapi.NewServer(logger, skill, bus)
	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", cfg.Addr).Msg("listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("http server crashed")
			stop()
		}
	}()

	<-shutdownCtx.Done()
	logger.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = httpServer.Shutdown(ctx)
	logger.Info().Msg("bye")
}
