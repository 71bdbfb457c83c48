package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	llmx "github.com/hostbridge/support-agent/agent/llm"
	supportx "github.com/hostbridge/support-agent/agent/support"
	configx "github.com/hostbridge/support-agent/pkg/config"
	_ "github.com/hostbridge/support-agent/pkg/logger/autoload"
	openrouterx "github.com/hostbridge/support-agent/pkg/openrouter"
	postgresx "github.com/hostbridge/support-agent/pkg/postgres"
	serverx "github.com/hostbridge/support-agent/server"
	storex "github.com/hostbridge/support-agent/store"
)

type AppConfig struct {
	HTTPAddr        string        `envconfig:"HTTP_ADDR" default:":8000"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" split_words:"true" default:"5s"`
}

func main() {
	appCfg := configx.MustNew[AppConfig]("")
	llmCfg := configx.MustNew[llmx.Config]("OPENROUTER")
	pgCfg := configx.MustNew[postgresx.Config]("POSTGRES")

	// Credential sanity check before anything else touches the model.
	if openrouterx.NewClient(llmCfg.OpenRouter()) == nil {
		panic("failed to initialize openrouter client")
	}

	ctx := context.Background()

	db, err := postgresx.New(ctx, *pgCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connect")
	}
	defer func() { _ = db.Close() }()
	log.Info().Msg("postgres connection successful")

	if err := storex.CreateTables(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("create tables")
	}

	advisor, err := supportx.New(ctx, *llmCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("build support advisor")
	}

	customers := storex.NewCustomersRepository(db)
	plans := storex.NewPlansRepository(db)
	server := serverx.New(advisor, customers, plans)

	errCh := make(chan error, 1)
	go func() { errCh <- server.Start(appCfg.HTTPAddr) }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("http server exited")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), appCfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
}
