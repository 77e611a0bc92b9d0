package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"bulletpoints/internal/core/normalize"
	"bulletpoints/internal/core/rulepack"
	"bulletpoints/internal/core/version"
	"bulletpoints/internal/platform/config"
	"bulletpoints/internal/platform/logger"
	phttp "bulletpoints/internal/platform/net/http"

	"bulletpoints/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// bring up logging early
	logger.Init(logger.FromEnv(logger.Options{Service: "bulletpoints-api"}))
	l := logger.Get()

	// a broken rule pack is a build problem, fail before listening
	if err := rulepack.Err(); err != nil {
		l.Panic().Err(err).Msg("rule pack failed to load")
	}
	bi := version.Info()
	l.Info().Str("version", bi.Version).Str("commit", bi.Commit).Int("rules", bi.Rules).Msg("starting")

	// http server (reads CORE_API_ADDR, CORE_API_SHUTDOWN_GRACE)
	srv := phttp.NewServer(apiCfg)

	opts := api.OptionsFromConfig(apiCfg)
	opts.Logger = l
	opts.Normalizer = normalize.New()

	// mount our API and the form
	api.Mount(srv.Router(), opts)

	// Run drains in flight requests for CORE_API_SHUTDOWN_GRACE once a signal lands
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		l.Error().Err(err).Msg("http server stopped")
		stop()
		os.Exit(1)
	}
	l.Info().Msg("bye")
}
