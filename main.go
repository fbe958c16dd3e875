package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	zero "github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/reelapp/internal/config"
	db "github.com/sidereusnuntius/reelapp/internal/db/impl"
	"github.com/sidereusnuntius/reelapp/internal/initialization"
	service "github.com/sidereusnuntius/reelapp/internal/service/impl"
	"github.com/sidereusnuntius/reelapp/internal/session"
	"github.com/sidereusnuntius/reelapp/internal/state"
	"github.com/sidereusnuntius/reelapp/internal/storage/memstore"
	"github.com/sidereusnuntius/reelapp/internal/tui"
	"github.com/sidereusnuntius/reelapp/internal/view"
)

func main() {
	zero.Logger = zero.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg, err := config.ReadConfig()
	if err != nil {
		zero.Fatal().Err(err).Msg("failed to read configuration")
	}
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	ctx := context.Background()

	d, err := initialization.OpenDB(initialization.DSN)
	if err != nil {
		zero.Fatal().Err(err).Msg("failed to open the state database")
	}
	defer d.Close()

	if err = initialization.SetupDB(d, cfg.MigrationsFolder, "reelapp"); err != nil {
		zero.Fatal().Err(err).Msg("failed to set up the state database")
	}
	zero.Info().Msg("in-memory state database ready")

	dd := db.New(cfg, d)
	if cfg.Seed {
		if err = initialization.SeedAccounts(ctx, dd); err != nil {
			zero.Fatal().Err(err).Msg("failed to seed demo accounts")
		}
	}

	sess := session.New()
	media := memstore.New()

	svc := service.New(state.State{
		DB:     dd,
		Config: cfg,
	}, media, sess)

	router := view.NewRouter(sess)

	shell := tui.New(cfg, svc, router)
	if err = shell.Run(ctx); err != nil {
		zero.Fatal().Err(err).Msg("shell exited with an error")
	}
}
