package main

import (
	"context"
	"time"

	"ministeam-seeder/internal/config"
	"ministeam-seeder/internal/constants"
	fxmodules "ministeam-seeder/internal/fx"
	"ministeam-seeder/internal/logger"
	"ministeam-seeder/internal/oplog"
	"ministeam-seeder/internal/seeder"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		fxmodules.Module,
		fx.Invoke(runSeeder),
	).Run()
}

func runSeeder(
	lc fx.Lifecycle,
	shutdowner fx.Shutdowner,
	orch *seeder.Orchestrator,
	opLog *oplog.Log,
	cfg *config.Config,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go run(shutdowner, orch, opLog, cfg)
			return nil
		},
	})
}

// run drives the whole seeding pass. Whatever happens during the phases, the
// verification log is written exactly once and the summary is printed; only
// a failure to write the log itself is reported as an error, and even that
// does not change the exit code.
func run(shutdowner fx.Shutdowner, orch *seeder.Orchestrator, opLog *oplog.Log, cfg *config.Config) {
	log := logger.WithLevel(cfg.LogLevel).With().Str("run_id", opLog.RunID()).Logger()
	log.Info().Msg("mini-steam seeder started")
	start := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), constants.RunTimeout)
	defer cancel()

	if err := orch.Run(ctx); err != nil {
		log.Error().Err(err).Msg("fatal error during seeding")
	} else {
		log.Info().Msg("seeding phases complete")
	}

	if err := opLog.WriteFile(cfg.LogPath); err != nil {
		log.Error().Err(err).Str("path", cfg.LogPath).Msg("failed to write verification log")
	} else {
		log.Info().Str("path", cfg.LogPath).Msg("verification log written")
	}

	summary := opLog.Summary()
	log.Info().
		Dur("elapsed", time.Since(start)).
		Int("total_requests", summary.TotalRequests).
		Int("successful", summary.SuccessfulRequests).
		Int("failed", summary.FailedRequests).
		Msg("seeding run finished")

	if err := shutdowner.Shutdown(); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
