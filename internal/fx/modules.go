package fx

import (
	"ministeam-seeder/internal/api"
	"ministeam-seeder/internal/config"
	"ministeam-seeder/internal/logger"
	"ministeam-seeder/internal/oplog"
	"ministeam-seeder/internal/seeder"

	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(oplog.New),
	// service client
	fx.Provide(api.NewClient),
	// orchestrator
	fx.Provide(seeder.NewRand),
	fx.Provide(seeder.New),
)
