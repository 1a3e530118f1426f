package bootstrap

import (
	"github.com/steven-the-qa/coach-wire/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
