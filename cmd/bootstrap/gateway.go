package bootstrap

import (
	"context"
	"time"

	"github.com/steven-the-qa/coach-wire/internal/infra/alerts"
	"github.com/steven-the-qa/coach-wire/internal/infra/gateway"
	"github.com/steven-the-qa/coach-wire/internal/infra/intentstore"
	"github.com/steven-the-qa/coach-wire/internal/pkg/config"
	"github.com/steven-the-qa/coach-wire/internal/usecase/commands"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			NewStripeGateway,
			fx.As(new(commands.PaymentGateway)),
		),
		fx.Annotate(
			NewIntentStore,
			fx.As(new(commands.IntentStore)),
		),
		fx.Annotate(
			NewReversalAlerts,
			fx.As(new(commands.ReversalAlerts)),
		),
	),
)

func NewStripeGateway(cfg config.Config) *gateway.StripeClient {
	return gateway.NewStripeClient(cfg.Stripe)
}

func NewIntentStore(client *goredis.Client, cfg config.Config) *intentstore.RedisIntentStore {
	ttl := cfg.Redis.IntentTTL
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return intentstore.NewRedisIntentStore(client, ttl)
}

func NewReversalAlerts(lc fx.Lifecycle, cfg config.Config) (*alerts.AMQPReversalAlerts, error) {
	publisher, cleanup, err := alerts.NewAMQPReversalAlerts(cfg.Alerts)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return publisher, nil
}
