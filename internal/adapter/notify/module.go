package notify

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/plateup/orderflow/internal/config"
)

// Module exposes the event publisher to the fx graph. Without a configured
// broker the service degrades to log-only notifications.
var Module = fx.Options(
	fx.Provide(newPublisher),
	fx.Invoke(registerLifecycle),
)

type publisherParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newPublisher(p publisherParams) (Publisher, error) {
	if p.Config.NotifyBrokerURL == "" {
		p.Logger.Info("notification broker not configured, events go to log")
		return NewLogPublisher(p.Logger), nil
	}
	return NewAMQPPublisher(p.Config.NotifyBrokerURL, p.Config.NotifyExchange, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, publisher Publisher) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return publisher.Close()
		},
	})
}
