package events_fx

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.uber.org/fx"

	"apextip/internal/config"
	"apextip/internal/infra"
	"apextip/internal/services"
)

var Module = fx.Provide(
	providePublisher)

func providePublisher(lc fx.Lifecycle, cfg *config.Config, log *logrus.Logger) (services.EventPublisher, error) {
	if cfg.RabbitMQ.URL == "" {
		log.Info("RABBITMQ_URL not set; domain events are discarded")
		return services.NoopPublisher{}, nil
	}

	publisher, err := infra.NewAMQPPublisher(cfg.RabbitMQ, log)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})
	return publisher, nil
}
