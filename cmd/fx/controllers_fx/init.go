package controllers_fx

import (
	"context"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"apextip/internal/api/controllers"
	"apextip/internal/docstore"
	"apextip/pkg/memcache"
)

var Module = fx.Options(
	fx.Provide(provideDeliveryStore),
	fx.Provide(controllers.NewTipController),
	fx.Provide(controllers.NewAnalyticsController),
	fx.Provide(controllers.NewWebhookController),
	fx.Provide(controllers.NewCreatorController),
	fx.Provide(provideHealthController))

func provideHealthController(db *gorm.DB, store docstore.Store) *controllers.HealthController {
	return controllers.NewHealthController(
		controllers.HealthCheck{Name: "postgres", Check: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}},
		controllers.HealthCheck{Name: "docstore", Check: store.Ping},
	)
}

func provideDeliveryStore() memcache.DeliveryStore {
	return memcache.NewDeliveries()
}
