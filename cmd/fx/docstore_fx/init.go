package docstore_fx

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.uber.org/fx"

	"apextip/internal/config"
	"apextip/internal/docstore"
	"apextip/internal/docstore/memory"
	mongostore "apextip/internal/docstore/mongo"
	"apextip/internal/infra"
)

var Module = fx.Provide(
	provideStore,
	provideCreatorStore,
	provideUnitOfWork)

func provideStore(lc fx.Lifecycle, cfg *config.Config, log *logrus.Logger) (docstore.Store, error) {
	if cfg.DocStore.Driver == config.DocStoreMemory {
		log.Warn("using in-memory document store; data is lost on restart")
		return memory.New(), nil
	}

	ctx := context.Background()
	client, err := infra.InitMongo(ctx, cfg.DocStore, log)
	if err != nil {
		return nil, err
	}
	store := mongostore.New(client, cfg.DocStore.Database)
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close(ctx)
		return nil, fmt.Errorf("failed to migrate document store: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info("closing MongoDB connection")
			return store.Close(ctx)
		},
	})
	return store, nil
}

func provideCreatorStore(store docstore.Store) docstore.CreatorStore {
	return store
}

func provideUnitOfWork(store docstore.Store) docstore.UnitOfWork {
	return store
}
