package tip_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"apextip/internal/docstore"
	"apextip/internal/repositories"
	"apextip/internal/services"
)

var Module = fx.Provide(
	provideTipRepo, provideLedgerService, provideSettlementService)

func provideTipRepo(db *gorm.DB) repositories.TipRepository {
	return repositories.NewTipRepository(db)
}

func provideLedgerService(tipRepo repositories.TipRepository) services.LedgerService {
	return services.NewLedgerService(tipRepo)
}

func provideSettlementService(creators docstore.CreatorStore, tipRepo repositories.TipRepository) services.SettlementService {
	return services.NewSettlementService(creators, tipRepo)
}
