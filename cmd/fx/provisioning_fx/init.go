package provisioning_fx

import (
	"github.com/sirupsen/logrus"
	"go.uber.org/fx"

	"apextip/internal/docstore"
	"apextip/internal/models/doc_models"
	"apextip/internal/services"
)

var Module = fx.Provide(
	doc_models.DefaultStarterBlocks,
	provideProvisioningService)

func provideProvisioningService(
	uow docstore.UnitOfWork,
	starter doc_models.StarterBlocks,
	publisher services.EventPublisher,
	log *logrus.Logger) services.ProvisioningService {
	return services.NewProvisioningService(uow, starter, publisher, log)
}
