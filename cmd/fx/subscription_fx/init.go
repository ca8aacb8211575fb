package subscription_fx

import (
	"go.uber.org/fx"

	"apextip/internal/services"
)

var Module = fx.Provide(
	services.NewSubscriptionService)
