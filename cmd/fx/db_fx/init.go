package db_fx

import (
	"go.uber.org/fx"

	"apextip/internal/infra"
)

var Module = fx.Provide(
	infra.ProvidePostgres)
