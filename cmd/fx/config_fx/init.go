package config_fx

import (
	"github.com/sirupsen/logrus"
	"go.uber.org/fx"

	"apextip/internal/config"
	"apextip/internal/logger"
	"apextip/pkg/utils"
)

var Module = fx.Provide(
	config.Load,
	provideLogger,
	provideTokenIssuer)

func provideLogger(cfg *config.Config) *logrus.Logger {
	return logger.New(cfg.App.LogLevel)
}

func provideTokenIssuer(cfg *config.Config) (*utils.TokenIssuer, error) {
	return utils.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
}
