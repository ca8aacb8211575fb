package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.uber.org/fx"

	"apextip/cmd/fx/analytics_fx"
	"apextip/cmd/fx/config_fx"
	"apextip/cmd/fx/controllers_fx"
	"apextip/cmd/fx/db_fx"
	"apextip/cmd/fx/docstore_fx"
	"apextip/cmd/fx/events_fx"
	"apextip/cmd/fx/provisioning_fx"
	"apextip/cmd/fx/subscription_fx"
	"apextip/cmd/fx/tip_fx"
	"apextip/internal/config"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		docstore_fx.Module,
		events_fx.Module,
		tip_fx.Module,
		analytics_fx.Module,
		subscription_fx.Module,
		provisioning_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, log *logrus.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			go func() {
				log.WithField("addr", srv.Addr).Info("starting HTTP server")
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.WithError(err).Error("HTTP server stopped unexpectedly")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
