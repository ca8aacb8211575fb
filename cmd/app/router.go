package main

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"apextip/internal/api/controllers"
	"apextip/internal/config"
	"apextip/pkg/middleware"
	"apextip/pkg/utils"
)

type Controllers struct {
	Tip       *controllers.TipController
	Analytics *controllers.AnalyticsController
	Webhook   *controllers.WebhookController
	Creator   *controllers.CreatorController
	Health    *controllers.HealthController
}

func ProvideRouter(
	cfg *config.Config,
	log *logrus.Logger,
	issuer *utils.TokenIssuer,
	tipController *controllers.TipController,
	analyticsController *controllers.AnalyticsController,
	webhookController *controllers.WebhookController,
	creatorController *controllers.CreatorController,
	healthController *controllers.HealthController) *gin.Engine {

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recovery(log))
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, issuer, Controllers{
		Tip:       tipController,
		Analytics: analyticsController,
		Webhook:   webhookController,
		Creator:   creatorController,
		Health:    healthController,
	})

	return r
}

func RegisterRoutes(r *gin.Engine, issuer *utils.TokenIssuer, ctl Controllers) {
	auth := middleware.JWTAuthMiddleware(issuer)
	adminOnly := middleware.RoleMiddleware(utils.RoleAdmin)

	r.GET("/health", ctl.Health.Health)

	tipGroup := r.Group("/tip")
	tipGroup.GET("", auth, ctl.Tip.GetMyTips)
	tipGroup.GET("/:creator_id", ctl.Tip.GetTipsByCreator)
	tipGroup.GET("/:creator_id/amounts", ctl.Tip.GetAmounts)
	tipGroup.GET("/:creator_id/unsettled", auth, adminOnly, ctl.Tip.ExportUnsettled)

	r.GET("/analytics", auth, ctl.Analytics.GetAnalytics)

	webhookGroup := r.Group("/webhook")
	webhookGroup.POST("/razorpay/subscription", ctl.Webhook.HandleSubscription)

	creatorGroup := r.Group("/creator")
	creatorGroup.PATCH("/verify/:creator_id", auth, adminOnly, ctl.Creator.VerifyCreator)
}
