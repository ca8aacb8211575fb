package analytics_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"apextip/internal/repositories"
	"apextip/internal/services"
)

var Module = fx.Provide(
	provideAnalyticsRepo, provideAnalyticsService)

func provideAnalyticsRepo(db *gorm.DB) repositories.AnalyticsRepository {
	return repositories.NewAnalyticsRepository(db)
}

func provideAnalyticsService(repo repositories.AnalyticsRepository) services.AnalyticsService {
	return services.NewAnalyticsService(repo)
}
