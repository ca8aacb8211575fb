package request_models

type AnalyticsQuery struct {
	StartDate int64
	EndDate   int64
	CreatorID string
	Username  string
}
