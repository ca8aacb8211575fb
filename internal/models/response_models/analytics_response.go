package response_models

type DateRange struct {
	StartDate int64 `json:"start_date"`
	EndDate   int64 `json:"end_date"`
}

type AnalyticsSummary struct {
	TotalTips           int64  `json:"total_tips"`
	TotalImpressions    int64  `json:"total_impressions"`
	TotalClicks         int64  `json:"total_clicks"`
	ClickThroughRate    string `json:"click_through_rate"`
	ClickConversionRate string `json:"click_conversion_rate"`
}

type CurrencyBreakdown struct {
	Currency    string `json:"currency"`
	TipsCount   int64  `json:"tips_count"`
	TotalAmount int64  `json:"total_amount"`
}

type EventMetrics struct {
	Impressions         int64  `json:"impressions"`
	Clicks              int64  `json:"clicks"`
	ClickThroughRate    string `json:"click_through_rate"`
	ClickConversionRate string `json:"click_conversion_rate"`
}

type AnalyticsResponse struct {
	DateRange           DateRange           `json:"date_range"`
	CreatorID           string              `json:"creator_id,omitempty"`
	Username            string              `json:"username,omitempty"`
	Summary             AnalyticsSummary    `json:"summary"`
	BreakdownByCurrency []CurrencyBreakdown `json:"breakdown_by_currency"`
	Events              EventMetrics        `json:"events"`
}
