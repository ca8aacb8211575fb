package repositories

import (
	"context"

	"gorm.io/gorm"

	dbm "apextip/internal/models/db_models"
)

type AnalyticsRepository interface {
	TipTotalsByCurrency(ctx context.Context, f AnalyticsFilter) ([]CurrencyTotalsRow, error)
	EventCounts(ctx context.Context, f AnalyticsFilter) (*EventCountsRow, error)
}

// AnalyticsFilter: the range is inclusive; CreatorID and Path are optional.
type AnalyticsFilter struct {
	StartDate int64
	EndDate   int64
	CreatorID string
	Path      string
}

type CurrencyTotalsRow struct {
	Currency    string `gorm:"column:currency"`
	TipsCount   int64  `gorm:"column:tips_count"`
	TotalAmount int64  `gorm:"column:total_amount"`
}

type EventCountsRow struct {
	PageViews int64
	Checkouts int64
}

type eventTypeCount struct {
	EventType string `gorm:"column:event_type"`
	Count     int64  `gorm:"column:event_count"`
}

type analyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) TipTotalsByCurrency(ctx context.Context, f AnalyticsFilter) ([]CurrencyTotalsRow, error) {
	rows := make([]CurrencyTotalsRow, 0)
	q := r.db.WithContext(ctx).
		Table("tips").
		Select("currency, COUNT(*) AS tips_count, CAST(COALESCE(SUM(amount), 0) AS BIGINT) AS total_amount").
		Where("created_at >= ? AND created_at <= ?", f.StartDate, f.EndDate)
	if f.CreatorID != "" {
		q = q.Where("creator_id = ?", f.CreatorID)
	}
	err := q.Group("currency").Order("currency").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *analyticsRepository) EventCounts(ctx context.Context, f AnalyticsFilter) (*EventCountsRow, error) {
	db := r.db.WithContext(ctx)
	q := db.Table("events").
		Select("event_type, COUNT(*) AS event_count").
		Where("created_at >= ? AND created_at <= ?", f.StartDate, f.EndDate).
		Where("event_type IN ?", []string{string(dbm.EventPageView), string(dbm.EventCheckout)})

	// Events carry no creator key; attribute them through the visitors who tipped this creator.
	if f.CreatorID != "" {
		tippers := db.Table("tips").
			Select("visitor_id").
			Where("creator_id = ?", f.CreatorID).
			Where("created_at >= ? AND created_at <= ?", f.StartDate, f.EndDate)
		q = q.Where("visitor_id IN (?)", tippers)
	}
	if f.Path != "" {
		q = q.Where("path = ?", f.Path)
	}

	var rows []eventTypeCount
	if err := q.Group("event_type").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := &EventCountsRow{}
	for _, row := range rows {
		switch dbm.EventType(row.EventType) {
		case dbm.EventPageView:
			out.PageViews = row.Count
		case dbm.EventCheckout:
			out.Checkouts = row.Count
		}
	}
	return out, nil
}
