package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"apextip/internal/models/request_models"
	"apextip/internal/models/response_models"
	"apextip/internal/repositories"
	"apextip/pkg/utils"
)

type AnalyticsService interface {
	GetAnalytics(ctx context.Context, q request_models.AnalyticsQuery) (*response_models.AnalyticsResponse, error)
}

type analyticsService struct {
	repo repositories.AnalyticsRepository
}

func NewAnalyticsService(repo repositories.AnalyticsRepository) AnalyticsService {
	return &analyticsService{repo: repo}
}

func (s *analyticsService) GetAnalytics(ctx context.Context, q request_models.AnalyticsQuery) (*response_models.AnalyticsResponse, error) {
	if q.StartDate > q.EndDate {
		return nil, utils.InvalidParameter("start_date must not be after end_date", map[string]string{
			"start_date": "must be <= end_date",
		})
	}

	filter := repositories.AnalyticsFilter{
		StartDate: q.StartDate,
		EndDate:   q.EndDate,
		CreatorID: q.CreatorID,
	}
	if q.Username != "" {
		filter.Path = "/" + q.Username
	}

	var (
		byCurrency []repositories.CurrencyTotalsRow
		events     *repositories.EventCountsRow
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		byCurrency, err = s.repo.TipTotalsByCurrency(gctx, filter)
		if err != nil {
			return utils.StorageFailure("aggregate tips", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		events, err = s.repo.EventCounts(gctx, filter)
		if err != nil {
			return utils.StorageFailure("aggregate events", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var totalTips int64
	breakdown := make([]response_models.CurrencyBreakdown, 0, len(byCurrency))
	for _, row := range byCurrency {
		totalTips += row.TipsCount
		breakdown = append(breakdown, response_models.CurrencyBreakdown{
			Currency:    row.Currency,
			TipsCount:   row.TipsCount,
			TotalAmount: row.TotalAmount,
		})
	}

	ctr := FormatRate(events.Checkouts, events.PageViews)
	conversion := FormatRate(totalTips, events.Checkouts)

	return &response_models.AnalyticsResponse{
		DateRange: response_models.DateRange{StartDate: q.StartDate, EndDate: q.EndDate},
		CreatorID: q.CreatorID,
		Username:  q.Username,
		Summary: response_models.AnalyticsSummary{
			TotalTips:           totalTips,
			TotalImpressions:    events.PageViews,
			TotalClicks:         events.Checkouts,
			ClickThroughRate:    ctr,
			ClickConversionRate: conversion,
		},
		BreakdownByCurrency: breakdown,
		Events: response_models.EventMetrics{
			Impressions:         events.PageViews,
			Clicks:              events.Checkouts,
			ClickThroughRate:    ctr,
			ClickConversionRate: conversion,
		},
	}, nil
}
