package services

import (
	"context"
	"math"
	"strings"

	"golang.org/x/sync/errgroup"

	"apextip/internal/models/request_models"
	"apextip/internal/models/response_models"
	"apextip/internal/repositories"
	"apextip/pkg/utils"
)

type LedgerService interface {
	ListTips(ctx context.Context, q request_models.LedgerQuery) (*response_models.TipListResponse, error)
	GetAmounts(ctx context.Context, creatorID string) (*response_models.TipAmounts, error)
}

type ledgerService struct {
	tipRepo repositories.TipRepository
}

func NewLedgerService(tipRepo repositories.TipRepository) LedgerService {
	return &ledgerService{tipRepo: tipRepo}
}

func validateLedgerQuery(q request_models.LedgerQuery) error {
	if strings.TrimSpace(q.CreatorID) == "" {
		return utils.ErrCreatorIDRequired
	}
	if q.Page < 1 {
		return utils.ErrInvalidPage
	}
	if q.Limit < 1 || q.Limit > request_models.MaxLimit {
		return utils.ErrInvalidLimit
	}
	// the row offset (page-1)*limit must fit in an int
	if q.Page-1 > math.MaxInt/q.Limit {
		return utils.ErrPageOutOfRange
	}
	return nil
}

// ListTips returns one page of a creator's tips, newest first. The total is counted
// with the same filter, independently of the page.
func (s *ledgerService) ListTips(ctx context.Context, q request_models.LedgerQuery) (*response_models.TipListResponse, error) {
	if err := validateLedgerQuery(q); err != nil {
		return nil, err
	}

	filter := repositories.TipFilter{
		CreatorID: q.CreatorID,
		StartDate: q.StartDate,
		EndDate:   q.EndDate,
	}

	var (
		rows  []response_models.TipItem
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = s.tipRepo.ListTips(gctx, filter, q.Offset(), q.Limit)
		if err != nil {
			return utils.StorageFailure("list tips", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		total, err = s.tipRepo.CountTips(gctx, filter)
		if err != nil {
			return utils.StorageFailure("count tips", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if rows == nil {
		rows = []response_models.TipItem{}
	}
	return &response_models.TipListResponse{
		Tips:       rows,
		Pagination: buildPagination(q.Page, q.Limit, total),
	}, nil
}

func buildPagination(page, limit int, total int64) response_models.Pagination {
	totalPages := (total + int64(limit) - 1) / int64(limit)
	return response_models.Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalCount:  total,
		Limit:       limit,
		HasNextPage: int64(page) < totalPages,
		HasPrevPage: page > 1,
	}
}

// GetAmounts sums a creator's tips. Settled and unsettled totals are net of commission.
// An empty creator id or a creator without tips yields zeros.
func (s *ledgerService) GetAmounts(ctx context.Context, creatorID string) (*response_models.TipAmounts, error) {
	if strings.TrimSpace(creatorID) == "" {
		return &response_models.TipAmounts{}, nil
	}

	sums, err := s.tipRepo.SumAmounts(ctx, creatorID)
	if err != nil {
		return nil, utils.StorageFailure("sum tip amounts", err)
	}

	return &response_models.TipAmounts{
		CollectedAmount: sums.Collected,
		SettledAmount:   NetOfCommission(sums.Settled),
		UnsettledAmount: NetOfCommission(sums.Unsettled),
	}, nil
}
