package services

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/sirupsen/logrus"

	"apextip/internal/docstore"
	"apextip/internal/models/db_models"
	"apextip/internal/models/doc_models"
	"apextip/internal/models/response_models"
	"apextip/internal/repositories"
)

var errStorage = errors.New("connection reset")

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func strPtr(s string) *string { return &s }

type fakeTipRepo struct {
	mu sync.Mutex

	items     []response_models.TipItem
	count     int64
	sums      repositories.AmountSums
	unsettled []db_models.Tip
	err       error

	listCalls  int
	countCalls int
	lastOffset int
	lastLimit  int
	lastFilter repositories.TipFilter
}

func (f *fakeTipRepo) ListTips(_ context.Context, filter repositories.TipFilter, offset, limit int) ([]response_models.TipItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	f.lastOffset, f.lastLimit, f.lastFilter = offset, limit, filter
	if f.err != nil {
		return nil, f.err
	}
	if offset > len(f.items) {
		offset = len(f.items)
	}
	end := offset + limit
	if end > len(f.items) {
		end = len(f.items)
	}
	return f.items[offset:end], nil
}

func (f *fakeTipRepo) CountTips(context.Context, repositories.TipFilter) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.countCalls++
	if f.err != nil {
		return 0, f.err
	}
	return f.count, nil
}

func (f *fakeTipRepo) SumAmounts(context.Context, string) (*repositories.AmountSums, error) {
	if f.err != nil {
		return nil, f.err
	}
	sums := f.sums
	return &sums, nil
}

func (f *fakeTipRepo) ListUnsettled(context.Context, string) ([]db_models.Tip, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.unsettled, nil
}

type fakeAnalyticsRepo struct {
	totals     []repositories.CurrencyTotalsRow
	events     repositories.EventCountsRow
	err        error
	lastFilter repositories.AnalyticsFilter
	mu         sync.Mutex
}

func (f *fakeAnalyticsRepo) TipTotalsByCurrency(_ context.Context, filter repositories.AnalyticsFilter) ([]repositories.CurrencyTotalsRow, error) {
	f.mu.Lock()
	f.lastFilter = filter
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.totals, nil
}

func (f *fakeAnalyticsRepo) EventCounts(context.Context, repositories.AnalyticsFilter) (*repositories.EventCountsRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	ev := f.events
	return &ev, nil
}

type publishedEvent struct {
	routingKey string
	payload    any
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, routingKey string, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{routingKey: routingKey, payload: payload})
	return p.err
}

// faultyUoW wraps a real unit of work and fails the named step.
type faultyUoW struct {
	inner  docstore.UnitOfWork
	failAt string
	err    error
}

func (u *faultyUoW) Do(ctx context.Context, fn func(ctx context.Context, tx docstore.Tx) error) error {
	return u.inner.Do(ctx, func(ctx context.Context, tx docstore.Tx) error {
		return fn(ctx, &faultyTx{Tx: tx, failAt: u.failAt, err: u.err})
	})
}

type faultyTx struct {
	docstore.Tx
	failAt string
	err    error
}

func (t *faultyTx) CreateOverlay(ctx context.Context, doc *doc_models.Overlay) error {
	if t.failAt == "overlay" {
		return t.err
	}
	return t.Tx.CreateOverlay(ctx, doc)
}

func (t *faultyTx) CreateTipPage(ctx context.Context, doc *doc_models.TipPage) error {
	if t.failAt == "tip_page" {
		return t.err
	}
	return t.Tx.CreateTipPage(ctx, doc)
}

func (t *faultyTx) CreateLinkTree(ctx context.Context, doc *doc_models.LinkTree) error {
	if t.failAt == "link_tree" {
		return t.err
	}
	return t.Tx.CreateLinkTree(ctx, doc)
}
