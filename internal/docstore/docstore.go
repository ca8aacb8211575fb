// Package docstore holds creator profiles and the per-creator documents
// provisioned at approval time.
package docstore

import (
	"context"
	"errors"

	"apextip/internal/models/doc_models"
)

var (
	ErrNotFound        = errors.New("docstore: not found")
	ErrAlreadyApproved = errors.New("docstore: creator already approved")
	ErrAlreadyExists   = errors.New("docstore: document already exists")
	// ErrConflict reports a transaction aborted by a concurrent writer.
	ErrConflict = errors.New("docstore: transaction conflict")
)

type CreatorStore interface {
	GetCreator(ctx context.Context, creatorID string) (*doc_models.Creator, error)
	// CreateCreator seeds a creator record for fixtures. Signup lives in the
	// auth service.
	CreateCreator(ctx context.Context, c *doc_models.Creator) error
	// SetSubscriptionStatus matches subscription_id exactly and returns the updated creator.
	SetSubscriptionStatus(ctx context.Context, subscriptionID string, status doc_models.SubscriptionStatus) (*doc_models.Creator, error)
}

// Tx is the set of writes allowed inside a unit of work.
type Tx interface {
	// ApproveCreator flips approved from false to true. It fails with ErrAlreadyApproved
	// when the flag is already set and ErrNotFound when the creator does not exist.
	ApproveCreator(ctx context.Context, creatorID string) (*doc_models.Creator, error)
	CreateOverlay(ctx context.Context, doc *doc_models.Overlay) error
	CreateTipPage(ctx context.Context, doc *doc_models.TipPage) error
	CreateLinkTree(ctx context.Context, doc *doc_models.LinkTree) error
}

// UnitOfWork runs fn atomically. Every write made through tx is committed when fn
// returns nil and discarded otherwise.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Store interface {
	CreatorStore
	UnitOfWork
	Migrate(ctx context.Context) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
