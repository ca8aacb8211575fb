package memory

import (
	"context"
	"maps"
	"sync"
	"time"

	"github.com/google/uuid"

	"apextip/internal/docstore"
	"apextip/internal/models/doc_models"
)

var _ docstore.Store = (*Store)(nil)

// Store is an in-process docstore. Units of work are serialized and applied to a
// staged copy that replaces the live state only on success.
type Store struct {
	mu sync.RWMutex

	state *state
}

type state struct {
	creators  map[string]doc_models.Creator // keyed by creator_id
	overlays  map[string]doc_models.Overlay // keyed by creator_id
	tipPages  map[string]doc_models.TipPage
	linkTrees map[string]doc_models.LinkTree
}

func newState() *state {
	return &state{
		creators:  make(map[string]doc_models.Creator),
		overlays:  make(map[string]doc_models.Overlay),
		tipPages:  make(map[string]doc_models.TipPage),
		linkTrees: make(map[string]doc_models.LinkTree),
	}
}

func (s *state) clone() *state {
	return &state{
		creators:  maps.Clone(s.creators),
		overlays:  maps.Clone(s.overlays),
		tipPages:  maps.Clone(s.tipPages),
		linkTrees: maps.Clone(s.linkTrees),
	}
}

func New() *Store {
	return &Store{state: newState()}
}

func (s *Store) Migrate(context.Context) error { return nil }

func (s *Store) Ping(context.Context) error { return nil }

func (s *Store) Close(context.Context) error { return nil }

func (s *Store) GetCreator(_ context.Context, creatorID string) (*doc_models.Creator, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.state.creators[creatorID]
	if !ok {
		return nil, docstore.ErrNotFound
	}
	return copyCreator(c), nil
}

func (s *Store) CreateCreator(_ context.Context, c *doc_models.Creator) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ApplyDefaults(time.Now().UTC())
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if _, exists := s.state.creators[c.CreatorID]; exists {
		return docstore.ErrAlreadyExists
	}
	if c.SubscriptionID != nil {
		for _, other := range s.state.creators {
			if other.SubscriptionID != nil && *other.SubscriptionID == *c.SubscriptionID {
				return docstore.ErrAlreadyExists
			}
		}
	}
	s.state.creators[c.CreatorID] = *copyCreator(*c)
	return nil
}

func (s *Store) SetSubscriptionStatus(_ context.Context, subscriptionID string, status doc_models.SubscriptionStatus) (*doc_models.Creator, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, c := range s.state.creators {
		if c.SubscriptionID == nil || *c.SubscriptionID != subscriptionID {
			continue
		}
		c.SubscriptionStatus = status
		c.UpdatedAt = time.Now().UTC()
		s.state.creators[key] = c
		return copyCreator(c), nil
	}
	return nil, docstore.ErrNotFound
}

func (s *Store) Do(ctx context.Context, fn func(ctx context.Context, tx docstore.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	staged := s.state.clone()
	if err := fn(ctx, &memTx{state: staged}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.state = staged
	return nil
}

// Documents reports which provisioned documents exist for a creator.
func (s *Store) Documents(creatorID string) (overlay, tipPage, linkTree bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, overlay = s.state.overlays[creatorID]
	_, tipPage = s.state.tipPages[creatorID]
	_, linkTree = s.state.linkTrees[creatorID]
	return overlay, tipPage, linkTree
}

type memTx struct {
	state *state
}

func (t *memTx) ApproveCreator(_ context.Context, creatorID string) (*doc_models.Creator, error) {
	c, ok := t.state.creators[creatorID]
	if !ok {
		return nil, docstore.ErrNotFound
	}
	if c.Approved {
		return nil, docstore.ErrAlreadyApproved
	}
	c.Approved = true
	c.UpdatedAt = time.Now().UTC()
	t.state.creators[creatorID] = c
	return copyCreator(c), nil
}

func (t *memTx) CreateOverlay(_ context.Context, doc *doc_models.Overlay) error {
	if _, exists := t.state.overlays[doc.CreatorID]; exists {
		return docstore.ErrAlreadyExists
	}
	doc.ID = uuid.NewString()
	t.state.overlays[doc.CreatorID] = doc_models.Overlay{BlockDocument: copyBlockDocument(doc.BlockDocument)}
	return nil
}

func (t *memTx) CreateTipPage(_ context.Context, doc *doc_models.TipPage) error {
	if _, exists := t.state.tipPages[doc.CreatorID]; exists {
		return docstore.ErrAlreadyExists
	}
	doc.ID = uuid.NewString()
	t.state.tipPages[doc.CreatorID] = doc_models.TipPage{BlockDocument: copyBlockDocument(doc.BlockDocument)}
	return nil
}

func (t *memTx) CreateLinkTree(_ context.Context, doc *doc_models.LinkTree) error {
	if _, exists := t.state.linkTrees[doc.CreatorID]; exists {
		return docstore.ErrAlreadyExists
	}
	doc.ID = uuid.NewString()
	t.state.linkTrees[doc.CreatorID] = doc_models.LinkTree{BlockDocument: copyBlockDocument(doc.BlockDocument)}
	return nil
}

func copyCreator(c doc_models.Creator) *doc_models.Creator {
	if c.RazorpayAccountID != nil {
		v := *c.RazorpayAccountID
		c.RazorpayAccountID = &v
	}
	if c.SubscriptionID != nil {
		v := *c.SubscriptionID
		c.SubscriptionID = &v
	}
	return &c
}

func copyBlockDocument(d doc_models.BlockDocument) doc_models.BlockDocument {
	blocks := make([]byte, len(d.Blocks))
	copy(blocks, d.Blocks)
	d.Blocks = blocks
	return d
}
