package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readconcern"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"go.mongodb.org/mongo-driver/v2/mongo/writeconcern"

	"apextip/internal/docstore"
	"apextip/internal/models/doc_models"
)

// Collection name constants.
const (
	colCreators  = "creators"
	colOverlays  = "overlays"
	colTipPages  = "tip_pages"
	colLinkTrees = "link_trees"
)

var _ docstore.Store = (*Store)(nil)

// Store implements docstore.Store on a MongoDB replica set. Units of work use
// multi-document transactions, so a standalone server is not supported.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

func New(client *mongo.Client, database string) *Store {
	return &Store{
		client: client,
		db:     client.Database(database),
	}
}

// Migrate creates indexes for all collections.
func (s *Store) Migrate(ctx context.Context) error {
	for col, models := range migrationIndexes() {
		if _, err := s.db.Collection(col).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("docstore/mongo: migrate %s indexes: %w", col, err)
		}
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Store) GetCreator(ctx context.Context, creatorID string) (*doc_models.Creator, error) {
	var m creatorModel
	err := s.db.Collection(colCreators).FindOne(ctx, bson.M{"creator_id": creatorID}).Decode(&m)
	if err != nil {
		if isNoDocuments(err) {
			return nil, docstore.ErrNotFound
		}
		return nil, fmt.Errorf("docstore/mongo: get creator: %w", err)
	}
	return fromCreatorModel(&m), nil
}

func (s *Store) CreateCreator(ctx context.Context, c *doc_models.Creator) error {
	c.ApplyDefaults(now())
	m, err := toCreatorModel(c)
	if err != nil {
		return fmt.Errorf("docstore/mongo: create creator: %w", err)
	}
	if _, err := s.db.Collection(colCreators).InsertOne(ctx, m); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return docstore.ErrAlreadyExists
		}
		return fmt.Errorf("docstore/mongo: create creator: %w", err)
	}
	c.ID = m.ID.Hex()
	return nil
}

func (s *Store) SetSubscriptionStatus(ctx context.Context, subscriptionID string, status doc_models.SubscriptionStatus) (*doc_models.Creator, error) {
	var m creatorModel
	err := s.db.Collection(colCreators).FindOneAndUpdate(ctx,
		bson.M{"subscription_id": subscriptionID},
		bson.M{"$set": bson.M{"subscription_status": string(status), "updated_at": now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&m)
	if err != nil {
		if isNoDocuments(err) {
			return nil, docstore.ErrNotFound
		}
		return nil, fmt.Errorf("docstore/mongo: set subscription status: %w", err)
	}
	return fromCreatorModel(&m), nil
}

// Do runs fn inside a snapshot transaction with majority write concern. The
// transaction is aborted unless fn and the commit both succeed.
func (s *Store) Do(ctx context.Context, fn func(ctx context.Context, tx docstore.Tx) error) error {
	sess, err := s.client.StartSession()
	if err != nil {
		return fmt.Errorf("docstore/mongo: start session: %w", err)
	}
	defer sess.EndSession(context.WithoutCancel(ctx))

	txnOpts := options.Transaction().
		SetReadConcern(readconcern.Snapshot()).
		SetWriteConcern(writeconcern.Majority())
	if err := sess.StartTransaction(txnOpts); err != nil {
		return fmt.Errorf("docstore/mongo: start transaction: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = sess.AbortTransaction(context.WithoutCancel(ctx))
		}
	}()

	sc := mongo.NewSessionContext(ctx, sess)
	if err := fn(sc, &txStore{db: s.db}); err != nil {
		return classifyTxnError(err)
	}
	if err := sess.CommitTransaction(sc); err != nil {
		return classifyTxnError(fmt.Errorf("docstore/mongo: commit: %w", err))
	}
	committed = true
	return nil
}

// txStore issues its writes on the session carried by ctx.
type txStore struct {
	db *mongo.Database
}

func (t *txStore) ApproveCreator(ctx context.Context, creatorID string) (*doc_models.Creator, error) {
	coll := t.db.Collection(colCreators)

	var m creatorModel
	err := coll.FindOneAndUpdate(ctx,
		bson.M{"creator_id": creatorID, "approved": false},
		bson.M{"$set": bson.M{"approved": true, "updated_at": now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&m)
	if err == nil {
		return fromCreatorModel(&m), nil
	}
	if !isNoDocuments(err) {
		return nil, fmt.Errorf("docstore/mongo: approve creator: %w", err)
	}

	n, err := coll.CountDocuments(ctx, bson.M{"creator_id": creatorID})
	if err != nil {
		return nil, fmt.Errorf("docstore/mongo: approve creator: %w", err)
	}
	if n == 0 {
		return nil, docstore.ErrNotFound
	}
	return nil, docstore.ErrAlreadyApproved
}

func (t *txStore) CreateOverlay(ctx context.Context, doc *doc_models.Overlay) error {
	return t.insertBlockDoc(ctx, colOverlays, &doc.BlockDocument)
}

func (t *txStore) CreateTipPage(ctx context.Context, doc *doc_models.TipPage) error {
	return t.insertBlockDoc(ctx, colTipPages, &doc.BlockDocument)
}

func (t *txStore) CreateLinkTree(ctx context.Context, doc *doc_models.LinkTree) error {
	return t.insertBlockDoc(ctx, colLinkTrees, &doc.BlockDocument)
}

func (t *txStore) insertBlockDoc(ctx context.Context, col string, doc *doc_models.BlockDocument) error {
	m := toBlockDocModel(doc)
	if _, err := t.db.Collection(col).InsertOne(ctx, m); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return docstore.ErrAlreadyExists
		}
		return fmt.Errorf("docstore/mongo: insert %s: %w", col, err)
	}
	*doc = fromBlockDocModel(m)
	return nil
}

func now() time.Time {
	return time.Now().UTC()
}

// isNoDocuments checks if an error wraps mongo.ErrNoDocuments.
func isNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}

// codeWriteConflict is the server error code for a write that lost a race
// against another transaction on the same document.
const codeWriteConflict = 112

// classifyTxnError maps write conflicts between concurrent transactions to
// docstore.ErrConflict. Other errors, transient network failures included,
// are returned untouched.
func classifyTxnError(err error) error {
	var srvErr mongo.ServerError
	if errors.As(err, &srvErr) && srvErr.HasErrorCode(codeWriteConflict) {
		return fmt.Errorf("%w: %v", docstore.ErrConflict, err)
	}
	return err
}

// migrationIndexes returns the index definitions for all collections.
func migrationIndexes() map[string][]mongo.IndexModel {
	onePerCreator := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "creator", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	return map[string][]mongo.IndexModel{
		colCreators: {
			{
				Keys:    bson.D{{Key: "creator_id", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{
				Keys:    bson.D{{Key: "subscription_id", Value: 1}},
				Options: options.Index().SetUnique(true).SetSparse(true),
			},
			{Keys: bson.D{{Key: "username", Value: 1}}},
		},
		colOverlays:  onePerCreator,
		colTipPages:  onePerCreator,
		colLinkTrees: onePerCreator,
	}
}
