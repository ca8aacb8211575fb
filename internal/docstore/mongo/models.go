package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"gorm.io/datatypes"

	"apextip/internal/models/doc_models"
)

type creatorModel struct {
	ID                 bson.ObjectID `bson:"_id"`
	CreatorID          string        `bson:"creator_id"`
	Username           string        `bson:"username"`
	Email              string        `bson:"email"`
	Role               string        `bson:"role"`
	Approved           bool          `bson:"approved"`
	RazorpayAccountID  *string       `bson:"razorpay_account_id,omitempty"`
	SubscriptionID     *string       `bson:"subscription_id,omitempty"`
	SubscriptionStatus string        `bson:"subscription_status"`
	CreatedAt          time.Time     `bson:"created_at"`
	UpdatedAt          time.Time     `bson:"updated_at"`
}

// blockDocModel backs overlays, tip_pages and link_trees. Blocks are kept as the raw
// JSON text so the store never reinterprets them.
type blockDocModel struct {
	ID        bson.ObjectID `bson:"_id"`
	CreatorID string        `bson:"creator"`
	Blocks    string        `bson:"blocks"`
	CreatedAt time.Time     `bson:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at"`
}

func toCreatorModel(c *doc_models.Creator) (*creatorModel, error) {
	oid := bson.NewObjectID()
	if c.ID != "" {
		parsed, err := bson.ObjectIDFromHex(c.ID)
		if err != nil {
			return nil, err
		}
		oid = parsed
	}
	return &creatorModel{
		ID:                 oid,
		CreatorID:          c.CreatorID,
		Username:           c.Username,
		Email:              c.Email,
		Role:               string(c.Role),
		Approved:           c.Approved,
		RazorpayAccountID:  c.RazorpayAccountID,
		SubscriptionID:     c.SubscriptionID,
		SubscriptionStatus: string(c.SubscriptionStatus),
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}, nil
}

func fromCreatorModel(m *creatorModel) *doc_models.Creator {
	return &doc_models.Creator{
		ID:                 m.ID.Hex(),
		CreatorID:          m.CreatorID,
		Username:           m.Username,
		Email:              m.Email,
		Role:               doc_models.Role(m.Role),
		Approved:           m.Approved,
		RazorpayAccountID:  m.RazorpayAccountID,
		SubscriptionID:     m.SubscriptionID,
		SubscriptionStatus: doc_models.SubscriptionStatus(m.SubscriptionStatus),
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func toBlockDocModel(d *doc_models.BlockDocument) *blockDocModel {
	blocks := string(d.Blocks)
	if blocks == "" {
		blocks = "[]"
	}
	return &blockDocModel{
		ID:        bson.NewObjectID(),
		CreatorID: d.CreatorID,
		Blocks:    blocks,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func fromBlockDocModel(m *blockDocModel) doc_models.BlockDocument {
	return doc_models.BlockDocument{
		ID:        m.ID.Hex(),
		CreatorID: m.CreatorID,
		Blocks:    datatypes.JSON(m.Blocks),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
