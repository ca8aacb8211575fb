package doc_models

import (
	"time"

	"gorm.io/datatypes"
)

// BlockDocument is one of the per-creator UI documents created at approval.
// Blocks is stored and returned verbatim.
type BlockDocument struct {
	ID        string         `json:"id"`
	CreatorID string         `json:"creator_id"`
	Blocks    datatypes.JSON `json:"blocks"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

type Overlay struct{ BlockDocument }

type TipPage struct{ BlockDocument }

type LinkTree struct{ BlockDocument }

func NewBlockDocument(creatorID string, blocks []byte, now time.Time) BlockDocument {
	cp := make([]byte, len(blocks))
	copy(cp, blocks)
	return BlockDocument{
		CreatorID: creatorID,
		Blocks:    datatypes.JSON(cp),
		CreatedAt: now,
		UpdatedAt: now,
	}
}
