package repositories

import (
	"context"

	"gorm.io/gorm"

	"apextip/internal/models/db_models"
	"apextip/internal/models/response_models"
)

type TipRepository interface {
	ListTips(ctx context.Context, filter TipFilter, offset, limit int) ([]response_models.TipItem, error)
	CountTips(ctx context.Context, filter TipFilter) (int64, error)
	SumAmounts(ctx context.Context, creatorID string) (*AmountSums, error)
	ListUnsettled(ctx context.Context, creatorID string) ([]db_models.Tip, error)
}

// TipFilter bounds are inclusive epoch seconds; nil means unbounded.
type TipFilter struct {
	CreatorID string
	StartDate *int64
	EndDate   *int64
}

type AmountSums struct {
	Collected int64 `gorm:"column:collected"`
	Settled   int64 `gorm:"column:settled"`
	Unsettled int64 `gorm:"column:unsettled"`
}

type tipRepository struct {
	db *gorm.DB
}

func NewTipRepository(db *gorm.DB) TipRepository {
	return &tipRepository{db: db}
}

func tipFilterScope(f TipFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Where("t.creator_id = ?", f.CreatorID)
		if f.StartDate != nil {
			db = db.Where("t.created_at >= ?", *f.StartDate)
		}
		if f.EndDate != nil {
			db = db.Where("t.created_at <= ?", *f.EndDate)
		}
		return db
	}
}

func (r *tipRepository) ListTips(ctx context.Context, filter TipFilter, offset, limit int) ([]response_models.TipItem, error) {
	rows := make([]response_models.TipItem, 0, limit)
	err := r.db.WithContext(ctx).
		Table("tips AS t").
		Select("t.*, u.name AS visitor_name, u.email AS visitor_email, u.phone AS visitor_phone").
		Joins("LEFT JOIN users AS u ON u.visitor_id = t.visitor_id").
		Scopes(tipFilterScope(filter)).
		Order("t.created_at DESC").
		Order("t.id DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *tipRepository) CountTips(ctx context.Context, filter TipFilter) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("tips AS t").
		Scopes(tipFilterScope(filter)).
		Count(&count).Error
	return count, err
}

func (r *tipRepository) SumAmounts(ctx context.Context, creatorID string) (*AmountSums, error) {
	var sums AmountSums
	err := r.db.WithContext(ctx).
		Table("tips").
		Select(`CAST(COALESCE(SUM(amount), 0) AS BIGINT) AS collected,
			CAST(COALESCE(SUM(CASE WHEN settled THEN amount ELSE 0 END), 0) AS BIGINT) AS settled,
			CAST(COALESCE(SUM(CASE WHEN settled THEN 0 ELSE amount END), 0) AS BIGINT) AS unsettled`).
		Where("creator_id = ?", creatorID).
		Scan(&sums).Error
	if err != nil {
		return nil, err
	}
	return &sums, nil
}

// ListUnsettled returns the export batch oldest first so repeated exports are stable.
func (r *tipRepository) ListUnsettled(ctx context.Context, creatorID string) ([]db_models.Tip, error) {
	var tips []db_models.Tip
	err := r.db.WithContext(ctx).
		Where("creator_id = ? AND settled = ?", creatorID, false).
		Order("created_at ASC").
		Order("id ASC").
		Find(&tips).Error
	if err != nil {
		return nil, err
	}
	return tips, nil
}
