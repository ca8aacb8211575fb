package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apextip/internal/models/db_models"
)

func TestTipRepository_ListTips(t *testing.T) {
	db := newTestDB(t)
	repo := NewTipRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Create(&db_models.Visitor{
		VisitorID: "v1",
		Name:      strPtr("Asha"),
		Email:     strPtr("asha@example.com"),
	}).Error)

	seedTip(t, db, "abcd1234", "v1", 100, "INR", 1000, false)
	seedTip(t, db, "abcd1234", "v2", 200, "INR", 3000, true)
	seedTip(t, db, "abcd1234", "v1", 300, "INR", 2000, false)
	seedTip(t, db, "other000", "v1", 999, "INR", 2500, false)

	t.Run("orders newest first and joins visitors", func(t *testing.T) {
		rows, err := repo.ListTips(ctx, TipFilter{CreatorID: "abcd1234"}, 0, 10)
		require.NoError(t, err)
		require.Len(t, rows, 3)

		assert.Equal(t, int64(3000), rows[0].CreatedAt)
		assert.Equal(t, int64(2000), rows[1].CreatedAt)
		assert.Equal(t, int64(1000), rows[2].CreatedAt)

		require.NotNil(t, rows[1].VisitorName)
		assert.Equal(t, "Asha", *rows[1].VisitorName)
		assert.Nil(t, rows[0].VisitorName)
	})

	t.Run("pages with offset and limit", func(t *testing.T) {
		rows, err := repo.ListTips(ctx, TipFilter{CreatorID: "abcd1234"}, 2, 2)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, int64(100), rows[0].Amount)
	})

	t.Run("inclusive date bounds", func(t *testing.T) {
		f := TipFilter{CreatorID: "abcd1234", StartDate: int64Ptr(1000), EndDate: int64Ptr(2000)}
		rows, err := repo.ListTips(ctx, f, 0, 10)
		require.NoError(t, err)
		assert.Len(t, rows, 2)

		count, err := repo.CountTips(ctx, f)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("unknown creator yields empty page", func(t *testing.T) {
		rows, err := repo.ListTips(ctx, TipFilter{CreatorID: "nobody00"}, 0, 10)
		require.NoError(t, err)
		assert.NotNil(t, rows)
		assert.Empty(t, rows)
	})
}

func TestTipRepository_CountIndependentOfPage(t *testing.T) {
	db := newTestDB(t)
	repo := NewTipRepository(db)

	for i := int64(0); i < 7; i++ {
		seedTip(t, db, "abcd1234", "v1", 10, "INR", 100+i, false)
	}

	rows, err := repo.ListTips(context.Background(), TipFilter{CreatorID: "abcd1234"}, 0, 3)
	require.NoError(t, err)
	assert.Len(t, rows, 3)

	count, err := repo.CountTips(context.Background(), TipFilter{CreatorID: "abcd1234"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
}

func TestTipRepository_SumAmounts(t *testing.T) {
	db := newTestDB(t)
	repo := NewTipRepository(db)
	ctx := context.Background()

	seedTip(t, db, "abcd1234", "v1", 1000, "INR", 1, true)
	seedTip(t, db, "abcd1234", "v1", 500, "INR", 2, false)
	seedTip(t, db, "abcd1234", "v2", 250, "INR", 3, false)
	seedTip(t, db, "other000", "v2", 7777, "INR", 3, false)

	sums, err := repo.SumAmounts(ctx, "abcd1234")
	require.NoError(t, err)
	assert.Equal(t, int64(1750), sums.Collected)
	assert.Equal(t, int64(1000), sums.Settled)
	assert.Equal(t, int64(750), sums.Unsettled)

	empty, err := repo.SumAmounts(ctx, "nobody00")
	require.NoError(t, err)
	assert.Equal(t, AmountSums{}, *empty)
}

func TestTipRepository_ListUnsettled(t *testing.T) {
	db := newTestDB(t)
	repo := NewTipRepository(db)

	seedTip(t, db, "abcd1234", "v1", 300, "INR", 30, false)
	seedTip(t, db, "abcd1234", "v1", 100, "INR", 10, false)
	seedTip(t, db, "abcd1234", "v1", 200, "INR", 20, true)

	tips, err := repo.ListUnsettled(context.Background(), "abcd1234")
	require.NoError(t, err)
	require.Len(t, tips, 2)
	assert.Equal(t, int64(100), tips[0].Amount)
	assert.Equal(t, int64(300), tips[1].Amount)
	for _, tip := range tips {
		assert.False(t, tip.Settled)
	}
}
