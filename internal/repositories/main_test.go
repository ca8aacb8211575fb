package repositories

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"apextip/internal/models/db_models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&db_models.Tip{}, &db_models.Event{}, &db_models.Visitor{}))
	return db
}

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

func seedTip(t *testing.T, db *gorm.DB, creatorID, visitorID string, amount int64, currency string, createdAt int64, settled bool) db_models.Tip {
	t.Helper()
	tip := db_models.Tip{
		BaseModel:      db_models.BaseModel{CreatedAt: createdAt},
		CreatorID:      creatorID,
		VisitorID:      visitorID,
		Amount:         amount,
		Currency:       currency,
		PaymentGateway: "razorpay",
		PaymentID:      "pay_" + uuid.NewString()[:8],
		Settled:        settled,
	}
	require.NoError(t, db.Create(&tip).Error)
	return tip
}

func seedEvent(t *testing.T, db *gorm.DB, eventType db_models.EventType, path, visitorID string, createdAt int64) {
	t.Helper()
	ev := db_models.Event{
		BaseModel: db_models.BaseModel{CreatedAt: createdAt},
		EventType: eventType,
		Path:      path,
		VisitorID: visitorID,
	}
	require.NoError(t, db.Create(&ev).Error)
}
