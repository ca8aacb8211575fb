package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"apextip/internal/api/controllers"
	"apextip/internal/config"
	"apextip/internal/docstore/memory"
	"apextip/internal/models/db_models"
	"apextip/internal/models/doc_models"
	"apextip/internal/repositories"
	"apextip/internal/services"
	"apextip/pkg/memcache"
	"apextip/pkg/utils"
)

type testApp struct {
	router *gin.Engine
	db     *gorm.DB
	store  *memory.Store
	issuer *utils.TokenIssuer
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&db_models.Tip{}, &db_models.Event{}, &db_models.Visitor{}))

	log := logrus.New()
	log.SetOutput(io.Discard)

	cfg := &config.Config{App: config.AppConfig{Env: "test"}}
	issuer, err := utils.NewTokenIssuer("router-test", time.Hour)
	require.NoError(t, err)

	store := memory.New()
	starter, err := doc_models.DefaultStarterBlocks()
	require.NoError(t, err)

	tipRepo := repositories.NewTipRepository(db)
	publisher := services.NoopPublisher{}

	router := ProvideRouter(cfg, log, issuer,
		controllers.NewTipController(services.NewLedgerService(tipRepo), services.NewSettlementService(store, tipRepo)),
		controllers.NewAnalyticsController(services.NewAnalyticsService(repositories.NewAnalyticsRepository(db))),
		controllers.NewWebhookController(services.NewSubscriptionService(store, publisher, log), memcache.NewDeliveries(), cfg),
		controllers.NewCreatorController(services.NewProvisioningService(store, starter, publisher, log)),
		controllers.NewHealthController(controllers.HealthCheck{Name: "docstore", Check: store.Ping}),
	)

	return &testApp{router: router, db: db, store: store, issuer: issuer}
}

func (a *testApp) token(t *testing.T, creatorID, username, role string) string {
	t.Helper()
	tok, err := a.issuer.CreateToken(creatorID, username, role)
	require.NoError(t, err)
	return tok
}

func (a *testApp) do(method, target, token, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) seedCreator(t *testing.T, c doc_models.Creator) {
	t.Helper()
	require.NoError(t, a.store.CreateCreator(context.Background(), &c))
}

func (a *testApp) seedTip(t *testing.T, creatorID string, amount, createdAt int64, settled bool) {
	t.Helper()
	tip := db_models.Tip{
		BaseModel:      db_models.BaseModel{CreatedAt: createdAt},
		CreatorID:      creatorID,
		VisitorID:      "v1",
		Amount:         amount,
		Currency:       "INR",
		PaymentGateway: "razorpay",
		PaymentID:      "pay_" + uuid.NewString()[:8],
		Settled:        settled,
	}
	require.NoError(t, a.db.Create(&tip).Error)
}

func dataOf(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var env struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env.Data
}

func TestRoutes_Auth(t *testing.T) {
	app := newTestApp(t)
	creator := app.token(t, "abcd1234", "asha", "creator")

	tests := []struct {
		method, target, token string
		code                  int
	}{
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodGet, "/tip", "", http.StatusUnauthorized},
		{http.MethodGet, "/tip", creator, http.StatusOK},
		{http.MethodGet, "/tip/abcd1234", "", http.StatusOK},
		{http.MethodGet, "/tip/abcd1234/amounts", "", http.StatusOK},
		{http.MethodGet, "/tip/abcd1234/unsettled", "", http.StatusUnauthorized},
		{http.MethodGet, "/tip/abcd1234/unsettled", creator, http.StatusForbidden},
		{http.MethodGet, "/analytics?start_date=0&end_date=10", "", http.StatusUnauthorized},
		{http.MethodPatch, "/creator/verify/abcd1234", creator, http.StatusForbidden},
	}
	for _, tt := range tests {
		w := app.do(tt.method, tt.target, tt.token, "")
		assert.Equal(t, tt.code, w.Code, "%s %s", tt.method, tt.target)
		assert.NotEmpty(t, w.Header().Get("X-Trace-ID"))
	}
}

func TestRoutes_LedgerAndSettlement(t *testing.T) {
	app := newTestApp(t)
	admin := app.token(t, "root0000", "root", utils.RoleAdmin)

	app.seedCreator(t, doc_models.Creator{CreatorID: "abcd1234", Username: "asha", RazorpayAccountID: strPtr("acc_123")})
	app.seedTip(t, "abcd1234", 1000, 100, false)
	app.seedTip(t, "abcd1234", 2000, 200, true)
	app.seedTip(t, "abcd1234", 500, 300, false)

	w := app.do(http.MethodGet, "/tip/abcd1234?limit=2", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	data := dataOf(t, w)
	assert.Len(t, data["tips"], 2)
	pagination := data["pagination"].(map[string]any)
	assert.EqualValues(t, 3, pagination["totalCount"])
	assert.EqualValues(t, 2, pagination["totalPages"])
	assert.Equal(t, true, pagination["hasNextPage"])

	w = app.do(http.MethodGet, "/tip/abcd1234?page=92233720368547760", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Page number is out of range")

	w = app.do(http.MethodGet, "/tip/abcd1234/amounts", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	amounts := dataOf(t, w)
	assert.EqualValues(t, 3500, amounts["collected_amount"])
	assert.InDelta(t, 1900.0, amounts["settled_amount"], 1e-9)
	assert.InDelta(t, 1425.0, amounts["unsettled_amount"], 1e-9)

	w = app.do(http.MethodGet, "/tip/abcd1234/unsettled", admin, "")
	require.Equal(t, http.StatusOK, w.Code)
	lines := strings.Split(strings.TrimSuffix(w.Body.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, services.SettlementHeader, strings.Split(lines[0], ","))
	assert.Contains(t, lines[1], ",acc_123,950,INR,")
	assert.Contains(t, lines[2], ",acc_123,475,INR,")

	w = app.do(http.MethodGet, "/tip/nobody00/unsettled", admin, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRoutes_ApproveThenSubscribe(t *testing.T) {
	app := newTestApp(t)
	admin := app.token(t, "root0000", "root", utils.RoleAdmin)
	app.seedCreator(t, doc_models.Creator{CreatorID: "abcd1234", Username: "asha", SubscriptionID: strPtr("sub_123")})

	w := app.do(http.MethodPatch, "/creator/verify/abcd1234", admin, "")
	require.Equal(t, http.StatusOK, w.Code)
	overlay, tipPage, linkTree := app.store.Documents("abcd1234")
	assert.True(t, overlay && tipPage && linkTree)

	w = app.do(http.MethodPatch, "/creator/verify/abcd1234", admin, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body := `{"event":"subscription.activated","payload":{"subscription":{"entity":{"id":"sub_123"}}}}`
	w = app.do(http.MethodPost, "/webhook/razorpay/subscription", "", body)
	require.Equal(t, http.StatusOK, w.Code)

	c, err := app.store.GetCreator(context.Background(), "abcd1234")
	require.NoError(t, err)
	assert.Equal(t, doc_models.SubscriptionPro, c.SubscriptionStatus)

	w = app.do(http.MethodPost, "/webhook/razorpay/subscription", "", strings.Replace(body, "sub_123", "sub_999", 1))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRoutes_AnalyticsScopedToCaller(t *testing.T) {
	app := newTestApp(t)
	app.seedTip(t, "abcd1234", 500, 10, false)
	app.seedTip(t, "abcd1234", 1500, 20, false)
	app.seedTip(t, "zzzz9999", 700, 20, false)

	creator := app.token(t, "abcd1234", "asha", "creator")
	w := app.do(http.MethodGet, "/analytics?start_date=0&end_date=100", creator, "")
	require.Equal(t, http.StatusOK, w.Code)
	data := dataOf(t, w)
	summary := data["summary"].(map[string]any)
	assert.EqualValues(t, 2, summary["total_tips"])
	assert.Equal(t, "0%", summary["click_through_rate"])

	admin := app.token(t, "root0000", "root", utils.RoleAdmin)
	w = app.do(http.MethodGet, "/analytics?start_date=0&end_date=100", admin, "")
	require.Equal(t, http.StatusOK, w.Code)
	summary = dataOf(t, w)["summary"].(map[string]any)
	assert.EqualValues(t, 3, summary["total_tips"])
}

func strPtr(s string) *string { return &s }
