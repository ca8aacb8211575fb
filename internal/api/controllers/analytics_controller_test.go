package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apextip/internal/models/request_models"
	"apextip/pkg/utils"
)

func newAnalyticsRouter(svc *stubAnalytics, role string) *gin.Engine {
	ctl := NewAnalyticsController(svc)
	r := gin.New()
	r.GET("/analytics", withIdentity("abcd1234", "asha", role), ctl.GetAnalytics)
	return r
}

func TestAnalyticsController_RequiresDateRange(t *testing.T) {
	for _, query := range []string{"", "?start_date=1", "?end_date=2", "?start_date=&end_date=2"} {
		svc := &stubAnalytics{}
		w := doGet(newAnalyticsRouter(svc, "creator"), "/analytics"+query)
		assert.Equal(t, http.StatusBadRequest, w.Code, query)
		assert.Zero(t, svc.calls, query)
	}
}

func TestAnalyticsController_RejectsMalformedDates(t *testing.T) {
	svc := &stubAnalytics{}
	w := doGet(newAnalyticsRouter(svc, "creator"), "/analytics?start_date=abc&end_date=2")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeEnvelope(t, w).Errors, "start_date")
	assert.Zero(t, svc.calls)
}

func TestAnalyticsController_CreatorScopeFromToken(t *testing.T) {
	svc := &stubAnalytics{}
	w := doGet(newAnalyticsRouter(svc, "creator"), "/analytics?start_date=100&end_date=200&creator_id=other000&username=mallory")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, request_models.AnalyticsQuery{
		StartDate: 100,
		EndDate:   200,
		CreatorID: "abcd1234",
		Username:  "asha",
	}, svc.lastQuery)
}

func TestAnalyticsController_AdminScope(t *testing.T) {
	svc := &stubAnalytics{}
	w := doGet(newAnalyticsRouter(svc, utils.RoleAdmin), "/analytics?start_date=100&end_date=200&creator_id=other000&username=mallory")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "other000", svc.lastQuery.CreatorID)
	assert.Equal(t, "mallory", svc.lastQuery.Username)

	w = doGet(newAnalyticsRouter(svc, utils.RoleAdmin), "/analytics?start_date=100&end_date=200")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, svc.lastQuery.CreatorID)
	assert.Empty(t, svc.lastQuery.Username)
}

func TestAnalyticsController_ServiceError(t *testing.T) {
	svc := &stubAnalytics{err: utils.InvalidParameter("start_date must not be after end_date", nil)}
	w := doGet(newAnalyticsRouter(svc, "creator"), "/analytics?start_date=300&end_date=200")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "start_date must not be after end_date", decodeEnvelope(t, w).Message)
}
