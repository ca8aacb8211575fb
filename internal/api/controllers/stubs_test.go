package controllers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"apextip/internal/models/request_models"
	"apextip/internal/models/response_models"
	"apextip/internal/services"
	"apextip/pkg/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Status  string            `json:"status"`
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

// withIdentity stands in for the JWT middleware.
func withIdentity(creatorID, username, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(utils.CtxCreatorID, creatorID)
		c.Set(utils.CtxUsername, username)
		c.Set(utils.CtxRole, role)
		c.Next()
	}
}

type stubLedger struct {
	calls     int
	lastQuery request_models.LedgerQuery
	lastID    string
	resp      *response_models.TipListResponse
	amounts   *response_models.TipAmounts
	err       error
}

func (s *stubLedger) ListTips(_ context.Context, q request_models.LedgerQuery) (*response_models.TipListResponse, error) {
	s.calls++
	s.lastQuery = q
	if s.err != nil {
		return nil, s.err
	}
	if s.resp == nil {
		return &response_models.TipListResponse{Tips: []response_models.TipItem{}}, nil
	}
	return s.resp, nil
}

func (s *stubLedger) GetAmounts(_ context.Context, creatorID string) (*response_models.TipAmounts, error) {
	s.calls++
	s.lastID = creatorID
	if s.err != nil {
		return nil, s.err
	}
	return s.amounts, nil
}

type stubSettlement struct {
	export *services.SettlementExport
	err    error
}

func (s *stubSettlement) ExportUnsettled(context.Context, string) (*services.SettlementExport, error) {
	return s.export, s.err
}

type stubAnalytics struct {
	calls     int
	lastQuery request_models.AnalyticsQuery
	err       error
}

func (s *stubAnalytics) GetAnalytics(_ context.Context, q request_models.AnalyticsQuery) (*response_models.AnalyticsResponse, error) {
	s.calls++
	s.lastQuery = q
	if s.err != nil {
		return nil, s.err
	}
	return &response_models.AnalyticsResponse{
		DateRange: response_models.DateRange{StartDate: q.StartDate, EndDate: q.EndDate},
		CreatorID: q.CreatorID,
		Username:  q.Username,
	}, nil
}

type stubSubscriptions struct {
	calls     int
	lastEvent string
	lastSubID string
	err       error
}

func (s *stubSubscriptions) ApplyEvent(_ context.Context, event, subscriptionID string) (*response_models.SubscriptionChange, error) {
	s.calls++
	s.lastEvent, s.lastSubID = event, subscriptionID
	if s.err != nil {
		return nil, s.err
	}
	return &response_models.SubscriptionChange{
		Event:              services.NormalizeSubscriptionEvent(event),
		SubscriptionID:     subscriptionID,
		CreatorID:          "abcd1234",
		SubscriptionStatus: "pro",
	}, nil
}

type stubProvisioning struct {
	lastID string
	err    error
}

func (s *stubProvisioning) ApproveCreator(_ context.Context, creatorID string) (*response_models.ProvisionedCreator, error) {
	s.lastID = creatorID
	if s.err != nil {
		return nil, s.err
	}
	out := &response_models.ProvisionedCreator{}
	out.Creator.CreatorID = creatorID
	out.Creator.Approved = true
	return out, nil
}
