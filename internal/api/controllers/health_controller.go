package controllers

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"apextip/internal/models/response_models"
	"apextip/pkg/utils"
)

// HealthCheck reports whether one backing dependency is reachable.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

const healthCheckTimeout = 2 * time.Second

type HealthController struct {
	startedAt time.Time
	checks    []HealthCheck
}

func NewHealthController(checks ...HealthCheck) *HealthController {
	sort.Slice(checks, func(i, j int) bool { return checks[i].Name < checks[j].Name })
	return &HealthController{startedAt: time.Now(), checks: checks}
}

// Health godoc
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response_models.HealthResponse}
// @Failure 503 {object} utils.APIResponse{data=response_models.HealthResponse}
// @Router /health [get]
func (h *HealthController) Health(c *gin.Context) {
	resp := response_models.HealthResponse{
		Status:    "ok",
		Uptime:    time.Since(h.startedAt).Round(time.Second).String(),
		Timestamp: utils.NowUnixSeconds(),
	}

	if len(h.checks) > 0 {
		resp.Dependencies = make(map[string]string, len(h.checks))
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
		defer cancel()
		for _, hc := range h.checks {
			if err := hc.Check(ctx); err != nil {
				utils.Logger(c).WithError(err).WithField("dependency", hc.Name).Warn("health check failed")
				resp.Dependencies[hc.Name] = "unavailable"
				resp.Status = "degraded"
				continue
			}
			resp.Dependencies[hc.Name] = "ok"
		}
	}

	if resp.Status != "ok" {
		c.JSON(http.StatusServiceUnavailable, utils.APIResponse{
			Status:  "error",
			Code:    http.StatusServiceUnavailable,
			Message: "Service degraded",
			TraceID: c.GetString(utils.CtxTraceID),
			Data:    resp,
		})
		return
	}

	utils.RespondSuccess(c, resp, "Service is healthy")
}
