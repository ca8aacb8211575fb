package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"apextip/internal/models/request_models"
	"apextip/internal/services"
	"apextip/pkg/utils"
)

type AnalyticsController struct {
	analyticsService services.AnalyticsService
}

func NewAnalyticsController(analyticsService services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{analyticsService: analyticsService}
}

func requiredEpoch(c *gin.Context, field string) (int64, error) {
	raw := c.Query(field)
	if strings.TrimSpace(raw) == "" {
		return 0, utils.InvalidParameter("start_date and end_date are required", map[string]string{field: "required"})
	}
	v, err := utils.ParseOptionalEpoch(raw, field)
	if err != nil {
		return 0, err
	}
	return *v, nil
}

// GetAnalytics godoc
// @Summary Tip and traffic analytics
// @Description Tip totals per currency plus page view and checkout counts over a date range.
// @Description Creators always see their own figures; admins may scope by creator_id and username
// @Description or omit both for platform-wide figures.
// @Tags Analytics
// @Produce json
// @Param start_date query int true "Inclusive lower bound (epoch seconds)"
// @Param end_date query int true "Inclusive upper bound (epoch seconds)"
// @Param creator_id query string false "Admin only"
// @Param username query string false "Admin only"
// @Success 200 {object} utils.APIResponse{data=response_models.AnalyticsResponse}
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /analytics [get]
func (a *AnalyticsController) GetAnalytics(c *gin.Context) {
	start, err := requiredEpoch(c, "start_date")
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	end, err := requiredEpoch(c, "end_date")
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	q := request_models.AnalyticsQuery{StartDate: start, EndDate: end}
	if c.GetString(utils.CtxRole) == utils.RoleAdmin {
		q.CreatorID = strings.TrimSpace(c.Query("creator_id"))
		q.Username = strings.TrimSpace(c.Query("username"))
	} else {
		q.CreatorID = c.GetString(utils.CtxCreatorID)
		q.Username = c.GetString(utils.CtxUsername)
	}

	result, err := a.analyticsService.GetAnalytics(c.Request.Context(), q)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Analytics fetched successfully")
}
