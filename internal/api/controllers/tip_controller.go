package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"apextip/internal/models/request_models"
	"apextip/internal/services"
	"apextip/pkg/middleware"
	"apextip/pkg/utils"
)

type TipController struct {
	ledger     services.LedgerService
	settlement services.SettlementService
}

func NewTipController(ledger services.LedgerService, settlement services.SettlementService) *TipController {
	return &TipController{
		ledger:     ledger,
		settlement: settlement,
	}
}

// parseLedgerQuery reads page, limit and the optional date range from the query string.
func parseLedgerQuery(c *gin.Context, creatorID string) (request_models.LedgerQuery, error) {
	var raw request_models.TipListQuery
	_ = c.ShouldBindQuery(&raw)

	q := request_models.LedgerQuery{
		CreatorID: strings.TrimSpace(creatorID),
		Page:      request_models.DefaultPage,
		Limit:     request_models.DefaultLimit,
	}

	if raw.Page != "" {
		page, err := strconv.Atoi(raw.Page)
		if err != nil {
			return q, utils.ErrInvalidPage
		}
		q.Page = page
	}
	if raw.Limit != "" {
		limit, err := strconv.Atoi(raw.Limit)
		if err != nil {
			return q, utils.ErrInvalidLimit
		}
		q.Limit = limit
	}

	var err error
	if q.StartDate, err = utils.ParseOptionalEpoch(raw.StartDate, "start_date"); err != nil {
		return q, err
	}
	if q.EndDate, err = utils.ParseOptionalEpoch(raw.EndDate, "end_date"); err != nil {
		return q, err
	}
	return q, nil
}

func (t *TipController) listTips(c *gin.Context, creatorID string) {
	q, err := parseLedgerQuery(c, creatorID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	result, err := t.ledger.ListTips(c.Request.Context(), q)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Tips fetched successfully")
}

// GetMyTips godoc
// @Summary List the caller's tips
// @Description Paginated tip ledger for the authenticated creator, newest first
// @Tags Tips
// @Produce json
// @Param start_date query int false "Inclusive lower bound (epoch seconds)"
// @Param end_date query int false "Inclusive upper bound (epoch seconds)"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size 1-100 (default 100)"
// @Success 200 {object} utils.APIResponse{data=response_models.TipListResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Security BearerAuth
// @Router /tip [get]
func (t *TipController) GetMyTips(c *gin.Context) {
	t.listTips(c, c.GetString(utils.CtxCreatorID))
}

// GetTipsByCreator godoc
// @Summary List a creator's tips
// @Tags Tips
// @Produce json
// @Param creator_id path string true "Creator ID"
// @Param start_date query int false "Inclusive lower bound (epoch seconds)"
// @Param end_date query int false "Inclusive upper bound (epoch seconds)"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size 1-100 (default 100)"
// @Success 200 {object} utils.APIResponse{data=response_models.TipListResponse}
// @Failure 400 {object} utils.APIResponse
// @Router /tip/{creator_id} [get]
func (t *TipController) GetTipsByCreator(c *gin.Context) {
	t.listTips(c, c.Param("creator_id"))
}

// GetAmounts godoc
// @Summary Tip amount totals
// @Description Collected total plus settled and unsettled totals net of commission, in minor units
// @Tags Tips
// @Produce json
// @Param creator_id path string true "Creator ID"
// @Success 200 {object} utils.APIResponse{data=response_models.TipAmounts}
// @Router /tip/{creator_id}/amounts [get]
func (t *TipController) GetAmounts(c *gin.Context) {
	amounts, err := t.ledger.GetAmounts(c.Request.Context(), c.Param("creator_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, amounts, "Tip amounts fetched successfully")
}

// ExportUnsettled godoc
// @Summary Export unsettled tips
// @Description Bulk payout file for the creator's unsettled tips. With import=true the file is
// @Description served inline with CORS headers so spreadsheets can fetch it directly.
// @Description The Amount column is floor(amount * 0.95) in whole minor units, so 1001 exports as 950.
// @Tags Tips
// @Produce text/csv
// @Param creator_id path string true "Creator ID"
// @Param import query bool false "Serve inline for spreadsheet import"
// @Success 200 {file} file
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /tip/{creator_id}/unsettled [get]
func (t *TipController) ExportUnsettled(c *gin.Context) {
	export, err := t.settlement.ExportUnsettled(c.Request.Context(), c.Param("creator_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if importMode, _ := strconv.ParseBool(c.Query("import")); importMode {
		middleware.AllowAnyOrigin(c)
	} else {
		filename := fmt.Sprintf("unsettled_tips_%s_%d.csv", export.CreatorID, time.Now().UnixMilli())
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	}

	c.Data(http.StatusOK, "text/csv; charset=utf-8", export.CSV)
}
