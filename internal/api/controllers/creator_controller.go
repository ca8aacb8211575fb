package controllers

import (
	"github.com/gin-gonic/gin"

	"apextip/internal/services"
	"apextip/pkg/utils"
)

type CreatorController struct {
	provisioningService services.ProvisioningService
}

func NewCreatorController(provisioningService services.ProvisioningService) *CreatorController {
	return &CreatorController{provisioningService: provisioningService}
}

// VerifyCreator godoc
// @Summary Approve a creator
// @Description Marks the creator approved and creates their overlay, tip page and link tree
// @Description in one transaction.
// @Tags Creators
// @Produce json
// @Param creator_id path string true "Creator ID"
// @Success 200 {object} utils.APIResponse{data=response_models.ProvisionedCreator}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /creator/verify/{creator_id} [patch]
func (cc *CreatorController) VerifyCreator(c *gin.Context) {
	result, err := cc.provisioningService.ApproveCreator(c.Request.Context(), c.Param("creator_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Creator verified successfully")
}
