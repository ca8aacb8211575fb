package controllers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"apextip/internal/config"
	"apextip/internal/models/request_models"
	"apextip/internal/services"
	"apextip/pkg/memcache"
	"apextip/pkg/utils"
)

const (
	SignatureHeader = "X-Razorpay-Signature"
	EventIDHeader   = "X-Razorpay-Event-Id"
)

// deliveryTTL covers the provider's retry window.
const deliveryTTL = 24 * time.Hour

// maxWebhookBody caps the payload read from the billing provider.
const maxWebhookBody = 1 << 20

type WebhookController struct {
	subscriptionService services.SubscriptionService
	deliveries          memcache.DeliveryStore
	secret              string
}

func NewWebhookController(subscriptionService services.SubscriptionService, deliveries memcache.DeliveryStore, cfg *config.Config) *WebhookController {
	return &WebhookController{
		subscriptionService: subscriptionService,
		deliveries:          deliveries,
		secret:              cfg.Webhook.RazorpaySecret,
	}
}

// HandleSubscription godoc
// @Summary Billing provider subscription webhook
// @Description Applies activated, resumed, cancelled, paused and expired events to the
// @Description creator holding the subscription.
// @Tags Webhooks
// @Accept json
// @Produce json
// @Param X-Razorpay-Signature header string false "Hex HMAC-SHA256 of the body"
// @Param X-Razorpay-Event-Id header string false "Delivery id; repeated deliveries are acknowledged without reapplying"
// @Success 200 {object} utils.APIResponse{data=response_models.SubscriptionChange}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /webhook/razorpay/subscription [post]
func (w *WebhookController) HandleSubscription(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Unable to read request body")
		return
	}

	if w.secret != "" && !utils.VerifyHMACSHA256(body, c.GetHeader(SignatureHeader), w.secret) {
		utils.Logger(c).Warn("webhook signature mismatch")
		utils.RespondError(c, http.StatusBadRequest, "Invalid webhook signature")
		return
	}

	deliveryID := c.GetHeader(EventIDHeader)
	if w.deliveries.Seen(deliveryID) {
		utils.Logger(c).WithField("delivery_id", deliveryID).Info("duplicate webhook delivery")
		utils.RespondSuccess(c, nil, "Webhook already processed")
		return
	}

	var payload request_models.SubscriptionWebhook
	if err := json.Unmarshal(body, &payload); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid webhook payload")
		return
	}

	change, err := w.subscriptionService.ApplyEvent(c.Request.Context(), payload.Event, payload.SubscriptionID())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	w.deliveries.Remember(deliveryID, deliveryTTL)

	utils.RespondSuccess(c, change, fmt.Sprintf("Creator subscription %s successfully", change.Event))
}
