package request_models

// SubscriptionWebhook is the subset of the billing provider's subscription event we read.
type SubscriptionWebhook struct {
	Event   string `json:"event"`
	Payload struct {
		Subscription struct {
			Entity struct {
				ID string `json:"id"`
			} `json:"entity"`
		} `json:"subscription"`
	} `json:"payload"`
}

func (w *SubscriptionWebhook) SubscriptionID() string {
	return w.Payload.Subscription.Entity.ID
}
