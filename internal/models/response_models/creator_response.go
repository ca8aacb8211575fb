package response_models

import "apextip/internal/models/doc_models"

// ProvisionedCreator is returned once a creator has been approved and provisioned.
type ProvisionedCreator struct {
	Creator  doc_models.Creator  `json:"creator"`
	Overlay  doc_models.Overlay  `json:"overlay"`
	TipPage  doc_models.TipPage  `json:"tip_page"`
	LinkTree doc_models.LinkTree `json:"link_tree"`
}

type SubscriptionChange struct {
	Event              string                        `json:"event"`
	SubscriptionID     string                        `json:"subscription_id"`
	CreatorID          string                        `json:"creator_id"`
	SubscriptionStatus doc_models.SubscriptionStatus `json:"subscription_status"`
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Uptime       string            `json:"uptime"`
	Timestamp    int64             `json:"timestamp"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
}
