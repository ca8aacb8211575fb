package services

import "context"

const (
	RoutingCreatorApproved     = "creator.approved"
	RoutingSubscriptionChanged = "creator.subscription.changed"
)

// EventPublisher emits domain events after the corresponding write has been committed.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, any) error { return nil }

type CreatorApprovedEvent struct {
	CreatorID  string `json:"creator_id"`
	Username   string `json:"username"`
	OverlayID  string `json:"overlay_id"`
	TipPageID  string `json:"tip_page_id"`
	LinkTreeID string `json:"link_tree_id"`
	ApprovedAt int64  `json:"approved_at"`
}

type SubscriptionChangedEvent struct {
	CreatorID      string `json:"creator_id"`
	SubscriptionID string `json:"subscription_id"`
	Event          string `json:"event"`
	Status         string `json:"status"`
	ChangedAt      int64  `json:"changed_at"`
}
