package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"apextip/internal/docstore"
	"apextip/internal/models/doc_models"
	"apextip/internal/models/response_models"
	"apextip/pkg/utils"
)

// subscriptionTransitions maps a billing event to the status it assigns. Transitions
// are plain assignments, so replays and duplicates are harmless.
var subscriptionTransitions = map[string]doc_models.SubscriptionStatus{
	"activated": doc_models.SubscriptionPro,
	"resumed":   doc_models.SubscriptionPro,
	"cancelled": doc_models.SubscriptionFree,
	"paused":    doc_models.SubscriptionFree,
	"expired":   doc_models.SubscriptionFree,
}

type SubscriptionService interface {
	ApplyEvent(ctx context.Context, event, subscriptionID string) (*response_models.SubscriptionChange, error)
}

type subscriptionService struct {
	creators  docstore.CreatorStore
	publisher EventPublisher
	log       *logrus.Logger
}

func NewSubscriptionService(creators docstore.CreatorStore, publisher EventPublisher, log *logrus.Logger) SubscriptionService {
	return &subscriptionService{creators: creators, publisher: publisher, log: log}
}

// NormalizeSubscriptionEvent accepts both "subscription.activated" and "activated".
func NormalizeSubscriptionEvent(event string) string {
	return strings.TrimPrefix(strings.TrimSpace(event), "subscription.")
}

// ApplyEvent sets the status of the creator owning subscriptionID. Deliveries are not
// ordered: the last write wins.
func (s *subscriptionService) ApplyEvent(ctx context.Context, event, subscriptionID string) (*response_models.SubscriptionChange, error) {
	name := NormalizeSubscriptionEvent(event)
	status, ok := subscriptionTransitions[name]
	if !ok {
		s.log.WithFields(logrus.Fields{
			"event":           event,
			"subscription_id": subscriptionID,
		}).Warn("rejected unrecognized subscription event")
		return nil, utils.UnrecognizedEvent(event)
	}

	subscriptionID = strings.TrimSpace(subscriptionID)
	if subscriptionID == "" {
		return nil, utils.InvalidParameter("Subscription ID is required", map[string]string{
			"payload.subscription.entity.id": "required",
		})
	}

	creator, err := s.creators.SetSubscriptionStatus(ctx, subscriptionID, status)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, utils.ErrCreatorNotFound
		}
		return nil, utils.StorageFailure("set subscription status", err)
	}

	s.log.WithFields(logrus.Fields{
		"creator_id":      creator.CreatorID,
		"subscription_id": subscriptionID,
		"event":           name,
		"status":          status,
	}).Info("subscription status updated")

	if err := s.publisher.Publish(ctx, RoutingSubscriptionChanged, SubscriptionChangedEvent{
		CreatorID:      creator.CreatorID,
		SubscriptionID: subscriptionID,
		Event:          name,
		Status:         string(status),
		ChangedAt:      time.Now().Unix(),
	}); err != nil {
		s.log.WithError(err).WithField("creator_id", creator.CreatorID).Warn("failed to publish subscription change")
	}

	return &response_models.SubscriptionChange{
		Event:              name,
		SubscriptionID:     subscriptionID,
		CreatorID:          creator.CreatorID,
		SubscriptionStatus: creator.SubscriptionStatus,
	}, nil
}
