package doc_models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type SubscriptionStatus string

const (
	SubscriptionFree SubscriptionStatus = "free"
	SubscriptionPro  SubscriptionStatus = "pro"
)

type Role string

const (
	RoleCreator Role = "creator"
	RoleAdmin   Role = "admin"
)

// Creator is the subset of the creator profile this service reads and writes.
type Creator struct {
	ID                 string             `json:"id"`
	CreatorID          string             `json:"creator_id"`
	Username           string             `json:"username"`
	Email              string             `json:"email"`
	Role               Role               `json:"role"`
	Approved           bool               `json:"approved"`
	RazorpayAccountID  *string            `json:"razorpay_account_id"`
	SubscriptionID     *string            `json:"subscription_id"`
	SubscriptionStatus SubscriptionStatus `json:"subscription_status"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// PayoutAccount returns the trimmed linked account id, empty when unset.
func (c *Creator) PayoutAccount() string {
	if c.RazorpayAccountID == nil {
		return ""
	}
	return strings.TrimSpace(*c.RazorpayAccountID)
}

// NewCreatorID returns an 8 hex character id. It is assigned once and never changes.
func NewCreatorID() string {
	return uuid.NewString()[:8]
}

// ApplyDefaults fills the fields a freshly registered creator starts with.
func (c *Creator) ApplyDefaults(now time.Time) {
	if c.CreatorID == "" {
		c.CreatorID = NewCreatorID()
	}
	if c.Role == "" {
		c.Role = RoleCreator
	}
	if c.SubscriptionStatus == "" {
		c.SubscriptionStatus = SubscriptionFree
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
}
