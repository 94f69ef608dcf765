package entities

import "time"

// SubscriptionTier is the feature level a user pays for. Tier is decided by
// the billing provider and consumed read-only here.
type SubscriptionTier string

const (
	TierFree    SubscriptionTier = "free"
	TierPremium SubscriptionTier = "premium"
	TierPro     SubscriptionTier = "pro"
)

// SubscriptionStatus mirrors the billing provider's lifecycle states.
type SubscriptionStatus string

const (
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusCanceled SubscriptionStatus = "canceled"
	SubscriptionStatusPastDue  SubscriptionStatus = "past_due"
	SubscriptionStatusTrialing SubscriptionStatus = "trialing"
)

// Subscription is the locally persisted mirror of the provider-side
// subscription for a user.
//
// Storage model (DynamoDB):
//   - PK: user_id (one subscription record per user, upserted on provider
//     events and on explicit sync)
type Subscription struct {
	ID                     string             `json:"id"`
	UserID                 string             `json:"user_id"`
	ProviderSubscriptionID string             `json:"provider_subscription_id,omitempty"`
	BillingCustomerID      string             `json:"billing_customer_id,omitempty"`
	Status                 SubscriptionStatus `json:"status"`
	Tier                   SubscriptionTier   `json:"tier"`
	CurrentPeriodEnd       time.Time          `json:"current_period_end,omitempty"`
	CreatedAt              time.Time          `json:"created_at"`
	UpdatedAt              time.Time          `json:"updated_at"`
}

// paying reports whether the subscription is in a state that grants access.
func (s Subscription) paying() bool {
	return s.Status == SubscriptionStatusActive || s.Status == SubscriptionStatusTrialing
}

// IsPro reports whether the user has pro-level access.
func (s Subscription) IsPro() bool {
	return s.Tier == TierPro && s.paying()
}

// IsPremium reports whether the user has premium-level access. Pro includes
// premium.
func (s Subscription) IsPremium() bool {
	return (s.Tier == TierPremium || s.Tier == TierPro) && s.paying()
}
