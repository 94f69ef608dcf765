package interfaces

import (
	"context"

	"quotecalc/internal/domain/entities"
)

// ISubscriptionRepository abstracts DynamoDB persistence for Subscription.
//
// One record per user; provider webhooks and explicit syncs both land on
// Upsert so webhook-vs-poll races resolve to last-writer-wins.

type ISubscriptionRepository interface {
	GetByUserID(ctx context.Context, userID string) (entities.Subscription, error)
	Upsert(ctx context.Context, s entities.Subscription) (entities.Subscription, error)
}
