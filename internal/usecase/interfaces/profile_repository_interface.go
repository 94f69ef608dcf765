package interfaces

import (
	"context"

	"quotecalc/internal/domain/entities"
)

// IProfileRepository abstracts DynamoDB persistence for Profile.

type IProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (entities.Profile, error)
	Upsert(ctx context.Context, p entities.Profile) (entities.Profile, error)
	UpdateBillingCustomerID(ctx context.Context, userID, billingCustomerID string) (entities.Profile, error)
}
