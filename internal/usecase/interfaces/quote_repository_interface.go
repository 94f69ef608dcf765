package interfaces

import (
	"context"

	"quotecalc/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// Repositories signal "not found" with a zero-valued entity and a nil
// error; use cases translate that into their own sentinel errors.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Quote, error)
	Delete(ctx context.Context, id string) error
}
