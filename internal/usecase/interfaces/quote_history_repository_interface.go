package interfaces

import (
	"context"

	"quotecalc/internal/domain/entities"
)

// IQuoteHistoryRepository abstracts the append-only quote action log.

type IQuoteHistoryRepository interface {
	Append(ctx context.Context, h entities.QuoteHistory) (entities.QuoteHistory, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.QuoteHistory, error)
}
