package entities

import "time"

// QuoteAction tags an entry in the quote action log.
type QuoteAction string

const (
	QuoteActionCreated QuoteAction = "created"
	QuoteActionUpdated QuoteAction = "updated"
	QuoteActionDeleted QuoteAction = "deleted"
	QuoteActionSent    QuoteAction = "sent"
)

// QuoteHistory is an append-only log entry keyed by quote id and action.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (quote_id-index): quote_id
//
// Entries are never updated or deleted.
type QuoteHistory struct {
	ID        string                 `json:"id"`
	QuoteID   string                 `json:"quote_id"`
	Action    QuoteAction            `json:"action"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}
