package repository

import (
	"context"
	"time"

	"quotecalc/internal/domain/entities"
	"quotecalc/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuoteHistoryTableName = "quote_history"
	quoteHistoryQuoteIDIndex     = "quote_id-index"
)

type quoteHistoryItem struct {
	ID        string                 `dynamodbav:"id"`
	QuoteID   string                 `dynamodbav:"quote_id"`
	Action    string                 `dynamodbav:"action"`
	Metadata  map[string]interface{} `dynamodbav:"metadata,omitempty"`
	CreatedAt string                 `dynamodbav:"created_at"`
}

// QuoteHistoryDynamoRepository persists the append-only quote action log.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quote_id-index (PK: quote_id)

type QuoteHistoryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteHistoryRepository = (*QuoteHistoryDynamoRepository)(nil)

func NewQuoteHistoryDynamoRepository(ddb *dynamodb.Client) *QuoteHistoryDynamoRepository {
	return &QuoteHistoryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTE_HISTORY_TABLE", defaultQuoteHistoryTableName),
	}
}

func (r *QuoteHistoryDynamoRepository) Append(ctx context.Context, h entities.QuoteHistory) (entities.QuoteHistory, error) {
	av, err := attributevalue.MarshalMap(toQuoteHistoryItem(h))
	if err != nil {
		return entities.QuoteHistory{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.QuoteHistory{}, err
	}
	return h, nil
}

func (r *QuoteHistoryDynamoRepository) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.QuoteHistory, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quoteHistoryQuoteIDIndex),
		KeyConditionExpression: aws.String("quote_id = :qid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qid": &types.AttributeValueMemberS{Value: quoteID},
		},
	})
	if err != nil {
		return nil, err
	}

	entries := make([]entities.QuoteHistory, 0, len(out.Items))
	for _, raw := range out.Items {
		var it quoteHistoryItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		entries = append(entries, fromQuoteHistoryItem(it))
	}
	return entries, nil
}

func toQuoteHistoryItem(h entities.QuoteHistory) quoteHistoryItem {
	return quoteHistoryItem{
		ID:        h.ID,
		QuoteID:   h.QuoteID,
		Action:    string(h.Action),
		Metadata:  h.Metadata,
		CreatedAt: h.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromQuoteHistoryItem(it quoteHistoryItem) entities.QuoteHistory {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.QuoteHistory{
		ID:        it.ID,
		QuoteID:   it.QuoteID,
		Action:    entities.QuoteAction(it.Action),
		Metadata:  it.Metadata,
		CreatedAt: createdAt,
	}
}
