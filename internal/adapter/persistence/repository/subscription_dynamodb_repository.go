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

const defaultSubscriptionsTableName = "subscriptions"

type subscriptionItem struct {
	UserID                 string `dynamodbav:"user_id"`
	ID                     string `dynamodbav:"id"`
	ProviderSubscriptionID string `dynamodbav:"provider_subscription_id,omitempty"`
	BillingCustomerID      string `dynamodbav:"billing_customer_id,omitempty"`
	Status                 string `dynamodbav:"status"`
	Tier                   string `dynamodbav:"tier"`
	CurrentPeriodEnd       string `dynamodbav:"current_period_end,omitempty"`
	CreatedAt              string `dynamodbav:"created_at"`
	UpdatedAt              string `dynamodbav:"updated_at"`
}

// SubscriptionDynamoRepository persists Subscription entities in DynamoDB.
//
// Table requirements:
//   - PK: user_id (string)
//
// The user id is the PK on purpose: a user has at most one subscription
// record, and webhook plus sync writes converge on the same item.

type SubscriptionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISubscriptionRepository = (*SubscriptionDynamoRepository)(nil)

func NewSubscriptionDynamoRepository(ddb *dynamodb.Client) *SubscriptionDynamoRepository {
	return &SubscriptionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SUBSCRIPTIONS_TABLE", defaultSubscriptionsTableName),
	}
}

func (r *SubscriptionDynamoRepository) GetByUserID(ctx context.Context, userID string) (entities.Subscription, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Subscription{}, err
	}
	if len(out.Item) == 0 {
		return entities.Subscription{}, nil
	}

	var it subscriptionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Subscription{}, err
	}
	return fromSubscriptionItem(it), nil
}

func (r *SubscriptionDynamoRepository) Upsert(ctx context.Context, s entities.Subscription) (entities.Subscription, error) {
	av, err := attributevalue.MarshalMap(toSubscriptionItem(s))
	if err != nil {
		return entities.Subscription{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Subscription{}, err
	}
	return s, nil
}

func toSubscriptionItem(s entities.Subscription) subscriptionItem {
	it := subscriptionItem{
		UserID:                 s.UserID,
		ID:                     s.ID,
		ProviderSubscriptionID: s.ProviderSubscriptionID,
		BillingCustomerID:      s.BillingCustomerID,
		Status:                 string(s.Status),
		Tier:                   string(s.Tier),
		CreatedAt:              s.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:              s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if !s.CurrentPeriodEnd.IsZero() {
		it.CurrentPeriodEnd = s.CurrentPeriodEnd.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromSubscriptionItem(it subscriptionItem) entities.Subscription {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	var periodEnd time.Time
	if it.CurrentPeriodEnd != "" {
		periodEnd, _ = time.Parse(time.RFC3339Nano, it.CurrentPeriodEnd)
	}
	return entities.Subscription{
		UserID:                 it.UserID,
		ID:                     it.ID,
		ProviderSubscriptionID: it.ProviderSubscriptionID,
		BillingCustomerID:      it.BillingCustomerID,
		Status:                 entities.SubscriptionStatus(it.Status),
		Tier:                   entities.SubscriptionTier(it.Tier),
		CurrentPeriodEnd:       periodEnd,
		CreatedAt:              createdAt,
		UpdatedAt:              updatedAt,
	}
}
