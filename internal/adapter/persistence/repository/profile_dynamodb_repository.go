package repository

import (
	"context"
	"errors"
	"time"

	"quotecalc/internal/domain/entities"
	"quotecalc/internal/domain/pricing"
	"quotecalc/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProfilesTableName = "profiles"

type profileItem struct {
	UserID            string `dynamodbav:"user_id"`
	Email             string `dynamodbav:"email"`
	CompanyName       string `dynamodbav:"company_name,omitempty"`
	ExperienceLevel   string `dynamodbav:"experience_level,omitempty"`
	BillingCustomerID string `dynamodbav:"billing_customer_id,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// ProfileDynamoRepository persists Profile entities in DynamoDB.
//
// Table requirements:
//   - PK: user_id (string)

type ProfileDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProfileRepository = (*ProfileDynamoRepository)(nil)

func NewProfileDynamoRepository(ddb *dynamodb.Client) *ProfileDynamoRepository {
	return &ProfileDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROFILES_TABLE", defaultProfilesTableName),
	}
}

func (r *ProfileDynamoRepository) GetByUserID(ctx context.Context, userID string) (entities.Profile, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Profile{}, err
	}
	if len(out.Item) == 0 {
		return entities.Profile{}, nil
	}

	var it profileItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Profile{}, err
	}
	return fromProfileItem(it), nil
}

func (r *ProfileDynamoRepository) Upsert(ctx context.Context, p entities.Profile) (entities.Profile, error) {
	av, err := attributevalue.MarshalMap(toProfileItem(p))
	if err != nil {
		return entities.Profile{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Profile{}, err
	}
	return p, nil
}

func (r *ProfileDynamoRepository) UpdateBillingCustomerID(ctx context.Context, userID, billingCustomerID string) (entities.Profile, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
		ConditionExpression: aws.String("attribute_exists(#user_id)"),
		UpdateExpression:    aws.String("SET #billing_customer_id = :cid, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid":        &types.AttributeValueMemberS{Value: billingCustomerID},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#user_id":             "user_id",
			"#billing_customer_id": "billing_customer_id",
			"#updated_at":          "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Profile{}, nil
		}
		return entities.Profile{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Profile{}, nil
	}

	var it profileItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Profile{}, err
	}
	return fromProfileItem(it), nil
}

func toProfileItem(p entities.Profile) profileItem {
	return profileItem{
		UserID:            p.UserID,
		Email:             p.Email,
		CompanyName:       p.CompanyName,
		ExperienceLevel:   string(p.ExperienceLevel),
		BillingCustomerID: p.BillingCustomerID,
		CreatedAt:         p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:         p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromProfileItem(it profileItem) entities.Profile {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Profile{
		UserID:            it.UserID,
		Email:             it.Email,
		CompanyName:       it.CompanyName,
		ExperienceLevel:   pricing.ExperienceLevel(it.ExperienceLevel),
		BillingCustomerID: it.BillingCustomerID,
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}
}
