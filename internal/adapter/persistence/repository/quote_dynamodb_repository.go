package repository

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"
	"time"

	"quotecalc/internal/domain/entities"
	"quotecalc/internal/domain/pricing"
	"quotecalc/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName = "quotes"
	quotesUserIDIndex      = "user_id-index"
)

type quoteItem struct {
	ID     string `dynamodbav:"id"`
	UserID string `dynamodbav:"user_id"`

	ServiceType           string `dynamodbav:"service_type"`
	MarketRate            string `dynamodbav:"market_rate"`
	MarketDemand          string `dynamodbav:"market_demand"`
	IsEmergency           bool   `dynamodbav:"is_emergency"`
	Location              string `dynamodbav:"location"`
	Complexity            string `dynamodbav:"complexity"`
	MaterialsCost         string `dynamodbav:"materials_cost,omitempty"`
	TimeOfDay             string `dynamodbav:"time_of_day,omitempty"`
	SeasonalFactor        string `dynamodbav:"seasonal_factor"`
	CompetitorPricing     string `dynamodbav:"competitor_pricing,omitempty"`
	ExperienceLevel       string `dynamodbav:"experience_level"`
	EquipmentRequirements string `dynamodbav:"equipment_requirements"`
	TravelDistance        string `dynamodbav:"travel_distance,omitempty"`

	CalculatedPrice   string `dynamodbav:"calculated_price"`
	PriceRangeMin     string `dynamodbav:"price_range_min"`
	PriceRangeMax     string `dynamodbav:"price_range_max"`
	PriceBreakdown    string `dynamodbav:"price_breakdown"`
	QuoteValidityDays int    `dynamodbav:"quote_validity_days"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
//
// Monetary fields are stored as formatted strings to survive round-trips
// without float re-encoding surprises; the breakdown is a JSON blob because
// it is read back whole and never queried.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	it, err := toQuoteItem(q)
	if err != nil {
		return entities.Quote{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it)
}

func (r *QuoteDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Quote, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}

	quotes := make([]entities.Quote, 0, len(out.Items))
	for _, raw := range out.Items {
		var it quoteItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		q, err := fromQuoteItem(it)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}
	sortQuotesNewestFirst(quotes)
	return quotes, nil
}

// sortQuotesNewestFirst orders quotes by creation time, newest first. The
// user_id-index is a hash-only GSI, so the Query result order is undefined
// and the listing contract has to be enforced here.
func sortQuotesNewestFirst(quotes []entities.Quote) {
	sort.SliceStable(quotes, func(i, j int) bool {
		return quotes[i].CreatedAt.After(quotes[j].CreatedAt)
	})
}

func (r *QuoteDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toQuoteItem(q entities.Quote) (quoteItem, error) {
	breakdown, err := json.Marshal(q.PriceBreakdown)
	if err != nil {
		return quoteItem{}, err
	}
	return quoteItem{
		ID:     q.ID,
		UserID: q.UserID,

		ServiceType:           q.ServiceType,
		MarketRate:            floatToString(q.MarketRate),
		MarketDemand:          string(q.MarketDemand),
		IsEmergency:           q.IsEmergency,
		Location:              q.Location,
		Complexity:            string(q.Complexity),
		MaterialsCost:         optionalFloatToString(q.MaterialsCost),
		TimeOfDay:             q.TimeOfDay,
		SeasonalFactor:        string(q.SeasonalFactor),
		CompetitorPricing:     optionalFloatToString(q.CompetitorPricing),
		ExperienceLevel:       string(q.ExperienceLevel),
		EquipmentRequirements: string(q.EquipmentRequirements),
		TravelDistance:        optionalFloatToString(q.TravelDistance),

		CalculatedPrice:   floatToString(q.CalculatedPrice),
		PriceRangeMin:     floatToString(q.PriceRangeMin),
		PriceRangeMax:     floatToString(q.PriceRangeMax),
		PriceBreakdown:    string(breakdown),
		QuoteValidityDays: q.QuoteValidityDays,

		CreatedAt: q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromQuoteItem(it quoteItem) (entities.Quote, error) {
	var breakdown pricing.PriceBreakdown
	if it.PriceBreakdown != "" {
		if err := json.Unmarshal([]byte(it.PriceBreakdown), &breakdown); err != nil {
			return entities.Quote{}, err
		}
	}

	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	marketRate, _ := strconv.ParseFloat(it.MarketRate, 64)
	materialsCost, _ := strconv.ParseFloat(it.MaterialsCost, 64)
	competitorPricing, _ := strconv.ParseFloat(it.CompetitorPricing, 64)
	travelDistance, _ := strconv.ParseFloat(it.TravelDistance, 64)
	calculatedPrice, _ := strconv.ParseFloat(it.CalculatedPrice, 64)
	rangeMin, _ := strconv.ParseFloat(it.PriceRangeMin, 64)
	rangeMax, _ := strconv.ParseFloat(it.PriceRangeMax, 64)

	return entities.Quote{
		ID:     it.ID,
		UserID: it.UserID,

		ServiceType:           it.ServiceType,
		MarketRate:            marketRate,
		MarketDemand:          pricing.MarketDemand(it.MarketDemand),
		IsEmergency:           it.IsEmergency,
		Location:              it.Location,
		Complexity:            pricing.Complexity(it.Complexity),
		MaterialsCost:         materialsCost,
		TimeOfDay:             it.TimeOfDay,
		SeasonalFactor:        pricing.SeasonalFactor(it.SeasonalFactor),
		CompetitorPricing:     competitorPricing,
		ExperienceLevel:       pricing.ExperienceLevel(it.ExperienceLevel),
		EquipmentRequirements: pricing.EquipmentTier(it.EquipmentRequirements),
		TravelDistance:        travelDistance,

		CalculatedPrice:   calculatedPrice,
		PriceRangeMin:     rangeMin,
		PriceRangeMax:     rangeMax,
		PriceBreakdown:    breakdown,
		QuoteValidityDays: it.QuoteValidityDays,

		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

func optionalFloatToString(v float64) string {
	if v == 0 {
		return ""
	}
	return floatToString(v)
}
