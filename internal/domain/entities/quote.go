package entities

import (
	"time"

	"quotecalc/internal/domain/pricing"
)

// Quote is a persisted price quote owned by exactly one user.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
//
// The record is the union of the calculation input (snake_cased) and the
// calculation output. It is written once at submission time; the pricing
// engine never mutates it.
type Quote struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`

	ServiceType           string                  `json:"service_type"`
	MarketRate            float64                 `json:"market_rate"`
	MarketDemand          pricing.MarketDemand    `json:"market_demand"`
	IsEmergency           bool                    `json:"is_emergency"`
	Location              string                  `json:"location"`
	Complexity            pricing.Complexity      `json:"complexity"`
	MaterialsCost         float64                 `json:"materials_cost,omitempty"`
	TimeOfDay             string                  `json:"time_of_day,omitempty"`
	SeasonalFactor        pricing.SeasonalFactor  `json:"seasonal_factor"`
	CompetitorPricing     float64                 `json:"competitor_pricing,omitempty"`
	ExperienceLevel       pricing.ExperienceLevel `json:"experience_level"`
	EquipmentRequirements pricing.EquipmentTier   `json:"equipment_requirements"`
	TravelDistance        float64                 `json:"travel_distance,omitempty"`

	CalculatedPrice   float64                `json:"calculated_price"`
	PriceRangeMin     float64                `json:"price_range_min"`
	PriceRangeMax     float64                `json:"price_range_max"`
	PriceBreakdown    pricing.PriceBreakdown `json:"price_breakdown"`
	QuoteValidityDays int                    `json:"quote_validity_days"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PricingInput reconstructs the engine input this quote was computed from.
func (q Quote) PricingInput() pricing.QuoteInput {
	return pricing.QuoteInput{
		MarketRate:            q.MarketRate,
		MarketDemand:          q.MarketDemand,
		ServiceType:           q.ServiceType,
		IsEmergency:           q.IsEmergency,
		Location:              q.Location,
		Complexity:            q.Complexity,
		MaterialsCost:         q.MaterialsCost,
		TimeOfDay:             q.TimeOfDay,
		SeasonalFactor:        q.SeasonalFactor,
		CompetitorPricing:     q.CompetitorPricing,
		ExperienceLevel:       q.ExperienceLevel,
		EquipmentRequirements: q.EquipmentRequirements,
		TravelDistance:        q.TravelDistance,
	}
}

// PricingResult reconstructs the engine output persisted on this quote.
func (q Quote) PricingResult() pricing.QuoteResult {
	return pricing.QuoteResult{
		CalculatedPrice: q.CalculatedPrice,
		PriceRange:      pricing.PriceRange{Min: q.PriceRangeMin, Max: q.PriceRangeMax},
		Breakdown:       q.PriceBreakdown,
		ValidityDays:    q.QuoteValidityDays,
	}
}
