package request

import (
	"strings"

	"quotecalc/internal/domain/pricing"
)

// QuoteRequest is the payload accepted by the quote preview and submission
// endpoints. Field names mirror the persisted quote schema; optional numeric
// fields default to zero, which the engine treats as absent.
type QuoteRequest struct {
	ServiceType           string  `json:"service_type" binding:"required"`
	MarketRate            float64 `json:"market_rate" binding:"min=0"`
	MarketDemand          string  `json:"market_demand" binding:"required"`
	IsEmergency           bool    `json:"is_emergency"`
	Location              string  `json:"location" binding:"required"`
	Complexity            string  `json:"complexity" binding:"required"`
	MaterialsCost         float64 `json:"materials_cost" binding:"min=0"`
	TimeOfDay             string  `json:"time_of_day"`
	SeasonalFactor        string  `json:"seasonal_factor" binding:"required"`
	CompetitorPricing     float64 `json:"competitor_pricing" binding:"min=0"`
	ExperienceLevel       string  `json:"experience_level" binding:"required"`
	EquipmentRequirements string  `json:"equipment_requirements" binding:"required"`
	TravelDistance        float64 `json:"travel_distance" binding:"min=0"`
}

// ToPricingInput translates the payload into the engine input. Enum values
// pass through as-is; the use case layer rejects unknown ones.
func (r QuoteRequest) ToPricingInput() pricing.QuoteInput {
	return pricing.QuoteInput{
		MarketRate:            r.MarketRate,
		MarketDemand:          pricing.MarketDemand(strings.TrimSpace(r.MarketDemand)),
		ServiceType:           strings.TrimSpace(r.ServiceType),
		IsEmergency:           r.IsEmergency,
		Location:              strings.TrimSpace(r.Location),
		Complexity:            pricing.Complexity(strings.TrimSpace(r.Complexity)),
		MaterialsCost:         r.MaterialsCost,
		TimeOfDay:             strings.TrimSpace(r.TimeOfDay),
		SeasonalFactor:        pricing.SeasonalFactor(strings.TrimSpace(r.SeasonalFactor)),
		CompetitorPricing:     r.CompetitorPricing,
		ExperienceLevel:       pricing.ExperienceLevel(strings.TrimSpace(r.ExperienceLevel)),
		EquipmentRequirements: pricing.EquipmentTier(strings.TrimSpace(r.EquipmentRequirements)),
		TravelDistance:        r.TravelDistance,
	}
}
