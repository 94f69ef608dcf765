package pricing

import (
	"math"
	"strings"
)

// MarketDemand classifies how contested the local market currently is.
type MarketDemand string

const (
	MarketDemandHigh   MarketDemand = "High"
	MarketDemandMedium MarketDemand = "Medium"
	MarketDemandLow    MarketDemand = "Low"
)

// Complexity classifies the difficulty of the job.
type Complexity string

const (
	ComplexitySimple   Complexity = "Simple"
	ComplexityModerate Complexity = "Moderate"
	ComplexityComplex  Complexity = "Complex"
)

// SeasonalFactor classifies the demand season the job falls into.
type SeasonalFactor string

const (
	SeasonPeak    SeasonalFactor = "Peak"
	SeasonNormal  SeasonalFactor = "Normal"
	SeasonOffPeak SeasonalFactor = "Off-peak"
)

// ExperienceLevel classifies the provider performing the job.
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "Beginner"
	ExperienceIntermediate ExperienceLevel = "Intermediate"
	ExperienceExpert       ExperienceLevel = "Expert"
)

// EquipmentTier classifies the equipment the job requires.
type EquipmentTier string

const (
	EquipmentStandard    EquipmentTier = "Standard"
	EquipmentSpecialized EquipmentTier = "Specialized"
	EquipmentHeavyDuty   EquipmentTier = "Heavy-duty"
)

var marketDemandMultipliers = map[MarketDemand]float64{
	MarketDemandHigh:   1.15,
	MarketDemandMedium: 1.0,
	MarketDemandLow:    0.9,
}

var complexityMultipliers = map[Complexity]float64{
	ComplexitySimple:   0.9,
	ComplexityModerate: 1.0,
	ComplexityComplex:  1.2,
}

var seasonalMultipliers = map[SeasonalFactor]float64{
	SeasonPeak:    1.15,
	SeasonNormal:  1.0,
	SeasonOffPeak: 0.9,
}

var experienceMultipliers = map[ExperienceLevel]float64{
	ExperienceBeginner:     0.95,
	ExperienceIntermediate: 1.0,
	ExperienceExpert:       1.1,
}

var equipmentCosts = map[EquipmentTier]float64{
	EquipmentStandard:    0,
	EquipmentSpecialized: 50,
	EquipmentHeavyDuty:   150,
}

const (
	travelRatePerMile        = 0.65
	emergencyBasePremium     = 0.5
	emergencyAfterHoursExtra = 0.25
	confidenceInterval       = 0.1
	validityDaysEmergency    = 7
	validityDaysStandard     = 30
)

// QuoteInput is the job description fed into Calculate. MarketRate is an
// already-resolved base price: for hourly work the caller pre-multiplies
// rate by hours. TimeOfDay is free text; only the substrings "evening" and
// "night" are significant. Optional numeric fields use their zero value for
// "absent" and are gated on > 0, matching the persisted quote schema.
type QuoteInput struct {
	MarketRate            float64
	MarketDemand          MarketDemand
	ServiceType           string
	IsEmergency           bool
	Location              string
	Complexity            Complexity
	MaterialsCost         float64
	TimeOfDay             string
	SeasonalFactor        SeasonalFactor
	CompetitorPricing     float64
	ExperienceLevel       ExperienceLevel
	EquipmentRequirements EquipmentTier
	TravelDistance        float64
}

// PriceBreakdown itemizes every adjustment applied during calculation.
// Values are unrounded so the deltas sum exactly to FinalPrice.
type PriceBreakdown struct {
	BasePrice            float64 `json:"basePrice"`
	MarketAdjustment     float64 `json:"marketAdjustment"`
	ComplexityAdjustment float64 `json:"complexityAdjustment"`
	EmergencyPremium     float64 `json:"emergencyPremium"`
	TravelCost           float64 `json:"travelCost"`
	SeasonalAdjustment   float64 `json:"seasonalAdjustment"`
	ExperienceAdjustment float64 `json:"experienceAdjustment"`
	EquipmentCost        float64 `json:"equipmentCost"`
	CompetitorAdjustment float64 `json:"competitorAdjustment,omitempty"`
	Subtotal             float64 `json:"subtotal"`
	FinalPrice           float64 `json:"finalPrice"`
	PriceRangeMin        float64 `json:"priceRangeMin"`
	PriceRangeMax        float64 `json:"priceRangeMax"`
}

// PriceRange is the ±10% confidence band around the final price.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// QuoteResult is the outcome of a calculation. CalculatedPrice and the
// range bounds are rounded to 2 decimals; Breakdown keeps full precision.
type QuoteResult struct {
	CalculatedPrice float64        `json:"calculatedPrice"`
	PriceRange      PriceRange     `json:"priceRange"`
	Breakdown       PriceBreakdown `json:"breakdown"`
	ValidityDays    int            `json:"validityDays"`
}

// Calculate derives a price from a job description. It is a pure function:
// no I/O, no randomness, no retained state, identical input gives identical
// output. Adjustments are chained, each multiplicative step applying to the
// running total rather than the original base, so the step order below is
// part of the contract.
func Calculate(input QuoteInput) QuoteResult {
	price := input.MarketRate
	breakdown := PriceBreakdown{BasePrice: input.MarketRate}

	// 1. Market demand
	price = price * marketDemandMultipliers[input.MarketDemand]
	breakdown.MarketAdjustment = price - breakdown.BasePrice

	// 2. Complexity
	priceBeforeComplexity := price
	price = price * complexityMultipliers[input.Complexity]
	breakdown.ComplexityAdjustment = price - priceBeforeComplexity

	// 3. Emergency premium, computed from the base price rather than the
	// running total. The after-hours extra keys on a literal substring match.
	if input.IsEmergency {
		premium := breakdown.BasePrice * emergencyBasePremium
		if containsAfterHours(input.TimeOfDay) {
			premium += breakdown.BasePrice * emergencyAfterHoursExtra
		}
		breakdown.EmergencyPremium = premium
		price += premium
	}

	// 4. Travel
	if input.TravelDistance > 0 {
		breakdown.TravelCost = input.TravelDistance * travelRatePerMile
		price += breakdown.TravelCost
	}

	// 5. Season
	priceBeforeSeasonal := price
	price = price * seasonalMultipliers[input.SeasonalFactor]
	breakdown.SeasonalAdjustment = price - priceBeforeSeasonal

	// 6. Experience
	priceBeforeExperience := price
	price = price * experienceMultipliers[input.ExperienceLevel]
	breakdown.ExperienceAdjustment = price - priceBeforeExperience

	// 7. Equipment
	breakdown.EquipmentCost = equipmentCosts[input.EquipmentRequirements]
	price += breakdown.EquipmentCost

	// 8. Materials, passed through without a separate breakdown delta.
	if input.MaterialsCost > 0 {
		price += input.MaterialsCost
	}

	// 9. Competitor nudge: only when the gap exceeds 10% of the running
	// price, and never moving it by more than 5%.
	if input.CompetitorPricing > 0 {
		diff := input.CompetitorPricing - price
		if diff < -price*0.1 {
			adjustment := math.Min(math.Abs(diff)*0.1, price*0.05)
			breakdown.CompetitorAdjustment = -adjustment
			price -= adjustment
		} else if diff > price*0.1 {
			adjustment := math.Min(diff*0.1, price*0.05)
			breakdown.CompetitorAdjustment = adjustment
			price += adjustment
		}
	}

	breakdown.Subtotal = price
	breakdown.FinalPrice = price

	variance := price * confidenceInterval
	breakdown.PriceRangeMin = math.Max(0, price-variance)
	breakdown.PriceRangeMax = price + variance

	validityDays := validityDaysStandard
	if input.IsEmergency {
		validityDays = validityDaysEmergency
	}

	return QuoteResult{
		CalculatedPrice: round2(price),
		PriceRange: PriceRange{
			Min: round2(breakdown.PriceRangeMin),
			Max: round2(breakdown.PriceRangeMax),
		},
		Breakdown:    breakdown,
		ValidityDays: validityDays,
	}
}

// containsAfterHours reports whether the free-text time of day names an
// after-hours slot. The match is case-sensitive: "Evening" does not count.
func containsAfterHours(timeOfDay string) bool {
	return strings.Contains(timeOfDay, "evening") || strings.Contains(timeOfDay, "night")
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
