package response

import (
	"time"

	"quotecalc/internal/domain/entities"
	"quotecalc/internal/domain/pricing"
)

// PriceRangeResponse is the confidence band around the calculated price.
type PriceRangeResponse struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// PreviewResponse is the body returned by the stateless preview endpoint.
// FormattedPrice is the US-locale display string the clients render as-is.
type PreviewResponse struct {
	CalculatedPrice float64                `json:"calculated_price"`
	FormattedPrice  string                 `json:"formatted_price"`
	PriceRange      PriceRangeResponse     `json:"price_range"`
	Breakdown       pricing.PriceBreakdown `json:"breakdown"`
	ValidityDays    int                    `json:"validity_days"`
}

func FromPricingResult(r pricing.QuoteResult) PreviewResponse {
	return PreviewResponse{
		CalculatedPrice: r.CalculatedPrice,
		FormattedPrice:  pricing.FormatCurrency(r.CalculatedPrice),
		PriceRange:      PriceRangeResponse{Min: r.PriceRange.Min, Max: r.PriceRange.Max},
		Breakdown:       r.Breakdown,
		ValidityDays:    r.ValidityDays,
	}
}

// QuoteResponse is the body returned for persisted quotes.
type QuoteResponse struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`

	ServiceType           string  `json:"service_type"`
	MarketRate            float64 `json:"market_rate"`
	MarketDemand          string  `json:"market_demand"`
	IsEmergency           bool    `json:"is_emergency"`
	Location              string  `json:"location"`
	Complexity            string  `json:"complexity"`
	MaterialsCost         float64 `json:"materials_cost,omitempty"`
	TimeOfDay             string  `json:"time_of_day,omitempty"`
	SeasonalFactor        string  `json:"seasonal_factor"`
	CompetitorPricing     float64 `json:"competitor_pricing,omitempty"`
	ExperienceLevel       string  `json:"experience_level"`
	EquipmentRequirements string  `json:"equipment_requirements"`
	TravelDistance        float64 `json:"travel_distance,omitempty"`

	CalculatedPrice   float64                `json:"calculated_price"`
	FormattedPrice    string                 `json:"formatted_price"`
	PriceRange        PriceRangeResponse     `json:"price_range"`
	Breakdown         pricing.PriceBreakdown `json:"breakdown"`
	QuoteValidityDays int                    `json:"quote_validity_days"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:     q.ID,
		UserID: q.UserID,

		ServiceType:           q.ServiceType,
		MarketRate:            q.MarketRate,
		MarketDemand:          string(q.MarketDemand),
		IsEmergency:           q.IsEmergency,
		Location:              q.Location,
		Complexity:            string(q.Complexity),
		MaterialsCost:         q.MaterialsCost,
		TimeOfDay:             q.TimeOfDay,
		SeasonalFactor:        string(q.SeasonalFactor),
		CompetitorPricing:     q.CompetitorPricing,
		ExperienceLevel:       string(q.ExperienceLevel),
		EquipmentRequirements: string(q.EquipmentRequirements),
		TravelDistance:        q.TravelDistance,

		CalculatedPrice:   q.CalculatedPrice,
		FormattedPrice:    pricing.FormatCurrency(q.CalculatedPrice),
		PriceRange:        PriceRangeResponse{Min: q.PriceRangeMin, Max: q.PriceRangeMax},
		Breakdown:         q.PriceBreakdown,
		QuoteValidityDays: q.QuoteValidityDays,

		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}

// QuoteHistoryResponse is a single entry of a quote's action log.
type QuoteHistoryResponse struct {
	ID        string                 `json:"id"`
	QuoteID   string                 `json:"quote_id"`
	Action    string                 `json:"action"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

func FromQuoteHistory(entries []entities.QuoteHistory) []QuoteHistoryResponse {
	out := make([]QuoteHistoryResponse, 0, len(entries))
	for _, h := range entries {
		out = append(out, QuoteHistoryResponse{
			ID:        h.ID,
			QuoteID:   h.QuoteID,
			Action:    string(h.Action),
			Metadata:  h.Metadata,
			CreatedAt: h.CreatedAt,
		})
	}
	return out
}
