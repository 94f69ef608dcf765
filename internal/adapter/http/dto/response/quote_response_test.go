package response

import (
	"testing"
	"time"

	"quotecalc/internal/domain/entities"
	"quotecalc/internal/domain/pricing"
)

func TestFromQuoteFormatsPrice(t *testing.T) {
	q := entities.Quote{
		ID:              "q-1",
		UserID:          "user-1",
		ServiceType:     "Plumbing repair",
		CalculatedPrice: 1234.5,
		PriceRangeMin:   1111.05,
		PriceRangeMax:   1357.95,
	}

	resp := FromQuote(q)
	if resp.FormattedPrice != "$1,234.50" {
		t.Fatalf("unexpected formatted price: %s", resp.FormattedPrice)
	}
	if resp.PriceRange.Min != 1111.05 || resp.PriceRange.Max != 1357.95 {
		t.Fatalf("unexpected range: %+v", resp.PriceRange)
	}
}

func TestFromPricingResult(t *testing.T) {
	result := pricing.Calculate(pricing.QuoteInput{
		MarketRate:            100,
		MarketDemand:          pricing.MarketDemandMedium,
		ServiceType:           "Inspection",
		Location:              "Dallas",
		Complexity:            pricing.ComplexityModerate,
		SeasonalFactor:        pricing.SeasonNormal,
		ExperienceLevel:       pricing.ExperienceIntermediate,
		EquipmentRequirements: pricing.EquipmentStandard,
	})

	resp := FromPricingResult(result)
	if resp.CalculatedPrice != 100.00 {
		t.Fatalf("unexpected price: %v", resp.CalculatedPrice)
	}
	if resp.FormattedPrice != "$100.00" {
		t.Fatalf("unexpected formatted price: %s", resp.FormattedPrice)
	}
	if resp.ValidityDays != 30 {
		t.Fatalf("unexpected validity: %d", resp.ValidityDays)
	}
}

func TestFromSubscription(t *testing.T) {
	end := time.Date(2026, 9, 28, 0, 0, 0, 0, time.UTC)
	s := entities.Subscription{
		Tier:             entities.TierPro,
		Status:           entities.SubscriptionStatusActive,
		CurrentPeriodEnd: end,
	}

	resp := FromSubscription(s)
	if !resp.Entitled {
		t.Fatal("active pro should be entitled")
	}
	if resp.CurrentPeriodEnd == nil || !resp.CurrentPeriodEnd.Equal(end) {
		t.Fatalf("unexpected period end: %v", resp.CurrentPeriodEnd)
	}

	lapsed := FromSubscription(entities.Subscription{
		Tier:   entities.TierPro,
		Status: entities.SubscriptionStatusPastDue,
	})
	if lapsed.Entitled {
		t.Fatal("past_due should not be entitled")
	}
	if lapsed.CurrentPeriodEnd != nil {
		t.Fatal("zero period end should be omitted")
	}

	free := FreeSubscription()
	if free.Entitled || free.Tier != "free" {
		t.Fatalf("unexpected free response: %+v", free)
	}
}
