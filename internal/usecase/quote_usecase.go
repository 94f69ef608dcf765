package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"quotecalc/internal/domain/entities"
	"quotecalc/internal/domain/pricing"
	"quotecalc/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound     = errors.New("quote not found")
	ErrInvalidUserID     = errors.New("invalid user id")
	ErrInvalidQuoteID    = errors.New("invalid quote id")
	ErrInvalidQuoteInput = errors.New("invalid quote input")
	ErrExportNotAllowed  = errors.New("quote export requires an active premium subscription")
)

// IQuoteUseCase exposes quote operations.
//
// The pricing engine itself is pure and total; all input validation happens
// here, before the engine runs, so a validation failure can never produce a
// partial pricing result.

type IQuoteUseCase interface {
	Preview(ctx context.Context, input pricing.QuoteInput) (pricing.QuoteResult, error)
	Create(ctx context.Context, userID string, input pricing.QuoteInput) (entities.Quote, error)
	GetByID(ctx context.Context, userID, quoteID string) (entities.Quote, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Quote, error)
	History(ctx context.Context, userID, quoteID string) ([]entities.QuoteHistory, error)
	Delete(ctx context.Context, userID, quoteID string) error
	RenderPDF(ctx context.Context, userID, quoteID string) ([]byte, error)
}

type QuoteUseCase struct {
	repo        interfaces.IQuoteRepository
	historyRepo interfaces.IQuoteHistoryRepository
	subRepo     interfaces.ISubscriptionRepository
	profileRepo interfaces.IProfileRepository
	renderer    interfaces.IQuoteDocumentRenderer
	baseURL     string
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(
	repo interfaces.IQuoteRepository,
	historyRepo interfaces.IQuoteHistoryRepository,
	subRepo interfaces.ISubscriptionRepository,
	profileRepo interfaces.IProfileRepository,
	renderer interfaces.IQuoteDocumentRenderer,
	baseURL string,
) *QuoteUseCase {
	return &QuoteUseCase{
		repo:        repo,
		historyRepo: historyRepo,
		subRepo:     subRepo,
		profileRepo: profileRepo,
		renderer:    renderer,
		baseURL:     strings.TrimRight(baseURL, "/"),
	}
}

func (u *QuoteUseCase) Preview(ctx context.Context, input pricing.QuoteInput) (pricing.QuoteResult, error) {
	if err := validateQuoteInput(input); err != nil {
		return pricing.QuoteResult{}, err
	}
	return pricing.Calculate(input), nil
}

func (u *QuoteUseCase) Create(ctx context.Context, userID string, input pricing.QuoteInput) (entities.Quote, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Quote{}, ErrInvalidUserID
	}
	if err := validateQuoteInput(input); err != nil {
		return entities.Quote{}, err
	}

	result := pricing.Calculate(input)

	now := time.Now().UTC()
	q := entities.Quote{
		ID:     uuid.NewString(),
		UserID: userID,

		ServiceType:           input.ServiceType,
		MarketRate:            input.MarketRate,
		MarketDemand:          input.MarketDemand,
		IsEmergency:           input.IsEmergency,
		Location:              input.Location,
		Complexity:            input.Complexity,
		MaterialsCost:         input.MaterialsCost,
		TimeOfDay:             input.TimeOfDay,
		SeasonalFactor:        input.SeasonalFactor,
		CompetitorPricing:     input.CompetitorPricing,
		ExperienceLevel:       input.ExperienceLevel,
		EquipmentRequirements: input.EquipmentRequirements,
		TravelDistance:        input.TravelDistance,

		CalculatedPrice:   result.CalculatedPrice,
		PriceRangeMin:     result.PriceRange.Min,
		PriceRangeMax:     result.PriceRange.Max,
		PriceBreakdown:    result.Breakdown,
		QuoteValidityDays: result.ValidityDays,

		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}

	u.appendHistory(ctx, created.ID, entities.QuoteActionCreated, map[string]interface{}{
		"calculated_price": created.CalculatedPrice,
	})
	return created, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, userID, quoteID string) (entities.Quote, error) {
	q, err := u.ownedQuote(ctx, userID, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (u *QuoteUseCase) ListByUserID(ctx context.Context, userID string) ([]entities.Quote, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return u.repo.ListByUserID(ctx, userID)
}

// History lists the action log of an owned quote, oldest entry first.
func (u *QuoteUseCase) History(ctx context.Context, userID, quoteID string) ([]entities.QuoteHistory, error) {
	q, err := u.ownedQuote(ctx, userID, quoteID)
	if err != nil {
		return nil, err
	}
	if u.historyRepo == nil {
		return []entities.QuoteHistory{}, nil
	}
	entries, err := u.historyRepo.ListByQuoteID(ctx, q.ID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})
	return entries, nil
}

func (u *QuoteUseCase) Delete(ctx context.Context, userID, quoteID string) error {
	q, err := u.ownedQuote(ctx, userID, quoteID)
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, q.ID); err != nil {
		return err
	}
	u.appendHistory(ctx, q.ID, entities.QuoteActionDeleted, nil)
	return nil
}

func (u *QuoteUseCase) RenderPDF(ctx context.Context, userID, quoteID string) ([]byte, error) {
	q, err := u.ownedQuote(ctx, userID, quoteID)
	if err != nil {
		return nil, err
	}

	sub, err := u.subRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !sub.IsPremium() {
		return nil, ErrExportNotAllowed
	}

	companyName := ""
	if profile, err := u.profileRepo.GetByUserID(ctx, userID); err != nil {
		log.Printf("[quote][usecase] profile lookup failed user_id=%s err=%v", userID, err)
	} else {
		companyName = profile.CompanyName
	}

	quoteURL := ""
	if u.baseURL != "" {
		quoteURL = u.baseURL + "/quotes/" + q.ID
	}

	doc, err := u.renderer.RenderQuote(q.PricingResult(), q.PricingInput(), companyName, quoteURL)
	if err != nil {
		return nil, err
	}

	u.appendHistory(ctx, q.ID, entities.QuoteActionSent, map[string]interface{}{
		"format": "pdf",
	})
	return doc, nil
}

// ownedQuote resolves a quote and enforces ownership. A quote owned by a
// different user is reported as not found so ids cannot be probed.
func (u *QuoteUseCase) ownedQuote(ctx context.Context, userID, quoteID string) (entities.Quote, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Quote{}, ErrInvalidUserID
	}
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" || q.UserID != userID {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

// appendHistory writes the action log entry. The log is best effort: a
// failed append is logged but never fails the operation it records.
func (u *QuoteUseCase) appendHistory(ctx context.Context, quoteID string, action entities.QuoteAction, metadata map[string]interface{}) {
	if u.historyRepo == nil {
		return
	}
	_, err := u.historyRepo.Append(ctx, entities.QuoteHistory{
		ID:        uuid.NewString(),
		QuoteID:   quoteID,
		Action:    action,
		Metadata:  metadata,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		log.Printf("[quote][usecase] history append failed quote_id=%s action=%s err=%v", quoteID, action, err)
	}
}

func validateQuoteInput(input pricing.QuoteInput) error {
	if strings.TrimSpace(input.ServiceType) == "" {
		return fmt.Errorf("%w: service type must not be empty", ErrInvalidQuoteInput)
	}
	if strings.TrimSpace(input.Location) == "" {
		return fmt.Errorf("%w: location must not be empty", ErrInvalidQuoteInput)
	}
	if input.MarketRate < 0 {
		return fmt.Errorf("%w: market rate must not be negative", ErrInvalidQuoteInput)
	}
	if input.MaterialsCost < 0 {
		return fmt.Errorf("%w: materials cost must not be negative", ErrInvalidQuoteInput)
	}
	if input.CompetitorPricing < 0 {
		return fmt.Errorf("%w: competitor pricing must not be negative", ErrInvalidQuoteInput)
	}
	if input.TravelDistance < 0 {
		return fmt.Errorf("%w: travel distance must not be negative", ErrInvalidQuoteInput)
	}

	switch input.MarketDemand {
	case pricing.MarketDemandHigh, pricing.MarketDemandMedium, pricing.MarketDemandLow:
	default:
		return fmt.Errorf("%w: unknown market demand %q", ErrInvalidQuoteInput, input.MarketDemand)
	}
	switch input.Complexity {
	case pricing.ComplexitySimple, pricing.ComplexityModerate, pricing.ComplexityComplex:
	default:
		return fmt.Errorf("%w: unknown complexity %q", ErrInvalidQuoteInput, input.Complexity)
	}
	switch input.SeasonalFactor {
	case pricing.SeasonPeak, pricing.SeasonNormal, pricing.SeasonOffPeak:
	default:
		return fmt.Errorf("%w: unknown seasonal factor %q", ErrInvalidQuoteInput, input.SeasonalFactor)
	}
	switch input.ExperienceLevel {
	case pricing.ExperienceBeginner, pricing.ExperienceIntermediate, pricing.ExperienceExpert:
	default:
		return fmt.Errorf("%w: unknown experience level %q", ErrInvalidQuoteInput, input.ExperienceLevel)
	}
	switch input.EquipmentRequirements {
	case pricing.EquipmentStandard, pricing.EquipmentSpecialized, pricing.EquipmentHeavyDuty:
	default:
		return fmt.Errorf("%w: unknown equipment tier %q", ErrInvalidQuoteInput, input.EquipmentRequirements)
	}
	return nil
}
