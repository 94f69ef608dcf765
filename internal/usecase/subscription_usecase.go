package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"quotecalc/internal/domain/entities"
	"quotecalc/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrInvalidTier          = errors.New("invalid subscription tier")
	ErrBillingNotConfigured = errors.New("billing gateway not configured")
	ErrNoBillingCustomer    = errors.New("no billing customer linked; complete a checkout first")
)

// ProviderEvent is a billing provider webhook notification. Events are
// treated as untrusted hints: the subscription state is always re-fetched
// from the provider before anything is written.
type ProviderEvent struct {
	Type       string `json:"type"`
	Action     string `json:"action,omitempty"`
	ResourceID string `json:"resource_id"`
}

const eventTypeSubscription = "subscription_preapproval"

// ISubscriptionUseCase exposes the billing/subscription lifecycle: hosted
// checkout creation, webhook ingestion and explicit provider reconciliation.

type ISubscriptionUseCase interface {
	GetByUserID(ctx context.Context, userID string) (entities.Subscription, error)
	CreateCheckout(ctx context.Context, userID string, tier entities.SubscriptionTier, backURL string) (interfaces.CheckoutSession, error)
	HandleProviderEvent(ctx context.Context, event ProviderEvent) error
	Sync(ctx context.Context, userID string) (entities.Subscription, error)
}

type SubscriptionUseCase struct {
	repo        interfaces.ISubscriptionRepository
	profileRepo interfaces.IProfileRepository
	gateway     interfaces.IBillingGateway
}

var _ ISubscriptionUseCase = (*SubscriptionUseCase)(nil)

func NewSubscriptionUseCase(repo interfaces.ISubscriptionRepository, profileRepo interfaces.IProfileRepository, gateway interfaces.IBillingGateway) *SubscriptionUseCase {
	return &SubscriptionUseCase{repo: repo, profileRepo: profileRepo, gateway: gateway}
}

func (u *SubscriptionUseCase) GetByUserID(ctx context.Context, userID string) (entities.Subscription, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Subscription{}, ErrInvalidUserID
	}

	s, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		return entities.Subscription{}, err
	}
	if s.UserID == "" {
		return entities.Subscription{}, ErrSubscriptionNotFound
	}
	return s, nil
}

func (u *SubscriptionUseCase) CreateCheckout(ctx context.Context, userID string, tier entities.SubscriptionTier, backURL string) (interfaces.CheckoutSession, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return interfaces.CheckoutSession{}, ErrInvalidUserID
	}
	if tier != entities.TierPremium && tier != entities.TierPro {
		return interfaces.CheckoutSession{}, ErrInvalidTier
	}
	if u.gateway == nil {
		return interfaces.CheckoutSession{}, ErrBillingNotConfigured
	}

	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return interfaces.CheckoutSession{}, err
	}
	if profile.UserID == "" {
		return interfaces.CheckoutSession{}, ErrProfileNotFound
	}

	log.Printf("[billing][usecase] checkout start user_id=%s tier=%s", userID, tier)
	session, err := u.gateway.CreateCheckout(ctx, interfaces.CheckoutRequest{
		UserID:     userID,
		PayerEmail: profile.Email,
		Tier:       tier,
		BackURL:    backURL,
	})
	if err != nil {
		log.Printf("[billing][usecase] checkout failed user_id=%s err=%v", userID, err)
		return interfaces.CheckoutSession{}, err
	}

	if profile.BillingCustomerID == "" && session.CustomerID != "" {
		if _, err := u.profileRepo.UpdateBillingCustomerID(ctx, userID, session.CustomerID); err != nil {
			log.Printf("[billing][usecase] billing customer link failed user_id=%s err=%v", userID, err)
		}
	}

	log.Printf("[billing][usecase] checkout success user_id=%s session_id=%s", userID, session.ID)
	return session, nil
}

func (u *SubscriptionUseCase) HandleProviderEvent(ctx context.Context, event ProviderEvent) error {
	if event.Type != eventTypeSubscription {
		log.Printf("[billing][usecase] ignoring event type=%s action=%s", event.Type, event.Action)
		return nil
	}
	resourceID := strings.TrimSpace(event.ResourceID)
	if resourceID == "" {
		log.Printf("[billing][usecase] event without resource id type=%s", event.Type)
		return nil
	}
	if u.gateway == nil {
		return ErrBillingNotConfigured
	}

	sub, err := u.gateway.GetSubscription(ctx, resourceID)
	if err != nil {
		log.Printf("[billing][usecase] provider lookup failed subscription_id=%s err=%v", resourceID, err)
		return err
	}
	if sub.UserID == "" {
		// Not one of ours (no user reference); acknowledge and move on.
		log.Printf("[billing][usecase] event for unlinked subscription subscription_id=%s", resourceID)
		return nil
	}

	_, err = u.upsertFromProvider(ctx, sub.UserID, sub)
	if err != nil {
		return err
	}
	log.Printf("[billing][usecase] event applied user_id=%s subscription_id=%s status=%s tier=%s", sub.UserID, sub.ID, sub.Status, sub.Tier)
	return nil
}

// Sync reconciles the local record against the provider. It exists because
// webhooks can be dropped: the profile page triggers it after returning
// from checkout.
func (u *SubscriptionUseCase) Sync(ctx context.Context, userID string) (entities.Subscription, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Subscription{}, ErrInvalidUserID
	}
	if u.gateway == nil {
		return entities.Subscription{}, ErrBillingNotConfigured
	}

	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return entities.Subscription{}, err
	}
	if profile.UserID == "" || profile.BillingCustomerID == "" {
		return entities.Subscription{}, ErrNoBillingCustomer
	}

	subs, err := u.gateway.ListSubscriptionsByCustomer(ctx, profile.BillingCustomerID)
	if err != nil {
		return entities.Subscription{}, err
	}

	var current *interfaces.ProviderSubscription
	for i := range subs {
		if subs[i].Status == entities.SubscriptionStatusActive || subs[i].Status == entities.SubscriptionStatusTrialing {
			current = &subs[i]
			break
		}
	}

	if current == nil {
		// Nothing live at the provider; cancel a stale local record.
		existing, err := u.repo.GetByUserID(ctx, userID)
		if err != nil {
			return entities.Subscription{}, err
		}
		if existing.UserID == "" {
			return entities.Subscription{}, ErrSubscriptionNotFound
		}
		if existing.Status != entities.SubscriptionStatusCanceled {
			existing.Status = entities.SubscriptionStatusCanceled
			existing.UpdatedAt = time.Now().UTC()
			return u.repo.Upsert(ctx, existing)
		}
		return existing, nil
	}

	return u.upsertFromProvider(ctx, userID, *current)
}

func (u *SubscriptionUseCase) upsertFromProvider(ctx context.Context, userID string, sub interfaces.ProviderSubscription) (entities.Subscription, error) {
	now := time.Now().UTC()
	record := entities.Subscription{
		ID:                     uuid.NewString(),
		UserID:                 userID,
		ProviderSubscriptionID: sub.ID,
		BillingCustomerID:      sub.CustomerID,
		Status:                 sub.Status,
		Tier:                   sub.Tier,
		CurrentPeriodEnd:       sub.CurrentPeriodEnd,
		CreatedAt:              now,
		UpdatedAt:              now,
	}

	if existing, err := u.repo.GetByUserID(ctx, userID); err != nil {
		return entities.Subscription{}, err
	} else if existing.UserID != "" {
		record.ID = existing.ID
		record.CreatedAt = existing.CreatedAt
	}

	return u.repo.Upsert(ctx, record)
}
