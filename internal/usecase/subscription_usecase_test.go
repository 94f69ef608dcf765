package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"quotecalc/internal/domain/entities"
	"quotecalc/internal/usecase/interfaces"
	mock_interfaces "quotecalc/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type subscriptionMocks struct {
	repo     *mock_interfaces.MockISubscriptionRepository
	profiles *mock_interfaces.MockIProfileRepository
	gateway  *mock_interfaces.MockIBillingGateway
}

func newSubscriptionUseCaseWithMocks(t *testing.T) (*SubscriptionUseCase, subscriptionMocks) {
	ctrl := gomock.NewController(t)
	m := subscriptionMocks{
		repo:     mock_interfaces.NewMockISubscriptionRepository(ctrl),
		profiles: mock_interfaces.NewMockIProfileRepository(ctrl),
		gateway:  mock_interfaces.NewMockIBillingGateway(ctrl),
	}
	return NewSubscriptionUseCase(m.repo, m.profiles, m.gateway), m
}

func TestSubscriptionUseCase_CreateCheckout(t *testing.T) {
	t.Run("free tier rejected", func(t *testing.T) {
		uc, _ := newSubscriptionUseCaseWithMocks(t)
		if _, err := uc.CreateCheckout(context.Background(), "user-1", entities.TierFree, ""); !errors.Is(err, ErrInvalidTier) {
			t.Fatalf("expected ErrInvalidTier, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewSubscriptionUseCase(nil, nil, nil)
		if _, err := uc.CreateCheckout(context.Background(), "user-1", entities.TierPro, ""); !errors.Is(err, ErrBillingNotConfigured) {
			t.Fatalf("expected ErrBillingNotConfigured, got %v", err)
		}
	})

	t.Run("missing profile", func(t *testing.T) {
		uc, m := newSubscriptionUseCaseWithMocks(t)
		m.profiles.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(entities.Profile{}, nil)
		if _, err := uc.CreateCheckout(context.Background(), "user-1", entities.TierPro, ""); !errors.Is(err, ErrProfileNotFound) {
			t.Fatalf("expected ErrProfileNotFound, got %v", err)
		}
	})

	t.Run("success links billing customer", func(t *testing.T) {
		uc, m := newSubscriptionUseCaseWithMocks(t)
		m.profiles.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(entities.Profile{
			UserID: "user-1", Email: "a@b.c",
		}, nil)
		m.gateway.EXPECT().CreateCheckout(gomock.Any(), interfaces.CheckoutRequest{
			UserID: "user-1", PayerEmail: "a@b.c", Tier: entities.TierPro, BackURL: "https://app/profile",
		}).Return(interfaces.CheckoutSession{ID: "sess-1", URL: "https://pay/sess-1", CustomerID: "a@b.c"}, nil)
		m.profiles.EXPECT().UpdateBillingCustomerID(gomock.Any(), "user-1", "a@b.c").Return(entities.Profile{}, nil)

		session, err := uc.CreateCheckout(context.Background(), "user-1", entities.TierPro, "https://app/profile")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if session.URL != "https://pay/sess-1" {
			t.Fatalf("unexpected session: %+v", session)
		}
	})
}

func TestSubscriptionUseCase_HandleProviderEvent(t *testing.T) {
	t.Run("foreign event types are ignored", func(t *testing.T) {
		uc, _ := newSubscriptionUseCaseWithMocks(t)
		err := uc.HandleProviderEvent(context.Background(), ProviderEvent{Type: "payment", ResourceID: "123"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unlinked subscription acknowledged", func(t *testing.T) {
		uc, m := newSubscriptionUseCaseWithMocks(t)
		m.gateway.EXPECT().GetSubscription(gomock.Any(), "sub-1").Return(interfaces.ProviderSubscription{ID: "sub-1"}, nil)
		err := uc.HandleProviderEvent(context.Background(), ProviderEvent{Type: "subscription_preapproval", ResourceID: "sub-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("provider lookup error propagates", func(t *testing.T) {
		uc, m := newSubscriptionUseCaseWithMocks(t)
		m.gateway.EXPECT().GetSubscription(gomock.Any(), "sub-1").Return(interfaces.ProviderSubscription{}, errors.New("provider down"))
		err := uc.HandleProviderEvent(context.Background(), ProviderEvent{Type: "subscription_preapproval", ResourceID: "sub-1"})
		if err == nil || err.Error() != "provider down" {
			t.Fatalf("expected provider error, got %v", err)
		}
	})

	t.Run("event upserts mapped record", func(t *testing.T) {
		uc, m := newSubscriptionUseCaseWithMocks(t)
		periodEnd := time.Now().UTC().Add(30 * 24 * time.Hour)
		m.gateway.EXPECT().GetSubscription(gomock.Any(), "sub-1").Return(interfaces.ProviderSubscription{
			ID: "sub-1", UserID: "user-1", CustomerID: "a@b.c",
			Tier: entities.TierPro, Status: entities.SubscriptionStatusActive, CurrentPeriodEnd: periodEnd,
		}, nil)
		m.repo.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(entities.Subscription{}, nil)
		m.repo.EXPECT().Upsert(gomock.Any(), gomock.AssignableToTypeOf(entities.Subscription{})).DoAndReturn(
			func(_ context.Context, s entities.Subscription) (entities.Subscription, error) {
				if s.UserID != "user-1" || s.ProviderSubscriptionID != "sub-1" {
					t.Fatalf("unexpected record: %+v", s)
				}
				if s.Tier != entities.TierPro || s.Status != entities.SubscriptionStatusActive {
					t.Fatalf("unexpected tier/status: %+v", s)
				}
				if !s.CurrentPeriodEnd.Equal(periodEnd) {
					t.Fatalf("unexpected period end: %v", s.CurrentPeriodEnd)
				}
				return s, nil
			},
		)

		err := uc.HandleProviderEvent(context.Background(), ProviderEvent{Type: "subscription_preapproval", Action: "updated", ResourceID: "sub-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestSubscriptionUseCase_Sync(t *testing.T) {
	profile := entities.Profile{UserID: "user-1", Email: "a@b.c", BillingCustomerID: "a@b.c"}

	t.Run("no billing customer", func(t *testing.T) {
		uc, m := newSubscriptionUseCaseWithMocks(t)
		m.profiles.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(entities.Profile{UserID: "user-1"}, nil)
		if _, err := uc.Sync(context.Background(), "user-1"); !errors.Is(err, ErrNoBillingCustomer) {
			t.Fatalf("expected ErrNoBillingCustomer, got %v", err)
		}
	})

	t.Run("live subscription wins over canceled ones", func(t *testing.T) {
		uc, m := newSubscriptionUseCaseWithMocks(t)
		m.profiles.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(profile, nil)
		m.gateway.EXPECT().ListSubscriptionsByCustomer(gomock.Any(), "a@b.c").Return([]interfaces.ProviderSubscription{
			{ID: "sub-old", Status: entities.SubscriptionStatusCanceled, Tier: entities.TierPro},
			{ID: "sub-new", UserID: "user-1", Status: entities.SubscriptionStatusTrialing, Tier: entities.TierPremium, CustomerID: "a@b.c"},
		}, nil)
		m.repo.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(entities.Subscription{}, nil)
		m.repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Subscription) (entities.Subscription, error) {
				if s.ProviderSubscriptionID != "sub-new" || s.Status != entities.SubscriptionStatusTrialing {
					t.Fatalf("unexpected record: %+v", s)
				}
				return s, nil
			},
		)

		s, err := uc.Sync(context.Background(), "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Tier != entities.TierPremium {
			t.Fatalf("unexpected tier: %s", s.Tier)
		}
	})

	t.Run("nothing live cancels stale record", func(t *testing.T) {
		uc, m := newSubscriptionUseCaseWithMocks(t)
		m.profiles.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(profile, nil)
		m.gateway.EXPECT().ListSubscriptionsByCustomer(gomock.Any(), "a@b.c").Return(nil, nil)
		m.repo.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(entities.Subscription{
			ID: "rec-1", UserID: "user-1", Status: entities.SubscriptionStatusActive, Tier: entities.TierPro,
		}, nil)
		m.repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Subscription) (entities.Subscription, error) {
				if s.Status != entities.SubscriptionStatusCanceled {
					t.Fatalf("expected canceled, got %s", s.Status)
				}
				return s, nil
			},
		)

		if _, err := uc.Sync(context.Background(), "user-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("nothing live and no record", func(t *testing.T) {
		uc, m := newSubscriptionUseCaseWithMocks(t)
		m.profiles.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(profile, nil)
		m.gateway.EXPECT().ListSubscriptionsByCustomer(gomock.Any(), "a@b.c").Return(nil, nil)
		m.repo.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(entities.Subscription{}, nil)

		if _, err := uc.Sync(context.Background(), "user-1"); !errors.Is(err, ErrSubscriptionNotFound) {
			t.Fatalf("expected ErrSubscriptionNotFound, got %v", err)
		}
	})
}

func TestSubscriptionUseCase_GetByUserID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, m := newSubscriptionUseCaseWithMocks(t)
		m.repo.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(entities.Subscription{}, nil)
		if _, err := uc.GetByUserID(context.Background(), "user-1"); !errors.Is(err, ErrSubscriptionNotFound) {
			t.Fatalf("expected ErrSubscriptionNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newSubscriptionUseCaseWithMocks(t)
		m.repo.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(entities.Subscription{
			UserID: "user-1", Tier: entities.TierPro, Status: entities.SubscriptionStatusActive,
		}, nil)
		s, err := uc.GetByUserID(context.Background(), "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !s.IsPro() {
			t.Fatalf("expected pro entitlement: %+v", s)
		}
	})
}
