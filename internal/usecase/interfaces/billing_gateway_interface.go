package interfaces

import (
	"context"
	"time"

	"quotecalc/internal/domain/entities"
)

// CheckoutRequest describes the hosted checkout the gateway should create.
type CheckoutRequest struct {
	UserID     string
	PayerEmail string
	Tier       entities.SubscriptionTier
	BackURL    string
}

// CheckoutSession is the provider-side session the caller is redirected to.
type CheckoutSession struct {
	ID         string
	URL        string
	CustomerID string
}

// ProviderSubscription is a provider subscription with its status and tier
// already mapped onto the local vocabulary.
type ProviderSubscription struct {
	ID               string
	CustomerID       string
	UserID           string
	Tier             entities.SubscriptionTier
	Status           entities.SubscriptionStatus
	CurrentPeriodEnd time.Time
}

// IBillingGateway abstracts the external billing provider (e.g. Mercado
// Pago). The provider owns tier and status; this service mirrors them.

type IBillingGateway interface {
	CreateCheckout(ctx context.Context, req CheckoutRequest) (CheckoutSession, error)
	GetSubscription(ctx context.Context, providerSubscriptionID string) (ProviderSubscription, error)
	ListSubscriptionsByCustomer(ctx context.Context, billingCustomerID string) ([]ProviderSubscription, error)
}
