package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"quotecalc/internal/domain/entities"
	"quotecalc/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preapproval"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
var ErrUnknownSubscriptionTier = errors.New("unknown subscription tier")

// Monthly tier prices, USD.
var tierPrices = map[entities.SubscriptionTier]float64{
	entities.TierPremium: 9.90,
	entities.TierPro:     19.90,
}

// MercadoPagoGateway implements IBillingGateway on top of Mercado Pago
// preapprovals (recurring subscriptions).
//
// Mercado Pago has no customer object and no session metadata, so two
// conventions carry our identifiers across the provider boundary:
//   - the payer email doubles as the billing customer id
//   - the preapproval external_reference encodes "<user_id>:<tier>"
type MercadoPagoGateway struct {
	client   preapproval.Client
	mockMode bool

	// mock state, keyed by preapproval id
	mockSubs map[string]interfaces.ProviderSubscription
}

var _ interfaces.IBillingGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[billing][gateway] mock mode enabled")
		return &MercadoPagoGateway{
			mockMode: true,
			mockSubs: map[string]interfaces.ProviderSubscription{},
		}, nil
	}

	if accessToken == "" {
		log.Printf("[billing][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[billing][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[billing][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: preapproval.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreateCheckout(ctx context.Context, req interfaces.CheckoutRequest) (interfaces.CheckoutSession, error) {
	price, ok := tierPrices[req.Tier]
	if !ok {
		return interfaces.CheckoutSession{}, fmt.Errorf("%w: %s", ErrUnknownSubscriptionTier, req.Tier)
	}

	if g != nil && g.mockMode {
		id := uuid.NewString()
		g.mockSubs[id] = interfaces.ProviderSubscription{
			ID:               id,
			CustomerID:       req.PayerEmail,
			UserID:           req.UserID,
			Tier:             req.Tier,
			Status:           entities.SubscriptionStatusActive,
			CurrentPeriodEnd: time.Now().UTC().AddDate(0, 1, 0),
		}
		log.Printf("[billing][gateway] mock checkout created preapproval_id=%s tier=%s", id, req.Tier)
		return interfaces.CheckoutSession{
			ID:         id,
			URL:        "https://mock.mercadopago.local/checkout/" + id,
			CustomerID: req.PayerEmail,
		}, nil
	}

	if g == nil || g.client == nil {
		return interfaces.CheckoutSession{}, ErrMercadoPagoGatewayNotConfigured
	}

	log.Printf("[billing][gateway] checkout start user_id=%s tier=%s", req.UserID, req.Tier)
	resp, err := g.client.Create(ctx, preapproval.Request{
		Reason:            fmt.Sprintf("QuoteCalc %s subscription", req.Tier),
		ExternalReference: encodeExternalReference(req.UserID, req.Tier),
		PayerEmail:        req.PayerEmail,
		BackURL:           req.BackURL,
		AutoRecurring: &preapproval.AutoRecurringRequest{
			Frequency:         1,
			FrequencyType:     "months",
			TransactionAmount: price,
			CurrencyID:        "USD",
		},
	})
	if err != nil {
		log.Printf("[billing][gateway] checkout failed user_id=%s err=%v", req.UserID, err)
		return interfaces.CheckoutSession{}, err
	}

	log.Printf("[billing][gateway] checkout created preapproval_id=%s status=%s", resp.ID, resp.Status)
	return interfaces.CheckoutSession{
		ID:         resp.ID,
		URL:        resp.InitPoint,
		CustomerID: req.PayerEmail,
	}, nil
}

func (g *MercadoPagoGateway) GetSubscription(ctx context.Context, providerSubscriptionID string) (interfaces.ProviderSubscription, error) {
	if g != nil && g.mockMode {
		return g.mockSubs[providerSubscriptionID], nil
	}
	if g == nil || g.client == nil {
		return interfaces.ProviderSubscription{}, ErrMercadoPagoGatewayNotConfigured
	}

	resp, err := g.client.Get(ctx, providerSubscriptionID)
	if err != nil {
		log.Printf("[billing][gateway] get failed preapproval_id=%s err=%v", providerSubscriptionID, err)
		return interfaces.ProviderSubscription{}, err
	}
	return fromPreapproval(resp), nil
}

func (g *MercadoPagoGateway) ListSubscriptionsByCustomer(ctx context.Context, billingCustomerID string) ([]interfaces.ProviderSubscription, error) {
	if g != nil && g.mockMode {
		var subs []interfaces.ProviderSubscription
		for _, s := range g.mockSubs {
			if s.CustomerID == billingCustomerID {
				subs = append(subs, s)
			}
		}
		return subs, nil
	}
	if g == nil || g.client == nil {
		return nil, ErrMercadoPagoGatewayNotConfigured
	}

	resp, err := g.client.Search(ctx, preapproval.SearchRequest{
		Limit: 50,
		Filters: map[string]string{
			"payer_email": billingCustomerID,
			"sort":        "date_created:desc",
		},
	})
	if err != nil {
		log.Printf("[billing][gateway] search failed customer_id=%s err=%v", billingCustomerID, err)
		return nil, err
	}

	subs := make([]interfaces.ProviderSubscription, 0, len(resp.Results))
	for i := range resp.Results {
		subs = append(subs, fromPreapproval(&resp.Results[i]))
	}
	return subs, nil
}

func fromPreapproval(resp *preapproval.Response) interfaces.ProviderSubscription {
	userID, tier := decodeExternalReference(resp.ExternalReference)
	return interfaces.ProviderSubscription{
		ID:               resp.ID,
		CustomerID:       resp.PayerEmail,
		UserID:           userID,
		Tier:             tier,
		Status:           mapPreapprovalStatus(resp.Status),
		CurrentPeriodEnd: resp.NextPaymentDate,
	}
}

// mapPreapprovalStatus translates Mercado Pago preapproval states into the
// local lifecycle. Pending means the payer has not authorized yet, which is
// closest to a trial; paused preapprovals stop collecting, so past_due.
func mapPreapprovalStatus(status string) entities.SubscriptionStatus {
	switch status {
	case "authorized":
		return entities.SubscriptionStatusActive
	case "pending":
		return entities.SubscriptionStatusTrialing
	case "paused":
		return entities.SubscriptionStatusPastDue
	default:
		return entities.SubscriptionStatusCanceled
	}
}

func encodeExternalReference(userID string, tier entities.SubscriptionTier) string {
	return userID + ":" + string(tier)
}

func decodeExternalReference(ref string) (userID string, tier entities.SubscriptionTier) {
	idx := strings.LastIndex(ref, ":")
	if idx < 0 {
		return ref, entities.TierFree
	}
	return ref[:idx], entities.SubscriptionTier(ref[idx+1:])
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
