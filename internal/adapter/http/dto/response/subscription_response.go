package response

import (
	"time"

	"quotecalc/internal/domain/entities"
	"quotecalc/internal/usecase/interfaces"
)

type SubscriptionResponse struct {
	Tier             string     `json:"tier"`
	Status           string     `json:"status"`
	Entitled         bool       `json:"entitled"`
	CurrentPeriodEnd *time.Time `json:"current_period_end,omitempty"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func FromSubscription(s entities.Subscription) SubscriptionResponse {
	resp := SubscriptionResponse{
		Tier:      string(s.Tier),
		Status:    string(s.Status),
		Entitled:  s.IsPremium(),
		UpdatedAt: s.UpdatedAt,
	}
	if !s.CurrentPeriodEnd.IsZero() {
		end := s.CurrentPeriodEnd
		resp.CurrentPeriodEnd = &end
	}
	return resp
}

// FreeSubscription is what callers without any subscription record see.
func FreeSubscription() SubscriptionResponse {
	return SubscriptionResponse{
		Tier:     string(entities.TierFree),
		Status:   string(entities.SubscriptionStatusCanceled),
		Entitled: false,
	}
}

type CheckoutResponse struct {
	SessionID   string `json:"session_id"`
	CheckoutURL string `json:"checkout_url"`
}

func FromCheckoutSession(s interfaces.CheckoutSession) CheckoutResponse {
	return CheckoutResponse{
		SessionID:   s.ID,
		CheckoutURL: s.URL,
	}
}
