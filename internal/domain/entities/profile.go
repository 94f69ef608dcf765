package entities

import (
	"time"

	"quotecalc/internal/domain/pricing"
)

// Profile is the per-user business profile.
//
// Storage model (DynamoDB):
//   - PK: user_id
//
// BillingCustomerID links the profile to the external billing provider's
// customer record; it is set lazily on first checkout.
type Profile struct {
	UserID            string                  `json:"user_id"`
	Email             string                  `json:"email"`
	CompanyName       string                  `json:"company_name,omitempty"`
	ExperienceLevel   pricing.ExperienceLevel `json:"experience_level,omitempty"`
	BillingCustomerID string                  `json:"billing_customer_id,omitempty"`
	CreatedAt         time.Time               `json:"created_at"`
	UpdatedAt         time.Time               `json:"updated_at"`
}
