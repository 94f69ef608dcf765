package response

import (
	"time"

	"quotecalc/internal/domain/entities"
)

type ProfileResponse struct {
	UserID          string    `json:"user_id"`
	Email           string    `json:"email"`
	CompanyName     string    `json:"company_name,omitempty"`
	ExperienceLevel string    `json:"experience_level,omitempty"`
	BillingLinked   bool      `json:"billing_linked"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// FromProfile maps the entity to the API shape. The raw billing customer id
// never leaves the service; clients only learn whether a link exists.
func FromProfile(p entities.Profile) ProfileResponse {
	return ProfileResponse{
		UserID:          p.UserID,
		Email:           p.Email,
		CompanyName:     p.CompanyName,
		ExperienceLevel: string(p.ExperienceLevel),
		BillingLinked:   p.BillingCustomerID != "",
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
