package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"quotecalc/internal/domain/entities"
	"quotecalc/internal/domain/pricing"
	"quotecalc/internal/usecase/interfaces"
)

var (
	ErrProfileNotFound   = errors.New("profile not found")
	ErrInvalidEmail      = errors.New("invalid email")
	ErrInvalidExperience = errors.New("invalid experience level")
)

// IProfileUseCase exposes business profile operations. The identity
// provider owns authentication; profiles only carry the business-facing
// fields a quote document needs plus the billing customer linkage.

type IProfileUseCase interface {
	GetByUserID(ctx context.Context, userID string) (entities.Profile, error)
	Upsert(ctx context.Context, userID, email, companyName string, experienceLevel pricing.ExperienceLevel) (entities.Profile, error)
}

type ProfileUseCase struct {
	repo interfaces.IProfileRepository
}

var _ IProfileUseCase = (*ProfileUseCase)(nil)

func NewProfileUseCase(repo interfaces.IProfileRepository) *ProfileUseCase {
	return &ProfileUseCase{repo: repo}
}

func (u *ProfileUseCase) GetByUserID(ctx context.Context, userID string) (entities.Profile, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Profile{}, ErrInvalidUserID
	}

	p, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		return entities.Profile{}, err
	}
	if p.UserID == "" {
		return entities.Profile{}, ErrProfileNotFound
	}
	return p, nil
}

func (u *ProfileUseCase) Upsert(ctx context.Context, userID, email, companyName string, experienceLevel pricing.ExperienceLevel) (entities.Profile, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Profile{}, ErrInvalidUserID
	}
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return entities.Profile{}, ErrInvalidEmail
	}
	if experienceLevel != "" {
		switch experienceLevel {
		case pricing.ExperienceBeginner, pricing.ExperienceIntermediate, pricing.ExperienceExpert:
		default:
			return entities.Profile{}, fmt.Errorf("%w: %q", ErrInvalidExperience, experienceLevel)
		}
	}

	now := time.Now().UTC()
	p := entities.Profile{
		UserID:          userID,
		Email:           email,
		CompanyName:     strings.TrimSpace(companyName),
		ExperienceLevel: experienceLevel,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	// Keep the billing linkage and original creation time across upserts.
	if existing, err := u.repo.GetByUserID(ctx, userID); err != nil {
		return entities.Profile{}, err
	} else if existing.UserID != "" {
		p.BillingCustomerID = existing.BillingCustomerID
		p.CreatedAt = existing.CreatedAt
	}

	return u.repo.Upsert(ctx, p)
}
