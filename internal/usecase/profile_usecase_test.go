package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"quotecalc/internal/domain/entities"
	"quotecalc/internal/domain/pricing"
	mock_interfaces "quotecalc/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestProfileUseCase_GetByUserID(t *testing.T) {
	t.Run("invalid user id", func(t *testing.T) {
		uc := NewProfileUseCase(nil)
		if _, err := uc.GetByUserID(context.Background(), " "); !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIProfileRepository(ctrl)
		uc := NewProfileUseCase(repo)
		repo.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(entities.Profile{}, nil)

		if _, err := uc.GetByUserID(context.Background(), "user-1"); !errors.Is(err, ErrProfileNotFound) {
			t.Fatalf("expected ErrProfileNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIProfileRepository(ctrl)
		uc := NewProfileUseCase(repo)
		repo.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(entities.Profile{UserID: "user-1", Email: "a@b.c"}, nil)

		p, err := uc.GetByUserID(context.Background(), "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Email != "a@b.c" {
			t.Fatalf("unexpected profile: %+v", p)
		}
	})
}

func TestProfileUseCase_Upsert(t *testing.T) {
	t.Run("invalid email", func(t *testing.T) {
		uc := NewProfileUseCase(nil)
		if _, err := uc.Upsert(context.Background(), "user-1", "not-an-email", "", ""); !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("expected ErrInvalidEmail, got %v", err)
		}
	})

	t.Run("invalid experience level", func(t *testing.T) {
		uc := NewProfileUseCase(nil)
		if _, err := uc.Upsert(context.Background(), "user-1", "a@b.c", "", "Wizard"); !errors.Is(err, ErrInvalidExperience) {
			t.Fatalf("expected ErrInvalidExperience, got %v", err)
		}
	})

	t.Run("new profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIProfileRepository(ctrl)
		uc := NewProfileUseCase(repo)

		repo.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(entities.Profile{}, nil)
		repo.EXPECT().Upsert(gomock.Any(), gomock.AssignableToTypeOf(entities.Profile{})).DoAndReturn(
			func(_ context.Context, p entities.Profile) (entities.Profile, error) {
				if p.UserID != "user-1" || p.Email != "a@b.c" || p.CompanyName != "Acme" {
					t.Fatalf("unexpected profile: %+v", p)
				}
				if p.CreatedAt.IsZero() || p.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return p, nil
			},
		)

		if _, err := uc.Upsert(context.Background(), " user-1 ", " a@b.c ", " Acme ", pricing.ExperienceExpert); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("existing profile keeps billing linkage and creation time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIProfileRepository(ctrl)
		uc := NewProfileUseCase(repo)

		created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
		repo.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(entities.Profile{
			UserID: "user-1", Email: "old@b.c", BillingCustomerID: "cus-9", CreatedAt: created,
		}, nil)
		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Profile) (entities.Profile, error) {
				if p.BillingCustomerID != "cus-9" {
					t.Fatalf("billing customer dropped: %+v", p)
				}
				if !p.CreatedAt.Equal(created) {
					t.Fatalf("creation time rewritten: %v", p.CreatedAt)
				}
				return p, nil
			},
		)

		if _, err := uc.Upsert(context.Background(), "user-1", "new@b.c", "Acme", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
