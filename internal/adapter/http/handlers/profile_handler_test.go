package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"quotecalc/internal/adapter/http/handlers/mocks"
	"quotecalc/internal/adapter/http/middleware"
	"quotecalc/internal/domain/entities"
	"quotecalc/internal/domain/pricing"
	"quotecalc/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newProfileTestRouter(t *testing.T, email string) (*gin.Engine, *mocks.MockIProfileUseCase) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIProfileUseCase(ctrl)
	h := NewProfileHandler(uc)

	r := gin.New()
	auth := r.Group("", func(c *gin.Context) {
		c.Set(middleware.ContextUserIDKey, "user-1")
		if email != "" {
			c.Set(middleware.ContextEmailKey, email)
		}
	})
	auth.GET("/v1/profile", h.GetProfile)
	auth.PUT("/v1/profile", h.UpsertProfile)
	return r, uc
}

func TestProfileHandler_GetProfile(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		r, uc := newProfileTestRouter(t, "a@b.c")
		uc.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(entities.Profile{}, usecase.ErrProfileNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/profile", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newProfileTestRouter(t, "a@b.c")
		uc.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(entities.Profile{
			UserID: "user-1", Email: "a@b.c", CompanyName: "Acme Plumbing",
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/profile", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestProfileHandler_UpsertProfile(t *testing.T) {
	t.Run("token email wins over body email", func(t *testing.T) {
		r, uc := newProfileTestRouter(t, "token@b.c")
		uc.EXPECT().
			Upsert(gomock.Any(), "user-1", "token@b.c", "Acme Plumbing", pricing.ExperienceExpert).
			Return(entities.Profile{UserID: "user-1", Email: "token@b.c"}, nil)

		body := `{"email":"body@b.c","company_name":"Acme Plumbing","experience_level":"Expert"}`
		req := httptest.NewRequest(http.MethodPut, "/v1/profile", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("body email used when token has none", func(t *testing.T) {
		r, uc := newProfileTestRouter(t, "")
		uc.EXPECT().
			Upsert(gomock.Any(), "user-1", "body@b.c", "", pricing.ExperienceLevel("")).
			Return(entities.Profile{UserID: "user-1", Email: "body@b.c"}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/profile", bytes.NewBufferString(`{"email":"body@b.c"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid experience", func(t *testing.T) {
		r, uc := newProfileTestRouter(t, "a@b.c")
		uc.EXPECT().
			Upsert(gomock.Any(), "user-1", "a@b.c", "", pricing.ExperienceLevel("Wizard")).
			Return(entities.Profile{}, usecase.ErrInvalidExperience)

		req := httptest.NewRequest(http.MethodPut, "/v1/profile", bytes.NewBufferString(`{"experience_level":"Wizard"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
