package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
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

const validQuoteBody = `{
	"service_type": "Plumbing repair",
	"market_rate": 100,
	"market_demand": "Medium",
	"location": "Austin",
	"complexity": "Moderate",
	"seasonal_factor": "Normal",
	"experience_level": "Intermediate",
	"equipment_requirements": "Standard"
}`

func authAs(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserIDKey, userID)
	}
}

func newQuoteTestRouter(t *testing.T) (*gin.Engine, *mocks.MockIQuoteUseCase) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIQuoteUseCase(ctrl)
	h := NewQuoteHandler(uc)

	r := gin.New()
	r.POST("/v1/quotes/preview", h.PreviewQuote)
	auth := r.Group("", authAs("user-1"))
	auth.POST("/v1/quotes", h.CreateQuote)
	auth.GET("/v1/quotes", h.ListQuotes)
	auth.GET("/v1/quotes/:id", h.GetQuote)
	auth.GET("/v1/quotes/:id/history", h.GetQuoteHistory)
	auth.DELETE("/v1/quotes/:id", h.DeleteQuote)
	auth.GET("/v1/quotes/:id/pdf", h.ExportQuotePDF)
	return r, uc
}

func TestQuoteHandler_PreviewQuote(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := newQuoteTestRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/preview", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		r, _ := newQuoteTestRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/preview", bytes.NewBufferString(`{"market_rate":100}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newQuoteTestRouter(t)
		uc.EXPECT().Preview(gomock.Any(), gomock.Any()).Return(pricing.QuoteResult{
			CalculatedPrice: 100,
			PriceRange:      pricing.PriceRange{Min: 90, Max: 110},
			ValidityDays:    30,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/preview", bytes.NewBufferString(validQuoteBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if body["formatted_price"] != "$100.00" {
			t.Fatalf("unexpected formatted price: %v", body["formatted_price"])
		}
	})

	t.Run("engine validation error", func(t *testing.T) {
		r, uc := newQuoteTestRouter(t)
		uc.EXPECT().Preview(gomock.Any(), gomock.Any()).Return(pricing.QuoteResult{}, usecase.ErrInvalidQuoteInput)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/preview", bytes.NewBufferString(validQuoteBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_CreateQuote(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, uc := newQuoteTestRouter(t)
		uc.EXPECT().Create(gomock.Any(), "user-1", gomock.Any()).Return(entities.Quote{
			ID:              "q-1",
			UserID:          "user-1",
			ServiceType:     "Plumbing repair",
			CalculatedPrice: 100,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(validQuoteBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("internal error", func(t *testing.T) {
		r, uc := newQuoteTestRouter(t)
		uc.EXPECT().Create(gomock.Any(), "user-1", gomock.Any()).Return(entities.Quote{}, errors.New("dynamo down"))

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(validQuoteBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_GetQuote(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		r, uc := newQuoteTestRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "user-1", "q-404").Return(entities.Quote{}, usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newQuoteTestRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "user-1", "q-1").Return(entities.Quote{ID: "q-1", UserID: "user-1"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_GetQuoteHistory(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		r, uc := newQuoteTestRouter(t)
		uc.EXPECT().History(gomock.Any(), "user-1", "q-404").Return(nil, usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-404/history", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newQuoteTestRouter(t)
		uc.EXPECT().History(gomock.Any(), "user-1", "q-1").Return([]entities.QuoteHistory{
			{ID: "h-1", QuoteID: "q-1", Action: entities.QuoteActionCreated},
			{ID: "h-2", QuoteID: "q-1", Action: entities.QuoteActionSent},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-1/history", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}

		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if len(body) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(body))
		}
		if body[0]["action"] != "created" || body[1]["action"] != "sent" {
			t.Fatalf("unexpected actions: %v", body)
		}
	})
}

func TestQuoteHandler_ListQuotes(t *testing.T) {
	r, uc := newQuoteTestRouter(t)
	uc.EXPECT().ListByUserID(gomock.Any(), "user-1").Return([]entities.Quote{
		{ID: "q-1", UserID: "user-1"},
		{ID: "q-2", UserID: "user-1"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/quotes", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(body) != 2 {
		t.Fatalf("expected 2 quotes, got %d", len(body))
	}
}

func TestQuoteHandler_DeleteQuote(t *testing.T) {
	r, uc := newQuoteTestRouter(t)
	uc.EXPECT().Delete(gomock.Any(), "user-1", "q-1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/quotes/q-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestQuoteHandler_ExportQuotePDF(t *testing.T) {
	t.Run("free tier forbidden", func(t *testing.T) {
		r, uc := newQuoteTestRouter(t)
		uc.EXPECT().RenderPDF(gomock.Any(), "user-1", "q-1").Return(nil, usecase.ErrExportNotAllowed)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-1/pdf", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("success streams pdf", func(t *testing.T) {
		r, uc := newQuoteTestRouter(t)
		uc.EXPECT().RenderPDF(gomock.Any(), "user-1", "q-1").Return([]byte("%PDF-1.4 fake"), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-1/pdf", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
			t.Fatalf("unexpected content type: %s", ct)
		}
		if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
			t.Fatal("body is not a PDF")
		}
	})
}
