package handlers

import (
	"errors"
	"net/http"

	request "quotecalc/internal/adapter/http/dto/request"
	response "quotecalc/internal/adapter/http/dto/response"
	"quotecalc/internal/adapter/http/middleware"
	"quotecalc/internal/domain/entities"
	"quotecalc/internal/usecase"
	"quotecalc/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_CHECKOUT_INPUT", "Invalid checkout payload", http.StatusBadRequest)

// BillingHandler handles subscription state reads, hosted checkout
// creation, provider webhooks and explicit reconciliation.

type BillingHandler struct {
	usecase usecase.ISubscriptionUseCase
}

func NewBillingHandler(uc usecase.ISubscriptionUseCase) *BillingHandler {
	return &BillingHandler{usecase: uc}
}

// GetSubscription returns the caller's subscription. Users without any
// record are on the free tier, not an error.
func (h *BillingHandler) GetSubscription(c *gin.Context) {
	sub, err := h.usecase.GetByUserID(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		if errors.Is(err, usecase.ErrSubscriptionNotFound) {
			c.JSON(http.StatusOK, response.FreeSubscription())
			return
		}
		appErr := mapBillingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSubscription(sub))
}

func (h *BillingHandler) CreateCheckout(c *gin.Context) {
	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	session, err := h.usecase.CreateCheckout(
		c.Request.Context(),
		middleware.UserID(c),
		entities.SubscriptionTier(payload.Tier),
		payload.BackURL,
	)
	if err != nil {
		appErr := mapBillingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCheckoutSession(session))
}

// Sync reconciles the caller's local record against the billing provider.
func (h *BillingHandler) Sync(c *gin.Context) {
	sub, err := h.usecase.Sync(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		appErr := mapBillingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSubscription(sub))
}

// HandleWebhook ingests billing provider notifications. The body is an
// untrusted hint: a malformed or unknown event is acknowledged with 200 so
// the provider stops retrying, and real state is re-fetched upstream.
func (h *BillingHandler) HandleWebhook(c *gin.Context) {
	var event struct {
		Type   string `json:"type"`
		Action string `json:"action"`
		Data   struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := c.ShouldBindJSON(&event); err != nil {
		c.Status(http.StatusOK)
		return
	}

	err := h.usecase.HandleProviderEvent(c.Request.Context(), usecase.ProviderEvent{
		Type:       event.Type,
		Action:     event.Action,
		ResourceID: event.Data.ID,
	})
	if err != nil {
		appErr := mapBillingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusOK)
}

func mapBillingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID), errors.Is(err, usecase.ErrInvalidTier):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProfileNotFound):
		return pkg.NewDomainErrorSimple("PROFILE_REQUIRED", "A profile is required before checkout", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoBillingCustomer):
		return pkg.NewDomainErrorSimple("NO_BILLING_CUSTOMER", "No billing customer linked to this account", http.StatusConflict)
	case errors.Is(err, usecase.ErrSubscriptionNotFound):
		return pkg.NewDomainErrorSimple("SUBSCRIPTION_NOT_FOUND", "Subscription not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBillingNotConfigured):
		return pkg.NewDomainErrorSimple("BILLING_UNAVAILABLE", "Billing is not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
