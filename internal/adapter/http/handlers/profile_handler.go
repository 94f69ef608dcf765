package handlers

import (
	"errors"
	"net/http"

	request "quotecalc/internal/adapter/http/dto/request"
	response "quotecalc/internal/adapter/http/dto/response"
	"quotecalc/internal/adapter/http/middleware"
	"quotecalc/internal/domain/pricing"
	"quotecalc/internal/usecase"
	"quotecalc/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidProfilePayload = pkg.NewDomainErrorSimple("INVALID_PROFILE_INPUT", "Invalid profile payload", http.StatusBadRequest)

// ProfileHandler handles HTTP requests for the caller's business profile.

type ProfileHandler struct {
	usecase usecase.IProfileUseCase
}

func NewProfileHandler(uc usecase.IProfileUseCase) *ProfileHandler {
	return &ProfileHandler{usecase: uc}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.usecase.GetByUserID(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		appErr := mapProfileError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProfile(profile))
}

// UpsertProfile creates or updates the caller's profile. The email comes
// from the token when present; the body email is only a fallback.
func (h *ProfileHandler) UpsertProfile(c *gin.Context) {
	var payload request.ProfileRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProfilePayload.HTTPStatus, errInvalidProfilePayload.ToHTTPError())
		return
	}

	email := middleware.Email(c)
	if email == "" {
		email = payload.Email
	}

	profile, err := h.usecase.Upsert(
		c.Request.Context(),
		middleware.UserID(c),
		email,
		payload.CompanyName,
		pricing.ExperienceLevel(payload.ExperienceLevel),
	)
	if err != nil {
		appErr := mapProfileError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProfile(profile))
}

func mapProfileError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID), errors.Is(err, usecase.ErrInvalidEmail), errors.Is(err, usecase.ErrInvalidExperience):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProfileNotFound):
		return pkg.NewDomainErrorSimple("PROFILE_NOT_FOUND", "Profile not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
