package api

import (
	"net/http"

	"genesis-storefront/internal/handler/httperr"
	"genesis-storefront/internal/pkg/errs"
	"genesis-storefront/internal/usecase/access"

	"github.com/gin-gonic/gin"
)

// abortWithUsecaseError maps usecase sentinels onto HTTP statuses.
func abortWithUsecaseError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrDestinationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Destination not found", nil)
	case errs.Is(err, errs.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errs.Is(err, errs.ErrInvalidBookingInput):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking request", err.Error())
	case errs.Is(err, errs.ErrInvalidIdentity):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid identity", nil)
	case errs.Is(err, errs.ErrInvalidTransition):
		httperr.AbortWithError(c, http.StatusConflict, err, "Booking cannot change to that status", nil)
	case errs.Is(err, errs.ErrIdentityRequired):
		httperr.AbortWithPrompt(c, http.StatusUnauthorized, err, string(access.PromptCustomerLogin), "Login required")
	case errs.Is(err, errs.ErrInvalidPasscode):
		httperr.AbortWithPrompt(c, http.StatusUnauthorized, err, string(access.PromptStaffLogin), "Invalid passcode")
	case errs.Is(err, errs.ErrNotInBackOffice):
		httperr.AbortWithError(c, http.StatusConflict, err, "Enter the back office first", nil)
	case errs.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}
