package api

import (
	"net/http"

	"fitbook-storefront/internal/domain/cart"
	"fitbook-storefront/internal/handler/httperr"
	"fitbook-storefront/internal/infra"
	"fitbook-storefront/internal/pkg/config"
	"fitbook-storefront/internal/pkg/cookie"
	"fitbook-storefront/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const (
	msgInternal         = "Internal server error"
	msgLoginRequired    = "Please log in to continue"
	msgSessionExpired   = "Your session has expired, please log in again"
	msgUnavailable      = "The booking service is temporarily unavailable, please try again"
	msgInvalidCourseID  = "Invalid course id"
	msgNoStorefront     = "Visitor context missing"
	msgCheckoutFailed   = "Checkout failed, your cart has not been changed"
	msgCheckoutInFlight = "Checkout is already in progress"
)

// abortWithUseCaseError maps storefront errors to a status and a message safe to show in the UI.
// Raw backend or transport errors are only kept on the gin context for logging.
func abortWithUseCaseError(c *gin.Context, cookieCfg config.CookieConfig, err error, fallback string) {
	switch {
	case errs.Is(err, errs.ErrSessionExpired):
		cookie.ClearAccessToken(c, cookieCfg)
		httperr.AbortWithError(c, http.StatusUnauthorized, err, msgSessionExpired, nil)
	case errs.Is(err, errs.ErrNotAuthenticated):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, msgLoginRequired, nil)
	case errs.Is(err, errs.ErrInvalidCredentials):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
	case errs.Is(err, cart.ErrInvalidCourseID):
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidCourseID, nil)
	case errs.Is(err, errs.ErrCourseNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Course not found", nil)
	case errs.Is(err, errs.ErrAlreadyPurchased):
		httperr.AbortWithError(c, http.StatusConflict, err, "You have already purchased this course", nil)
	case errs.Is(err, errs.ErrCartItemRejected):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, backendMessageOr(err, "Could not add to cart"), nil)
	case errs.Is(err, errs.ErrCartEmpty):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Your cart is empty", nil)
	case errs.Is(err, errs.ErrCheckoutInProgress):
		httperr.AbortWithError(c, http.StatusConflict, err, msgCheckoutInFlight, nil)
	case errs.Is(err, errs.ErrBackendUnavailable):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, msgUnavailable, nil)
	case errs.Is(err, errs.ErrCheckoutFailed):
		httperr.AbortWithError(c, http.StatusBadGateway, err, backendMessageOr(err, msgCheckoutFailed), nil)
	case infra.IsKind(err, infra.KindConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, backendMessageOr(err, fallback), nil)
	case infra.IsKind(err, infra.KindRejected):
		httperr.AbortWithError(c, http.StatusBadRequest, err, backendMessageOr(err, fallback), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal, nil)
	}
}

func backendMessageOr(err error, fallback string) string {
	if msg := infra.BackendMessage(err); msg != "" {
		return msg
	}
	return fallback
}
