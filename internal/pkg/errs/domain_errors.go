package errs

import "errors"

// Sentinel errors shared across usecase layers
var (
	// Session errors
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrSessionExpired     = errors.New("session expired")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Cart errors
	ErrCourseNotFound     = errors.New("course not found")
	ErrAlreadyPurchased   = errors.New("course already purchased")
	ErrCartItemRejected   = errors.New("cart item rejected")
	ErrCartEmpty          = errors.New("cart is empty")
	ErrCheckoutInProgress = errors.New("checkout in progress")
	ErrCheckoutFailed     = errors.New("checkout failed")

	// Operation errors
	ErrBackendUnavailable = errors.New("backend unavailable")
	ErrStorageFailed      = errors.New("storage operation failed")
)
