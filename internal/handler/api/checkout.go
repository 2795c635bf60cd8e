package api

import (
	"net/http"

	resdto "fitbook-storefront/internal/handler/dto/response"
	"fitbook-storefront/internal/handler/httperr"
	"fitbook-storefront/internal/handler/middleware"
	"fitbook-storefront/internal/pkg/config"
	"fitbook-storefront/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	cfg config.Config
}

func NewCheckoutHandler(cfg config.Config) *CheckoutHandler {
	return &CheckoutHandler{cfg: cfg}
}

// @Summary Checkout
// @Description Place an order for the account cart. A second request while one is running is refused.
// @Tags checkout
// @Produce json
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	sf, ok := middleware.GetStorefront(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New(msgNoStorefront), msgInternal, nil)
		return
	}

	order, err := sf.Checkout(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, h.cfg.Cookie, err, msgCheckoutFailed)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromOrder(order))
}
