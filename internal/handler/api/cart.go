package api

import (
	"net/http"

	reqdto "fitbook-storefront/internal/handler/dto/request"
	resdto "fitbook-storefront/internal/handler/dto/response"
	"fitbook-storefront/internal/handler/httperr"
	"fitbook-storefront/internal/handler/middleware"
	"fitbook-storefront/internal/pkg/config"
	"fitbook-storefront/internal/pkg/errs"
	"fitbook-storefront/internal/usecase/storefront"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cfg config.Config
}

func NewCartHandler(cfg config.Config) *CartHandler {
	return &CartHandler{cfg: cfg}
}

// @Summary Get the active cart
// @Description Guest cart while anonymous, account cart once logged in
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Failure 401 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	sf, ok := h.storefront(c)
	if !ok {
		return
	}
	view, err := sf.Cart(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, h.cfg.Cookie, err, "Could not load cart")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Add a course to the cart
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.AddToCartRequest true "Course to add"
// @Success 200 {object} resdto.AddToCartResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/cart [post]
func (h *CartHandler) Add(c *gin.Context) {
	sf, ok := h.storefront(c)
	if !ok {
		return
	}

	var req reqdto.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	added, err := sf.AddToCart(c.Request.Context(), req.CourseID)
	if err != nil {
		abortWithUseCaseError(c, h.cfg.Cookie, err, "Could not add to cart")
		return
	}

	view, err := sf.Cart(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, h.cfg.Cookie, err, "Could not load cart")
		return
	}
	c.JSON(http.StatusOK, resdto.AddToCartResponse{Added: added, Cart: resdto.FromCartView(view)})
}

// @Summary Remove a course from the cart
// @Tags cart
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} resdto.RemoveFromCartResponse
// @Failure 400 {object} httperr.Response
// @Router /api/cart/{courseId} [delete]
func (h *CartHandler) Remove(c *gin.Context) {
	sf, ok := h.storefront(c)
	if !ok {
		return
	}

	removed, err := sf.RemoveFromCart(c.Request.Context(), c.Param("courseId"))
	if err != nil {
		abortWithUseCaseError(c, h.cfg.Cookie, err, "Could not remove from cart")
		return
	}

	view, err := sf.Cart(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, h.cfg.Cookie, err, "Could not load cart")
		return
	}
	c.JSON(http.StatusOK, resdto.RemoveFromCartResponse{Removed: removed, Cart: resdto.FromCartView(view)})
}

// @Summary Empty the guest cart
// @Tags cart
// @Success 204 "No Content"
// @Router /api/cart [delete]
func (h *CartHandler) ClearGuest(c *gin.Context) {
	sf, ok := h.storefront(c)
	if !ok {
		return
	}
	if err := sf.ClearGuestCart(c.Request.Context()); err != nil {
		abortWithUseCaseError(c, h.cfg.Cookie, err, "Could not clear cart")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CartHandler) storefront(c *gin.Context) (storefront.Storefront, bool) {
	sf, ok := middleware.GetStorefront(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New(msgNoStorefront), msgInternal, nil)
	}
	return sf, ok
}
