package api

import (
	"log/slog"
	"net/http"
	"time"

	reqdto "fitbook-storefront/internal/handler/dto/request"
	resdto "fitbook-storefront/internal/handler/dto/response"
	"fitbook-storefront/internal/handler/httperr"
	"fitbook-storefront/internal/handler/middleware"
	"fitbook-storefront/internal/pkg/config"
	"fitbook-storefront/internal/pkg/cookie"
	"fitbook-storefront/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	inspector middleware.TokenInspector
	cfg       config.Config
}

func NewAuthHandler(inspector middleware.TokenInspector, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		inspector: inspector,
		cfg:       cfg,
	}
}

// @Summary Login
// @Description Log in against the booking backend and merge the guest cart into the account cart
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	sf, ok := middleware.GetStorefront(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New(msgNoStorefront), msgInternal, nil)
		return
	}

	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	credentials, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		return
	}

	result, err := sf.Login(c.Request.Context(), credentials)
	if err != nil {
		abortWithUseCaseError(c, h.cfg.Cookie, err, "Login failed")
		return
	}

	h.setTokenCookie(c, result.Token)
	c.JSON(http.StatusOK, resdto.FromSessionResult(result))
}

// @Summary Register
// @Description Create an account, merge the guest cart and optionally add the course the visitor came from
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	sf, ok := middleware.GetStorefront(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New(msgNoStorefront), msgInternal, nil)
		return
	}

	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	registration, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		return
	}

	result, err := sf.Register(c.Request.Context(), registration, req.AddCourseID)
	if err != nil {
		abortWithUseCaseError(c, h.cfg.Cookie, err, "Registration failed")
		return
	}

	h.setTokenCookie(c, result.Token)
	c.JSON(http.StatusCreated, resdto.FromSessionResult(result))
}

// @Summary Logout
// @Description End the session. The guest cart is kept.
// @Tags auth
// @Success 204 "No Content"
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if sf, ok := middleware.GetStorefront(c); ok {
		sf.Logout(c.Request.Context())
	}
	cookie.ClearAccessToken(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	sf, ok := middleware.GetStorefront(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New(msgNoStorefront), msgInternal, nil)
		return
	}

	u, err := sf.Me(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, h.cfg.Cookie, err, msgLoginRequired)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUser(u))
}

// The cookie lives as long as the token; tokens the inspector cannot read get the configured fallback.
func (h *AuthHandler) setTokenCookie(c *gin.Context, token string) {
	expiry, err := h.inspector.TTL(token)
	if err != nil {
		slog.Warn("Could not read backend token expiry, using fallback", "error", err.Error())
		expiry = h.cfg.JWT.DefaultDuration
	}
	if expiry <= 0 {
		expiry = time.Hour
	}
	cookie.SetAccessToken(c, h.cfg.Cookie, token, expiry)
}
