package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"fitbook-storefront/internal/handler/httperr"
	"fitbook-storefront/internal/pkg/config"
	"fitbook-storefront/internal/pkg/cookie"
	"fitbook-storefront/internal/pkg/errs"
	"fitbook-storefront/internal/usecase/storefront"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TokenInspector interface {
	TTL(token string) (time.Duration, error)
}

type VisitorMiddleware struct {
	registry  storefront.Registry
	inspector TokenInspector
	cookieCfg config.CookieConfig
}

const (
	ctxVisitorIDKey  = "visitor_id"
	ctxStorefrontKey = "storefront"
)

func NewVisitorMiddleware(registry storefront.Registry, inspector TokenInspector, cfg config.Config) *VisitorMiddleware {
	return &VisitorMiddleware{
		registry:  registry,
		inspector: inspector,
		cookieCfg: cfg.Cookie,
	}
}

// Attach resolves the visitor's container, restores the backend token from the cookie and
// brings the session up to date before the handler runs.
func (m *VisitorMiddleware) Attach() gin.HandlerFunc {
	return func(c *gin.Context) {
		visitorID := cookie.GetVisitorID(c)
		if _, err := uuid.Parse(visitorID); err != nil {
			visitorID = uuid.NewString()
			cookie.SetVisitorID(c, m.cookieCfg, visitorID)
		}

		token := m.restoreToken(c)

		sf := m.registry.Get(c.Request.Context(), visitorID)
		sf.AdoptToken(token)
		snap := sf.EnsureSession(c.Request.Context())

		if token != "" && !snap.HasToken {
			// バックエンドがトークンを拒否した
			cookie.ClearAccessToken(c, m.cookieCfg)
		}

		c.Set(ctxVisitorIDKey, visitorID)
		c.Set(ctxStorefrontKey, sf)
		if snap.Authenticated() {
			c.Set("jwt_claims", map[string]any{
				"user_id": snap.User.ID(),
				"role":    snap.User.Role().String(),
			})
		}
		c.Next()
	}
}

// restoreToken reads the access token from the cookie, or the Authorization header for API clients.
// Expired or badly signed tokens are dropped here without a backend round trip.
func (m *VisitorMiddleware) restoreToken(c *gin.Context) string {
	token := cookie.GetAccessToken(c)
	fromCookie := token != ""

	if token == "" {
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}
	}
	if token == "" {
		return ""
	}

	if _, err := m.inspector.TTL(token); err != nil {
		slog.Info("Access token rejected before reaching the backend", "error", err.Error())
		if fromCookie {
			cookie.ClearAccessToken(c, m.cookieCfg)
		}
		return ""
	}
	return token
}

// RequireSession must run after Attach.
func (m *VisitorMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sf, ok := GetStorefront(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("visitor middleware not attached"), "Internal server error", nil)
			return
		}
		if _, err := sf.Me(c.Request.Context()); err != nil {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Please log in to continue", nil)
			return
		}
		c.Next()
	}
}

func GetStorefront(c *gin.Context) (storefront.Storefront, bool) {
	v, exists := c.Get(ctxStorefrontKey)
	if !exists {
		return nil, false
	}
	sf, ok := v.(storefront.Storefront)
	return sf, ok
}

func GetVisitorID(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxVisitorIDKey)
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}
