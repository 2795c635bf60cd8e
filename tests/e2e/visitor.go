//go:build e2e

package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fitbook-storefront/internal/pkg/cookie"
	testhttp "fitbook-storefront/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// Visitor はブラウザ1つ分。レスポンスの Set-Cookie を覚えて次のリクエストに載せる
type Visitor struct {
	t       *testing.T
	router  *gin.Engine
	cookies map[string]*http.Cookie
}

func (s *SharedSuite) NewVisitor() *Visitor {
	return &Visitor{t: s.T(), router: s.Router, cookies: map[string]*http.Cookie{}}
}

func (v *Visitor) Do(method, path string, body any) *httptest.ResponseRecorder {
	v.t.Helper()

	jar := make([]*http.Cookie, 0, len(v.cookies))
	for _, c := range v.cookies {
		jar = append(jar, c)
	}

	w := testhttp.PerformRequestWithCookies(v.t, v.router, method, path, body, jar, "")
	for _, c := range testhttp.ExtractCookies(w) {
		if c.MaxAge < 0 || c.Value == "" {
			delete(v.cookies, c.Name)
			continue
		}
		v.cookies[c.Name] = &http.Cookie{Name: c.Name, Value: c.Value}
	}
	return w
}

// DoJSON performs the request, asserts the status and decodes the body into out.
func (v *Visitor) DoJSON(method, path string, body any, status int, out any) {
	v.t.Helper()

	w := v.Do(method, path, body)
	require.Equal(v.t, status, w.Code, w.Body.String())
	if out != nil {
		require.NoError(v.t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
	}
}

func (v *Visitor) ID() string {
	if c, ok := v.cookies[cookie.VisitorCookieName]; ok {
		return c.Value
	}
	return ""
}

func (v *Visitor) HasToken() bool {
	_, ok := v.cookies[cookie.AccessTokenCookieName]
	return ok
}

// Forget drops the access token cookie, like a browser whose session cookie expired.
func (v *Visitor) Forget() {
	delete(v.cookies, cookie.AccessTokenCookieName)
}

// CopyToken hands from's access token to v, like the same account opening a second browser.
func (v *Visitor) CopyToken(from *Visitor) {
	if c, ok := from.cookies[cookie.AccessTokenCookieName]; ok {
		v.cookies[c.Name] = &http.Cookie{Name: c.Name, Value: c.Value}
	}
}

func (v *Visitor) SetToken(token string) {
	v.cookies[cookie.AccessTokenCookieName] = &http.Cookie{Name: cookie.AccessTokenCookieName, Value: token}
}

func (v *Visitor) Token() string {
	if c, ok := v.cookies[cookie.AccessTokenCookieName]; ok {
		return c.Value
	}
	return ""
}
