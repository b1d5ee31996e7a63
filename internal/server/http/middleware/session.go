package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/nedcgroup/backoffice/internal/pkg/session"
)

// IdentityContextKey is a gin context key for the signed-in session identity.
const IdentityContextKey = "identity"

// LoginPath is where unauthenticated requests are sent.
const LoginPath = "/login"

// SessionRequired lets a request through only with a valid session cookie.
// Everything else is redirected to the login page, remembering where it came from.
func SessionRequired(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := sessions.Identity(c.Request)
		if err != nil {
			c.Redirect(http.StatusSeeOther, LoginRedirect(c.Request.URL.RequestURI()))
			c.Abort()
			return
		}
		c.Set(IdentityContextKey, id)
		c.Next()
	}
}

// CurrentIdentity returns the identity stored by SessionRequired.
func CurrentIdentity(c *gin.Context) session.Identity {
	val, ok := c.Get(IdentityContextKey)
	if !ok {
		return session.Identity{}
	}
	id, _ := val.(session.Identity)
	return id
}

// LoginRedirect builds the login URL that returns to target after sign-in.
func LoginRedirect(target string) string {
	target = SafeRedirect(target, "")
	if target == "" || target == "/" {
		return LoginPath
	}
	return LoginPath + "?" + url.Values{"redirectTo": {target}}.Encode()
}

// SafeRedirect accepts only same-site absolute paths and returns fallback otherwise.
func SafeRedirect(target, fallback string) string {
	if target == "" || target[0] != '/' {
		return fallback
	}
	if len(target) > 1 && (target[1] == '/' || target[1] == '\\') {
		return fallback
	}
	u, err := url.Parse(target)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return fallback
	}
	return target
}
