package test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nedcgroup/backoffice/internal/pkg/session"
)

// SessionSecret signs cookies issued by NewSessionManager.
const SessionSecret = "test-session-secret"

// NewSessionManager returns a manager with a fixed secret.
func NewSessionManager(t testing.TB) *session.Manager {
	t.Helper()
	manager, err := session.NewManager(SessionSecret, session.Options{TTL: time.Hour})
	if err != nil {
		t.Fatalf("session manager: %v", err)
	}
	return manager
}

// SessionCookie issues a valid session cookie for id.
func SessionCookie(t testing.TB, manager *session.Manager, id session.Identity) *http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	manager.Start(rec, id)
	return findCookie(t, rec.Result().Cookies(), session.CookieName)
}

// FlashCookie issues a flash cookie carrying flash.
func FlashCookie(t testing.TB, manager *session.Manager, flash session.Flash) *http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	manager.SetFlash(rec, flash)
	return findCookie(t, rec.Result().Cookies(), session.FlashCookieName)
}

// CookieByName returns the named cookie from a response, or nil.
func CookieByName(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func findCookie(t testing.TB, cookies []*http.Cookie, name string) *http.Cookie {
	t.Helper()
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("cookie %s was not set", name)
	return nil
}
