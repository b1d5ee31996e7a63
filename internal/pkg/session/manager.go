package session

import (
	"crypto/sha256"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/crypto/hkdf"
)

const (
	// CookieName holds the signed bearer token.
	CookieName = "nedc_session"
	// FlashCookieName holds the one-shot toast message.
	FlashCookieName = "nedc_flash"

	flashTTL = 5 * time.Minute
)

// FlashKind selects the toast style.
type FlashKind string

const (
	FlashSuccess FlashKind = "success"
	FlashError   FlashKind = "error"
)

// Flash is a message shown once on the next rendered page.
type Flash struct {
	Kind    FlashKind
	Message string
}

// Options tunes cookie attributes.
type Options struct {
	TTL    time.Duration
	Secure bool
}

// Manager reads and writes the session and flash cookies.
type Manager struct {
	tokens  *Signer
	flashes *Signer
	ttl     time.Duration
	secure  bool
}

// NewManager derives independent signing keys for both cookies from secret.
func NewManager(secret string, opts Options) (*Manager, error) {
	if secret == "" {
		return nil, fmt.Errorf("session secret is empty")
	}
	tokenKey, err := deriveKey(secret, "session")
	if err != nil {
		return nil, err
	}
	flashKey, err := deriveKey(secret, "flash")
	if err != nil {
		return nil, err
	}
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = 8 * time.Hour
	}
	return &Manager{
		tokens:  NewSigner(tokenKey),
		flashes: NewSigner(flashKey),
		ttl:     ttl,
		secure:  opts.Secure,
	}, nil
}

func deriveKey(secret, purpose string) ([]byte, error) {
	key := make([]byte, 32)
	reader := hkdf.New(sha256.New, []byte(secret), nil, []byte("nedc-backoffice/"+purpose))
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("derive %s key: %w", purpose, err)
	}
	return key, nil
}

// Identity is what the session cookie carries: the signed-in admin and the
// bearer token issued for them by the backend.
type Identity struct {
	Admin string
	Token string
}

// Start stores the identity in the signed session cookie.
func (m *Manager) Start(w http.ResponseWriter, id Identity) {
	value := m.tokens.Sign(id.Admin+"\n"+id.Token, m.ttl)
	http.SetCookie(w, m.cookie(CookieName, value, int(m.ttl.Seconds())))
}

// Identity returns the identity of the current request.
func (m *Manager) Identity(r *http.Request) (Identity, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return Identity{}, ErrInvalidSession
	}
	payload, err := m.tokens.Verify(cookie.Value)
	if err != nil {
		return Identity{}, ErrInvalidSession
	}
	admin, token, ok := strings.Cut(payload, "\n")
	if !ok || token == "" {
		return Identity{}, ErrInvalidSession
	}
	return Identity{Admin: admin, Token: token}, nil
}

// End expires the session cookie.
func (m *Manager) End(w http.ResponseWriter) {
	http.SetCookie(w, m.cookie(CookieName, "", -1))
}

// SetFlash queues a toast for the next page.
func (m *Manager) SetFlash(w http.ResponseWriter, flash Flash) {
	value := m.flashes.Sign(string(flash.Kind)+"|"+flash.Message, flashTTL)
	http.SetCookie(w, m.cookie(FlashCookieName, value, int(flashTTL.Seconds())))
}

// PopFlash returns the queued toast, if any, and clears it.
func (m *Manager) PopFlash(w http.ResponseWriter, r *http.Request) *Flash {
	cookie, err := r.Cookie(FlashCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	http.SetCookie(w, m.cookie(FlashCookieName, "", -1))

	payload, err := m.flashes.Verify(cookie.Value)
	if err != nil {
		return nil
	}
	kind, message, ok := strings.Cut(payload, "|")
	if !ok {
		return nil
	}
	return &Flash{Kind: FlashKind(kind), Message: message}
}

func (m *Manager) cookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
