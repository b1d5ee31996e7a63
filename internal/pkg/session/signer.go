package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidSession = errors.New("invalid session")

var encoding = base64.RawURLEncoding

// Signer produces and verifies tamper-proof, expiring cookie values.
type Signer struct {
	key []byte
	now func() time.Time
}

// NewSigner builds Signer with the provided key.
func NewSigner(key []byte) *Signer {
	return &Signer{key: key, now: time.Now}
}

// Sign encodes payload together with its expiry and an HMAC signature.
func (s *Signer) Sign(payload string, ttl time.Duration) string {
	expires := s.now().Add(ttl).Unix()
	body := fmt.Sprintf("%s:%d", encoding.EncodeToString([]byte(payload)), expires)
	return encoding.EncodeToString([]byte(body + ":" + s.sign(body)))
}

// Verify checks the signature and expiry and returns the original payload.
func (s *Signer) Verify(value string) (string, error) {
	raw, err := encoding.DecodeString(value)
	if err != nil {
		return "", ErrInvalidSession
	}

	parts := strings.Split(string(raw), ":")
	if len(parts) != 3 {
		return "", ErrInvalidSession
	}

	body := parts[0] + ":" + parts[1]
	if !hmac.Equal([]byte(s.sign(body)), []byte(parts[2])) {
		return "", ErrInvalidSession
	}

	expires, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return "", ErrInvalidSession
	}
	if time.Unix(expires, 0).Before(s.now()) {
		return "", ErrInvalidSession
	}

	payload, err := encoding.DecodeString(parts[0])
	if err != nil {
		return "", ErrInvalidSession
	}
	return string(payload), nil
}

func (s *Signer) sign(body string) string {
	mac := hmac.New(sha256.New, s.key)
	mac.Write([]byte(body))
	return encoding.EncodeToString(mac.Sum(nil))
}
