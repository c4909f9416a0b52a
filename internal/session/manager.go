package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	cookieName = "admin_session"
	ctxSession = "admin_session"
)

// Manager loads and saves sessions around a pluggable Store and the client
// cookie. Cookie values are the session id, HMAC-signed when a secret is
// configured so a forged id is rejected before the store is consulted.
type Manager struct {
	store  Store
	maxAge time.Duration
	secret []byte
}

func NewManager(store Store, maxAge time.Duration, secret string) *Manager {
	m := &Manager{store: store, maxAge: maxAge}
	if secret != "" {
		m.secret = []byte(secret)
	}
	return m
}

// Middleware attaches the browser's session to the request context. A
// missing, invalid, or expired cookie yields a fresh empty session, which
// is not persisted until Save is called.
func (m *Manager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ctxSession, m.load(c))
		c.Next()
	}
}

// Current returns the session attached by Middleware.
func Current(c *gin.Context) *Session {
	if v, ok := c.Get(ctxSession); ok {
		if s, ok := v.(*Session); ok {
			return s
		}
	}
	// Middleware not installed on this route; hand back a throwaway.
	return &Session{ID: uuid.NewString(), CreatedAt: time.Now().UTC()}
}

// Save persists the session and (re)issues the cookie. The expiry window is
// fixed from the session's creation time; saving again does not extend it.
func (m *Manager) Save(c *gin.Context, s *Session) error {
	ttl := m.maxAge - time.Since(s.CreatedAt)
	if ttl <= 0 {
		return errors.New("session already expired")
	}

	if err := m.store.Set(c.Request.Context(), s.ID, s, ttl); err != nil {
		return err
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cookieName, m.encode(s.ID), int(ttl.Seconds()), "/", "", false, true)
	return nil
}

// Destroy removes the session from the store and clears the cookie. Store
// failures are returned but the cookie is cleared regardless.
func (m *Manager) Destroy(c *gin.Context) error {
	var err error
	if id, ok := m.cookieID(c); ok {
		err = m.store.Destroy(c.Request.Context(), id)
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cookieName, "", -1, "/", "", false, true)
	c.Set(ctxSession, &Session{ID: uuid.NewString(), CreatedAt: time.Now().UTC()})
	return err
}

func (m *Manager) load(c *gin.Context) *Session {
	if id, ok := m.cookieID(c); ok {
		s, err := m.store.Get(c.Request.Context(), id)
		if err == nil {
			return s
		}
		if !errors.Is(err, ErrNotFound) {
			log.Printf("[session] load %s: %v", id, err)
		}
	}
	return &Session{ID: uuid.NewString(), CreatedAt: time.Now().UTC()}
}

func (m *Manager) cookieID(c *gin.Context) (string, bool) {
	raw, err := c.Cookie(cookieName)
	if err != nil || raw == "" {
		return "", false
	}
	return m.decode(raw)
}

func (m *Manager) encode(id string) string {
	if m.secret == nil {
		return id
	}
	return id + "." + m.sign(id)
}

func (m *Manager) decode(raw string) (string, bool) {
	if m.secret == nil {
		return raw, true
	}

	id, sig, ok := strings.Cut(raw, ".")
	if !ok || !hmac.Equal([]byte(sig), []byte(m.sign(id))) {
		return "", false
	}
	return id, true
}

func (m *Manager) sign(id string) string {
	mac := hmac.New(sha256.New, m.secret)
	mac.Write([]byte(id))
	return hex.EncodeToString(mac.Sum(nil))
}
