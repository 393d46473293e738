package transport

import (
	"crypto/sha256"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
)

const (
	cookieName = "folio_session"
	tokenKey   = "token"
)

// CookieSessions stores the login token in a signed, encrypted cookie.
type CookieSessions struct {
	store *sessions.CookieStore
}

// NewCookieSessions creates a cookie store keyed by secret. The encryption
// key is derived from the same secret.
func NewCookieSessions(secret []byte, ttl time.Duration, secure bool) *CookieSessions {
	blockKey := sha256.Sum256(secret)
	store := sessions.NewCookieStore(secret, blockKey[:])
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &CookieSessions{store: store}
}

// Token returns the session token carried by the request, if any.
func (c *CookieSessions) Token(r *http.Request) string {
	if c == nil {
		return ""
	}
	sess, err := c.store.Get(r, cookieName)
	if err != nil {
		return ""
	}
	token, _ := sess.Values[tokenKey].(string)
	return token
}

// Save writes token into the response cookie.
func (c *CookieSessions) Save(w http.ResponseWriter, r *http.Request, token string) error {
	// A stale or undecodable cookie still yields a fresh session.
	sess, _ := c.store.Get(r, cookieName)
	sess.Values[tokenKey] = token
	return sess.Save(r, w)
}

// Clear expires the cookie.
func (c *CookieSessions) Clear(w http.ResponseWriter, r *http.Request) error {
	sess, _ := c.store.Get(r, cookieName)
	delete(sess.Values, tokenKey)
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}
