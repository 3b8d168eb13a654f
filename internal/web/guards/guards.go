// Package guards extracts and verifies the credentials a request may carry:
// a bearer token, a signed login cookie or a signed account email cookie.
//
// Every guard has exactly three outcomes: the credential (success), ErrForward
// (the request carries no credential of this kind, the caller may try another
// guard or proceed anonymously) or ErrUnauthorized (a credential was presented
// but failed verification).
package guards

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/securecookie"

	"openfairdb/internal/domain"
)

// Cookie names. The legacy names are part of the deployed API surface and
// must not change.
const (
	CookieEmailKey = "ofdb-user-email"
	CookieUserKey  = "user_id"
)

var (
	// ErrForward means the request carries no credential of the guard's kind.
	ErrForward = errors.New("no credential")
	// ErrUnauthorized means a credential was presented but is invalid.
	ErrUnauthorized = errors.New("unauthorized")
)

// BearerToken extracts the token of an "Authorization: Bearer <token>"
// header. A missing header forwards; a header in any other shape is denied.
func BearerToken(r *http.Request) (string, error) {
	values := r.Header.Values("Authorization")
	if len(values) == 0 {
		return "", ErrForward
	}
	// An empty header is present but malformed, so it is denied rather
	// than forwarded.
	parts := strings.Split(values[0], " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", ErrUnauthorized
	}
	return parts[1], nil
}

// Cookies signs and verifies the session cookies.
type Cookies struct {
	codec *securecookie.SecureCookie
}

// NewCookies builds a codec from the configured keys. The block key may be
// nil to disable encryption and only sign.
func NewCookies(hashKey, blockKey []byte) *Cookies {
	return &Cookies{codec: securecookie.New(hashKey, blockKey)}
}

// Login requires a signed user id cookie. Unlike Account, a missing or
// unverifiable cookie is denied rather than forwarded.
func (c *Cookies) Login(r *http.Request) (int64, error) {
	cookie, err := r.Cookie(CookieUserKey)
	if err != nil {
		return 0, ErrUnauthorized
	}
	var raw string
	if err := c.codec.Decode(CookieUserKey, cookie.Value, &raw); err != nil {
		return 0, ErrUnauthorized
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, ErrUnauthorized
	}
	return id, nil
}

// Account reads the signed account email cookie. Requests without a valid
// cookie forward so the endpoint can fall back to another credential.
func (c *Cookies) Account(r *http.Request) (domain.Email, error) {
	cookie, err := r.Cookie(CookieEmailKey)
	if err != nil {
		return "", ErrForward
	}
	var email string
	if err := c.codec.Decode(CookieEmailKey, cookie.Value, &email); err != nil {
		return "", ErrForward
	}
	return domain.Email(email), nil
}

// NewAccountCookie issues a signed account email cookie for a logged-in
// session.
func (c *Cookies) NewAccountCookie(email domain.Email) (*http.Cookie, error) {
	encoded, err := c.codec.Encode(CookieEmailKey, email.String())
	if err != nil {
		return nil, err
	}
	return &http.Cookie{
		Name:     CookieEmailKey,
		Value:    encoded,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}, nil
}

// NewUserCookie issues a signed user id cookie.
func (c *Cookies) NewUserCookie(userID int64) (*http.Cookie, error) {
	encoded, err := c.codec.Encode(CookieUserKey, strconv.FormatInt(userID, 10))
	if err != nil {
		return nil, err
	}
	return &http.Cookie{
		Name:     CookieUserKey,
		Value:    encoded,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}, nil
}

// ClearAccountCookie expires the account email cookie.
func (c *Cookies) ClearAccountCookie() *http.Cookie {
	return &http.Cookie{Name: CookieEmailKey, Value: "", Path: "/", MaxAge: -1, HttpOnly: true}
}

// ClearUserCookie expires the user id cookie.
func (c *Cookies) ClearUserCookie() *http.Cookie {
	return &http.Cookie{Name: CookieUserKey, Value: "", Path: "/", MaxAge: -1, HttpOnly: true}
}
