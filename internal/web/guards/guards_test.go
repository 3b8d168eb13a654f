package guards

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openfairdb/internal/domain"
)

func testCookies(t *testing.T) *Cookies {
	t.Helper()
	hashKey := []byte("0123456789abcdef0123456789abcdef")
	return NewCookies(hashKey, nil)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestBearerToken(t *testing.T) {
	t.Run("well-formed header yields the token", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer xyz.abc")
		token, err := BearerToken(r)
		require.NoError(t, err)
		assert.Equal(t, "xyz.abc", token)
	})

	t.Run("absent header forwards", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		_, err := BearerToken(r)
		assert.ErrorIs(t, err, ErrForward)
	})

	t.Run("malformed headers are denied", func(t *testing.T) {
		for _, header := range []string{"Basic abc", "Bearer", "Bearer a b", "", "bearer abc", "Token xyz"} {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.Header.Set("Authorization", header)
			_, err := BearerToken(r)
			assert.ErrorIs(t, err, ErrUnauthorized, "header %q", header)
		}
	})
}

func TestLoginCookie(t *testing.T) {
	cookies := testCookies(t)

	t.Run("valid signed cookie yields the user id", func(t *testing.T) {
		cookie, err := cookies.NewUserCookie(42)
		require.NoError(t, err)
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(cookie)

		id, err := cookies.Login(r)
		require.NoError(t, err)
		assert.Equal(t, int64(42), id)
	})

	t.Run("absent cookie is denied", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		_, err := cookies.Login(r)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("tampered cookie is denied", func(t *testing.T) {
		cookie, err := cookies.NewUserCookie(42)
		require.NoError(t, err)
		cookie.Value = "x" + cookie.Value
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(cookie)

		_, err = cookies.Login(r)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("non-numeric user id is denied", func(t *testing.T) {
		encoded, err := cookies.codec.Encode(CookieUserKey, "abc")
		require.NoError(t, err)
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: CookieUserKey, Value: encoded})

		_, err = cookies.Login(r)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}

func TestAccountCookie(t *testing.T) {
	cookies := testCookies(t)

	t.Run("valid signed cookie yields the email", func(t *testing.T) {
		cookie, err := cookies.NewAccountCookie("x@y")
		require.NoError(t, err)
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(cookie)

		email, err := cookies.Account(r)
		require.NoError(t, err)
		assert.Equal(t, domain.Email("x@y"), email)
	})

	t.Run("absent cookie forwards", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		_, err := cookies.Account(r)
		assert.ErrorIs(t, err, ErrForward)
	})

	t.Run("tampered cookie forwards", func(t *testing.T) {
		cookie, err := cookies.NewAccountCookie("x@y")
		require.NoError(t, err)
		cookie.Value = cookie.Value[:len(cookie.Value)-2]
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(cookie)

		_, err = cookies.Account(r)
		assert.ErrorIs(t, err, ErrForward)
	})

	t.Run("cookie signed with another key forwards", func(t *testing.T) {
		other := NewCookies([]byte("ffffffffffffffffffffffffffffffff"), nil)
		cookie, err := other.NewAccountCookie("x@y")
		require.NoError(t, err)
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(cookie)

		_, err = cookies.Account(r)
		assert.ErrorIs(t, err, ErrForward)
	})
}

func TestRequireBearerMiddleware(t *testing.T) {
	var gotToken string
	handler := RequireBearer(discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = TokenFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("passes the token through the context", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer abc")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "abc", gotToken)
	})

	t.Run("responds 401 without a token", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	})

	t.Run("responds 401 for a wrong scheme", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Token xyz")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireLoginMiddleware(t *testing.T) {
	cookies := testCookies(t)
	var gotID int64
	handler := RequireLogin(cookies, discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("passes the user id through the context", func(t *testing.T) {
		cookie, err := cookies.NewUserCookie(7)
		require.NoError(t, err)
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(cookie)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, int64(7), gotID)
	})

	t.Run("responds 401 without a cookie", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestWithAccountMiddleware(t *testing.T) {
	cookies := testCookies(t)
	var gotEmail string
	handler := WithAccount(cookies)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotEmail = AccountEmailFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("attaches the email for a valid cookie", func(t *testing.T) {
		cookie, err := cookies.NewAccountCookie("scout@example.org")
		require.NoError(t, err)
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(cookie)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "scout@example.org", gotEmail)
	})

	t.Run("continues anonymously without a cookie", func(t *testing.T) {
		gotEmail = "sentinel"
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "", gotEmail)
	})
}
