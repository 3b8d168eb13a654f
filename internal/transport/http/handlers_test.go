package httptransport

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openfairdb/internal/auth"
	"openfairdb/internal/boundary"
	"openfairdb/internal/domain"
	"openfairdb/internal/platform/metrics"
	"openfairdb/internal/storage"
	"openfairdb/internal/web/guards"
)

type testServer struct {
	router  http.Handler
	handler *Handler
	stores  Stores
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServerWithLogger(t, slog.New(slog.DiscardHandler))
}

func newTestServerWithLogger(t *testing.T, logger *slog.Logger) *testServer {
	t.Helper()
	stores := Stores{
		Places:        storage.NewInMemoryPlaceStore(),
		Events:        storage.NewInMemoryEventStore(),
		Users:         storage.NewInMemoryUserStore(),
		Ratings:       storage.NewInMemoryRatingStore(),
		Subscriptions: storage.NewInMemorySubscriptionStore(),
		Clearances:    storage.NewInMemoryClearanceStore(),
	}
	h := NewHandler(
		logger,
		metrics.NewWith(prometheus.NewRegistry()),
		stores,
		guards.NewCookies([]byte("0123456789abcdef0123456789abcdef"), nil),
		auth.NewTokenService("test-signing-key", "openfairdb", time.Hour),
		auth.NewResetTokenStore(time.Hour),
	)
	return &testServer{router: NewRouter(h), handler: h, stores: stores}
}

func (s *testServer) do(t *testing.T, method, path string, body any, mutate ...func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	for _, m := range mutate {
		m(req)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), "body: %s", w.Body.String())
	return v
}

// register creates an account and returns the session cookies and API token
// of a fresh login.
func (s *testServer) register(t *testing.T, email, password string, role domain.Role) ([]*http.Cookie, string) {
	t.Helper()
	w := s.do(t, http.MethodPost, "/users", boundary.Credentials{Email: email, Password: password})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	if role != domain.RoleUser {
		user, err := s.stores.Users.FindByEmail(t.Context(), domain.Email(email))
		require.NoError(t, err)
		user.Role = role
		require.NoError(t, s.stores.Users.Save(t.Context(), user))
	}

	w = s.do(t, http.MethodPost, "/login", boundary.Credentials{Email: email, Password: password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	token := decodeBody[map[string]string](t, w)["token"]
	require.NotEmpty(t, token)
	return w.Result().Cookies(), token
}

func withCookies(cookies []*http.Cookie) func(*http.Request) {
	return func(r *http.Request) {
		for _, c := range cookies {
			r.AddCookie(c)
		}
	}
}

func withBearer(token string) func(*http.Request) {
	return func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	}
}

func newPlacePayload() boundary.NewPlace {
	city := "Stuttgart"
	return boundary.NewPlace{
		Title:       "Weltladen",
		Description: "Fair trade shop",
		Lat:         48.7,
		Lng:         9.1,
		City:        &city,
		Categories:  []string{domain.CategoryIDCommercial.String()},
		Tags:        []string{"fairtrade"},
		License:     "CC0-1.0",
	}
}

func TestEntryLifecycle(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/entries", newPlacePayload())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := decodeBody[string](t, w)
	require.NotEmpty(t, id)

	t.Run("get returns the flat entry", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/entries/"+id, nil)
		require.Equal(t, http.StatusOK, w.Code)
		entries := decodeBody[[]boundary.Entry](t, w)
		require.Len(t, entries, 1)
		assert.Equal(t, "Weltladen", entries[0].Title)
		assert.Equal(t, []string{domain.CategoryIDCommercial.String()}, entries[0].Categories)
		assert.Equal(t, []string{"fairtrade"}, entries[0].Tags)
		assert.Equal(t, uint64(0), entries[0].Version)
	})

	t.Run("update appends the next revision", func(t *testing.T) {
		update := boundary.UpdatePlace{
			Version:     1,
			Title:       "Weltladen Mitte",
			Description: "Fair trade shop",
			Lat:         48.7,
			Lng:         9.1,
			Tags:        []string{"fairtrade"},
		}
		w := s.do(t, http.MethodPut, "/entries/"+id, update)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = s.do(t, http.MethodGet, "/entries/"+id, nil)
		entries := decodeBody[[]boundary.Entry](t, w)
		require.Len(t, entries, 1)
		assert.Equal(t, "Weltladen Mitte", entries[0].Title)
		assert.Equal(t, uint64(1), entries[0].Version)
	})

	t.Run("stale version conflicts", func(t *testing.T) {
		update := boundary.UpdatePlace{Version: 1, Title: "x", Lat: 48.7, Lng: 9.1}
		w := s.do(t, http.MethodPut, "/entries/"+id, update)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("out of range coordinate is a bad request", func(t *testing.T) {
		payload := newPlacePayload()
		payload.Lat = 91
		w := s.do(t, http.MethodPost, "/entries", payload)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown entry is not found", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/entries/missing", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestEventEndpoints(t *testing.T) {
	s := newTestServer(t)
	_, token := s.register(t, "organizer@example.org", "long-password", domain.RoleUser)

	event := boundary.Event{
		Title: "Repair Café",
		Start: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC).Unix(),
	}

	t.Run("creation requires a bearer token", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/events", event)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("a forged token is rejected", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/events", event, withBearer("forged"))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	w := s.do(t, http.MethodPost, "/events", event, withBearer(token))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := decodeBody[string](t, w)

	t.Run("get returns second-precision timestamps", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/events/"+id, nil)
		require.Equal(t, http.StatusOK, w.Code)
		got := decodeBody[boundary.Event](t, w)
		assert.Equal(t, int64(1705312800), got.Start)
		assert.Nil(t, got.End)
	})

	t.Run("list filters by tag", func(t *testing.T) {
		tagged := boundary.Event{Title: "Market", Start: 1700000000, Tags: []string{"market"}}
		w := s.do(t, http.MethodPost, "/events", tagged, withBearer(token))
		require.Equal(t, http.StatusCreated, w.Code)

		w = s.do(t, http.MethodGet, "/events?tag=market", nil)
		require.Equal(t, http.StatusOK, w.Code)
		events := decodeBody[[]boundary.Event](t, w)
		require.Len(t, events, 1)
		assert.Equal(t, "Market", events[0].Title)
	})

	t.Run("deletion needs scout privileges", func(t *testing.T) {
		w := s.do(t, http.MethodDelete, "/events/"+id, nil, withBearer(token))
		assert.Equal(t, http.StatusForbidden, w.Code)

		_, scoutToken := s.register(t, "scout@example.org", "long-password", domain.RoleScout)
		w = s.do(t, http.MethodDelete, "/events/"+id, nil, withBearer(scoutToken))
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestSearchSplitsByBbox(t *testing.T) {
	s := newTestServer(t)

	inside := newPlacePayload()
	w := s.do(t, http.MethodPost, "/entries", inside)
	require.Equal(t, http.StatusCreated, w.Code)

	outside := newPlacePayload()
	outside.Title = "Far away"
	outside.Lat = -33.9
	outside.Lng = 151.2
	w = s.do(t, http.MethodPost, "/entries", outside)
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("missing bbox is a bad request", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/search", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed bbox is a bad request", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/search?bbox=1,2,3", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("results split into visible and invisible", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/search?bbox=47.0,5.0,55.0,15.0", nil)
		require.Equal(t, http.StatusOK, w.Code)
		response := decodeBody[boundary.SearchResponse](t, w)
		require.Len(t, response.Visible, 1)
		require.Len(t, response.Invisible, 1)
		assert.Equal(t, "Weltladen", response.Visible[0].Title)
		assert.Equal(t, "Far away", response.Invisible[0].Title)
	})

	t.Run("text narrows the results", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/search?bbox=47.0,5.0,55.0,15.0&text=far", nil)
		require.Equal(t, http.StatusOK, w.Code)
		response := decodeBody[boundary.SearchResponse](t, w)
		assert.Empty(t, response.Visible)
		require.Len(t, response.Invisible, 1)
	})
}

func TestReviewWorkflow(t *testing.T) {
	s := newTestServer(t)
	cookies, _ := s.register(t, "scout@example.org", "long-password", domain.RoleScout)

	w := s.do(t, http.MethodPost, "/entries", newPlacePayload())
	require.Equal(t, http.StatusCreated, w.Code)
	id := decodeBody[string](t, w)

	t.Run("review requires a session", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/places/"+id+"/review", map[string]string{"status": "archived"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown status tokens are rejected", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/places/"+id+"/review", map[string]string{"status": "hidden"}, withCookies(cookies))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("archiving hides the place from search", func(t *testing.T) {
		comment := "spam"
		w := s.do(t, http.MethodPost, "/places/"+id+"/review", reviewRequest{
			Status:  boundary.ReviewStatusArchived,
			Comment: &comment,
		}, withCookies(cookies))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		count := decodeBody[boundary.ResultCount](t, w)
		assert.Equal(t, uint64(1), count.Count)

		w = s.do(t, http.MethodGet, "/search?bbox=47.0,5.0,55.0,15.0", nil)
		require.Equal(t, http.StatusOK, w.Code)
		response := decodeBody[boundary.SearchResponse](t, w)
		assert.Empty(t, response.Visible)
	})

	t.Run("history records the status change", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/places/"+id+"/history", nil)
		require.Equal(t, http.StatusOK, w.Code)
		history := decodeBody[boundary.PlaceHistory](t, w)
		require.Len(t, history.Revisions, 1)
		logs := history.Revisions[0].StatusLogs
		require.Len(t, logs, 2)
		assert.Equal(t, boundary.ReviewStatusCreated, logs[0].Status)
		assert.Equal(t, boundary.ReviewStatusArchived, logs[1].Status)
		require.NotNil(t, logs[1].Act.By)
		assert.Equal(t, "scout@example.org", *logs[1].Act.By)
	})
}

func TestClearanceWorkflow(t *testing.T) {
	s := newTestServer(t)
	_, token := s.register(t, "org@example.org", "long-password", domain.RoleScout)

	w := s.do(t, http.MethodPost, "/entries", newPlacePayload())
	require.Equal(t, http.StatusCreated, w.Code)
	id := decodeBody[string](t, w)

	t.Run("listing requires a bearer token", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/places/clearances", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("created places are pending", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/places/clearances", nil, withBearer(token))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		pending := decodeBody[[]boundary.PendingClearanceForPlace](t, w)
		require.Len(t, pending, 1)
		assert.Equal(t, id, pending[0].PlaceID)
	})

	t.Run("clearing removes the pending entry", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/places/clearances", []boundary.ClearanceForPlace{{PlaceID: id}}, withBearer(token))
		require.Equal(t, http.StatusOK, w.Code)
		count := decodeBody[boundary.ResultCount](t, w)
		assert.Equal(t, uint64(1), count.Count)

		w = s.do(t, http.MethodGet, "/places/clearances", nil, withBearer(token))
		pending := decodeBody[[]boundary.PendingClearanceForPlace](t, w)
		assert.Empty(t, pending)
	})
}

func TestUserEndpoints(t *testing.T) {
	s := newTestServer(t)

	t.Run("registration rejects invalid input", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/users", boundary.Credentials{Email: "not-an-email", Password: "long-password"})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = s.do(t, http.MethodPost, "/users", boundary.Credentials{Email: "a@example.org", Password: "short"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	cookies, token := s.register(t, "a@example.org", "long-password", domain.RoleUser)
	require.NotEmpty(t, token)

	t.Run("registering twice conflicts", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/users", boundary.Credentials{Email: "a@example.org", Password: "long-password"})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("login rejects a wrong password", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/login", boundary.Credentials{Email: "a@example.org", Password: "wrong-password"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("login rejects unknown accounts the same way", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/login", boundary.Credentials{Email: "nobody@example.org", Password: "long-password"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("current user needs the account cookie", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/users/current", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w = s.do(t, http.MethodGet, "/users/current", nil, withCookies(cookies))
		require.Equal(t, http.StatusOK, w.Code)
		user := decodeBody[boundary.User](t, w)
		assert.Equal(t, "a@example.org", user.Email)
		assert.NotContains(t, w.Body.String(), "password")
	})

	t.Run("the numeric login cookie alone resolves the account", func(t *testing.T) {
		var userCookie []*http.Cookie
		for _, c := range cookies {
			if c.Name == guards.CookieUserKey {
				userCookie = append(userCookie, c)
			}
		}
		require.Len(t, userCookie, 1)

		w := s.do(t, http.MethodGet, "/users/current", nil, withCookies(userCookie))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		user := decodeBody[boundary.User](t, w)
		assert.Equal(t, "a@example.org", user.Email)
	})

	t.Run("logout clears the session cookies", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/logout", nil, withCookies(cookies))
		require.Equal(t, http.StatusNoContent, w.Code)
		for _, c := range w.Result().Cookies() {
			assert.Less(t, c.MaxAge, 0, "cookie %s should expire", c.Name)
		}
	})
}

func TestLoginAuditIncludesDeviceFingerprint(t *testing.T) {
	var buf bytes.Buffer
	s := newTestServerWithLogger(t, slog.New(slog.NewTextHandler(&buf, nil)))
	s.register(t, "a@example.org", "long-password", domain.RoleUser)
	buf.Reset()

	w := s.do(t, http.MethodPost, "/login",
		boundary.Credentials{Email: "a@example.org", Password: "long-password"},
		func(r *http.Request) {
			r.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
		})
	require.Equal(t, http.StatusOK, w.Code)

	logged := buf.String()
	assert.Contains(t, logged, "msg=login")
	assert.Contains(t, logged, "Chrome")
	assert.Regexp(t, `fingerprint=[0-9a-f]{64}`, logged)
}

func TestPasswordReset(t *testing.T) {
	s := newTestServer(t)
	s.register(t, "a@example.org", "long-password", domain.RoleUser)

	t.Run("request never reveals account existence", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/users/reset-password-request", boundary.RequestPasswordReset{Email: "a@example.org"})
		assert.Equal(t, http.StatusAccepted, w.Code)

		w = s.do(t, http.MethodPost, "/users/reset-password-request", boundary.RequestPasswordReset{Email: "nobody@example.org"})
		assert.Equal(t, http.StatusAccepted, w.Code)
	})

	t.Run("a valid token resets the password", func(t *testing.T) {
		token := s.handler.resetTokens.Issue("a@example.org")
		w := s.do(t, http.MethodPost, "/users/reset-password", boundary.ResetPassword{Token: token, NewPassword: "brand-new-password"})
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		w = s.do(t, http.MethodPost, "/login", boundary.Credentials{Email: "a@example.org", Password: "brand-new-password"})
		assert.Equal(t, http.StatusOK, w.Code)

		w = s.do(t, http.MethodPost, "/login", boundary.Credentials{Email: "a@example.org", Password: "long-password"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("an unknown token is rejected", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/users/reset-password", boundary.ResetPassword{Token: "nope", NewPassword: "brand-new-password"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRatingEndpoints(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/entries", newPlacePayload())
	require.Equal(t, http.StatusCreated, w.Code)
	placeID := decodeBody[string](t, w)

	t.Run("rating a missing place is not found", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/ratings", boundary.NewPlaceRating{
			Entry: "missing", Title: "x", Value: 1, Context: boundary.RatingContextFairness,
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("out of range values are rejected", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/ratings", boundary.NewPlaceRating{
			Entry: placeID, Title: "x", Value: 5, Context: boundary.RatingContextFairness,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	w = s.do(t, http.MethodPost, "/ratings", boundary.NewPlaceRating{
		Entry:   placeID,
		Title:   "Great place",
		Value:   2,
		Context: boundary.RatingContextFairness,
		Comment: "friendly staff",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	ratingID := decodeBody[string](t, w)

	t.Run("ratings embed their comments", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/ratings/"+ratingID, nil)
		require.Equal(t, http.StatusOK, w.Code)
		ratings := decodeBody[[]boundary.Rating](t, w)
		require.Len(t, ratings, 1)
		assert.Equal(t, "Great place", ratings[0].Title)
		require.Len(t, ratings[0].Comments, 1)
		assert.Equal(t, "friendly staff", ratings[0].Comments[0].Text)
	})

	t.Run("the entry lists the rating id", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/entries/"+placeID, nil)
		require.Equal(t, http.StatusOK, w.Code)
		entries := decodeBody[[]boundary.Entry](t, w)
		require.Len(t, entries, 1)
		assert.Equal(t, []string{ratingID}, entries[0].Ratings)
	})
}

func TestTaxonomyAndCounts(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/entries", newPlacePayload())
	require.Equal(t, http.StatusCreated, w.Code)

	second := newPlacePayload()
	second.Title = "Second"
	second.Tags = []string{"fairtrade", "organic"}
	w = s.do(t, http.MethodPost, "/entries", second)
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("categories resolve by id", func(t *testing.T) {
		path := fmt.Sprintf("/categories/%s,%s", domain.CategoryIDNonProfit, domain.CategoryIDEvent)
		w := s.do(t, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, w.Code)
		categories := decodeBody[[]boundary.Category](t, w)
		require.Len(t, categories, 2)
		assert.Equal(t, "non-profit", categories[0].Name)
		assert.Equal(t, "event", categories[1].Name)
	})

	t.Run("unknown categories are not found", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/categories/deadbeef", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("popular tags are ordered by count", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/tags/most-popular", nil)
		require.Equal(t, http.StatusOK, w.Code)
		tags := decodeBody[[]boundary.TagFrequency](t, w)
		require.NotEmpty(t, tags)
		assert.Equal(t, "commercial", tags[0].Tag)
		assert.Equal(t, uint64(2), tags[0].Count)
	})

	t.Run("limit truncates the tag list", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/tags/most-popular?limit=1", nil)
		require.Equal(t, http.StatusOK, w.Code)
		tags := decodeBody[[]boundary.TagFrequency](t, w)
		assert.Len(t, tags, 1)
	})

	t.Run("counts reflect the stores", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/count/entries", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint64(2), decodeBody[boundary.ResultCount](t, w).Count)

		w = s.do(t, http.MethodGet, "/count/tags", nil)
		require.Equal(t, http.StatusOK, w.Code)
		// fairtrade, organic, commercial
		assert.Equal(t, uint64(3), decodeBody[boundary.ResultCount](t, w).Count)
	})
}

func TestBboxSubscriptions(t *testing.T) {
	s := newTestServer(t)
	cookies, _ := s.register(t, "a@example.org", "long-password", domain.RoleUser)

	sub := boundary.BboxSubscription{
		SouthWestLat: 47.0, SouthWestLng: 5.0,
		NorthEastLat: 55.0, NorthEastLng: 15.0,
	}

	t.Run("subscribing requires a session", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/subscribe-to-bbox", sub)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("a new subscription replaces the previous one", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/subscribe-to-bbox", sub, withCookies(cookies))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		other := sub
		other.NorthEastLat = 50.0
		w = s.do(t, http.MethodPost, "/subscribe-to-bbox", other, withCookies(cookies))
		require.Equal(t, http.StatusCreated, w.Code)

		w = s.do(t, http.MethodGet, "/bbox-subscriptions", nil, withCookies(cookies))
		require.Equal(t, http.StatusOK, w.Code)
		subs := decodeBody[[]boundary.BboxSubscription](t, w)
		require.Len(t, subs, 1)
		assert.Equal(t, 50.0, subs[0].NorthEastLat)
	})

	t.Run("invalid corners are a bad request", func(t *testing.T) {
		bad := sub
		bad.SouthWestLat = -95
		w := s.do(t, http.MethodPost, "/subscribe-to-bbox", bad, withCookies(cookies))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unsubscribe removes everything", func(t *testing.T) {
		w := s.do(t, http.MethodDelete, "/unsubscribe-all-bboxes", nil, withCookies(cookies))
		require.Equal(t, http.StatusNoContent, w.Code)

		w = s.do(t, http.MethodGet, "/bbox-subscriptions", nil, withCookies(cookies))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, decodeBody[[]boundary.BboxSubscription](t, w))
	})
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t)
	w := s.do(t, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
