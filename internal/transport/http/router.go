// Package httptransport is the thin HTTP layer. Handlers translate between
// the wire schema and the domain model and delegate to stores; business
// logic stays out of this package.
package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"openfairdb/internal/auth"
	"openfairdb/internal/auth/device"
	"openfairdb/internal/platform/metrics"
	"openfairdb/internal/platform/middleware"
	"openfairdb/internal/storage"
	"openfairdb/internal/web/guards"
)

// Handler hosts the REST surface over the stores and auth services.
type Handler struct {
	logger  *slog.Logger
	metrics *metrics.Metrics

	places        storage.PlaceStore
	events        storage.EventStore
	users         storage.UserStore
	ratings       storage.RatingStore
	subscriptions storage.SubscriptionStore
	clearances    storage.ClearanceStore

	cookies     *guards.Cookies
	tokens      *auth.TokenService
	resetTokens *auth.ResetTokenStore
	devices     *device.Service
}

// Stores bundles the persistence collaborators of the handler.
type Stores struct {
	Places        storage.PlaceStore
	Events        storage.EventStore
	Users         storage.UserStore
	Ratings       storage.RatingStore
	Subscriptions storage.SubscriptionStore
	Clearances    storage.ClearanceStore
}

func NewHandler(
	logger *slog.Logger,
	m *metrics.Metrics,
	stores Stores,
	cookies *guards.Cookies,
	tokens *auth.TokenService,
	resetTokens *auth.ResetTokenStore,
) *Handler {
	return &Handler{
		logger:        logger,
		metrics:       m,
		places:        stores.Places,
		events:        stores.Events,
		users:         stores.Users,
		ratings:       stores.Ratings,
		subscriptions: stores.Subscriptions,
		clearances:    stores.Clearances,
		cookies:       cookies,
		tokens:        tokens,
		resetTokens:   resetTokens,
		devices:       device.NewService(true),
	}
}

// NewRouter wires all public endpoints.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)
	r.Use(middleware.ClientMetadata)
	r.Use(middleware.Instrument(h.logger, h.metrics))
	r.Use(guards.WithAccount(h.cookies))

	r.Get("/entries/{ids}", h.handleGetEntries)
	r.Post("/entries", h.handleCreateEntry)
	r.Put("/entries/{id}", h.handleUpdateEntry)

	r.Get("/events", h.handleGetEvents)
	r.Get("/events/{id}", h.handleGetEvent)
	r.Group(func(r chi.Router) {
		r.Use(guards.RequireBearer(h.logger))
		r.Post("/events", h.handleCreateEvent)
		r.Put("/events/{id}", h.handleUpdateEvent)
		r.Delete("/events/{id}", h.handleDeleteEvent)
	})

	r.Get("/search", h.handleSearch)

	r.Get("/places/{id}/history", h.handleGetPlaceHistory)
	r.Post("/places/{id}/review", h.handleReviewPlace)
	r.Group(func(r chi.Router) {
		r.Use(guards.RequireBearer(h.logger))
		r.Get("/places/clearances", h.handleListClearances)
		r.Post("/places/clearances", h.handleApplyClearances)
	})

	r.Post("/login", h.handleLogin)
	r.Post("/logout", h.handleLogout)
	r.Post("/users", h.handleRegister)
	r.Get("/users/current", h.handleCurrentUser)
	r.Post("/users/reset-password-request", h.handleResetPasswordRequest)
	r.Post("/users/reset-password", h.handleResetPassword)

	r.Post("/ratings", h.handleCreateRating)
	r.Get("/ratings/{ids}", h.handleGetRatings)

	r.Get("/categories/{ids}", h.handleGetCategories)
	r.Get("/tags/most-popular", h.handleMostPopularTags)
	r.Get("/count/entries", h.handleCountEntries)
	r.Get("/count/tags", h.handleCountTags)

	r.Get("/bbox-subscriptions", h.handleGetBboxSubscriptions)
	r.Post("/subscribe-to-bbox", h.handleSubscribeToBbox)
	r.Delete("/unsubscribe-all-bboxes", h.handleUnsubscribeAllBboxes)

	r.Get("/healthz", h.handleHealthz)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}

func (h *Handler) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
