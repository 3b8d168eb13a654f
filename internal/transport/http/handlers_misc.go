package httptransport

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/go-chi/chi/v5"

	"openfairdb/internal/boundary"
	"openfairdb/internal/domain"
	"openfairdb/internal/web/guards"
	pkgerrors "openfairdb/pkg/errors"
)

func (h *Handler) handleGetCategories(w http.ResponseWriter, r *http.Request) {
	ids := splitIDs(chi.URLParam(r, "ids"))
	if len(ids) == 0 {
		WriteError(w, pkgerrors.New(pkgerrors.CodeBadRequest, "no category ids given"))
		return
	}

	out := make([]boundary.Category, 0, len(ids))
	for _, id := range ids {
		category := domain.Category{ID: id}
		if category.Name() == "" {
			WriteError(w, pkgerrors.Newf(pkgerrors.CodeNotFound, "unknown category %q", id))
			return
		}
		out = append(out, boundary.CategoryFromDomain(category))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleMostPopularTags(w http.ResponseWriter, r *http.Request) {
	frequencies, err := h.places.TagFrequencies(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	sort.Slice(frequencies, func(i, j int) bool {
		if frequencies[i].Count != frequencies[j].Count {
			return frequencies[i].Count > frequencies[j].Count
		}
		return frequencies[i].Tag < frequencies[j].Tag
	})

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			WriteError(w, pkgerrors.New(pkgerrors.CodeBadRequest, "invalid limit"))
			return
		}
		if limit < len(frequencies) {
			frequencies = frequencies[:limit]
		}
	}

	out := make([]boundary.TagFrequency, 0, len(frequencies))
	for _, f := range frequencies {
		out = append(out, boundary.TagFrequencyFromDomain(f))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleCountEntries(w http.ResponseWriter, r *http.Request) {
	count, err := h.places.Count(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, boundary.ResultCount{Count: count})
}

func (h *Handler) handleCountTags(w http.ResponseWriter, r *http.Request) {
	frequencies, err := h.places.TagFrequencies(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, boundary.ResultCount{Count: uint64(len(frequencies))})
}

// requireAccount resolves the cookie account or fails with 401.
func requireAccount(r *http.Request) (domain.Email, error) {
	email := guards.AccountEmailFromContext(r.Context())
	if email == "" {
		return "", pkgerrors.New(pkgerrors.CodeUnauthorized, "login required")
	}
	return domain.Email(email), nil
}

func (h *Handler) handleGetBboxSubscriptions(w http.ResponseWriter, r *http.Request) {
	email, err := requireAccount(r)
	if err != nil {
		WriteError(w, err)
		return
	}
	subs, err := h.subscriptions.ListByEmail(r.Context(), email)
	if err != nil {
		WriteError(w, err)
		return
	}
	out := make([]boundary.BboxSubscription, 0, len(subs))
	for _, sub := range subs {
		out = append(out, boundary.BboxSubscriptionFromDomain(sub))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleSubscribeToBbox(w http.ResponseWriter, r *http.Request) {
	email, err := requireAccount(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var payload boundary.BboxSubscription
	if err := decodeJSON(r, &payload); err != nil {
		WriteError(w, err)
		return
	}
	bbox, err := payload.ToBbox()
	if err != nil {
		WriteError(w, err)
		return
	}

	// A new subscription replaces any previous ones of the same account.
	if err := h.subscriptions.DeleteByEmail(r.Context(), email); err != nil {
		WriteError(w, err)
		return
	}
	sub := domain.BboxSubscription{
		ID:        domain.NewID(),
		UserEmail: email,
		Bbox:      bbox,
	}
	if err := h.subscriptions.Save(r.Context(), sub); err != nil {
		WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sub.ID.String())
}

func (h *Handler) handleUnsubscribeAllBboxes(w http.ResponseWriter, r *http.Request) {
	email, err := requireAccount(r)
	if err != nil {
		WriteError(w, err)
		return
	}
	if err := h.subscriptions.DeleteByEmail(r.Context(), email); err != nil {
		WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
