package httptransport

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"openfairdb/internal/boundary"
	"openfairdb/internal/domain"
	"openfairdb/internal/web/guards"
	pkgerrors "openfairdb/pkg/errors"
	"openfairdb/pkg/requestcontext"
)

// accountActivity builds the audit activity for the current request,
// attributed to the cookie account when one is present.
func accountActivity(r *http.Request) domain.Activity {
	var by *domain.Email
	if email := guards.AccountEmailFromContext(r.Context()); email != "" {
		e := domain.Email(email)
		by = &e
	}
	return domain.Activity{
		At: domain.TimestampMsFromInner(requestcontext.Now(r.Context()).UnixMilli()),
		By: by,
	}
}

func splitIDs(raw string) []domain.ID {
	parts := strings.Split(raw, ",")
	ids := make([]domain.ID, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, domain.ID(p))
		}
	}
	return ids
}

func (h *Handler) ratingIDsForPlace(r *http.Request, placeID domain.ID) ([]domain.ID, error) {
	ratings, err := h.ratings.RatingsForPlace(r.Context(), placeID)
	if err != nil {
		return nil, err
	}
	ids := make([]domain.ID, 0, len(ratings))
	for _, rating := range ratings {
		ids = append(ids, rating.ID)
	}
	return ids, nil
}

func (h *Handler) handleGetEntries(w http.ResponseWriter, r *http.Request) {
	ids := splitIDs(chi.URLParam(r, "ids"))
	if len(ids) == 0 {
		WriteError(w, pkgerrors.New(pkgerrors.CodeBadRequest, "no entry ids given"))
		return
	}

	entries := make([]boundary.Entry, 0, len(ids))
	for _, id := range ids {
		place, _, err := h.places.Get(r.Context(), id)
		if err != nil {
			if pkgerrors.HasCode(err, pkgerrors.CodeNotFound) {
				continue
			}
			WriteError(w, err)
			return
		}
		ratingIDs, err := h.ratingIDsForPlace(r, id)
		if err != nil {
			WriteError(w, err)
			return
		}
		entries = append(entries, boundary.EntryFromPlace(place, ratingIDs))
	}
	if len(entries) == 0 {
		WriteError(w, pkgerrors.New(pkgerrors.CodeNotFound, "no entries found"))
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *Handler) handleCreateEntry(w http.ResponseWriter, r *http.Request) {
	var payload boundary.NewPlace
	if err := decodeJSON(r, &payload); err != nil {
		WriteError(w, err)
		return
	}

	id := domain.NewID()
	place, err := payload.ToPlace(id, accountActivity(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	if err := h.places.Create(r.Context(), place, domain.ActivityLog{Activity: place.Created}); err != nil {
		WriteError(w, err)
		return
	}
	if err := h.clearances.Add(r.Context(), domain.PendingClearanceForPlace{
		PlaceID:   id,
		CreatedAt: place.Created.At,
	}); err != nil {
		WriteError(w, err)
		return
	}

	h.metrics.PlacesCreated.Inc()
	h.logger.InfoContext(r.Context(), "place created", "id", id)
	writeJSON(w, http.StatusCreated, id.String())
}

func (h *Handler) handleUpdateEntry(w http.ResponseWriter, r *http.Request) {
	id := domain.ID(chi.URLParam(r, "id"))
	var payload boundary.UpdatePlace
	if err := decodeJSON(r, &payload); err != nil {
		WriteError(w, err)
		return
	}

	existing, _, err := h.places.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	place, err := payload.ToPlace(id, existing.License, accountActivity(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	if err := h.places.Update(r.Context(), place, domain.ActivityLog{Activity: place.Created}); err != nil {
		WriteError(w, err)
		return
	}
	if err := h.clearances.Add(r.Context(), domain.PendingClearanceForPlace{
		PlaceID:   id,
		CreatedAt: place.Created.At,
	}); err != nil {
		WriteError(w, err)
		return
	}

	h.metrics.PlacesUpdated.Inc()
	writeJSON(w, http.StatusOK, id.String())
}
