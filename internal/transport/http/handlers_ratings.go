package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"openfairdb/internal/boundary"
	"openfairdb/internal/domain"
	pkgerrors "openfairdb/pkg/errors"
	"openfairdb/pkg/requestcontext"
)

func (h *Handler) handleCreateRating(w http.ResponseWriter, r *http.Request) {
	var payload boundary.NewPlaceRating
	if err := decodeJSON(r, &payload); err != nil {
		WriteError(w, err)
		return
	}
	if payload.Context == "" {
		WriteError(w, pkgerrors.New(pkgerrors.CodeBadRequest, "missing rating context"))
		return
	}
	value, err := domain.ParseRatingValue(int8(payload.Value))
	if err != nil {
		WriteError(w, err)
		return
	}

	placeID := domain.ID(payload.Entry)
	if _, _, err := h.places.Get(r.Context(), placeID); err != nil {
		WriteError(w, err)
		return
	}

	now := domain.TimestampMsFromInner(requestcontext.Now(r.Context()).UnixMilli())
	rating := domain.Rating{
		ID:      domain.NewID(),
		PlaceID: placeID,
		Created: now,
		Title:   payload.Title,
		Value:   value,
		Context: payload.Context.ToDomain(),
		Source:  payload.Source,
	}
	if err := h.ratings.SaveRating(r.Context(), rating); err != nil {
		WriteError(w, err)
		return
	}
	if payload.Comment != "" {
		comment := domain.Comment{
			ID:       domain.NewID(),
			RatingID: rating.ID,
			Created:  now,
			Text:     payload.Comment,
		}
		if err := h.ratings.SaveComment(r.Context(), comment); err != nil {
			WriteError(w, err)
			return
		}
	}

	h.metrics.RatingsCreated.Inc()
	writeJSON(w, http.StatusCreated, rating.ID.String())
}

func (h *Handler) handleGetRatings(w http.ResponseWriter, r *http.Request) {
	ids := splitIDs(chi.URLParam(r, "ids"))
	if len(ids) == 0 {
		WriteError(w, pkgerrors.New(pkgerrors.CodeBadRequest, "no rating ids given"))
		return
	}

	out := make([]boundary.Rating, 0, len(ids))
	for _, id := range ids {
		rating, err := h.ratings.FindRating(r.Context(), id)
		if err != nil {
			if pkgerrors.HasCode(err, pkgerrors.CodeNotFound) {
				continue
			}
			WriteError(w, err)
			return
		}
		comments, err := h.ratings.CommentsForRating(r.Context(), id)
		if err != nil {
			WriteError(w, err)
			return
		}
		out = append(out, boundary.RatingFromDomain(rating, comments))
	}
	if len(out) == 0 {
		WriteError(w, pkgerrors.New(pkgerrors.CodeNotFound, "no ratings found"))
		return
	}
	writeJSON(w, http.StatusOK, out)
}
