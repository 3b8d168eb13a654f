package httptransport

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"openfairdb/internal/boundary"
	"openfairdb/internal/domain"
	"openfairdb/internal/web/guards"
	pkgerrors "openfairdb/pkg/errors"
)

// parseBbox reads "swlat,swlng,nelat,nelng".
func parseBbox(raw string) (domain.MapBbox, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 4 {
		return domain.MapBbox{}, pkgerrors.New(pkgerrors.CodeBadRequest, "bbox must be swlat,swlng,nelat,nelng")
	}
	coords := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return domain.MapBbox{}, pkgerrors.Wrap(err, pkgerrors.CodeBadRequest, "invalid bbox coordinate")
		}
		coords[i] = v
	}
	return boundary.MapBbox{
		SouthWest: boundary.MapPoint{Lat: coords[0], Lng: coords[1]},
		NorthEast: boundary.MapPoint{Lat: coords[2], Lng: coords[3]},
	}.ToDomain()
}

func matchesText(p domain.Place, text string) bool {
	if text == "" {
		return true
	}
	text = strings.ToLower(text)
	if strings.Contains(strings.ToLower(p.Title), text) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), text) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), text) {
			return true
		}
	}
	return false
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	rawBbox := query.Get("bbox")
	if rawBbox == "" {
		WriteError(w, pkgerrors.New(pkgerrors.CodeBadRequest, "missing bbox parameter"))
		return
	}
	bbox, err := parseBbox(rawBbox)
	if err != nil {
		WriteError(w, err)
		return
	}
	text := query.Get("text")

	places, err := h.places.All(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response := boundary.SearchResponse{
		Visible:   []boundary.PlaceSearchResult{},
		Invisible: []boundary.PlaceSearchResult{},
	}
	for _, place := range places {
		if !matchesText(place, text) {
			continue
		}
		_, status, err := h.places.Get(r.Context(), place.ID)
		if err != nil {
			WriteError(w, err)
			return
		}
		ratings, err := h.ratings.RatingsForPlace(r.Context(), place.ID)
		if err != nil {
			WriteError(w, err)
			return
		}
		result := boundary.PlaceSearchResultFromDomain(place, &status, domain.AvgRatingsOf(ratings))
		if bbox.Contains(place.Location.Pos) {
			response.Visible = append(response.Visible, result)
		} else {
			response.Invisible = append(response.Invisible, result)
		}
	}

	h.metrics.SearchRequests.Inc()
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) handleGetPlaceHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.places.History(r.Context(), domain.ID(chi.URLParam(r, "id")))
	if err != nil {
		WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, boundary.PlaceHistoryFromDomain(history))
}

type reviewRequest struct {
	Status  boundary.ReviewStatus `json:"status"`
	Comment *string               `json:"comment,omitempty"`
}

func (h *Handler) handleReviewPlace(w http.ResponseWriter, r *http.Request) {
	reviewer := guards.AccountEmailFromContext(r.Context())
	if reviewer == "" {
		WriteError(w, pkgerrors.New(pkgerrors.CodeUnauthorized, "login required"))
		return
	}

	var payload reviewRequest
	if err := decodeJSON(r, &payload); err != nil {
		WriteError(w, err)
		return
	}
	if payload.Status == "" {
		WriteError(w, pkgerrors.New(pkgerrors.CodeBadRequest, "missing review status"))
		return
	}
	status := payload.Status.ToDomain()

	id := domain.ID(chi.URLParam(r, "id"))
	activity := domain.ActivityLog{
		Activity: accountActivity(r),
		Comment:  payload.Comment,
	}
	changed, err := h.places.Review(r.Context(), []domain.ID{id}, status, activity)
	if err != nil {
		WriteError(w, err)
		return
	}
	if status == domain.ReviewStatusArchived {
		h.metrics.PlacesArchived.Add(float64(changed))
	}
	writeJSON(w, http.StatusOK, boundary.ResultCount{Count: uint64(changed)})
}

func (h *Handler) handleListClearances(w http.ResponseWriter, r *http.Request) {
	if _, err := h.requireTokenRole(r, domain.RoleScout); err != nil {
		WriteError(w, err)
		return
	}
	pending, err := h.clearances.ListPending(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	out := make([]boundary.PendingClearanceForPlace, 0, len(pending))
	for _, p := range pending {
		out = append(out, boundary.PendingClearanceForPlaceFromDomain(p))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleApplyClearances(w http.ResponseWriter, r *http.Request) {
	if _, err := h.requireTokenRole(r, domain.RoleScout); err != nil {
		WriteError(w, err)
		return
	}
	var payload []boundary.ClearanceForPlace
	if err := decodeJSON(r, &payload); err != nil {
		WriteError(w, err)
		return
	}
	clearances := make([]domain.ClearanceForPlace, 0, len(payload))
	for _, c := range payload {
		clearances = append(clearances, c.ToDomain())
	}
	cleared, err := h.clearances.Clear(r.Context(), clearances)
	if err != nil {
		WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, boundary.ResultCount{Count: uint64(cleared)})
}
