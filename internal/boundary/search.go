package boundary

import "openfairdb/internal/domain"

// PlaceSearchResult is one hit of a search, flattened like the legacy Entry.
type PlaceSearchResult struct {
	ID          string             `json:"id"`
	Status      *ReviewStatus      `json:"status,omitempty"`
	Lat         float64            `json:"lat"`
	Lng         float64            `json:"lng"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Categories  []string           `json:"categories"`
	Tags        []string           `json:"tags"`
	Ratings     EntrySearchRatings `json:"ratings"`
}

// SearchResponse splits hits into those visible within the requested bbox
// and those just outside it.
type SearchResponse struct {
	Visible   []PlaceSearchResult `json:"visible"`
	Invisible []PlaceSearchResult `json:"invisible"`
}

// PlaceSearchResultFromDomain flattens a place with its moderation status
// and aggregated ratings.
func PlaceSearchResultFromDomain(p domain.Place, status *domain.ReviewStatus, ratings domain.AvgRatings) PlaceSearchResult {
	categories, tags := domain.SplitCategoriesFromTags(p.Tags)
	categoryIDs := make([]string, 0, len(categories))
	for _, c := range categories {
		categoryIDs = append(categoryIDs, c.ID.String())
	}

	result := PlaceSearchResult{
		ID:          p.ID.String(),
		Lat:         p.Location.Pos.LatDeg(),
		Lng:         p.Location.Pos.LngDeg(),
		Title:       p.Title,
		Description: p.Description,
		Categories:  categoryIDs,
		Tags:        tags,
		Ratings:     EntrySearchRatingsFromDomain(ratings),
	}
	if status != nil {
		s := ReviewStatusFromDomain(*status)
		result.Status = &s
	}
	return result
}
