package boundary

import (
	"encoding/json"
	"fmt"

	"openfairdb/internal/domain"
)

// Category is one entry of the legacy taxonomy.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CategoryFromDomain converts a category for output with its derived name.
func CategoryFromDomain(c domain.Category) Category {
	return Category{ID: c.ID.String(), Name: c.Name()}
}

// TagFrequency is a (tag, count) pair serialized as a positional array.
type TagFrequency struct {
	Tag   string
	Count uint64
}

func (f TagFrequency) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{f.Tag, f.Count})
}

func (f *TagFrequency) UnmarshalJSON(b []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(b, &parts); err != nil {
		return err
	}
	if len(parts) != 2 {
		return fmt.Errorf("expected [tag, count] pair, got %d elements", len(parts))
	}
	if err := json.Unmarshal(parts[0], &f.Tag); err != nil {
		return err
	}
	return json.Unmarshal(parts[1], &f.Count)
}

// TagFrequencyFromDomain converts a frequency for output.
func TagFrequencyFromDomain(f domain.TagFrequency) TagFrequency {
	return TagFrequency{Tag: f.Tag, Count: f.Count}
}

// ToDomain converts back; this direction is total.
func (f TagFrequency) ToDomain() domain.TagFrequency {
	return domain.TagFrequency{Tag: f.Tag, Count: f.Count}
}

// BboxSubscription names a subscribed map area by its corner coordinates.
type BboxSubscription struct {
	ID           string  `json:"id"`
	SouthWestLat float64 `json:"south_west_lat"`
	SouthWestLng float64 `json:"south_west_lng"`
	NorthEastLat float64 `json:"north_east_lat"`
	NorthEastLng float64 `json:"north_east_lng"`
}

// BboxSubscriptionFromDomain converts a subscription for output.
func BboxSubscriptionFromDomain(s domain.BboxSubscription) BboxSubscription {
	return BboxSubscription{
		ID:           s.ID.String(),
		SouthWestLat: s.Bbox.SouthWest.LatDeg(),
		SouthWestLng: s.Bbox.SouthWest.LngDeg(),
		NorthEastLat: s.Bbox.NorthEast.LatDeg(),
		NorthEastLng: s.Bbox.NorthEast.LngDeg(),
	}
}

// ToBbox validates the corner coordinates of a subscription request.
func (s BboxSubscription) ToBbox() (domain.MapBbox, error) {
	return MapBbox{
		SouthWest: MapPoint{Lat: s.SouthWestLat, Lng: s.SouthWestLng},
		NorthEast: MapPoint{Lat: s.NorthEastLat, Lng: s.NorthEastLng},
	}.ToDomain()
}

// PendingClearanceForPlace reports a place awaiting clearance. CreatedAt is
// a millisecond timestamp.
type PendingClearanceForPlace struct {
	PlaceID             string  `json:"place_id"`
	CreatedAt           int64   `json:"created_at"`
	LastClearedRevision *uint64 `json:"last_cleared_revision,omitempty"`
}

// PendingClearanceForPlaceFromDomain converts a pending clearance for
// output.
func PendingClearanceForPlaceFromDomain(p domain.PendingClearanceForPlace) PendingClearanceForPlace {
	out := PendingClearanceForPlace{
		PlaceID:   p.PlaceID.String(),
		CreatedAt: p.CreatedAt.IntoInner(),
	}
	if p.LastClearedRevision != nil {
		rev := uint64(*p.LastClearedRevision)
		out.LastClearedRevision = &rev
	}
	return out
}

// ClearanceForPlace clears a place up to a revision.
type ClearanceForPlace struct {
	PlaceID         string  `json:"place_id"`
	ClearedRevision *uint64 `json:"cleared_revision,omitempty"`
}

// ToDomain converts back; this direction is total.
func (c ClearanceForPlace) ToDomain() domain.ClearanceForPlace {
	out := domain.ClearanceForPlace{PlaceID: domain.ID(c.PlaceID)}
	if c.ClearedRevision != nil {
		rev := domain.Revision(*c.ClearedRevision)
		out.ClearedRevision = &rev
	}
	return out
}

// ResultCount is a bare counter response.
type ResultCount struct {
	Count uint64 `json:"count"`
}
