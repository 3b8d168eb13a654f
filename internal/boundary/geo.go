package boundary

import (
	"encoding/json"
	"fmt"

	"openfairdb/internal/domain"
	pkgerrors "openfairdb/pkg/errors"
)

// Coordinate is a geographic position as exchanged with legacy clients.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ToMapPoint converts into a validated point. Out-of-range values fall back
// to the default point (0, 0); this path is lossy but total.
func (c Coordinate) ToMapPoint() domain.MapPoint {
	p, err := domain.MapPointFromLatLngDeg(c.Lat, c.Lng)
	if err != nil {
		return domain.MapPoint{}
	}
	return p
}

// MapPoint mirrors the domain point on the wire.
type MapPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// MapPointFromDomain converts a validated point for output.
func MapPointFromDomain(p domain.MapPoint) MapPoint {
	return MapPoint{Lat: p.LatDeg(), Lng: p.LngDeg()}
}

// ToDomain validates the pair; the range check is the documented failure
// point of this conversion.
func (p MapPoint) ToDomain() (domain.MapPoint, error) {
	pos, err := domain.MapPointFromLatLngDeg(p.Lat, p.Lng)
	if err != nil {
		return domain.MapPoint{}, pkgerrors.Wrap(err, pkgerrors.CodeBadRequest, "coordinate out of range")
	}
	return pos, nil
}

// MapBbox is a rectangular map area.
type MapBbox struct {
	SouthWest MapPoint `json:"sw"`
	NorthEast MapPoint `json:"ne"`
}

// MapBboxFromDomain converts a bbox for output.
func MapBboxFromDomain(b domain.MapBbox) MapBbox {
	return MapBbox{
		SouthWest: MapPointFromDomain(b.SouthWest),
		NorthEast: MapPointFromDomain(b.NorthEast),
	}
}

// ToDomain validates both corners.
func (b MapBbox) ToDomain() (domain.MapBbox, error) {
	sw, err := b.SouthWest.ToDomain()
	if err != nil {
		return domain.MapBbox{}, err
	}
	ne, err := b.NorthEast.ToDomain()
	if err != nil {
		return domain.MapBbox{}, err
	}
	return domain.MapBbox{SouthWest: sw, NorthEast: ne}, nil
}

// LatLonDegrees is a positional (lat, lng) pair, serialized as a two-element
// JSON array.
type LatLonDegrees [2]float64

// Lat returns the latitude in degrees.
func (d LatLonDegrees) Lat() float64 { return d[0] }

// Lng returns the longitude in degrees.
func (d LatLonDegrees) Lng() float64 { return d[1] }

// LatLonDegreesFromMapPoint converts a validated point for output.
func LatLonDegreesFromMapPoint(p domain.MapPoint) LatLonDegrees {
	return LatLonDegrees{p.LatDeg(), p.LngDeg()}
}

// ToMapPoint validates the pair, yielding a range error for invalid input.
// Unlike Coordinate.ToMapPoint there is no silent fallback here.
func (d LatLonDegrees) ToMapPoint() (domain.MapPoint, error) {
	return domain.MapPointFromLatLngDeg(d.Lat(), d.Lng())
}

// UnmarshalJSON enforces the exact two-element shape.
func (d *LatLonDegrees) UnmarshalJSON(b []byte) error {
	var pair []float64
	if err := json.Unmarshal(b, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("expected [lat, lng] pair, got %d elements", len(pair))
	}
	*d = LatLonDegrees{pair[0], pair[1]}
	return nil
}
