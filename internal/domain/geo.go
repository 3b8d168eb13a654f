package domain

import "fmt"

// Latitude/longitude bounds in degrees.
const (
	MinLatDeg = -90.0
	MaxLatDeg = 90.0
	MinLngDeg = -180.0
	MaxLngDeg = 180.0
)

// CoordRangeError reports a latitude/longitude pair outside the valid range.
type CoordRangeError struct {
	Lat float64
	Lng float64
}

func (e *CoordRangeError) Error() string {
	return fmt.Sprintf("coordinate out of range: lat=%v lng=%v", e.Lat, e.Lng)
}

// MapPoint is a validated geographic position in degrees. The zero value is
// the default point (0, 0).
type MapPoint struct {
	lat float64
	lng float64
}

// MapPointFromLatLngDeg constructs a MapPoint, returning a *CoordRangeError
// when the pair is out of range.
func MapPointFromLatLngDeg(lat, lng float64) (MapPoint, error) {
	if lat < MinLatDeg || lat > MaxLatDeg || lng < MinLngDeg || lng > MaxLngDeg {
		return MapPoint{}, &CoordRangeError{Lat: lat, Lng: lng}
	}
	return MapPoint{lat: lat, lng: lng}, nil
}

// LatDeg returns the latitude in degrees.
func (p MapPoint) LatDeg() float64 { return p.lat }

// LngDeg returns the longitude in degrees.
func (p MapPoint) LngDeg() float64 { return p.lng }

// MapBbox is a rectangular area spanned by its south-west and north-east
// corners.
type MapBbox struct {
	SouthWest MapPoint
	NorthEast MapPoint
}

// Contains reports whether p lies within the box. Boxes crossing the
// antimeridian wrap around in longitude.
func (b MapBbox) Contains(p MapPoint) bool {
	if p.lat < b.SouthWest.lat || p.lat > b.NorthEast.lat {
		return false
	}
	if b.SouthWest.lng <= b.NorthEast.lng {
		return p.lng >= b.SouthWest.lng && p.lng <= b.NorthEast.lng
	}
	return p.lng >= b.SouthWest.lng || p.lng <= b.NorthEast.lng
}
