// Package geo converts a radius in miles into the coordinate-degree bounding
// rectangle used by the nearby queries. The rectangle over-includes the
// corners of the true circle; at neighborhood scale that imprecision is an
// accepted trade-off.
package geo

import (
	"fmt"
	"math"

	"github.com/pathfinderhq/pathfinder/pkg/repository"
)

// MilesPerDegree is the approximate length of one degree of latitude.
const MilesPerDegree = 69.0

// BoundingBox computes the rectangle around (lat, lng) covering radiusMiles.
// The longitude delta widens with latitude; at the poles the cosine term is
// zero and the longitude constraint is dropped instead of dividing by zero.
func BoundingBox(lat, lng, radiusMiles float64) (repository.BoundingBox, error) {
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return repository.BoundingBox{}, fmt.Errorf("latitude %v out of range [-90, 90]", lat)
	}
	if math.IsNaN(lng) || lng < -180 || lng > 180 {
		return repository.BoundingBox{}, fmt.Errorf("longitude %v out of range [-180, 180]", lng)
	}
	if math.IsNaN(radiusMiles) || radiusMiles < 0 {
		return repository.BoundingBox{}, fmt.Errorf("radius %v must be non-negative", radiusMiles)
	}

	box := repository.BoundingBox{
		Lat:      lat,
		Lng:      lng,
		LatDelta: radiusMiles / MilesPerDegree,
	}

	// cos(±90°) only approaches zero in floating point; treat anything below
	// the epsilon as polar and leave the longitude axis unconstrained.
	cos := math.Abs(math.Cos(lat * math.Pi / 180))
	if cos >= 1e-9 {
		d := radiusMiles / (MilesPerDegree * cos)
		box.LngDelta = &d
	}

	return box, nil
}
