// Package geo holds the great-circle math shared by the search path and its store prefilter.
package geo

import "math"

// EarthRadiusKm is the mean Earth radius used for every distance in the service.
const EarthRadiusKm = 6371.0

// KmPerMile converts statute miles to kilometres.
const KmPerMile = 1.60934

// Point is a WGS84 coordinate in decimal degrees.
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Distance returns the haversine great-circle distance between a and b in kilometres.
func Distance(a, b Point) float64 {
	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)
	dLat := toRadians(b.Latitude - a.Latitude)
	dLon := toRadians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	// rounding can push h a hair outside [0,1] for antipodal or identical points
	h = math.Min(1, math.Max(0, h))

	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(h))
}

// BoundingBox is an axis-aligned lat/lon rectangle.
type BoundingBox struct {
	MinLat, MaxLat float64
	MinLon, MaxLon float64
}

// Contains reports whether p lies inside the box, edges included.
func (b BoundingBox) Contains(p Point) bool {
	return p.Latitude >= b.MinLat && p.Latitude <= b.MaxLat &&
		p.Longitude >= b.MinLon && p.Longitude <= b.MaxLon
}

// BoundingBoxAround returns a rectangle that contains every point within
// radiusKm of center. ok is false when no simple rectangle works (the circle
// reaches a pole or crosses the antimeridian); callers should then skip
// the prefilter rather than risk dropping candidates.
//
// The box is padded slightly so that points exactly on the radius survive
// floating-point error in the store's comparison.
func BoundingBoxAround(center Point, radiusKm float64) (box BoundingBox, ok bool) {
	if radiusKm < 0 || math.IsNaN(radiusKm) || math.IsInf(radiusKm, 0) {
		return BoundingBox{}, false
	}

	const pad = 1.001
	angular := radiusKm * pad / EarthRadiusKm
	dLat := toDegrees(angular)

	minLat := center.Latitude - dLat
	maxLat := center.Latitude + dLat
	if minLat <= -90 || maxLat >= 90 {
		return BoundingBox{}, false
	}

	// widest longitude span of the circle, taken at the latitude nearest a pole
	cosLat := math.Cos(toRadians(math.Max(math.Abs(minLat), math.Abs(maxLat))))
	ratio := math.Sin(angular) / cosLat
	if ratio >= 1 {
		return BoundingBox{}, false
	}
	dLon := toDegrees(math.Asin(ratio))

	minLon := center.Longitude - dLon
	maxLon := center.Longitude + dLon
	if minLon < -180 || maxLon > 180 {
		return BoundingBox{}, false
	}

	return BoundingBox{MinLat: minLat, MaxLat: maxLat, MinLon: minLon, MaxLon: maxLon}, true
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

func toDegrees(rad float64) float64 {
	return rad * 180.0 / math.Pi
}
