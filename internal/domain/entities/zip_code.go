package entities

import (
	"strings"

	"github.com/zatekoja/costnavigator/pkg/geo"
)

// ZipCode is the centroid of a five-digit US ZIP code
type ZipCode struct {
	Zip       string   `json:"zip" db:"zip"`
	City      *string  `json:"city,omitempty" db:"city"`
	State     *string  `json:"state,omitempty" db:"state"`
	Latitude  *float64 `json:"latitude" db:"latitude"`
	Longitude *float64 `json:"longitude" db:"longitude"`
}

// Location returns the centroid, or false when the row has no coordinates
func (z *ZipCode) Location() (geo.Point, bool) {
	if z.Latitude == nil || z.Longitude == nil {
		return geo.Point{}, false
	}
	return geo.Point{Latitude: *z.Latitude, Longitude: *z.Longitude}, true
}

// NormalizeZip trims whitespace, drops a ZIP+4 suffix and left-pads to five digits.
// "2134" becomes "02134" and "02134-1234" becomes "02134".
func NormalizeZip(zip string) string {
	z := strings.TrimSpace(zip)
	if i := strings.IndexByte(z, '-'); i >= 0 {
		z = z[:i]
	}
	if z == "" || len(z) >= 5 {
		return z
	}
	return strings.Repeat("0", 5-len(z)) + z
}
