package entities

import (
	"github.com/zatekoja/costnavigator/pkg/geo"
)

// Provider represents a hospital that reports prices for one or more DRGs
type Provider struct {
	ID         int64    `json:"-" db:"id"`
	ProviderID string   `json:"provider_id" db:"provider_id"`
	Name       string   `json:"provider_name" db:"provider_name"`
	City       string   `json:"provider_city" db:"provider_city"`
	State      string   `json:"provider_state" db:"provider_state"`
	ZipCode    string   `json:"provider_zip_code" db:"provider_zip_code"`
	Latitude   *float64 `json:"latitude,omitempty" db:"latitude"`
	Longitude  *float64 `json:"longitude,omitempty" db:"longitude"`
}

// Location returns the provider's coordinates, or false when it has none
func (p *Provider) Location() (geo.Point, bool) {
	if p.Latitude == nil || p.Longitude == nil {
		return geo.Point{}, false
	}
	return geo.Point{Latitude: *p.Latitude, Longitude: *p.Longitude}, true
}

// Candidate is a provider that bills for the requested DRG, before distance
// filtering and ranking. Money and rating fields are nil when the store has no value.
type Candidate struct {
	ProviderID              string
	ProviderName            string
	ProviderCity            string
	ProviderState           string
	ProviderZipCode         string
	Location                geo.Point
	DRGCode                 int
	DRGDescription          string
	AverageCoveredCharges   *float64
	AverageTotalPayments    *float64
	AverageMedicarePayments *float64
	AvgRating               *float64
}

// ProviderResult is one ranked row returned to API callers
type ProviderResult struct {
	ProviderID              string   `json:"provider_id"`
	ProviderName            string   `json:"provider_name"`
	ProviderCity            string   `json:"provider_city"`
	ProviderState           string   `json:"provider_state"`
	ProviderZipCode         string   `json:"provider_zip_code"`
	DistanceKm              float64  `json:"distance_km"`
	DRGCode                 int      `json:"drg_code"`
	DRGDescription          string   `json:"drg_description"`
	AverageCoveredCharges   *float64 `json:"average_covered_charges"`
	AverageTotalPayments    *float64 `json:"average_total_payments"`
	AverageMedicarePayments *float64 `json:"average_medicare_payments"`
	AvgRating               *float64 `json:"avg_rating"`
}

// ToResult annotates the candidate with its distance from the search origin
func (c *Candidate) ToResult(distanceKm float64) ProviderResult {
	return ProviderResult{
		ProviderID:              c.ProviderID,
		ProviderName:            c.ProviderName,
		ProviderCity:            c.ProviderCity,
		ProviderState:           c.ProviderState,
		ProviderZipCode:         c.ProviderZipCode,
		DistanceKm:              distanceKm,
		DRGCode:                 c.DRGCode,
		DRGDescription:          c.DRGDescription,
		AverageCoveredCharges:   c.AverageCoveredCharges,
		AverageTotalPayments:    c.AverageTotalPayments,
		AverageMedicarePayments: c.AverageMedicarePayments,
		AvgRating:               c.AvgRating,
	}
}
