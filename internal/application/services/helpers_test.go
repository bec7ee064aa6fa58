package services_test

import (
	"math"

	"github.com/zatekoja/costnavigator/internal/domain/entities"
	"github.com/zatekoja/costnavigator/pkg/geo"
)

func ptr[T any](v T) *T { return &v }

func zipAt(zip string, lat, lon float64) *entities.ZipCode {
	return &entities.ZipCode{Zip: zip, Latitude: &lat, Longitude: &lon}
}

// northOf returns the point km kilometres due north of p
func northOf(p geo.Point, km float64) geo.Point {
	return geo.Point{Latitude: p.Latitude + (km/geo.EarthRadiusKm)*(180/math.Pi), Longitude: p.Longitude}
}

func providerAt(id, name string, at geo.Point, covered, rating *float64) entities.Candidate {
	return entities.Candidate{
		ProviderID:            id,
		ProviderName:          name,
		ProviderCity:          "PHILADELPHIA",
		ProviderState:         "PA",
		ProviderZipCode:       "19104",
		Location:              at,
		DRGCode:               470,
		DRGDescription:        "MAJOR JOINT REPLACEMENT OR REATTACHMENT OF LOWER EXTREMITY W/O MCC",
		AverageCoveredCharges: covered,
		AvgRating:             rating,
	}
}
