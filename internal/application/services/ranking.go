package services

import (
	"cmp"
	"slices"

	"github.com/zatekoja/costnavigator/internal/domain/entities"
	"github.com/zatekoja/costnavigator/pkg/geo"
)

type rankedCandidate struct {
	candidate  *entities.Candidate
	distanceKm float64
}

// RankCandidates keeps candidates within radiusKm of origin (inclusive),
// orders them by sort and returns at most limit results. Each distance is
// computed once and reused for both the filter and the reported value.
func RankCandidates(origin geo.Point, candidates []entities.Candidate, radiusKm float64, limit int, sort entities.SortMode) []entities.ProviderResult {
	if limit <= 0 {
		return []entities.ProviderResult{}
	}

	kept := make([]rankedCandidate, 0, len(candidates))
	for i := range candidates {
		d := geo.Distance(origin, candidates[i].Location)
		if d <= radiusKm {
			kept = append(kept, rankedCandidate{candidate: &candidates[i], distanceKm: d})
		}
	}

	compare := compareByCost
	if sort == entities.SortByRating {
		compare = compareByRating
	}
	slices.SortStableFunc(kept, compare)

	if len(kept) > limit {
		kept = kept[:limit]
	}

	results := make([]entities.ProviderResult, len(kept))
	for i, k := range kept {
		results[i] = k.candidate.ToResult(k.distanceKm)
	}
	return results
}

// compareByCost: covered charges ascending with nulls last, then provider id.
func compareByCost(a, b rankedCandidate) int {
	if c := compareNullsLast(a.candidate.AverageCoveredCharges, b.candidate.AverageCoveredCharges, false); c != 0 {
		return c
	}
	return cmp.Compare(a.candidate.ProviderID, b.candidate.ProviderID)
}

// compareByRating: rating descending with nulls last, then covered charges
// ascending with nulls last, then provider id.
func compareByRating(a, b rankedCandidate) int {
	if c := compareNullsLast(a.candidate.AvgRating, b.candidate.AvgRating, true); c != 0 {
		return c
	}
	return compareByCost(a, b)
}

func compareNullsLast(a, b *float64, descending bool) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	if descending {
		return cmp.Compare(*b, *a)
	}
	return cmp.Compare(*a, *b)
}
