package evaluation

import "math"

// RadiusToleranceKm absorbs rounding in mile conversions ("10 miles" as 16 or 16.1 km)
const RadiusToleranceKm = 0.5

// Accuracy returns correct/total, or 0 when nothing was scored.
func Accuracy(correct, total int) float64 {
	if total == 0 {
		return 0.0
	}
	return float64(correct) / float64(total)
}

// MatchCode reports whether the parsed code equals the expected one; nil expectation means unscored.
func MatchCode(want, got *int) *bool {
	if want == nil {
		return nil
	}
	ok := got != nil && *got == *want
	return &ok
}

// MatchZip compares ZIPs after trimming a ZIP+4 suffix and zero padding.
func MatchZip(want, got *string, normalize func(string) string) *bool {
	if want == nil {
		return nil
	}
	ok := got != nil && normalize(*got) == normalize(*want)
	return &ok
}

// MatchRadius reports whether got is within RadiusToleranceKm of want.
func MatchRadius(want *float64, got float64) *bool {
	if want == nil {
		return nil
	}
	ok := math.Abs(got-*want) <= RadiusToleranceKm
	return &ok
}
