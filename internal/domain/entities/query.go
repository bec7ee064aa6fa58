package entities

import (
	"fmt"
	"strings"
)

// Intent is what a natural-language question is asking for
type Intent string

const (
	IntentCheapest    Intent = "cheapest"
	IntentBestRatings Intent = "best_ratings"
	IntentInfo        Intent = "info"
)

// ParseIntent accepts the three known intents case-insensitively
func ParseIntent(s string) (Intent, bool) {
	switch Intent(strings.ToLower(strings.TrimSpace(s))) {
	case IntentCheapest:
		return IntentCheapest, true
	case IntentBestRatings:
		return IntentBestRatings, true
	case IntentInfo:
		return IntentInfo, true
	}
	return "", false
}

// SortMode orders ranked results
type SortMode string

const (
	SortByCost   SortMode = "cost"
	SortByRating SortMode = "rating"
)

// ParseSortMode accepts cost or rating case-insensitively
func ParseSortMode(s string) (SortMode, error) {
	switch SortMode(strings.ToLower(strings.TrimSpace(s))) {
	case SortByCost:
		return SortByCost, nil
	case SortByRating:
		return SortByRating, nil
	}
	return "", fmt.Errorf("sort must be %q or %q, got %q", SortByCost, SortByRating, s)
}

// SortFor is the sort implied by an intent: rating for best_ratings, cost otherwise
func SortFor(intent Intent) SortMode {
	if intent == IntentBestRatings {
		return SortByRating
	}
	return SortByCost
}

// QueryDescriptor is the structured form of a natural-language question.
// Radius, limit and sort are always populated once a parser returns it.
type QueryDescriptor struct {
	Intent        Intent   `json:"intent"`
	ProcedureCode *int     `json:"drg_code"`
	ProcedureText *string  `json:"drg_text"`
	Zip           *string  `json:"zip"`
	RadiusKm      float64  `json:"radius_km"`
	Limit         int      `json:"limit"`
	Sort          SortMode `json:"sort"`
	// Source names the strategy that produced the descriptor.
	Source string `json:"parser"`
}

// SearchQuery is a validated structured search
type SearchQuery struct {
	ProcedureCode *int
	ProcedureText string
	Zip           string
	RadiusKm      float64
	Limit         int
	Sort          SortMode
}

// AskResult is the response to a natural-language question
type AskResult struct {
	Answer        string           `json:"answer"`
	Intent        Intent           `json:"intent"`
	ProcedureCode *int             `json:"drg_code"`
	ProcedureText *string          `json:"drg_text"`
	Zip           *string          `json:"zip"`
	RadiusKm      float64          `json:"radius_km"`
	Limit         int              `json:"limit"`
	Sort          SortMode         `json:"sort"`
	Parser        string           `json:"parser"`
	Results       []ProviderResult `json:"results"`
}
