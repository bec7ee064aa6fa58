package services

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/zatekoja/costnavigator/internal/domain/entities"
	"github.com/zatekoja/costnavigator/pkg/geo"
)

var (
	drgPattern    = regexp.MustCompile(`drg\s*(\d{3})`)
	zipPattern    = regexp.MustCompile(`\b\d{5}\b`)
	radiusPattern = regexp.MustCompile(`(\d{1,3})\s*(miles|mile|mi)`)
)

// RuleStrategy is the deterministic keyword and pattern parser
type RuleStrategy struct{}

// NewRuleStrategy creates the rule-based strategy
func NewRuleStrategy() *RuleStrategy {
	return &RuleStrategy{}
}

// Name identifies the strategy in metrics and responses
func (r *RuleStrategy) Name() string {
	return "rules"
}

// Parse implements ParseStrategy; it never fails
func (r *RuleStrategy) Parse(_ context.Context, question string) (entities.QueryDescriptor, error) {
	return r.Describe(question), nil
}

// Describe extracts intent, DRG code, ZIP and radius from question.
// Same input, same output.
func (r *RuleStrategy) Describe(question string) entities.QueryDescriptor {
	q := strings.ToLower(question)

	intent := entities.IntentInfo
	switch {
	case strings.Contains(q, "cheapest") || strings.Contains(q, "lowest"):
		intent = entities.IntentCheapest
	case strings.Contains(q, "best") || strings.Contains(q, "rating"):
		intent = entities.IntentBestRatings
	}

	d := entities.QueryDescriptor{
		Intent:   intent,
		RadiusKm: DefaultAskRadiusKm,
		Limit:    DefaultAskLimit,
		Sort:     entities.SortFor(intent),
		Source:   r.Name(),
	}

	if m := drgPattern.FindStringSubmatch(q); m != nil {
		if code, err := strconv.Atoi(m[1]); err == nil {
			d.ProcedureCode = &code
		}
	}

	if m := zipPattern.FindString(q); m != "" {
		d.Zip = &m
	}

	if m := radiusPattern.FindStringSubmatch(q); m != nil {
		if miles, err := strconv.ParseFloat(m[1], 64); err == nil && miles > 0 {
			d.RadiusKm = miles * geo.KmPerMile
		}
	}

	return d
}
