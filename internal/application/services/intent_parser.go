package services

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"

	"github.com/zatekoja/costnavigator/internal/domain/entities"
	"github.com/zatekoja/costnavigator/internal/infrastructure/observability"
)

// Defaults applied to every natural-language query
const (
	DefaultAskRadiusKm = 40.0
	MaxAskRadiusKm     = 200.0
	DefaultAskLimit    = 5
	MaxAskLimit        = 100
)

// ErrMalformedReply marks model output that could not be turned into a descriptor
var ErrMalformedReply = errors.New("malformed model reply")

// ParseStrategy turns a question into a QueryDescriptor
type ParseStrategy interface {
	Name() string
	Parse(ctx context.Context, question string) (entities.QueryDescriptor, error)
}

// QuestionParser is the infallible parser the ask pipeline depends on
type QuestionParser interface {
	Parse(ctx context.Context, question string) entities.QueryDescriptor
}

// IntentParser tries a primary strategy and falls back to the deterministic
// rules on any failure. A primary that answers is trusted as-is.
type IntentParser struct {
	primary ParseStrategy
	rules   *RuleStrategy
	logger  zerolog.Logger
}

// NewIntentParser creates a parser; primary may be nil to use the rules only
func NewIntentParser(primary ParseStrategy, logger zerolog.Logger) *IntentParser {
	return &IntentParser{
		primary: primary,
		rules:   NewRuleStrategy(),
		logger:  logger.With().Str("component", "intent_parser").Logger(),
	}
}

// Parse never fails; the rules answer whenever the primary cannot
func (p *IntentParser) Parse(ctx context.Context, question string) entities.QueryDescriptor {
	if p.primary != nil {
		d, err := p.primary.Parse(ctx, question)
		if err == nil {
			observability.RecordIntentParse(ctx, p.primary.Name(), "ok")
			return d
		}
		observability.RecordIntentParse(ctx, p.primary.Name(), failureOutcome(err))
		p.logger.Warn().Err(err).Str("strategy", p.primary.Name()).Msg("primary intent parse failed, using rules")
	}

	d := p.rules.Describe(question)
	observability.RecordIntentParse(ctx, p.rules.Name(), "ok")
	return d
}

func failureOutcome(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "cancelled"
	case errors.Is(err, ErrMalformedReply):
		return "malformed"
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "circuit_open"
	default:
		return "error"
	}
}

// normalizeDescriptor applies defaults and bounds so every descriptor is fully specified
func normalizeDescriptor(d entities.QueryDescriptor) entities.QueryDescriptor {
	if d.RadiusKm <= 0 {
		d.RadiusKm = DefaultAskRadiusKm
	}
	if d.RadiusKm > MaxAskRadiusKm {
		d.RadiusKm = MaxAskRadiusKm
	}
	if d.Limit < 1 {
		d.Limit = DefaultAskLimit
	}
	if d.Limit > MaxAskLimit {
		d.Limit = MaxAskLimit
	}
	if d.Sort != entities.SortByCost && d.Sort != entities.SortByRating {
		d.Sort = entities.SortFor(d.Intent)
	}
	if d.ProcedureText != nil && strings.TrimSpace(*d.ProcedureText) == "" {
		d.ProcedureText = nil
	}
	if d.Zip != nil && strings.TrimSpace(*d.Zip) == "" {
		d.Zip = nil
	}
	return d
}
