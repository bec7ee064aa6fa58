package evaluation

import "fmt"

// GuardrailConfig sets the floors a parser must clear for an evaluation to pass.
type GuardrailConfig struct {
	MinIntentAccuracy float64
	MinFieldAccuracy  float64
	// MaxFallbackRate of 0 disables the fallback check.
	MaxFallbackRate float64
}

type Guardrails struct {
	config GuardrailConfig
}

func NewGuardrails(config GuardrailConfig) *Guardrails {
	if config.MinIntentAccuracy <= 0 {
		config.MinIntentAccuracy = 0.9
	}
	if config.MinFieldAccuracy <= 0 {
		config.MinFieldAccuracy = 0.9
	}
	return &Guardrails{config: config}
}

// Check returns one message per guardrail the summary violates.
func (g *Guardrails) Check(s *EvalSummary) []string {
	var violations []string
	if s.IntentAccuracy < g.config.MinIntentAccuracy {
		violations = append(violations, fmt.Sprintf("intent accuracy %.2f below %.2f", s.IntentAccuracy, g.config.MinIntentAccuracy))
	}
	for _, field := range []struct {
		name     string
		accuracy float64
	}{
		{"drg_code", s.CodeAccuracy},
		{"zip", s.ZipAccuracy},
		{"radius_km", s.RadiusAccuracy},
	} {
		if field.accuracy < g.config.MinFieldAccuracy {
			violations = append(violations, fmt.Sprintf("%s accuracy %.2f below %.2f", field.name, field.accuracy, g.config.MinFieldAccuracy))
		}
	}
	if g.config.MaxFallbackRate > 0 && s.FallbackRate > g.config.MaxFallbackRate {
		violations = append(violations, fmt.Sprintf("fallback rate %.2f above %.2f", s.FallbackRate, g.config.MaxFallbackRate))
	}
	return violations
}
