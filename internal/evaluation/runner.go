package evaluation

import (
	"context"
	"time"

	"github.com/zatekoja/costnavigator/internal/application/services"
	"github.com/zatekoja/costnavigator/internal/domain/entities"
)

// Runner runs the intent parser across a set of golden questions.
type Runner struct {
	parser services.QuestionParser
	// fallbackSource is the Source value that marks a rules answer
	fallbackSource string
	onResult       func(EvalResult)
}

// NewRunner creates a runner. onResult, when set, is called after every question.
func NewRunner(parser services.QuestionParser, onResult func(EvalResult)) *Runner {
	return &Runner{
		parser:         parser,
		fallbackSource: services.NewRuleStrategy().Name(),
		onResult:       onResult,
	}
}

// Run parses every question in order and aggregates accuracy. It stops early if ctx is done.
func (r *Runner) Run(ctx context.Context, questions []GoldenQuestion) (*EvalSummary, error) {
	var (
		results      []EvalResult
		totalLatency time.Duration
	)

	for _, gq := range questions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		start := time.Now()
		d := r.parser.Parse(ctx, gq.Question)
		latency := time.Since(start)

		result := EvalResult{
			ID:            gq.ID,
			Question:      gq.Question,
			Difficulty:    gq.Difficulty,
			Expected:      gq.Intent,
			Got:           d.Intent,
			Parser:        d.Source,
			IntentCorrect: d.Intent == gq.Intent,
			CodeCorrect:   MatchCode(gq.DRGCode, d.ProcedureCode),
			ZipCorrect:    MatchZip(gq.Zip, d.Zip, entities.NormalizeZip),
			RadiusCorrect: MatchRadius(gq.RadiusKm, d.RadiusKm),
			Latency:       latency,
		}
		results = append(results, result)
		totalLatency += latency

		if r.onResult != nil {
			r.onResult(result)
		}
	}

	return r.summarize(results, totalLatency), nil
}

func (r *Runner) summarize(results []EvalResult, totalLatency time.Duration) *EvalSummary {
	summary := &EvalSummary{
		TotalQuestions: len(results),
		ByIntent:       make(map[entities.Intent]*IntentSummary),
		ByDifficulty:   make(map[string]*IntentSummary),
	}
	if len(results) == 0 {
		return summary
	}

	var intentOK, fallbacks int
	var codeOK, codeN, zipOK, zipN, radiusOK, radiusN int
	tally := func(ok *bool, correct, n *int) {
		if ok == nil {
			return
		}
		*n++
		if *ok {
			*correct++
		}
	}

	for _, res := range results {
		if res.IntentCorrect {
			intentOK++
		}
		if res.Parser == r.fallbackSource {
			fallbacks++
		}
		tally(res.CodeCorrect, &codeOK, &codeN)
		tally(res.ZipCorrect, &zipOK, &zipN)
		tally(res.RadiusCorrect, &radiusOK, &radiusN)

		addTo(summary.ByIntent, res.Expected, res.IntentCorrect)
		addTo(summary.ByDifficulty, res.Difficulty, res.IntentCorrect)

		if !res.IntentCorrect || isFalse(res.CodeCorrect) || isFalse(res.ZipCorrect) || isFalse(res.RadiusCorrect) {
			summary.Failures = append(summary.Failures, res)
		}
	}

	for _, group := range summary.ByIntent {
		group.Accuracy = Accuracy(group.Correct, group.Count)
	}
	for _, group := range summary.ByDifficulty {
		group.Accuracy = Accuracy(group.Correct, group.Count)
	}

	summary.IntentAccuracy = Accuracy(intentOK, len(results))
	summary.CodeAccuracy = Accuracy(codeOK, codeN)
	summary.ZipAccuracy = Accuracy(zipOK, zipN)
	summary.RadiusAccuracy = Accuracy(radiusOK, radiusN)
	summary.FallbackRate = Accuracy(fallbacks, len(results))
	summary.AvgLatency = totalLatency / time.Duration(len(results))
	return summary
}

func addTo[K comparable](groups map[K]*IntentSummary, key K, correct bool) {
	group := groups[key]
	if group == nil {
		group = &IntentSummary{}
		groups[key] = group
	}
	group.Count++
	if correct {
		group.Correct++
	}
}

func isFalse(b *bool) bool {
	return b != nil && !*b
}
