package evaluation

import (
	"time"

	"github.com/zatekoja/costnavigator/internal/domain/entities"
)

// GoldenQuestion is a labeled question with the descriptor fields a parser should extract.
// Nil expectations are not scored.
type GoldenQuestion struct {
	ID         string          `json:"id"`
	Question   string          `json:"question"`
	Intent     entities.Intent `json:"intent"`
	DRGCode    *int            `json:"drg_code,omitempty"`
	Zip        *string         `json:"zip,omitempty"`
	RadiusKm   *float64        `json:"radius_km,omitempty"`
	Difficulty string          `json:"difficulty"` // easy, medium, hard
}

// EvalResult holds the outcome for a single question.
type EvalResult struct {
	ID            string          `json:"id"`
	Question      string          `json:"question"`
	Difficulty    string          `json:"difficulty"`
	Expected      entities.Intent `json:"expected_intent"`
	Got           entities.Intent `json:"got_intent"`
	Parser        string          `json:"parser"`
	IntentCorrect bool            `json:"intent_correct"`
	// The pointers are nil when the golden question had no expectation.
	CodeCorrect   *bool         `json:"code_correct,omitempty"`
	ZipCorrect    *bool         `json:"zip_correct,omitempty"`
	RadiusCorrect *bool         `json:"radius_correct,omitempty"`
	Latency       time.Duration `json:"latency"`
}

// EvalSummary holds aggregate metrics across all golden questions.
type EvalSummary struct {
	TotalQuestions int                                `json:"total_questions"`
	IntentAccuracy float64                            `json:"intent_accuracy"`
	CodeAccuracy   float64                            `json:"drg_code_accuracy"`
	ZipAccuracy    float64                            `json:"zip_accuracy"`
	RadiusAccuracy float64                            `json:"radius_accuracy"`
	FallbackRate   float64                            `json:"fallback_rate"`
	AvgLatency     time.Duration                      `json:"avg_latency"`
	ByIntent       map[entities.Intent]*IntentSummary `json:"by_intent"`
	ByDifficulty   map[string]*IntentSummary          `json:"by_difficulty"`
	Failures       []EvalResult                       `json:"failures,omitempty"`
}

// IntentSummary holds intent accuracy for one group of questions.
type IntentSummary struct {
	Count    int     `json:"count"`
	Correct  int     `json:"correct"`
	Accuracy float64 `json:"accuracy"`
}
