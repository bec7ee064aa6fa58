package services

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/zatekoja/costnavigator/internal/domain/entities"
)

// Fixed answers
const (
	AnswerCapabilities     = "I can help with hospital pricing and quality information. Ask about DRG codes, costs, or ratings."
	AnswerMissingZip       = "Please provide a ZIP code."
	AnswerZipNotFound      = "ZIP not found."
	AnswerMissingProcedure = "Please specify a DRG code or description."
)

// AnswerOutcome is how far the ask pipeline got before answering
type AnswerOutcome int

const (
	OutcomeInfo AnswerOutcome = iota
	OutcomeMissingZip
	OutcomeZipNotFound
	OutcomeMissingProcedure
	OutcomeSearched
)

// AnswerInput carries everything needed to phrase one answer
type AnswerInput struct {
	Outcome  AnswerOutcome
	Zip      string
	RadiusKm float64
	Sort     entities.SortMode
	Results  []entities.ProviderResult
}

// SynthesizeAnswer phrases a one-sentence answer. It is pure.
func SynthesizeAnswer(in AnswerInput) string {
	switch in.Outcome {
	case OutcomeInfo:
		return AnswerCapabilities
	case OutcomeMissingZip:
		return AnswerMissingZip
	case OutcomeZipNotFound:
		return AnswerZipNotFound
	case OutcomeMissingProcedure:
		return AnswerMissingProcedure
	}

	if len(in.Results) == 0 {
		return fmt.Sprintf("No results found within %.0f km.", in.RadiusKm)
	}

	top := in.Results[0]
	if in.Sort == entities.SortByRating && top.AvgRating != nil {
		return fmt.Sprintf("Based on data, %s (rating: %.1f/10) is a top option near %s.", top.ProviderName, *top.AvgRating, in.Zip)
	}

	label, value := headlinePrice(top)
	if value == nil {
		return fmt.Sprintf("Cheapest appears to be %s.", top.ProviderName)
	}
	return fmt.Sprintf("Cheapest appears to be %s with %s %s.", top.ProviderName, label, formatDollars(*value))
}

// headlinePrice picks covered charges, then total payments, then Medicare payments
func headlinePrice(r entities.ProviderResult) (string, *float64) {
	switch {
	case r.AverageCoveredCharges != nil:
		return "avg covered charges", r.AverageCoveredCharges
	case r.AverageTotalPayments != nil:
		return "avg total payments", r.AverageTotalPayments
	case r.AverageMedicarePayments != nil:
		return "avg Medicare payments", r.AverageMedicarePayments
	}
	return "", nil
}

// formatDollars renders whole dollars, rounded half to even, with thousands separators
func formatDollars(v float64) string {
	whole := decimal.NewFromFloat(v).RoundBank(0).IntPart()
	return message.NewPrinter(language.English).Sprintf("$%d", whole)
}
