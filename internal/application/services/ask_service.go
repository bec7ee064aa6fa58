package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"

	"github.com/zatekoja/costnavigator/internal/domain/entities"
	"github.com/zatekoja/costnavigator/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/costnavigator/pkg/errors"
)

// MaxQuestionLength bounds the text forwarded to the parser
const MaxQuestionLength = 1000

// AskService answers natural-language questions
type AskService struct {
	parser     QuestionParser
	geo        *GeoResolver
	procedures *ProcedureResolver
	search     *SearchService
	logger     zerolog.Logger
}

// NewAskService creates a new ask service
func NewAskService(parser QuestionParser, geoResolver *GeoResolver, procedures *ProcedureResolver, search *SearchService, logger zerolog.Logger) *AskService {
	return &AskService{
		parser:     parser,
		geo:        geoResolver,
		procedures: procedures,
		search:     search,
		logger:     logger.With().Str("component", "ask").Logger(),
	}
}

// Ask parses question, runs the search it describes and phrases the answer.
// Unresolvable ZIPs or procedures become answers, not errors; store failures
// and cancellation are returned as errors.
func (s *AskService) Ask(ctx context.Context, question string) (*entities.AskResult, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, apperrors.NewValidationError("question is required")
	}
	if len(question) > MaxQuestionLength {
		return nil, apperrors.NewValidationError("question is too long")
	}

	ctx, span := observability.StartSpan(ctx, "ask")
	defer span.End()

	d := s.parser.Parse(ctx, question)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.String("ask.intent", string(d.Intent)),
		attribute.String("ask.parser", d.Source),
	)

	result := &entities.AskResult{
		Intent:        d.Intent,
		ProcedureCode: d.ProcedureCode,
		ProcedureText: d.ProcedureText,
		RadiusKm:      d.RadiusKm,
		Limit:         d.Limit,
		Sort:          d.Sort,
		Parser:        d.Source,
		Results:       []entities.ProviderResult{},
	}
	answer := AnswerInput{RadiusKm: d.RadiusKm, Sort: d.Sort}

	finish := func(outcome AnswerOutcome) (*entities.AskResult, error) {
		answer.Outcome = outcome
		result.Answer = SynthesizeAnswer(answer)
		s.logger.Debug().
			Str("intent", string(result.Intent)).
			Str("parser", result.Parser).
			Int("results", len(result.Results)).
			Msg("answered question")
		return result, nil
	}

	if d.Intent == entities.IntentInfo {
		return finish(OutcomeInfo)
	}

	if d.Zip == nil {
		return finish(OutcomeMissingZip)
	}
	zip := entities.NormalizeZip(*d.Zip)
	result.Zip = &zip
	answer.Zip = zip

	origin, err := s.geo.ResolveOrigin(ctx, zip)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return finish(OutcomeZipNotFound)
		}
		observability.RecordError(span, err)
		return nil, err
	}

	text := ""
	if d.ProcedureText != nil {
		text = *d.ProcedureText
	}
	code, err := s.procedures.ResolveProcedure(ctx, d.ProcedureCode, text)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return finish(OutcomeMissingProcedure)
		}
		observability.RecordError(span, err)
		return nil, err
	}
	result.ProcedureCode = &code

	results, err := s.search.Search(ctx, origin, code, d.RadiusKm, d.Limit, d.Sort)
	if err != nil {
		return nil, err
	}
	result.Results = results
	answer.Results = results

	return finish(OutcomeSearched)
}
