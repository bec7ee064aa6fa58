package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/zatekoja/costnavigator/internal/adapters/cache"
	"github.com/zatekoja/costnavigator/internal/application/services"
	"github.com/zatekoja/costnavigator/internal/domain/entities"
	"github.com/zatekoja/costnavigator/internal/domain/providers"
	"github.com/zatekoja/costnavigator/tests/mocks"
)

func newCompletion(t *testing.T) *mocks.MockCompletionProvider {
	t.Helper()
	m := mocks.NewMockCompletionProvider(t)
	m.EXPECT().Name().Return("gpt-4o-mini").Maybe()
	return m
}

func TestModelStrategy_DecodesReply(t *testing.T) {
	completion := newCompletion(t)
	completion.EXPECT().
		CompleteJSON(mock.Anything, mock.MatchedBy(func(req providers.CompletionRequest) bool {
			return req.SystemPrompt != "" && strings.Contains(req.UserPrompt, "02134")
		})).
		Return(`{"intent":"cheapest","drg_code":"470","zip":2134,"radius_km":16.09,"limit":3,"sort":"cost"}`, nil)

	d, err := services.NewModelStrategy(completion, services.ModelStrategyOptions{Logger: zerolog.Nop()}).
		Parse(context.Background(), "cheapest knee replacement near 02134 within 10 miles")

	require.NoError(t, err)
	assert.Equal(t, entities.IntentCheapest, d.Intent)
	require.NotNil(t, d.ProcedureCode)
	assert.Equal(t, 470, *d.ProcedureCode)
	require.NotNil(t, d.Zip)
	assert.Equal(t, "2134", *d.Zip)
	assert.InDelta(t, 16.09, d.RadiusKm, 1e-9)
	assert.Equal(t, 3, d.Limit)
	assert.Equal(t, entities.SortByCost, d.Sort)
	assert.Equal(t, "gpt-4o-mini", d.Source)
}

func TestModelStrategy_NullFieldsFallBackToDefaults(t *testing.T) {
	completion := newCompletion(t)
	completion.EXPECT().CompleteJSON(mock.Anything, mock.Anything).
		Return(`{"intent":"cheapest","drg_code":null,"drg_text":"knee","zip":null,"radius_km":null,"limit":null,"sort":null}`, nil)

	d, err := services.NewModelStrategy(completion, services.ModelStrategyOptions{Logger: zerolog.Nop()}).
		Parse(context.Background(), "cheapest knee replacement")

	require.NoError(t, err)
	assert.Nil(t, d.ProcedureCode)
	assert.Nil(t, d.Zip)
	assert.Equal(t, services.DefaultAskRadiusKm, d.RadiusKm)
	assert.Equal(t, services.DefaultAskLimit, d.Limit)
	assert.Equal(t, entities.SortByCost, d.Sort)
}

func TestModelStrategy_RecordsOneLatencySamplePerCall(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	otel.SetMeterProvider(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)))

	completion := newCompletion(t)
	completion.EXPECT().CompleteJSON(mock.Anything, mock.Anything).
		Return(`{"intent":"info"}`, nil).Once()

	_, err := services.NewModelStrategy(completion, services.ModelStrategyOptions{Logger: zerolog.Nop()}).
		Parse(context.Background(), "what can you do")
	require.NoError(t, err)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	var samples uint64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if hist, ok := m.Data.(metricdata.Histogram[float64]); ok && m.Name == "intent.model.duration" {
				for _, dp := range hist.DataPoints {
					samples += dp.Count
				}
			}
		}
	}
	assert.Equal(t, uint64(1), samples)
}

func TestModelStrategy_NormalizesOutOfRangeValues(t *testing.T) {
	completion := newCompletion(t)
	completion.EXPECT().CompleteJSON(mock.Anything, mock.Anything).
		Return(`{"intent":"best_ratings","drg_text":"heart failure","radius_km":5000,"limit":0,"sort":"distance"}`, nil)

	d, err := services.NewModelStrategy(completion, services.ModelStrategyOptions{Logger: zerolog.Nop()}).
		Parse(context.Background(), "best hospitals for heart failure")

	require.NoError(t, err)
	assert.Equal(t, services.MaxAskRadiusKm, d.RadiusKm)
	assert.Equal(t, services.DefaultAskLimit, d.Limit)
	assert.Equal(t, entities.SortByRating, d.Sort)
	assert.Nil(t, d.ProcedureCode)
	require.NotNil(t, d.ProcedureText)
	assert.Equal(t, "heart failure", *d.ProcedureText)
}

func TestModelStrategy_MalformedReplies(t *testing.T) {
	replies := map[string]string{
		"not json":       "sure! here is the answer",
		"missing intent": `{"zip":"10001"}`,
		"unknown intent": `{"intent":"book_appointment","zip":"10001"}`,
	}

	for name, reply := range replies {
		t.Run(name, func(t *testing.T) {
			completion := newCompletion(t)
			completion.EXPECT().CompleteJSON(mock.Anything, mock.Anything).Return(reply, nil)

			_, err := services.NewModelStrategy(completion, services.ModelStrategyOptions{Logger: zerolog.Nop()}).
				Parse(context.Background(), "anything")
			assert.ErrorIs(t, err, services.ErrMalformedReply)
		})
	}
}

func TestModelStrategy_Timeout(t *testing.T) {
	completion := newCompletion(t)
	completion.EXPECT().CompleteJSON(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ providers.CompletionRequest) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		})

	strategy := services.NewModelStrategy(completion, services.ModelStrategyOptions{Timeout: 20 * time.Millisecond, Logger: zerolog.Nop()})
	_, err := strategy.Parse(context.Background(), "cheapest drg 470 in 10001")

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestModelStrategy_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	completion := newCompletion(t)
	completion.EXPECT().CompleteJSON(mock.Anything, mock.Anything).
		Return("", errors.New("503 service unavailable")).Times(5)

	strategy := services.NewModelStrategy(completion, services.ModelStrategyOptions{Logger: zerolog.Nop()})
	for i := 0; i < 5; i++ {
		_, err := strategy.Parse(context.Background(), "cheapest drg 470 in 10001")
		require.Error(t, err)
	}

	_, err := strategy.Parse(context.Background(), "cheapest drg 470 in 10001")
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
}

func TestModelStrategy_CachesDescriptors(t *testing.T) {
	completion := newCompletion(t)
	completion.EXPECT().CompleteJSON(mock.Anything, mock.Anything).
		Return(`{"intent":"cheapest","drg_code":470,"zip":"10001"}`, nil).Once()

	store := cache.NewMemoryAdapter(16, time.Hour)
	strategy := services.NewModelStrategy(completion, services.ModelStrategyOptions{
		Cache:    store,
		CacheTTL: time.Hour,
		Logger:   zerolog.Nop(),
	})

	first, err := strategy.Parse(context.Background(), "Cheapest DRG 470 in 10001")
	require.NoError(t, err)

	// the write is asynchronous
	assert.Eventually(t, func() bool { return store.Len() == 1 }, time.Second, 5*time.Millisecond)

	second, err := strategy.Parse(context.Background(), "  cheapest drg 470 in 10001 ")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

type stubStrategy struct {
	d   entities.QueryDescriptor
	err error
}

func (s stubStrategy) Name() string { return "stub" }

func (s stubStrategy) Parse(context.Context, string) (entities.QueryDescriptor, error) {
	return s.d, s.err
}

func TestIntentParser_TrustsPrimary(t *testing.T) {
	primary := stubStrategy{d: entities.QueryDescriptor{
		Intent:   entities.IntentBestRatings,
		Zip:      ptr("60601"),
		RadiusKm: 10,
		Limit:    2,
		Sort:     entities.SortByRating,
		Source:   "stub",
	}}

	// the question says cheapest but the primary's reading wins
	d := services.NewIntentParser(primary, zerolog.Nop()).Parse(context.Background(), "cheapest drg 470 in 10001")

	assert.Equal(t, entities.IntentBestRatings, d.Intent)
	assert.Equal(t, "60601", *d.Zip)
	assert.Equal(t, "stub", d.Source)
}

func TestIntentParser_FallsBackToRules(t *testing.T) {
	failures := []error{
		errors.New("connection reset"),
		context.DeadlineExceeded,
		services.ErrMalformedReply,
		gobreaker.ErrOpenState,
	}

	for _, failure := range failures {
		d := services.NewIntentParser(stubStrategy{err: failure}, zerolog.Nop()).
			Parse(context.Background(), "cheapest drg 470 in 10001")

		assert.Equal(t, "rules", d.Source, failure.Error())
		assert.Equal(t, entities.IntentCheapest, d.Intent)
		require.NotNil(t, d.ProcedureCode)
		assert.Equal(t, 470, *d.ProcedureCode)
	}
}

func TestIntentParser_RulesOnly(t *testing.T) {
	d := services.NewIntentParser(nil, zerolog.Nop()).Parse(context.Background(), "what's the weather")
	assert.Equal(t, entities.IntentInfo, d.Intent)
	assert.Equal(t, "rules", d.Source)
}
