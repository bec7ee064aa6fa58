package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"

	"github.com/zatekoja/costnavigator/internal/domain/entities"
	"github.com/zatekoja/costnavigator/internal/domain/providers"
	"github.com/zatekoja/costnavigator/internal/infrastructure/observability"
	"github.com/zatekoja/costnavigator/pkg/utils"
)

const intentSystemPrompt = "You translate patient questions about hospital pricing and ratings into a strict JSON object." +
	" Only include the fields you can infer. Use {intent, drg_code, drg_text, zip, radius_km, limit, sort}." +
	" intent must be one of: cheapest, best_ratings, info. sort is cost or rating." +
	" drg_code is the integer DRG code if one is given; otherwise put the procedure wording in drg_text." +
	" radius_km is in kilometres; convert miles with 1 mile = 1.60934 km." +
	" Default radius_km to 40 and limit to 5 if not specified." +
	" If the question is out of scope (not about hospitals, DRG, pricing, cost, rating), set intent=info."

// ModelStrategyOptions configures a ModelStrategy
type ModelStrategyOptions struct {
	// Timeout bounds a single model call, including rate limiter waits.
	Timeout time.Duration
	// Cache stores successful descriptors; nil disables caching.
	Cache    providers.CacheProvider
	CacheTTL time.Duration
	Logger   zerolog.Logger
}

// ModelStrategy asks a hosted language model for the descriptor.
// Its output is untrusted: transport failures, timeouts, undecodable JSON and
// unknown intents are all returned as errors for the caller to fall back on.
type ModelStrategy struct {
	provider providers.CompletionProvider
	breaker  *gobreaker.CircuitBreaker
	timeout  time.Duration
	cache    providers.CacheProvider
	cacheTTL time.Duration
	logger   zerolog.Logger
}

// NewModelStrategy creates a model-backed strategy guarded by a circuit breaker
func NewModelStrategy(provider providers.CompletionProvider, opts ModelStrategyOptions) *ModelStrategy {
	if opts.Timeout <= 0 {
		opts.Timeout = 8 * time.Second
	}
	logger := opts.Logger.With().Str("component", "intent_model").Str("model", provider.Name()).Logger()

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "intent-model",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state changed")
		},
	})

	return &ModelStrategy{
		provider: provider,
		breaker:  breaker,
		timeout:  opts.Timeout,
		cache:    opts.Cache,
		cacheTTL: opts.CacheTTL,
		logger:   logger,
	}
}

// Name identifies the strategy in metrics and responses
func (m *ModelStrategy) Name() string {
	return m.provider.Name()
}

func intentCacheKey(question string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(question))))
	return "intent:v1:" + hex.EncodeToString(sum[:])
}

// Parse implements ParseStrategy
func (m *ModelStrategy) Parse(ctx context.Context, question string) (entities.QueryDescriptor, error) {
	cacheKey := intentCacheKey(question)
	if d, ok := m.fromCache(ctx, cacheKey); ok {
		return d, nil
	}

	callCtx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	start := time.Now()
	out, err := m.breaker.Execute(func() (interface{}, error) {
		return m.provider.CompleteJSON(callCtx, providers.CompletionRequest{
			SystemPrompt: intentSystemPrompt,
			UserPrompt:   fmt.Sprintf("Question: %s\nReturn ONLY compact JSON.", question),
		})
	})
	if err != nil {
		observability.RecordModelCall(ctx, m.Name(), "error", time.Since(start))
		return entities.QueryDescriptor{}, fmt.Errorf("intent model: %w", err)
	}
	observability.RecordModelCall(ctx, m.Name(), "ok", time.Since(start))

	d, err := decodeModelReply(out.(string))
	if err != nil {
		m.logger.Debug().Err(err).Str("reply", truncate(out.(string), 200)).Msg("discarding model reply")
		return entities.QueryDescriptor{}, err
	}
	d.Source = m.Name()

	m.toCache(cacheKey, d)
	return d, nil
}

func (m *ModelStrategy) fromCache(ctx context.Context, key string) (entities.QueryDescriptor, bool) {
	if m.cache == nil {
		return entities.QueryDescriptor{}, false
	}
	data, err := m.cache.Get(ctx, key)
	if err != nil {
		observability.RecordCacheMiss(ctx, "intent")
		return entities.QueryDescriptor{}, false
	}
	var d entities.QueryDescriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return entities.QueryDescriptor{}, false
	}
	observability.RecordCacheHit(ctx, "intent")
	return normalizeDescriptor(d), true
}

func (m *ModelStrategy) toCache(key string, d entities.QueryDescriptor) {
	if m.cache == nil || m.cacheTTL <= 0 {
		return
	}
	data, err := json.Marshal(d)
	if err != nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := m.cache.Set(ctx, key, data, int(m.cacheTTL.Seconds())); err != nil {
			m.logger.Debug().Err(err).Msg("failed to cache intent")
		}
	}()
}

// modelReply tolerates numbers sent as strings and strings sent as numbers
type modelReply struct {
	Intent   utils.FlexibleString `json:"intent"`
	DRGCode  utils.FlexibleFloat  `json:"drg_code"`
	DRGText  utils.FlexibleString `json:"drg_text"`
	Zip      utils.FlexibleString `json:"zip"`
	RadiusKm utils.FlexibleFloat  `json:"radius_km"`
	Limit    utils.FlexibleFloat  `json:"limit"`
	Sort     utils.FlexibleString `json:"sort"`
}

func decodeModelReply(raw string) (entities.QueryDescriptor, error) {
	var reply modelReply
	if err := json.Unmarshal([]byte(raw), &reply); err != nil {
		return entities.QueryDescriptor{}, fmt.Errorf("%w: %v", ErrMalformedReply, err)
	}

	if reply.Intent.Value == nil {
		return entities.QueryDescriptor{}, fmt.Errorf("%w: missing intent", ErrMalformedReply)
	}
	intent, ok := entities.ParseIntent(*reply.Intent.Value)
	if !ok {
		return entities.QueryDescriptor{}, fmt.Errorf("%w: unknown intent %q", ErrMalformedReply, *reply.Intent.Value)
	}

	d := entities.QueryDescriptor{
		Intent:        intent,
		ProcedureText: reply.DRGText.Value,
		Zip:           reply.Zip.Value,
		RadiusKm:      DefaultAskRadiusKm,
		Limit:         DefaultAskLimit,
	}

	if v := reply.DRGCode.Value; v != nil && *v > 0 && *v == math.Trunc(*v) && *v < math.MaxInt32 {
		code := int(*v)
		d.ProcedureCode = &code
	}
	if v := reply.RadiusKm.Value; v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0) {
		d.RadiusKm = *v
	}
	if v := reply.Limit.Value; v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0) {
		d.Limit = int(math.Min(math.Max(*v, 0), MaxAskLimit+1))
	}
	if v := reply.Sort.Value; v != nil {
		if sort, err := entities.ParseSortMode(*v); err == nil {
			d.Sort = sort
		}
	}

	return normalizeDescriptor(d), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
