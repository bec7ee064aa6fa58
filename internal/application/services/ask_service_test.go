package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/zatekoja/costnavigator/internal/application/services"
	"github.com/zatekoja/costnavigator/internal/domain/entities"
	apperrors "github.com/zatekoja/costnavigator/pkg/errors"
	"github.com/zatekoja/costnavigator/pkg/geo"
)

func newAskService(fx *searchFixture) *services.AskService {
	return services.NewAskService(
		services.NewIntentParser(nil, zerolog.Nop()),
		services.NewGeoResolver(fx.zips),
		services.NewProcedureResolver(fx.procs),
		fx.svc,
		zerolog.Nop(),
	)
}

var askOrigin = geo.Point{Latitude: 40.0, Longitude: -75.0}

func TestAskService_Info(t *testing.T) {
	fx := newSearchFixture(t)

	res, err := newAskService(fx).Ask(context.Background(), "what's the weather in 10001?")

	require.NoError(t, err)
	assert.Equal(t, entities.IntentInfo, res.Intent)
	assert.Equal(t, services.AnswerCapabilities, res.Answer)
	assert.NotNil(t, res.Results)
	assert.Empty(t, res.Results)
}

func TestAskService_MissingZip(t *testing.T) {
	fx := newSearchFixture(t)

	res, err := newAskService(fx).Ask(context.Background(), "cheapest drg 470")

	require.NoError(t, err)
	assert.Equal(t, services.AnswerMissingZip, res.Answer)
	assert.Equal(t, entities.IntentCheapest, res.Intent)
	assert.Nil(t, res.Zip)
}

func TestAskService_ZipNotFound(t *testing.T) {
	fx := newSearchFixture(t)
	fx.zips.EXPECT().GetByZip(mock.Anything, "99999").Return(nil, apperrors.NewNotFoundError("zip 99999 not found"))

	res, err := newAskService(fx).Ask(context.Background(), "cheapest drg 470 near 99999")

	require.NoError(t, err)
	assert.Equal(t, services.AnswerZipNotFound, res.Answer)
	require.NotNil(t, res.Zip)
	assert.Equal(t, "99999", *res.Zip)
}

func TestAskService_MissingProcedure(t *testing.T) {
	fx := newSearchFixture(t)
	fx.zips.EXPECT().GetByZip(mock.Anything, "19104").Return(zipAt("19104", 40.0, -75.0), nil)

	res, err := newAskService(fx).Ask(context.Background(), "cheapest hospital near 19104")

	require.NoError(t, err)
	assert.Equal(t, services.AnswerMissingProcedure, res.Answer)
	assert.Empty(t, res.Results)
}

func TestAskService_CheapestScenario(t *testing.T) {
	fx := newSearchFixture(t)
	fx.zips.EXPECT().GetByZip(mock.Anything, "19104").Return(zipAt("19104", 40.0, -75.0), nil)
	fx.providers.EXPECT().FindCandidates(mock.Anything, mock.Anything).Return([]entities.Candidate{
		providerAt("390111", "Penn Presbyterian", northOf(askOrigin, 10), ptr(20000.0), ptr(8.0)),
		providerAt("390222", "Far Away General", northOf(askOrigin, 60), ptr(100.0), ptr(10.0)),
		providerAt("390333", "Pricey Memorial", northOf(askOrigin, 5), ptr(55000.0), ptr(9.0)),
	}, nil)

	res, err := newAskService(fx).Ask(context.Background(), "Who is cheapest for DRG 470 near 19104?")

	require.NoError(t, err)
	assert.Equal(t, "Cheapest appears to be Penn Presbyterian with avg covered charges $20,000.", res.Answer)
	require.Len(t, res.Results, 2)
	assert.Equal(t, "390111", res.Results[0].ProviderID)
	assert.Equal(t, "390333", res.Results[1].ProviderID)
	assert.Equal(t, "rules", res.Parser)
	assert.Equal(t, 40.0, res.RadiusKm)
	assert.Equal(t, 5, res.Limit)
	assert.Equal(t, entities.SortByCost, res.Sort)
}

func TestAskService_BestRatedScenario(t *testing.T) {
	fx := newSearchFixture(t)
	fx.zips.EXPECT().GetByZip(mock.Anything, "19104").Return(zipAt("19104", 40.0, -75.0), nil)
	fx.providers.EXPECT().FindCandidates(mock.Anything, mock.Anything).Return([]entities.Candidate{
		providerAt("390111", "Penn Presbyterian", northOf(askOrigin, 10), ptr(20000.0), ptr(8.0)),
		providerAt("390333", "Pricey Memorial", northOf(askOrigin, 5), ptr(55000.0), ptr(9.0)),
		providerAt("390444", "Unrated Clinic", northOf(askOrigin, 2), ptr(1000.0), nil),
	}, nil)

	res, err := newAskService(fx).Ask(context.Background(), "best rated hospitals for drg 470 near 19104")

	require.NoError(t, err)
	assert.Equal(t, "Based on data, Pricey Memorial (rating: 9.0/10) is a top option near 19104.", res.Answer)
	require.Len(t, res.Results, 3)
	assert.Equal(t, "390444", res.Results[2].ProviderID)
}

func TestAskService_NoResults(t *testing.T) {
	fx := newSearchFixture(t)
	fx.zips.EXPECT().GetByZip(mock.Anything, "19104").Return(zipAt("19104", 40.0, -75.0), nil)
	fx.providers.EXPECT().FindCandidates(mock.Anything, mock.Anything).Return(nil, nil)

	res, err := newAskService(fx).Ask(context.Background(), "cheapest drg 470 near 19104")

	require.NoError(t, err)
	assert.Equal(t, "No results found within 40 km.", res.Answer)
	assert.NotNil(t, res.Results)
}

func TestAskService_CancelledContext(t *testing.T) {
	fx := newSearchFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newAskService(fx).Ask(ctx, "cheapest drg 470 near 19104")

	assert.ErrorIs(t, err, context.Canceled)
}

func TestAskService_StoreFailure(t *testing.T) {
	fx := newSearchFixture(t)
	fx.zips.EXPECT().GetByZip(mock.Anything, "19104").Return(zipAt("19104", 40.0, -75.0), nil)
	fx.providers.EXPECT().FindCandidates(mock.Anything, mock.Anything).
		Return(nil, apperrors.NewInternalError("failed to query candidates", errors.New("i/o timeout")))

	_, err := newAskService(fx).Ask(context.Background(), "cheapest drg 470 near 19104")

	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeInternal, apperrors.TypeOf(err))
}

func TestAskService_RejectsBadQuestions(t *testing.T) {
	fx := newSearchFixture(t)
	svc := newAskService(fx)

	for _, q := range []string{"", "   ", strings.Repeat("a", services.MaxQuestionLength+1)} {
		_, err := svc.Ask(context.Background(), q)
		assert.True(t, apperrors.IsValidation(err))
	}
}
