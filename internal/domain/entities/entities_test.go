package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeZip(t *testing.T) {
	cases := map[string]string{
		"2134":       "02134",
		"02134":      "02134",
		" 10001 ":    "10001",
		"02134-1234": "02134",
		"501":        "00501",
		"":           "",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeZip(in), "input %q", in)
	}
}

func TestParseIntent(t *testing.T) {
	got, ok := ParseIntent(" Best_Ratings ")
	assert.True(t, ok)
	assert.Equal(t, IntentBestRatings, got)

	_, ok = ParseIntent("booking")
	assert.False(t, ok)
}

func TestParseSortMode(t *testing.T) {
	got, err := ParseSortMode("RATING")
	require.NoError(t, err)
	assert.Equal(t, SortByRating, got)

	_, err = ParseSortMode("distance")
	assert.Error(t, err)
}

func TestSortFor(t *testing.T) {
	assert.Equal(t, SortByRating, SortFor(IntentBestRatings))
	assert.Equal(t, SortByCost, SortFor(IntentCheapest))
	assert.Equal(t, SortByCost, SortFor(IntentInfo))
}

func TestProviderResult_NullMoneyIsSerialized(t *testing.T) {
	c := Candidate{ProviderID: "010001", ProviderName: "Southeast Medical", DRGCode: 470}
	b, err := json.Marshal(c.ToResult(12.5))
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Contains(t, m, "average_covered_charges")
	assert.Nil(t, m["average_covered_charges"])
	assert.Nil(t, m["avg_rating"])
	assert.Equal(t, 12.5, m["distance_km"])
}

func TestStarRating_Valid(t *testing.T) {
	assert.True(t, StarRating{Rating: 1}.Valid())
	assert.True(t, StarRating{Rating: 10}.Valid())
	assert.False(t, StarRating{Rating: 0}.Valid())
	assert.False(t, StarRating{Rating: 11}.Valid())
}
