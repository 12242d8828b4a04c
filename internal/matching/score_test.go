package matching

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ribbonclub/ribbon_api/internal/model"
)

func floatPtr(f float64) *float64 { return &f }

func profileWith(id byte, interests []string, lat, lng *float64) model.Profile {
	var uid uuid.UUID
	uid[15] = id
	return model.Profile{
		ID:        uid,
		Interests: interests,
		FuzzyLat:  lat,
		FuzzyLng:  lng,
	}
}

func TestInterestScoreBounds(t *testing.T) {
	testCases := []struct {
		name string
		a, b []string
		want float64
	}{
		{"no interests either side", nil, nil, 10},
		{"disjoint", []string{"hiking"}, []string{"art"}, 10},
		{"identical single", []string{"hiking"}, []string{"hiking"}, 100},
		{"half overlap", []string{"hiking", "art"}, []string{"hiking", "tech"}, 40},
		{"full overlap of two", []string{"hiking", "art"}, []string{"hiking", "art"}, 100},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := InterestScore(tc.a, tc.b, DefaultScoreParams)
			assert.InDelta(t, tc.want, got, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 100.0)
		})
	}
}

func TestInterestScoreTreatsInputsAsSets(t *testing.T) {
	// A tag repeated on one side must not count as shared with itself.
	got := InterestScore([]string{"hiking"}, []string{"art", "art"}, DefaultScoreParams)
	assert.InDelta(t, 10.0, got, 1e-9)

	// Duplicates never change the score of the deduplicated inputs.
	deduped := InterestScore([]string{"hiking", "art"}, []string{"art", "tech"}, DefaultScoreParams)
	duplicated := InterestScore(
		[]string{"hiking", "art", "hiking"},
		[]string{"art", "tech", "art", "tech"},
		DefaultScoreParams,
	)
	assert.InDelta(t, deduped, duplicated, 1e-9)
}

func TestInterestScoreMonotonicInSharedCount(t *testing.T) {
	// Fixed union size, growing intersection: score must not decrease.
	a := []string{"hiking", "art", "music", "tech"}
	prev := -1.0
	for shared := 0; shared <= 4; shared++ {
		b := make([]string, 4)
		copy(b, a[:shared])
		for i := shared; i < 4; i++ {
			b[i] = string(rune('w' + i)) // filler tags outside a
		}
		got := InterestScore(a, b, DefaultScoreParams)
		assert.GreaterOrEqual(t, got, prev, "shared=%d", shared)
		prev = got
	}
}

func TestInterestScoreDeterministic(t *testing.T) {
	a := []string{"hiking", "board-games", "coffee"}
	b := []string{"coffee", "sci-fi"}

	first := InterestScore(a, b, DefaultScoreParams)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, InterestScore(a, b, DefaultScoreParams))
	}
}

func TestRankOrdering(t *testing.T) {
	requester := profileWith(0, []string{"hiking", "art"}, floatPtr(37.7749), floatPtr(-122.4194))

	near := profileWith(1, []string{"hiking", "art"}, floatPtr(37.78), floatPtr(-122.42))
	far := profileWith(2, []string{"hiking", "art"}, floatPtr(37.9), floatPtr(-122.5))
	lowScore := profileWith(3, []string{"tech"}, floatPtr(37.78), floatPtr(-122.42))

	ranked := Rank(requester, []model.Profile{lowScore, far, near}, 100, DefaultScoreParams)
	require.Len(t, ranked, 3)

	// Highest score first; equal scores ordered by ascending distance.
	assert.Equal(t, near.ID, ranked[0].Profile.ID)
	assert.Equal(t, far.ID, ranked[1].Profile.ID)
	assert.Equal(t, lowScore.ID, ranked[2].Profile.ID)
}

func TestRankTieBreakByID(t *testing.T) {
	requester := profileWith(0, []string{"hiking"}, nil, nil)

	// No locations anywhere: equal scores, equal (unknown) distances.
	c1 := profileWith(9, []string{"hiking"}, nil, nil)
	c2 := profileWith(4, []string{"hiking"}, nil, nil)

	ranked := Rank(requester, []model.Profile{c1, c2}, 50, DefaultScoreParams)
	require.Len(t, ranked, 2)
	assert.Equal(t, c2.ID, ranked[0].Profile.ID)
	assert.Equal(t, c1.ID, ranked[1].Profile.ID)
}

func TestRankDistanceFilter(t *testing.T) {
	requester := profileWith(0, nil, floatPtr(37.7749), floatPtr(-122.4194))

	tooFar := profileWith(1, nil, floatPtr(34.0522), floatPtr(-118.2437)) // ~559 km
	unknown := profileWith(2, nil, nil, nil)

	ranked := Rank(requester, []model.Profile{tooFar, unknown}, 50, DefaultScoreParams)
	require.Len(t, ranked, 1)

	// Unknown distance is included, not excluded, with nil distance.
	assert.Equal(t, unknown.ID, ranked[0].Profile.ID)
	assert.Nil(t, ranked[0].DistanceKm)
}

func TestRankKnownDistanceReported(t *testing.T) {
	requester := profileWith(0, nil, floatPtr(37.7749), floatPtr(-122.4194))
	candidate := profileWith(1, nil, floatPtr(34.0522), floatPtr(-118.2437))

	ranked := Rank(requester, []model.Profile{candidate}, 1000, DefaultScoreParams)
	require.Len(t, ranked, 1)
	require.NotNil(t, ranked[0].DistanceKm)
	assert.Greater(t, *ranked[0].DistanceKm, 500.0)
	assert.Less(t, *ranked[0].DistanceKm, 600.0)
}

func TestRankDeterministic(t *testing.T) {
	requester := profileWith(0, []string{"hiking", "art", "music"}, floatPtr(37.77), floatPtr(-122.41))
	candidates := []model.Profile{
		profileWith(5, []string{"hiking"}, floatPtr(37.8), floatPtr(-122.4)),
		profileWith(3, []string{"art", "music"}, nil, nil),
		profileWith(7, []string{"hiking", "art", "music"}, floatPtr(37.75), floatPtr(-122.42)),
	}

	first := Rank(requester, candidates, 50, DefaultScoreParams)
	second := Rank(requester, candidates, 50, DefaultScoreParams)
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Profile.ID, second[i].Profile.ID)
		assert.Equal(t, first[i].MatchScore, second[i].MatchScore)
	}
}

func TestPage(t *testing.T) {
	ranked := make([]RankedCandidate, 5)
	for i := range ranked {
		ranked[i] = RankedCandidate{Profile: profileWith(byte(i+1), nil, nil, nil)}
	}

	assert.Len(t, Page(ranked, 2, 0), 2)
	assert.Len(t, Page(ranked, 2, 4), 1) // short page signals the end
	assert.Empty(t, Page(ranked, 2, 10))

	page2 := Page(ranked, 2, 2)
	require.Len(t, page2, 2)
	assert.Equal(t, ranked[2].Profile.ID, page2[0].Profile.ID)
}
