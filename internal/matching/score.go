// Package matching holds the pure decision logic of the matching engine:
// interest scoring, candidate ranking, pair canonicalization and the
// RSVP capacity state machine. Everything here is deterministic and
// side-effect free; the rest layer applies the outcomes transactionally.
package matching

import (
	"bytes"
	"sort"

	"github.com/ribbonclub/ribbon_api/internal/model"
	"github.com/ribbonclub/ribbon_api/util/geo"
)

// ScoreParams are the tunable coefficients of the interest score.
type ScoreParams struct {
	Base   float64
	Weight float64
}

// DefaultScoreParams mirror the config defaults.
var DefaultScoreParams = ScoreParams{Base: 10, Weight: 90}

// InterestScore computes base + weight * |a ∩ b| / |a ∪ b|, clamped to
// [0, 100]. Inputs are treated as sets: repeated tags within one side
// count once and never count as shared with themselves. Monotonically
// non-decreasing in shared-interest count; two empty sets score the
// bare base.
func InterestScore(a, b []string, p ScoreParams) float64 {
	setA := make(map[string]struct{}, len(a))
	for _, tag := range a {
		setA[tag] = struct{}{}
	}

	union := len(setA)
	var shared int
	setB := make(map[string]struct{}, len(b))
	for _, tag := range b {
		if _, dup := setB[tag]; dup {
			continue
		}
		setB[tag] = struct{}{}
		if _, ok := setA[tag]; ok {
			shared++
		} else {
			union++
		}
	}

	score := p.Base
	if union > 0 {
		score += p.Weight * float64(shared) / float64(union)
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// RankedCandidate is a candidate with its computed score and distance.
// DistanceKm is nil when either side has no location.
type RankedCandidate struct {
	Profile    model.Profile
	MatchScore float64
	DistanceKm *float64
}

// Rank scores, distance-filters and orders candidates for a requester.
//
// Candidates beyond maxDistanceKm (fuzzy-to-fuzzy) are dropped; unknown
// distance keeps the candidate with a nil distance. Ordering is score
// descending, then distance ascending with unknown last, then id
// ascending, so identical inputs always produce identical pages.
func Rank(requester model.Profile, candidates []model.Profile, maxDistanceKm float64, p ScoreParams) []RankedCandidate {
	var reqLoc *geo.Coordinates
	if requester.FuzzyLat != nil && requester.FuzzyLng != nil {
		reqLoc = &geo.Coordinates{Latitude: *requester.FuzzyLat, Longitude: *requester.FuzzyLng}
	}

	ranked := make([]RankedCandidate, 0, len(candidates))
	for _, c := range candidates {
		var distance *float64
		if reqLoc != nil && c.FuzzyLat != nil && c.FuzzyLng != nil {
			d := geo.CalculateDistance(*reqLoc, geo.Coordinates{Latitude: *c.FuzzyLat, Longitude: *c.FuzzyLng})
			distance = &d
		}
		if distance != nil && maxDistanceKm > 0 && *distance > maxDistanceKm {
			continue
		}

		ranked = append(ranked, RankedCandidate{
			Profile:    c,
			MatchScore: InterestScore(requester.Interests, c.Interests, p),
			DistanceKm: distance,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].MatchScore != ranked[j].MatchScore {
			return ranked[i].MatchScore > ranked[j].MatchScore
		}
		di, dj := ranked[i].DistanceKm, ranked[j].DistanceKm
		switch {
		case di != nil && dj != nil && *di != *dj:
			return *di < *dj
		case di != nil && dj == nil:
			return true
		case di == nil && dj != nil:
			return false
		}
		return bytes.Compare(ranked[i].Profile.ID[:], ranked[j].Profile.ID[:]) < 0
	})

	return ranked
}

// Page applies offset/limit to a ranked list. A page shorter than limit
// tells the caller there are no further pages.
func Page(ranked []RankedCandidate, limit, offset int) []RankedCandidate {
	if offset >= len(ranked) {
		return []RankedCandidate{}
	}
	end := offset + limit
	if end > len(ranked) {
		end = len(ranked)
	}
	return ranked[offset:end]
}

// SnapshotScore is the compatibility score stored on a new match row.
// Same function as discovery scoring, evaluated on the pair's interests
// at match time.
func SnapshotScore(a, b model.Profile, p ScoreParams) float64 {
	return InterestScore(a.Interests, b.Interests, p)
}
