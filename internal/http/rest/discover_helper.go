package rest

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ribbonclub/ribbon_api/internal/matching"
	"github.com/ribbonclub/ribbon_api/internal/model"
	"github.com/ribbonclub/ribbon_api/util/values"
)

func errInvalidQueryParam(name string) error {
	return fmt.Errorf("invalid value for %s", name)
}

// ScoreCandidatesHelper loads the requester and the eligible pool, then
// hands ranking to the pure engine. Exclusions (self, blocks, prior
// decisions) happen in SQL; scoring, distance filtering, ordering and
// pagination happen in matching.Rank/Page so the result is reproducible.
func (api *API) ScoreCandidatesHelper(ctx context.Context, userID uuid.UUID, params model.DiscoverParams) ([]model.CandidateProfile, string, string, error) {
	requester, err := api.GetProfileByIDRepo(ctx, userID)
	if err != nil {
		if err == ErrProfileNotFound {
			return nil, values.NotFound, "Complete onboarding before discovering", err
		}
		return nil, values.Error, "Failed to load profile", err
	}

	pool, err := api.GetDiscoveryPoolRepo(ctx, userID, params.Interests, api.Config.ResurfacePassed)
	if err != nil {
		return nil, values.Error, "Failed to load candidates", err
	}

	scoreParams := matching.ScoreParams{Base: api.Config.ScoreBase, Weight: api.Config.ScoreWeight}
	ranked := matching.Rank(requester, pool, params.MaxDistanceKm, scoreParams)
	page := matching.Page(ranked, params.Limit, params.Offset)

	api.Deps.Log.Debug("scored discovery candidates",
		zap.String("user_id", userID.String()),
		zap.Int("pool", len(pool)),
		zap.Int("page", len(page)),
	)

	candidates := make([]model.CandidateProfile, 0, len(page))
	for _, rc := range page {
		candidates = append(candidates, model.CandidateProfile{
			UserID:      rc.Profile.ID,
			DisplayName: rc.Profile.DisplayName,
			Pronouns:    rc.Profile.Pronouns,
			Bio:         rc.Profile.Bio,
			Photos:      rc.Profile.Photos,
			Interests:   rc.Profile.Interests,
			MatchScore:  rc.MatchScore,
			DistanceKm:  rc.DistanceKm,
		})
	}

	return candidates, values.Success, "Candidates returned successfully", nil
}
