package rest

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ribbonclub/ribbon_api/internal/model"
	"github.com/ribbonclub/ribbon_api/util/values"
)

func (api *API) CreateOrGetMatchHelper(ctx context.Context, actingID, targetID uuid.UUID) (model.MatchResult, string, string, error) {
	if actingID == targetID {
		return model.MatchResult{}, values.BadRequest, "Cannot match with yourself", errSelfTarget
	}

	result, likeRecorded, err := api.CreateOrGetMatchRepo(ctx, actingID, targetID)
	switch err {
	case nil:
	case ErrUserNotFound:
		return model.MatchResult{}, values.NotFound, "User not found", err
	case ErrBlockedPair:
		return model.MatchResult{}, values.NotAllowed, "Cannot match with this user", err
	default:
		return model.MatchResult{}, values.Error, "Failed to resolve match", err
	}

	if likeRecorded {
		// Best effort counter bump; the DB count stays authoritative.
		_ = api.Deps.Cache.IncrLikeCount(ctx, targetID.String())
	}

	if result.IsNew {
		api.Deps.Log.Info("mutual match created",
			zap.String("match_id", result.MatchID.String()),
		)
		return result, values.Created, "It's a match!", nil
	}
	if result.MatchID != nil {
		return result, values.Success, "Match already exists", nil
	}
	return result, values.Success, "Like recorded", nil
}
