package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ribbonclub/ribbon_api/internal/model"
	"github.com/ribbonclub/ribbon_api/util"
	"github.com/ribbonclub/ribbon_api/util/tracing"
	"github.com/ribbonclub/ribbon_api/util/values"
)

func (api *API) MatchRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireLogin)
		r.Method(http.MethodPost, "/", Handler(api.CreateOrGetMatch))
		r.Method(http.MethodGet, "/", Handler(api.ListMatches))
		r.Method(http.MethodGet, "/liked-you/count", Handler(api.CountLikedYou))
	})

	return mux
}

// CreateOrGetMatch records a like on the target and, when the reverse
// like exists, resolves the pair into a mutual match exactly once.
// Safe to retry: repeats return the existing match with is_new=false.
func (api *API) CreateOrGetMatch(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	var req model.CreateMatchRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}
	if err := util.ValidateStruct(req); err != nil {
		return respondWithError(err, "invalid match request", values.Unprocessable, &tc)
	}

	targetID, err := util.StringToUUID(req.TargetUserID)
	if err != nil {
		return respondWithError(err, "target_user_id must be a valid uuid", values.BadRequest, &tc)
	}

	result, status, message, err := api.CreateOrGetMatchHelper(r.Context(), userID, targetID)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       result,
	}
}

// ListMatches returns the acting user's mutual matches with the
// counterpart profiles.
func (api *API) ListMatches(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	matches, err := api.ListMatchesRepo(r.Context(), userID)
	if err != nil {
		return respondWithError(err, "failed to list matches", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Matches returned successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       matches,
	}
}

// CountLikedYou returns how many users liked the acting user.
// Cache-first with a database fallback that repopulates the cache.
func (api *API) CountLikedYou(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	if count, ok, cacheErr := api.Deps.Cache.GetLikeCount(r.Context(), userID.String()); cacheErr == nil && ok {
		return &ServerResponse{
			Message:    "Like count returned successfully",
			Status:     values.Success,
			StatusCode: util.StatusCode(values.Success),
			Data:       map[string]int64{"count": count},
		}
	}

	count, err := api.CountLikersRepo(r.Context(), userID)
	if err != nil {
		return respondWithError(err, "failed to count likes", values.Error, &tc)
	}
	_ = api.Deps.Cache.SetLikeCount(r.Context(), userID.String(), count)

	return &ServerResponse{
		Message:    "Like count returned successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       map[string]int64{"count": count},
	}
}
