package rest

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ribbonclub/ribbon_api/internal/model"
	"github.com/ribbonclub/ribbon_api/util"
	"github.com/ribbonclub/ribbon_api/util/tracing"
	"github.com/ribbonclub/ribbon_api/util/values"
)

func (api *API) DiscoverRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireLogin)
		r.Method(http.MethodGet, "/", Handler(api.ScoreCandidates))
		r.Method(http.MethodPost, "/pass", Handler(api.PassCandidate))
	})

	return mux
}

// ScoreCandidates returns one page of ranked discovery candidates for
// the acting user. Read-only; repeated calls with unchanged data return
// identical ordering and scores.
func (api *API) ScoreCandidates(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	params, err := api.parseDiscoverParams(r)
	if err != nil {
		return respondWithError(err, err.Error(), values.BadRequest, &tc)
	}

	candidates, status, message, err := api.ScoreCandidatesHelper(r.Context(), userID, params)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       candidates,
	}
}

func (api *API) parseDiscoverParams(r *http.Request) (model.DiscoverParams, error) {
	params := model.DiscoverParams{
		MaxDistanceKm: api.Config.DefaultMaxDistanceKm,
		Limit:         api.Config.DiscoveryPageSize,
	}

	q := r.URL.Query()
	if v := q.Get("max_distance_km"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			return params, errInvalidQueryParam("max_distance_km")
		}
		params.MaxDistanceKm = f
	}
	if v := q.Get("interests"); v != "" {
		params.Interests = util.NormalizeTags(strings.Split(v, ","))
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 100 {
			return params, errInvalidQueryParam("limit")
		}
		params.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return params, errInvalidQueryParam("offset")
		}
		params.Offset = n
	}

	return params, nil
}

// PassCandidate records a swipe-left so the profile stops surfacing in
// discovery (subject to the resurface policy).
func (api *API) PassCandidate(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	var req model.PassRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}
	if err := util.ValidateStruct(req); err != nil {
		return respondWithError(err, "invalid pass request", values.Unprocessable, &tc)
	}

	passedID, err := util.StringToUUID(req.UserID)
	if err != nil {
		return respondWithError(err, "user_id must be a valid uuid", values.BadRequest, &tc)
	}
	if passedID == userID {
		return respondWithError(errSelfTarget, "cannot pass on yourself", values.BadRequest, &tc)
	}

	if err := api.CreatePassRepo(r.Context(), userID, passedID); err != nil {
		return respondWithError(err, "failed to record pass", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Pass recorded",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
	}
}
