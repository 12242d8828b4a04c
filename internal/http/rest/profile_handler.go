package rest

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ribbonclub/ribbon_api/internal/model"
	"github.com/ribbonclub/ribbon_api/util"
	"github.com/ribbonclub/ribbon_api/util/tracing"
	"github.com/ribbonclub/ribbon_api/util/values"
)

func (api *API) UserRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireLogin)
		r.Method(http.MethodGet, "/profile", Handler(api.GetProfile))
		r.Method(http.MethodPut, "/profile", Handler(api.UpdateProfile))
	})

	return mux
}

func (api *API) GetProfile(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	profile, err := api.GetProfileByIDRepo(r.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return respondWithError(err, "profile not found", values.NotFound, &tc)
		}
		return respondWithError(err, "failed to get profile", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Profile retrieved",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       profile,
	}
}

// UpdateProfile creates or replaces the acting user's profile. A new
// exact location is fuzzed once here and both points persist together,
// so repeated reads never leak a fresh offset.
func (api *API) UpdateProfile(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	var req model.UpdateProfileRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}
	if err := util.ValidateStruct(req); err != nil {
		return respondWithError(err, "invalid profile request", values.Unprocessable, &tc)
	}
	if (req.LocationLat == nil) != (req.LocationLng == nil) {
		return respondWithError(errors.New("partial coordinates"),
			"location_lat and location_lng must be provided together", values.BadRequest, &tc)
	}

	profile, err := api.UpsertProfileRepo(r.Context(), userID, req)
	if err != nil {
		return respondWithError(err, "failed to save profile", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Profile saved",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       profile,
	}
}
