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

func (api *API) GroupRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireLogin)
		r.Method(http.MethodPost, "/", Handler(api.CreateGroup))
		r.Method(http.MethodGet, "/", Handler(api.ListGroups))
		r.Method(http.MethodGet, "/{groupID}", Handler(api.GetGroupByID))
		r.Method(http.MethodPost, "/{groupID}/join", Handler(api.JoinGroup))
		r.Method(http.MethodDelete, "/{groupID}/leave", Handler(api.LeaveGroup))
	})

	return mux
}

// CreateGroup creates an interest group with the acting user as its
// first admin member.
func (api *API) CreateGroup(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	var req model.CreateGroupRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}
	if err := util.ValidateStruct(req); err != nil {
		return respondWithError(err, "invalid group request", values.Unprocessable, &tc)
	}

	group, err := api.CreateGroupRepo(r.Context(), userID, req)
	if err != nil {
		return respondWithError(err, "failed to create group", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Group created",
		Status:     values.Created,
		StatusCode: util.StatusCode(values.Created),
		Data:       group,
	}
}

func (api *API) ListGroups(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	groups, err := api.ListGroupsRepo(r.Context(), userID)
	if err != nil {
		return respondWithError(err, "failed to list groups", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Groups retrieved",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       groups,
	}
}

func (api *API) GetGroupByID(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	groupID, err := util.StringToUUID(chi.URLParam(r, "groupID"))
	if err != nil {
		return respondWithError(err, "groupID must be a valid uuid", values.BadRequest, &tc)
	}

	group, err := api.GetGroupByIDRepo(r.Context(), groupID)
	if err != nil {
		if errors.Is(err, ErrGroupNotFound) {
			return respondWithError(err, "group not found", values.NotFound, &tc)
		}
		return respondWithError(err, "failed to get group", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Group retrieved",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       group,
	}
}

func (api *API) JoinGroup(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	groupID, err := util.StringToUUID(chi.URLParam(r, "groupID"))
	if err != nil {
		return respondWithError(err, "groupID must be a valid uuid", values.BadRequest, &tc)
	}

	if err := api.JoinGroupRepo(r.Context(), userID, groupID); err != nil {
		if errors.Is(err, ErrGroupNotFound) {
			return respondWithError(err, "group not found", values.NotFound, &tc)
		}
		return respondWithError(err, "failed to join group", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Joined group",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
	}
}

func (api *API) LeaveGroup(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	groupID, err := util.StringToUUID(chi.URLParam(r, "groupID"))
	if err != nil {
		return respondWithError(err, "groupID must be a valid uuid", values.BadRequest, &tc)
	}

	if err := api.LeaveGroupRepo(r.Context(), userID, groupID); err != nil {
		if errors.Is(err, ErrGroupNotFound) {
			return respondWithError(err, "group not found", values.NotFound, &tc)
		}
		return respondWithError(err, "failed to leave group", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Left group",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
	}
}
