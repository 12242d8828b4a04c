package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ribbonclub/ribbon_api/internal/model"
	"github.com/ribbonclub/ribbon_api/util"
	"github.com/ribbonclub/ribbon_api/util/tracing"
	"github.com/ribbonclub/ribbon_api/util/values"
)

func (api *API) SafetyRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireLogin)
		r.Method(http.MethodPost, "/blocks", Handler(api.BlockUser))
		r.Method(http.MethodDelete, "/blocks/{userID}", Handler(api.UnblockUser))
		r.Method(http.MethodPost, "/reports", Handler(api.CreateReport))
	})

	return mux
}

// BlockUser severs the pair: the block row hides both users from each
// other's discovery, and any existing match flips to blocked.
func (api *API) BlockUser(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	var req model.BlockRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}
	if err := util.ValidateStruct(req); err != nil {
		return respondWithError(err, "invalid block request", values.Unprocessable, &tc)
	}

	blockedID, err := util.StringToUUID(req.BlockedID)
	if err != nil {
		return respondWithError(err, "blocked_id must be a valid uuid", values.BadRequest, &tc)
	}
	if blockedID == userID {
		return respondWithError(errSelfTarget, "cannot block yourself", values.BadRequest, &tc)
	}

	if err := api.CreateBlockRepo(r.Context(), userID, blockedID); err != nil {
		return respondWithError(err, "failed to block user", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "User blocked",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
	}
}

func (api *API) UnblockUser(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	blockedID, err := util.StringToUUID(chi.URLParam(r, "userID"))
	if err != nil {
		return respondWithError(err, "userID must be a valid uuid", values.BadRequest, &tc)
	}

	if err := api.DeleteBlockRepo(r.Context(), userID, blockedID); err != nil {
		return respondWithError(err, "failed to unblock user", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "User unblocked",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
	}
}

func (api *API) CreateReport(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	var req model.CreateReportRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}
	if err := util.ValidateStruct(req); err != nil {
		return respondWithError(err, "invalid report request", values.Unprocessable, &tc)
	}

	subjectID, err := util.StringToUUID(req.SubjectID)
	if err != nil {
		return respondWithError(err, "subject_id must be a valid uuid", values.BadRequest, &tc)
	}

	report, err := api.CreateReportRepo(r.Context(), userID, subjectID, req)
	if err != nil {
		return respondWithError(err, "failed to create report", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Report submitted",
		Status:     values.Created,
		StatusCode: util.StatusCode(values.Created),
		Data:       report,
	}
}
