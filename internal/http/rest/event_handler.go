package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ribbonclub/ribbon_api/internal/model"
	"github.com/ribbonclub/ribbon_api/util"
	"github.com/ribbonclub/ribbon_api/util/tracing"
	"github.com/ribbonclub/ribbon_api/util/values"
)

func (api *API) EventRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireLogin)
		r.Method(http.MethodPost, "/", Handler(api.CreateEvent))
		r.Method(http.MethodGet, "/", Handler(api.ListUpcomingEvents))
		r.Method(http.MethodGet, "/{eventID}", Handler(api.GetEventByID))
		r.Method(http.MethodGet, "/{eventID}/attendees", Handler(api.ListAttendees))
		r.Method(http.MethodPost, "/{eventID}/rsvp", Handler(api.RSVPEvent))
	})

	return mux
}

func (api *API) CreateEvent(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	var req model.CreateEventRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}
	if err := util.ValidateStruct(req); err != nil {
		return respondWithError(err, "invalid event request", values.Unprocessable, &tc)
	}
	if req.EndsAt != nil && req.EndsAt.Before(req.StartsAt) {
		return respondWithError(errEventWindow, "ends_at must be after starts_at", values.BadRequest, &tc)
	}

	event, status, message, err := api.CreateEventHelper(r.Context(), userID, req)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       event,
	}
}

func (api *API) ListUpcomingEvents(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	events, err := api.ListUpcomingEventsRepo(r.Context())
	if err != nil {
		return respondWithError(err, "failed to list events", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Events returned successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       events,
	}
}

func (api *API) GetEventByID(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	eventID, err := util.StringToUUID(chi.URLParam(r, "eventID"))
	if err != nil {
		return respondWithError(err, "invalid event id", values.BadRequest, &tc)
	}

	event, err := api.GetEventByIDRepo(r.Context(), eventID)
	if err != nil {
		if err == ErrEventNotFound {
			return respondWithError(err, "event not found", values.NotFound, &tc)
		}
		return respondWithError(err, "failed to get event", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Event returned successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       event,
	}
}

func (api *API) ListAttendees(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	eventID, err := util.StringToUUID(chi.URLParam(r, "eventID"))
	if err != nil {
		return respondWithError(err, "invalid event id", values.BadRequest, &tc)
	}

	attendees, err := api.ListAttendeesRepo(r.Context(), eventID)
	if err != nil {
		return respondWithError(err, "failed to list attendees", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Attendees returned successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       attendees,
	}
}

// RSVPEvent applies a going/declined request against the event's
// capacity and reports the resulting status, with the 1-based waitlist
// position when the caller ends up queued.
func (api *API) RSVPEvent(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	eventID, err := util.StringToUUID(chi.URLParam(r, "eventID"))
	if err != nil {
		return respondWithError(err, "invalid event id", values.BadRequest, &tc)
	}

	var req model.RSVPRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}
	if err := util.ValidateStruct(req); err != nil {
		return respondWithError(err, "status must be going or declined", values.Unprocessable, &tc)
	}

	result, status, message, err := api.RSVPHelper(r.Context(), userID, eventID, req.Status)
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
