package rest

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ribbonclub/ribbon_api/internal/model"
	"github.com/ribbonclub/ribbon_api/util"
	"github.com/ribbonclub/ribbon_api/util/values"
)

var errEventWindow = errors.New("event window invalid")

func (api *API) CreateEventHelper(ctx context.Context, hostID uuid.UUID, req model.CreateEventRequest) (model.Event, string, string, error) {
	var groupID *uuid.UUID
	if req.GroupID != nil {
		gid, err := util.StringToUUID(*req.GroupID)
		if err != nil {
			return model.Event{}, values.BadRequest, "group_id must be a valid uuid", err
		}
		groupID = &gid
	}

	req.Tags = util.NormalizeTags(req.Tags)

	event, err := api.CreateEventRepo(ctx, hostID, groupID, req)
	if err != nil {
		if err == ErrGroupNotFound {
			return model.Event{}, values.NotFound, "Group not found", err
		}
		return model.Event{}, values.Error, "Failed to create event", err
	}

	return event, values.Created, "Event created successfully", nil
}

func (api *API) RSVPHelper(ctx context.Context, userID, eventID uuid.UUID, desired string) (model.RSVPResult, string, string, error) {
	result, err := api.RSVPRepo(ctx, userID, eventID, desired)
	switch err {
	case nil:
	case ErrEventNotFound:
		return model.RSVPResult{}, values.NotFound, "Event not found", err
	case ErrEventEnded:
		return model.RSVPResult{}, values.Conflict, "Event has already ended", err
	default:
		return model.RSVPResult{}, values.Error, "Failed to RSVP", err
	}

	api.Deps.Log.Debug("rsvp applied",
		zap.String("event_id", eventID.String()),
		zap.String("status", result.Status),
	)

	return result, values.Success, result.Message, nil
}
