package rest

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ribbonclub/ribbon_api/internal/matching"
	"github.com/ribbonclub/ribbon_api/internal/model"
	"github.com/ribbonclub/ribbon_api/util"
)

var (
	ErrEventNotFound = errors.New("event not found")
	ErrEventEnded    = errors.New("event has already ended")
)

func (api *API) CreateEventRepo(ctx context.Context, hostID uuid.UUID, groupID *uuid.UUID, req model.CreateEventRequest) (model.Event, error) {
	if groupID != nil {
		var exists bool
		if err := api.DB.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM groups WHERE id = $1)`, *groupID).Scan(&exists); err != nil {
			return model.Event{}, err
		}
		if !exists {
			return model.Event{}, ErrGroupNotFound
		}
	}

	query := `
        INSERT INTO events (
            id, group_id, host_id, title, description, starts_at, ends_at,
            venue_json, capacity, accessibility_notes, tags
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING id, group_id, host_id, title, description, starts_at, ends_at,
                  venue_json, capacity, accessibility_notes, tags, created_at, updated_at
    `
	var event model.Event
	err := api.DB.QueryRow(ctx, query,
		util.GenerateUUID(), groupID, hostID, req.Title, req.Description,
		req.StartsAt, req.EndsAt, req.Venue, req.Capacity, req.AccessibilityNotes, req.Tags,
	).Scan(
		&event.ID, &event.GroupID, &event.HostID, &event.Title, &event.Description,
		&event.StartsAt, &event.EndsAt, &event.Venue, &event.Capacity,
		&event.AccessibilityNotes, &event.Tags, &event.CreatedAt, &event.UpdatedAt,
	)
	if err != nil {
		return model.Event{}, err
	}
	return event, nil
}

func (api *API) ListUpcomingEventsRepo(ctx context.Context) ([]model.EventDetail, error) {
	rows, err := api.DB.Query(ctx, `
        SELECT e.id, e.group_id, e.host_id, e.title, e.description, e.starts_at, e.ends_at,
               e.venue_json, e.capacity, e.accessibility_notes, e.tags, e.created_at, e.updated_at,
               (SELECT COUNT(*) FROM rsvps r WHERE r.event_id = e.id AND r.status = 'going')
        FROM events e
        WHERE COALESCE(e.ends_at, e.starts_at) > NOW()
        ORDER BY e.starts_at
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []model.EventDetail{}
	for rows.Next() {
		var e model.EventDetail
		err := rows.Scan(
			&e.ID, &e.GroupID, &e.HostID, &e.Title, &e.Description, &e.StartsAt, &e.EndsAt,
			&e.Venue, &e.Capacity, &e.AccessibilityNotes, &e.Tags, &e.CreatedAt, &e.UpdatedAt,
			&e.GoingCount,
		)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (api *API) GetEventByIDRepo(ctx context.Context, eventID uuid.UUID) (model.EventDetail, error) {
	var e model.EventDetail
	err := api.DB.QueryRow(ctx, `
        SELECT e.id, e.group_id, e.host_id, e.title, e.description, e.starts_at, e.ends_at,
               e.venue_json, e.capacity, e.accessibility_notes, e.tags, e.created_at, e.updated_at,
               (SELECT COUNT(*) FROM rsvps r WHERE r.event_id = e.id AND r.status = 'going')
        FROM events e
        WHERE e.id = $1
    `, eventID).Scan(
		&e.ID, &e.GroupID, &e.HostID, &e.Title, &e.Description, &e.StartsAt, &e.EndsAt,
		&e.Venue, &e.Capacity, &e.AccessibilityNotes, &e.Tags, &e.CreatedAt, &e.UpdatedAt,
		&e.GoingCount,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.EventDetail{}, ErrEventNotFound
	}
	return e, err
}

func (api *API) ListAttendeesRepo(ctx context.Context, eventID uuid.UUID) ([]model.Attendee, error) {
	rows, err := api.DB.Query(ctx, `
        SELECT r.user_id, p.display_name, p.photos, r.status, r.created_at
        FROM rsvps r
        JOIN profiles p ON p.id = r.user_id
        WHERE r.event_id = $1 AND r.status IN ('going', 'waitlist')
        ORDER BY r.status, r.created_at
    `, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	attendees := []model.Attendee{}
	for rows.Next() {
		var a model.Attendee
		if err := rows.Scan(&a.UserID, &a.DisplayName, &a.Photos, &a.Status, &a.RSVPedAt); err != nil {
			return nil, err
		}
		attendees = append(attendees, a)
	}
	return attendees, rows.Err()
}

// RSVPRepo applies one RSVP transition atomically. The event row is
// locked FOR UPDATE for the duration, which serializes capacity checks
// and waitlist promotion per event; unrelated events proceed in
// parallel.
func (api *API) RSVPRepo(ctx context.Context, userID, eventID uuid.UUID, desired string) (model.RSVPResult, error) {
	var result model.RSVPResult

	err := api.Deps.DB.RunInTx(ctx, func(tx pgx.Tx) error {
		var capacity *int
		var startsAt time.Time
		var endsAt *time.Time
		err := tx.QueryRow(ctx, `
            SELECT capacity, starts_at, ends_at FROM events WHERE id = $1 FOR UPDATE
        `, eventID).Scan(&capacity, &startsAt, &endsAt)
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrEventNotFound
		}
		if err != nil {
			return err
		}

		cutoff := startsAt
		if endsAt != nil {
			cutoff = *endsAt
		}
		if time.Now().After(cutoff) {
			return ErrEventEnded
		}

		var current string
		err = tx.QueryRow(ctx, `
            SELECT status FROM rsvps WHERE user_id = $1 AND event_id = $2
        `, userID, eventID).Scan(&current)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return err
		}

		var goingCount int
		err = tx.QueryRow(ctx, `
            SELECT COUNT(*) FROM rsvps
            WHERE event_id = $1 AND status = 'going' AND user_id <> $2
        `, eventID, userID).Scan(&goingCount)
		if err != nil {
			return err
		}

		plan := matching.PlanRSVP(current, desired, goingCount, capacity)

		// queued_at only moves when the row transitions into waitlist,
		// sending a rejoining user to the back of the queue.
		_, err = tx.Exec(ctx, `
            INSERT INTO rsvps (user_id, event_id, status)
            VALUES ($1, $2, $3)
            ON CONFLICT (user_id, event_id)
            DO UPDATE SET
                status = EXCLUDED.status,
                updated_at = NOW(),
                queued_at = CASE
                    WHEN EXCLUDED.status = 'waitlist' AND rsvps.status <> 'waitlist' THEN NOW()
                    ELSE rsvps.queued_at
                END
        `, userID, eventID, plan.Status)
		if err != nil {
			return err
		}

		queue, err := waitlistQueueTx(ctx, tx, eventID)
		if err != nil {
			return err
		}

		if plan.FreedSlot && goingCount < derefCapacity(capacity) {
			if next, ok := matching.NextInLine(queue); ok {
				_, err = tx.Exec(ctx, `
                    UPDATE rsvps SET status = 'going', updated_at = NOW()
                    WHERE user_id = $1 AND event_id = $2
                `, next, eventID)
				if err != nil {
					return err
				}
			}
		}

		result = model.RSVPResult{Status: plan.Status}
		switch plan.Status {
		case model.RSVPStatusGoing:
			result.Message = "You're going!"
		case model.RSVPStatusWaitlist:
			result.WaitlistPosition = matching.WaitlistPosition(userID, queue)
			result.Message = "Event is full - you've been added to the waitlist"
		default:
			result.Message = "RSVP declined"
		}
		return nil
	})

	return result, err
}

func waitlistQueueTx(ctx context.Context, tx pgx.Tx, eventID uuid.UUID) ([]matching.WaitlistEntry, error) {
	rows, err := tx.Query(ctx, `
        SELECT user_id, queued_at FROM rsvps
        WHERE event_id = $1 AND status = 'waitlist'
    `, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var queue []matching.WaitlistEntry
	for rows.Next() {
		var entry matching.WaitlistEntry
		if err := rows.Scan(&entry.UserID, &entry.QueuedAt); err != nil {
			return nil, err
		}
		queue = append(queue, entry)
	}
	return queue, rows.Err()
}

func derefCapacity(capacity *int) int {
	if capacity == nil {
		return 0
	}
	return *capacity
}
