package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	RSVPStatusGoing    = "going"
	RSVPStatusWaitlist = "waitlist"
	RSVPStatusDeclined = "declined"
)

type Event struct {
	ID                 uuid.UUID       `json:"id"`
	GroupID            *uuid.UUID      `json:"group_id,omitempty"`
	HostID             uuid.UUID       `json:"host_id"`
	Title              string          `json:"title"`
	Description        *string         `json:"description,omitempty"`
	StartsAt           time.Time       `json:"starts_at"`
	EndsAt             *time.Time      `json:"ends_at,omitempty"`
	Venue              json.RawMessage `json:"venue,omitempty"`
	Capacity           *int            `json:"capacity,omitempty"`
	AccessibilityNotes *string         `json:"accessibility_notes,omitempty"`
	Tags               []string        `json:"tags"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

type CreateEventRequest struct {
	GroupID            *string         `json:"group_id,omitempty" validate:"omitempty,uuid4"`
	Title              string          `json:"title" validate:"required,max=128"`
	Description        *string         `json:"description,omitempty" validate:"omitempty,max=2000"`
	StartsAt           time.Time       `json:"starts_at" validate:"required"`
	EndsAt             *time.Time      `json:"ends_at,omitempty"`
	Venue              json.RawMessage `json:"venue,omitempty"`
	Capacity           *int            `json:"capacity,omitempty" validate:"omitempty,gt=0"`
	AccessibilityNotes *string         `json:"accessibility_notes,omitempty" validate:"omitempty,max=1000"`
	Tags               []string        `json:"tags" validate:"max=10,tags"`
}

// EventDetail adds live attendance to an event for the detail view.
type EventDetail struct {
	Event
	GoingCount int `json:"going_count"`
}

type RSVP struct {
	UserID      uuid.UUID  `json:"user_id"`
	EventID     uuid.UUID  `json:"event_id"`
	Status      string     `json:"status"`
	CheckedInAt *time.Time `json:"checked_in_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// RSVPRequest only accepts going or declined; waitlist is assigned by
// the capacity check, never requested.
type RSVPRequest struct {
	Status string `json:"status" validate:"required,oneof=going declined"`
}

type RSVPResult struct {
	Status           string `json:"rsvp_status"`
	WaitlistPosition *int   `json:"waitlist_position,omitempty"`
	Message          string `json:"message"`
}

// Attendee is one row of an event's attendee list.
type Attendee struct {
	UserID      uuid.UUID `json:"user_id"`
	DisplayName string    `json:"display_name"`
	Photos      []string  `json:"photos"`
	Status      string    `json:"status"`
	RSVPedAt    time.Time `json:"rsvped_at"`
}
