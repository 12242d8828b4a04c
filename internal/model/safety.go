package model

import (
	"time"

	"github.com/google/uuid"
)

type Block struct {
	BlockerID uuid.UUID `json:"blocker_id"`
	BlockedID uuid.UUID `json:"blocked_id"`
	CreatedAt time.Time `json:"created_at"`
}

type BlockRequest struct {
	BlockedID string `json:"blocked_id" validate:"required,uuid4"`
}

type Report struct {
	ID             uuid.UUID `json:"id"`
	ReporterID     uuid.UUID `json:"reporter_id"`
	SubjectType    string    `json:"subject_type"`
	SubjectID      uuid.UUID `json:"subject_id"`
	Reason         string    `json:"reason"`
	Details        *string   `json:"details,omitempty"`
	Severity       string    `json:"severity"`
	Status         string    `json:"status"`
	ModeratorNotes *string   `json:"moderator_notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type CreateReportRequest struct {
	SubjectType string  `json:"subject_type" validate:"required,oneof=user message event group"`
	SubjectID   string  `json:"subject_id" validate:"required,uuid4"`
	Reason      string  `json:"reason" validate:"required,max=64"`
	Details     *string `json:"details,omitempty" validate:"omitempty,max=2000"`
	Severity    string  `json:"severity" validate:"omitempty,oneof=low medium high"`
}
