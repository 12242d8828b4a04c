package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	MatchStatusPending = "pending"
	MatchStatusMutual  = "mutual"
	MatchStatusBlocked = "blocked"
)

type Like struct {
	LikerID   uuid.UUID `json:"liker_id"`
	LikedID   uuid.UUID `json:"liked_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Match holds one row per unordered user pair. UserA is always the
// lexicographically smaller id.
type Match struct {
	ID             uuid.UUID  `json:"id"`
	UserA          uuid.UUID  `json:"user_a"`
	UserB          uuid.UUID  `json:"user_b"`
	Status         string     `json:"status"`
	Score          float64    `json:"score"`
	ConversationID *uuid.UUID `json:"conversation_id,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type CreateMatchRequest struct {
	TargetUserID string `json:"target_user_id" validate:"required,uuid4"`
}

// MatchResult is the create-or-get outcome. MatchID and ConversationID
// are nil while the like is still one-directional.
type MatchResult struct {
	MatchID        *uuid.UUID `json:"match_id"`
	ConversationID *uuid.UUID `json:"conversation_id"`
	IsNew          bool       `json:"is_new"`
}

// MatchedProfile pairs a mutual match with the counterpart's profile.
type MatchedProfile struct {
	MatchID        uuid.UUID  `json:"match_id"`
	ConversationID *uuid.UUID `json:"conversation_id,omitempty"`
	Score          float64    `json:"score"`
	MatchedAt      time.Time  `json:"matched_at"`
	Profile        Profile    `json:"profile"`
}

type Conversation struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
