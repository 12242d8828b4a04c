package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	GroupRoleMember    = "member"
	GroupRoleModerator = "moderator"
	GroupRoleAdmin     = "admin"
)

type Group struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Tags        []string  `json:"tags"`
	Rules       *string   `json:"rules,omitempty"`
	Visibility  string    `json:"visibility"`
	OwnerID     uuid.UUID `json:"owner_id"`
	MemberCount int       `json:"member_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateGroupRequest struct {
	Name        string   `json:"name" validate:"required,max=128"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	Tags        []string `json:"tags" validate:"max=10,tags"`
	Rules       *string  `json:"rules,omitempty" validate:"omitempty,max=2000"`
	Visibility  string   `json:"visibility" validate:"required,oneof=public private"`
}

type GroupMember struct {
	GroupID  uuid.UUID `json:"group_id"`
	UserID   uuid.UUID `json:"user_id"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}
