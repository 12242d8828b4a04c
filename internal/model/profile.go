package model

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	ID                  uuid.UUID `json:"id"`
	DisplayName         string    `json:"display_name"`
	Pronouns            *string   `json:"pronouns,omitempty"`
	Bio                 *string   `json:"bio,omitempty"`
	Photos              []string  `json:"photos"`
	Interests           []string  `json:"interests"`
	LocationLat         *float64  `json:"location_lat,omitempty"`
	LocationLng         *float64  `json:"location_lng,omitempty"`
	FuzzyLat            *float64  `json:"location_fuzzy_lat,omitempty"`
	FuzzyLng            *float64  `json:"location_fuzzy_lng,omitempty"`
	OnboardingCompleted bool      `json:"onboarding_completed"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// UpdateProfileRequest upserts the acting user's profile. The exact
// location is fuzzed server side; callers never submit fuzzy coordinates.
type UpdateProfileRequest struct {
	DisplayName         string   `json:"display_name" validate:"required,max=64"`
	Pronouns            *string  `json:"pronouns,omitempty" validate:"omitempty,max=32"`
	Bio                 *string  `json:"bio,omitempty" validate:"omitempty,max=500"`
	Photos              []string `json:"photos" validate:"max=6,dive,url"`
	Interests           []string `json:"interests" validate:"max=10,tags"`
	LocationLat         *float64 `json:"location_lat,omitempty" validate:"omitempty,latitude"`
	LocationLng         *float64 `json:"location_lng,omitempty" validate:"omitempty,longitude"`
	OnboardingCompleted bool     `json:"onboarding_completed"`
}

// CandidateProfile is one row of a discovery page.
type CandidateProfile struct {
	UserID      uuid.UUID `json:"user_id"`
	DisplayName string    `json:"display_name"`
	Pronouns    *string   `json:"pronouns,omitempty"`
	Bio         *string   `json:"bio,omitempty"`
	Photos      []string  `json:"photos"`
	Interests   []string  `json:"interests"`
	MatchScore  float64   `json:"match_score"`
	DistanceKm  *float64  `json:"distance_km"`
}

type DiscoverParams struct {
	MaxDistanceKm float64
	Interests     []string
	Limit         int
	Offset        int
}

type PassRequest struct {
	UserID string `json:"user_id" validate:"required,uuid4"`
}
