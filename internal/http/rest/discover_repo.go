package rest

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/ribbonclub/ribbon_api/internal/model"
	"github.com/ribbonclub/ribbon_api/util"
)

// GetDiscoveryPoolRepo fetches every profile eligible to be shown to
// the requester: onboarded, not the requester, not blocked in either
// direction, not already liked by the requester, and (unless the
// resurface policy allows it) not already passed on. Ordered by id so
// downstream ranking sees a stable input.
func (api *API) GetDiscoveryPoolRepo(ctx context.Context, userID uuid.UUID, interestFilters []string, resurfacePassed bool) ([]model.Profile, error) {
	query := `
        SELECT id, display_name, pronouns, bio, photos, interests,
               location_fuzzy, onboarding_completed, created_at, updated_at
        FROM profiles p
        WHERE p.id <> $1
          AND p.onboarding_completed = true
          AND NOT EXISTS (
              SELECT 1 FROM blocks b
              WHERE (b.blocker_id = $1 AND b.blocked_id = p.id)
                 OR (b.blocker_id = p.id AND b.blocked_id = $1)
          )
          AND NOT EXISTS (
              SELECT 1 FROM likes l
              WHERE l.liker_id = $1 AND l.liked_id = p.id
          )
    `
	args := []interface{}{userID}

	if !resurfacePassed {
		query += `
          AND NOT EXISTS (
              SELECT 1 FROM passes ps
              WHERE ps.passer_id = $1 AND ps.passed_id = p.id
          )`
	}

	if len(interestFilters) > 0 {
		query += ` AND p.interests && $2`
		args = append(args, interestFilters)
	}

	query += ` ORDER BY p.id`

	rows, err := api.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []model.Profile
	for rows.Next() {
		var p model.Profile
		var fuzzy pgtype.Point

		err := rows.Scan(
			&p.ID, &p.DisplayName, &p.Pronouns, &p.Bio, &p.Photos, &p.Interests,
			&fuzzy, &p.OnboardingCompleted, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		if fuzzy.Valid {
			lat, lng := util.PointToLatLon(fuzzy)
			p.FuzzyLat, p.FuzzyLng = &lat, &lng
		}

		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// CreatePassRepo records a pass; repeats are no-ops.
func (api *API) CreatePassRepo(ctx context.Context, passerID, passedID uuid.UUID) error {
	_, err := api.DB.Exec(ctx, `
        INSERT INTO passes (passer_id, passed_id)
        VALUES ($1, $2)
        ON CONFLICT DO NOTHING
    `, passerID, passedID)
	return err
}
