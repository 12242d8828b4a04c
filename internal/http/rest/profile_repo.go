package rest

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/ribbonclub/ribbon_api/internal/model"
	"github.com/ribbonclub/ribbon_api/util"
	"github.com/ribbonclub/ribbon_api/util/geo"
)

var ErrProfileNotFound = errors.New("profile not found")

func (api *API) GetProfileByIDRepo(ctx context.Context, userID uuid.UUID) (model.Profile, error) {
	var p model.Profile
	var location, fuzzy pgtype.Point

	err := api.DB.QueryRow(ctx, `
        SELECT id, display_name, pronouns, bio, photos, interests,
               location, location_fuzzy, onboarding_completed, created_at, updated_at
        FROM profiles WHERE id = $1
    `, userID).Scan(
		&p.ID, &p.DisplayName, &p.Pronouns, &p.Bio, &p.Photos, &p.Interests,
		&location, &fuzzy, &p.OnboardingCompleted, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Profile{}, ErrProfileNotFound
	}
	if err != nil {
		return model.Profile{}, err
	}

	if location.Valid {
		lat, lng := util.PointToLatLon(location)
		p.LocationLat, p.LocationLng = &lat, &lng
	}
	if fuzzy.Valid {
		lat, lng := util.PointToLatLon(fuzzy)
		p.FuzzyLat, p.FuzzyLng = &lat, &lng
	}
	return p, nil
}

// UpsertProfileRepo writes the full profile row. When the request
// carries coordinates, the fuzzy point is derived here and stored
// alongside the exact one; when it omits them, both points clear.
func (api *API) UpsertProfileRepo(ctx context.Context, userID uuid.UUID, req model.UpdateProfileRequest) (model.Profile, error) {
	var location, fuzzy pgtype.Point
	if req.LocationLat != nil && req.LocationLng != nil {
		fuzzed := geo.FuzzCoordinates(geo.Coordinates{
			Latitude:  *req.LocationLat,
			Longitude: *req.LocationLng,
		})
		location = util.PointFromLatLon(fuzzed.Exact.Latitude, fuzzed.Exact.Longitude)
		fuzzy = util.PointFromLatLon(fuzzed.Fuzzy.Latitude, fuzzed.Fuzzy.Longitude)
	}

	_, err := api.DB.Exec(ctx, `
        INSERT INTO profiles (
            id, display_name, pronouns, bio, photos, interests,
            location, location_fuzzy, onboarding_completed
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        ON CONFLICT (id) DO UPDATE SET
            display_name = EXCLUDED.display_name,
            pronouns = EXCLUDED.pronouns,
            bio = EXCLUDED.bio,
            photos = EXCLUDED.photos,
            interests = EXCLUDED.interests,
            location = EXCLUDED.location,
            location_fuzzy = EXCLUDED.location_fuzzy,
            onboarding_completed = EXCLUDED.onboarding_completed,
            updated_at = NOW()
    `, userID, req.DisplayName, req.Pronouns, req.Bio, req.Photos,
		util.NormalizeTags(req.Interests), location, fuzzy, req.OnboardingCompleted,
	)
	if err != nil {
		return model.Profile{}, err
	}

	return api.GetProfileByIDRepo(ctx, userID)
}
