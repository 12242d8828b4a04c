package rest

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/ribbonclub/ribbon_api/internal/matching"
	"github.com/ribbonclub/ribbon_api/internal/model"
	"github.com/ribbonclub/ribbon_api/util"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrBlockedPair  = errors.New("blocked relationship between users")

	errSelfTarget = errors.New("acting user targeted themself")
)

// CreateOrGetMatchRepo runs the whole like->match resolution in one
// transaction, serialized per pair by locking both profile rows up
// front. Without the lock, two crossing calls each insert their like
// and read the reverse like before the other commits, so neither sees
// a mutual pair and no match is created. With it, the later call
// blocks until the earlier one commits and then observes its like.
// The unique index on matches (user_a, user_b) still backstops the
// insert: a loser there re-reads the winner's row.
//
// likeRecorded reports whether this call inserted a new like row, so
// the caller knows whether to bump the cached like counter.
func (api *API) CreateOrGetMatchRepo(ctx context.Context, actingID, targetID uuid.UUID) (model.MatchResult, bool, error) {
	var result model.MatchResult
	var likeRecorded bool

	err := api.Deps.DB.RunInTx(ctx, func(tx pgx.Tx) error {
		// Lock order follows id order regardless of call direction, so
		// the two directions of a pair never deadlock. Fewer than two
		// rows means one of the ids has no profile.
		lockRows, err := tx.Query(ctx, `
            SELECT id FROM profiles WHERE id IN ($1, $2) ORDER BY id FOR UPDATE
        `, actingID, targetID)
		if err != nil {
			return err
		}
		var locked int
		for lockRows.Next() {
			var id uuid.UUID
			if err := lockRows.Scan(&id); err != nil {
				lockRows.Close()
				return err
			}
			locked++
		}
		lockRows.Close()
		if err := lockRows.Err(); err != nil {
			return err
		}
		if locked != 2 {
			return ErrUserNotFound
		}

		var blocked bool
		err = tx.QueryRow(ctx, `
            SELECT EXISTS (
                SELECT 1 FROM blocks
                WHERE (blocker_id = $1 AND blocked_id = $2)
                   OR (blocker_id = $2 AND blocked_id = $1)
            )`, actingID, targetID).Scan(&blocked)
		if err != nil {
			return err
		}
		if blocked {
			return ErrBlockedPair
		}

		likeCt, err := tx.Exec(ctx, `
            INSERT INTO likes (liker_id, liked_id)
            VALUES ($1, $2)
            ON CONFLICT DO NOTHING
        `, actingID, targetID)
		if err != nil {
			return err
		}
		likeRecorded = likeCt.RowsAffected() == 1

		userA, userB := matching.CanonicalPair(actingID, targetID)

		var matchID uuid.UUID
		var conversationID *uuid.UUID
		err = tx.QueryRow(ctx, `
            SELECT id, conversation_id FROM matches
            WHERE user_a = $1 AND user_b = $2
        `, userA, userB).Scan(&matchID, &conversationID)
		if err == nil {
			result = model.MatchResult{MatchID: &matchID, ConversationID: conversationID, IsNew: false}
			return nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return err
		}

		var reverseLike bool
		err = tx.QueryRow(ctx, `
            SELECT EXISTS (SELECT 1 FROM likes WHERE liker_id = $1 AND liked_id = $2)
        `, targetID, actingID).Scan(&reverseLike)
		if err != nil {
			return err
		}
		if !reverseLike {
			// One-directional like: nothing to create yet.
			result = model.MatchResult{IsNew: false}
			return nil
		}

		score, err := snapshotScoreTx(ctx, tx, actingID, targetID, matching.ScoreParams{
			Base:   api.Config.ScoreBase,
			Weight: api.Config.ScoreWeight,
		})
		if err != nil {
			return err
		}

		newMatchID := util.GenerateUUID()
		ct, err := tx.Exec(ctx, `
            INSERT INTO matches (id, user_a, user_b, status, score)
            VALUES ($1, $2, $3, 'mutual', $4)
            ON CONFLICT (user_a, user_b) DO NOTHING
        `, newMatchID, userA, userB, score)
		if err != nil {
			return err
		}
		if ct.RowsAffected() == 0 {
			// A concurrent call created the pair first; return theirs.
			err = tx.QueryRow(ctx, `
                SELECT id, conversation_id FROM matches
                WHERE user_a = $1 AND user_b = $2
            `, userA, userB).Scan(&matchID, &conversationID)
			if err != nil {
				return err
			}
			result = model.MatchResult{MatchID: &matchID, ConversationID: conversationID, IsNew: false}
			return nil
		}

		newConversationID := util.GenerateUUID()
		if _, err = tx.Exec(ctx, `INSERT INTO conversations (id) VALUES ($1)`, newConversationID); err != nil {
			return err
		}
		if _, err = tx.Exec(ctx, `
            INSERT INTO conversation_participants (conversation_id, user_id)
            VALUES ($1, $2), ($1, $3)
        `, newConversationID, userA, userB); err != nil {
			return err
		}
		if _, err = tx.Exec(ctx, `
            UPDATE matches SET conversation_id = $1, updated_at = NOW() WHERE id = $2
        `, newConversationID, newMatchID); err != nil {
			return err
		}

		result = model.MatchResult{MatchID: &newMatchID, ConversationID: &newConversationID, IsNew: true}
		return nil
	})

	return result, likeRecorded, err
}

// snapshotScoreTx computes the compatibility score stored on the new
// match row, from both profiles' interests as of match time.
func snapshotScoreTx(ctx context.Context, tx pgx.Tx, a, b uuid.UUID, p matching.ScoreParams) (float64, error) {
	var interestsA, interestsB []string
	if err := tx.QueryRow(ctx, `SELECT interests FROM profiles WHERE id = $1`, a).Scan(&interestsA); err != nil {
		return 0, err
	}
	if err := tx.QueryRow(ctx, `SELECT interests FROM profiles WHERE id = $1`, b).Scan(&interestsB); err != nil {
		return 0, err
	}
	return matching.InterestScore(interestsA, interestsB, p), nil
}

// ListMatchesRepo returns the acting user's mutual matches with the
// counterpart's profile.
func (api *API) ListMatchesRepo(ctx context.Context, userID uuid.UUID) ([]model.MatchedProfile, error) {
	rows, err := api.DB.Query(ctx, `
        SELECT m.id, m.conversation_id, m.score, m.updated_at,
               p.id, p.display_name, p.pronouns, p.bio, p.photos, p.interests, p.location_fuzzy
        FROM matches m
        JOIN profiles p
          ON p.id = CASE WHEN m.user_a = $1 THEN m.user_b ELSE m.user_a END
        WHERE (m.user_a = $1 OR m.user_b = $1)
          AND m.status = 'mutual'
        ORDER BY m.updated_at DESC
    `, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := []model.MatchedProfile{}
	for rows.Next() {
		var m model.MatchedProfile
		var fuzzy pgtype.Point

		err := rows.Scan(
			&m.MatchID, &m.ConversationID, &m.Score, &m.MatchedAt,
			&m.Profile.ID, &m.Profile.DisplayName, &m.Profile.Pronouns, &m.Profile.Bio,
			&m.Profile.Photos, &m.Profile.Interests, &fuzzy,
		)
		if err != nil {
			return nil, err
		}
		if fuzzy.Valid {
			lat, lng := util.PointToLatLon(fuzzy)
			m.Profile.FuzzyLat, m.Profile.FuzzyLng = &lat, &lng
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

// CountLikersRepo counts incoming likes from the database.
func (api *API) CountLikersRepo(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := api.DB.QueryRow(ctx, `SELECT COUNT(*) FROM likes WHERE liked_id = $1`, userID).Scan(&count)
	return count, err
}
