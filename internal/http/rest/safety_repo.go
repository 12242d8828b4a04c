package rest

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ribbonclub/ribbon_api/internal/matching"
	"github.com/ribbonclub/ribbon_api/internal/model"
	"github.com/ribbonclub/ribbon_api/util"
)

// CreateBlockRepo inserts the block and, in the same transaction, marks
// any match between the pair as blocked so it drops out of match lists.
func (api *API) CreateBlockRepo(ctx context.Context, blockerID, blockedID uuid.UUID) error {
	return api.Deps.DB.RunInTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
            INSERT INTO blocks (blocker_id, blocked_id)
            VALUES ($1, $2)
            ON CONFLICT DO NOTHING
        `, blockerID, blockedID)
		if err != nil {
			return err
		}

		userA, userB := matching.CanonicalPair(blockerID, blockedID)
		_, err = tx.Exec(ctx, `
            UPDATE matches SET status = $3, updated_at = NOW()
            WHERE user_a = $1 AND user_b = $2
        `, userA, userB, model.MatchStatusBlocked)
		return err
	})
}

// DeleteBlockRepo removes the block. A blocked match stays blocked;
// unblocking restores discovery visibility only.
func (api *API) DeleteBlockRepo(ctx context.Context, blockerID, blockedID uuid.UUID) error {
	_, err := api.DB.Exec(ctx, `
        DELETE FROM blocks WHERE blocker_id = $1 AND blocked_id = $2
    `, blockerID, blockedID)
	return err
}

func (api *API) CreateReportRepo(ctx context.Context, reporterID, subjectID uuid.UUID, req model.CreateReportRequest) (model.Report, error) {
	severity := req.Severity
	if severity == "" {
		severity = "medium"
	}

	var report model.Report
	err := api.DB.QueryRow(ctx, `
        INSERT INTO reports (id, reporter_id, subject_type, subject_id, reason, details, severity)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, reporter_id, subject_type, subject_id, reason, details,
                  severity, status, moderator_notes, created_at, updated_at
    `, util.GenerateUUID(), reporterID, req.SubjectType, subjectID, req.Reason, req.Details, severity,
	).Scan(
		&report.ID, &report.ReporterID, &report.SubjectType, &report.SubjectID,
		&report.Reason, &report.Details, &report.Severity, &report.Status,
		&report.ModeratorNotes, &report.CreatedAt, &report.UpdatedAt,
	)
	if err != nil {
		return model.Report{}, err
	}
	return report, nil
}
