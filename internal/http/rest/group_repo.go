package rest

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ribbonclub/ribbon_api/internal/model"
	"github.com/ribbonclub/ribbon_api/util"
)

var ErrGroupNotFound = errors.New("group not found")

// CreateGroupRepo inserts the group and enrolls the owner as its admin
// in one transaction, so member_count starts at 1 with the matching
// membership row.
func (api *API) CreateGroupRepo(ctx context.Context, ownerID uuid.UUID, req model.CreateGroupRequest) (model.Group, error) {
	var group model.Group

	err := api.Deps.DB.RunInTx(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
            INSERT INTO groups (id, name, description, tags, rules, visibility, owner_id, member_count)
            VALUES ($1, $2, $3, $4, $5, $6, $7, 1)
            RETURNING id, name, description, tags, rules, visibility, owner_id, member_count, created_at, updated_at
        `, util.GenerateUUID(), req.Name, req.Description, util.NormalizeTags(req.Tags),
			req.Rules, req.Visibility, ownerID,
		).Scan(
			&group.ID, &group.Name, &group.Description, &group.Tags, &group.Rules,
			&group.Visibility, &group.OwnerID, &group.MemberCount, &group.CreatedAt, &group.UpdatedAt,
		)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `
            INSERT INTO group_members (group_id, user_id, role) VALUES ($1, $2, $3)
        `, group.ID, ownerID, model.GroupRoleAdmin)
		return err
	})
	if err != nil {
		return model.Group{}, err
	}
	return group, nil
}

// ListGroupsRepo returns public groups plus any private groups the user
// already belongs to.
func (api *API) ListGroupsRepo(ctx context.Context, userID uuid.UUID) ([]model.Group, error) {
	rows, err := api.DB.Query(ctx, `
        SELECT g.id, g.name, g.description, g.tags, g.rules, g.visibility,
               g.owner_id, g.member_count, g.created_at, g.updated_at
        FROM groups g
        WHERE g.visibility = 'public'
           OR EXISTS (
                SELECT 1 FROM group_members gm
                WHERE gm.group_id = g.id AND gm.user_id = $1
           )
        ORDER BY g.name
    `, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := []model.Group{}
	for rows.Next() {
		var g model.Group
		err := rows.Scan(
			&g.ID, &g.Name, &g.Description, &g.Tags, &g.Rules, &g.Visibility,
			&g.OwnerID, &g.MemberCount, &g.CreatedAt, &g.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

func (api *API) GetGroupByIDRepo(ctx context.Context, groupID uuid.UUID) (model.Group, error) {
	var g model.Group
	err := api.DB.QueryRow(ctx, `
        SELECT id, name, description, tags, rules, visibility,
               owner_id, member_count, created_at, updated_at
        FROM groups WHERE id = $1
    `, groupID).Scan(
		&g.ID, &g.Name, &g.Description, &g.Tags, &g.Rules, &g.Visibility,
		&g.OwnerID, &g.MemberCount, &g.CreatedAt, &g.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Group{}, ErrGroupNotFound
	}
	return g, err
}

func (api *API) JoinGroupRepo(ctx context.Context, userID, groupID uuid.UUID) error {
	return api.Deps.DB.RunInTx(ctx, func(tx pgx.Tx) error {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM groups WHERE id = $1)`, groupID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return ErrGroupNotFound
		}

		tag, err := tx.Exec(ctx, `
            INSERT INTO group_members (group_id, user_id, role)
            VALUES ($1, $2, $3)
            ON CONFLICT (group_id, user_id) DO NOTHING
        `, groupID, userID, model.GroupRoleMember)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return nil
		}

		_, err = tx.Exec(ctx, `
            UPDATE groups SET member_count = member_count + 1, updated_at = NOW() WHERE id = $1
        `, groupID)
		return err
	})
}

func (api *API) LeaveGroupRepo(ctx context.Context, userID, groupID uuid.UUID) error {
	return api.Deps.DB.RunInTx(ctx, func(tx pgx.Tx) error {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM groups WHERE id = $1)`, groupID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return ErrGroupNotFound
		}

		tag, err := tx.Exec(ctx, `
            DELETE FROM group_members WHERE group_id = $1 AND user_id = $2
        `, groupID, userID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return nil
		}

		_, err = tx.Exec(ctx, `
            UPDATE groups SET member_count = GREATEST(member_count - 1, 0), updated_at = NOW() WHERE id = $1
        `, groupID)
		return err
	})
}
