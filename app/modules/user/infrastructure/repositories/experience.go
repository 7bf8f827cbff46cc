package userdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	userdomain "github.com/tripsit/tripsit-api/app/modules/user/domain"
	"github.com/uptrace/bun"
)

func (r *Impl) CreateExperience(ctx context.Context, db bun.IDB, exp *UserExperience) error {
	db = r.resolveDB(db)
	if _, err := db.NewInsert().Model(exp).Returning("*").Exec(ctx); err != nil {
		return fmt.Errorf("failed to create user experience: %w", err)
	}
	return nil
}

func (r *Impl) GetExperience(ctx context.Context, db bun.IDB, id uuid.UUID) (*UserExperience, error) {
	db = r.resolveDB(db)
	exp := new(UserExperience)
	if err := db.NewSelect().Model(exp).Where("ux.id = ?", id).Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user experience: %w", err)
	}
	return exp, nil
}

func (r *Impl) ListExperience(ctx context.Context, db bun.IDB, userID uuid.UUID) ([]*UserExperience, error) {
	db = r.resolveDB(db)
	var rows []*UserExperience
	err := db.NewSelect().Model(&rows).
		Where("ux.user_id = ?", userID).
		OrderExpr("ux.type ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list user experience: %w", err)
	}
	return rows, nil
}

func (r *Impl) ExperienceTypesForUser(ctx context.Context, db bun.IDB, userID uuid.UUID) ([]userdomain.ExperienceType, error) {
	db = r.resolveDB(db)
	var types []userdomain.ExperienceType
	err := db.NewSelect().Model((*UserExperience)(nil)).
		Column("type").
		Where("user_id = ?", userID).
		Scan(ctx, &types)
	if err != nil {
		return nil, fmt.Errorf("failed to list experience types: %w", err)
	}
	return types, nil
}

func (r *Impl) UpdateExperience(ctx context.Context, db bun.IDB, id uuid.UUID, updates *ExperienceUpdateFields) error {
	if updates.IsEmpty() {
		return nil
	}
	db = r.resolveDB(db)
	q := db.NewUpdate().Model((*UserExperience)(nil)).Where("id = ?", id)
	if updates.Level != nil {
		q = q.Set("level = ?", *updates.Level)
	}
	if updates.LevelPoints != nil {
		q = q.Set("level_points = ?", *updates.LevelPoints)
	}
	if updates.TotalPoints != nil {
		q = q.Set("total_points = ?", *updates.TotalPoints)
	}
	if updates.LastMessageAt != nil {
		q = q.Set("last_message_at = ?", *updates.LastMessageAt)
	}
	if updates.LastMessageChannel != nil {
		q = q.Set("last_message_channel = ?", *updates.LastMessageChannel)
	}
	if updates.Mee6Converted != nil {
		q = q.Set("mee6_converted = ?", *updates.Mee6Converted)
	}
	return execAffecting(ctx, q, "update user experience")
}
