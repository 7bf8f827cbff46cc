package userdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

func (r *Impl) CreateAction(ctx context.Context, db bun.IDB, action *UserAction) error {
	db = r.resolveDB(db)
	if _, err := db.NewInsert().Model(action).Returning("*").Exec(ctx); err != nil {
		return fmt.Errorf("failed to create user action: %w", err)
	}
	return nil
}

func (r *Impl) GetAction(ctx context.Context, db bun.IDB, id uuid.UUID) (*UserAction, error) {
	return r.getAction(ctx, r.resolveDB(db), id, false)
}

// GetActionForUpdate locks the action row until the transaction ends.
func (r *Impl) GetActionForUpdate(ctx context.Context, db bun.IDB, id uuid.UUID) (*UserAction, error) {
	return r.getAction(ctx, r.resolveDB(db), id, true)
}

func (r *Impl) getAction(ctx context.Context, db bun.IDB, id uuid.UUID, lock bool) (*UserAction, error) {
	action := new(UserAction)
	q := db.NewSelect().Model(action).Where("ua.id = ?", id)
	if lock {
		q = q.For("UPDATE")
	}
	if err := q.Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user action: %w", err)
	}
	return action, nil
}

// ListActions returns a user's actions newest first.
func (r *Impl) ListActions(ctx context.Context, db bun.IDB, userID uuid.UUID, includeRepealed bool) ([]*UserAction, error) {
	db = r.resolveDB(db)
	var actions []*UserAction
	q := db.NewSelect().Model(&actions).Where("ua.user_id = ?", userID)
	if !includeRepealed {
		q = q.Where("ua.repealed_at IS NULL")
	}
	if err := q.OrderExpr("ua.created_at DESC, ua.id ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list user actions: %w", err)
	}
	return actions, nil
}

func (r *Impl) UpdateAction(ctx context.Context, db bun.IDB, id uuid.UUID, updates *ActionUpdateFields) error {
	if updates.IsEmpty() {
		return nil
	}
	db = r.resolveDB(db)
	q := db.NewUpdate().Model((*UserAction)(nil)).Where("id = ?", id)
	if updates.Description != nil {
		q = q.Set("description = ?", *updates.Description)
	}
	if updates.InternalNote != nil {
		q = q.Set("internal_note = ?", *updates.InternalNote)
	}
	if updates.ExpiresAt != nil {
		q = q.Set("expires_at = ?", *updates.ExpiresAt)
	}
	return execAffecting(ctx, q, "update user action")
}

// RepealAction sets repealed_by and repealed_at together in one statement.
func (r *Impl) RepealAction(ctx context.Context, db bun.IDB, id, repealedBy uuid.UUID, at time.Time) error {
	db = r.resolveDB(db)
	q := db.NewUpdate().Model((*UserAction)(nil)).
		Set("repealed_by = ?", repealedBy).
		Set("repealed_at = ?", at).
		Where("id = ?", id)
	return execAffecting(ctx, q, "repeal user action")
}

func (r *Impl) DeleteAction(ctx context.Context, db bun.IDB, id uuid.UUID) error {
	db = r.resolveDB(db)
	q := db.NewDelete().Model((*UserAction)(nil)).Where("id = ?", id)
	return execAffecting(ctx, q, "delete user action")
}
