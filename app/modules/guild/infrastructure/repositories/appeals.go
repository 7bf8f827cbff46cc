package guilddb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	guilddomain "github.com/tripsit/tripsit-api/app/modules/guild/domain"
	"github.com/uptrace/bun"
)

func (r *Impl) CreateAppeal(ctx context.Context, db bun.IDB, appeal *Appeal) error {
	db = r.resolveDB(db)
	if _, err := db.NewInsert().Model(appeal).Returning("*").Exec(ctx); err != nil {
		return fmt.Errorf("failed to create appeal: %w", err)
	}
	return nil
}

func (r *Impl) GetAppeal(ctx context.Context, db bun.IDB, id uuid.UUID) (*Appeal, error) {
	return r.getAppeal(ctx, r.resolveDB(db), id, false)
}

// GetAppealForUpdate locks the row for the rest of the transaction.
func (r *Impl) GetAppealForUpdate(ctx context.Context, db bun.IDB, id uuid.UUID) (*Appeal, error) {
	return r.getAppeal(ctx, r.resolveDB(db), id, true)
}

func (r *Impl) getAppeal(ctx context.Context, db bun.IDB, id uuid.UUID, lock bool) (*Appeal, error) {
	appeal := new(Appeal)
	q := db.NewSelect().Model(appeal).Where("a.id = ?", id)
	if lock {
		q = q.For("UPDATE")
	}
	if err := q.Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get appeal: %w", err)
	}
	return appeal, nil
}

func (r *Impl) ListAppeals(ctx context.Context, db bun.IDB, filter AppealFilter) ([]*Appeal, error) {
	db = r.resolveDB(db)
	var appeals []*Appeal
	q := db.NewSelect().Model(&appeals).Where("a.guild_id = ?", filter.GuildID)
	if filter.UserID != nil {
		q = q.Where("a.user_id = ?", *filter.UserID)
	}
	if err := q.OrderExpr("a.created_at DESC, a.id ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list appeals: %w", err)
	}
	return appeals, nil
}

func (r *Impl) MarkAppealReminded(ctx context.Context, db bun.IDB, id uuid.UUID, at time.Time) error {
	db = r.resolveDB(db)
	q := db.NewUpdate().Model((*Appeal)(nil)).Set("reminded_at = ?", at).Where("id = ?", id)
	return execAffecting(ctx, q, "mark appeal reminded")
}

// DecideAppeal sets the status and decided_at together.
func (r *Impl) DecideAppeal(ctx context.Context, db bun.IDB, id uuid.UUID, status guilddomain.AppealStatus, at time.Time) error {
	db = r.resolveDB(db)
	q := db.NewUpdate().
		Model((*Appeal)(nil)).
		Set("status = ?", status).
		Set("decided_at = ?", at).
		Where("id = ?", id)
	return execAffecting(ctx, q, "decide appeal")
}
