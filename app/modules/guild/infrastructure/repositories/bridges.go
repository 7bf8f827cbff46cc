package guilddb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	guilddomain "github.com/tripsit/tripsit-api/app/modules/guild/domain"
	"github.com/uptrace/bun"
)

func (r *Impl) CreateBridge(ctx context.Context, db bun.IDB, bridge *Bridge) error {
	db = r.resolveDB(db)
	if _, err := db.NewInsert().Model(bridge).Returning("*").Exec(ctx); err != nil {
		return fmt.Errorf("failed to create bridge: %w", err)
	}
	return nil
}

func (r *Impl) GetBridge(ctx context.Context, db bun.IDB, id uuid.UUID) (*Bridge, error) {
	db = r.resolveDB(db)
	bridge := new(Bridge)
	if err := db.NewSelect().Model(bridge).Where("b.id = ?", id).Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get bridge: %w", err)
	}
	return bridge, nil
}

func (r *Impl) ListBridges(ctx context.Context, db bun.IDB, channel string) ([]*Bridge, error) {
	db = r.resolveDB(db)
	var bridges []*Bridge
	err := db.NewSelect().
		Model(&bridges).
		WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("b.internal_channel = ?", channel).WhereOr("b.external_channel = ?", channel)
		}).
		OrderExpr("b.created_at ASC, b.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bridges: %w", err)
	}
	return bridges, nil
}

func (r *Impl) SetBridgeStatus(ctx context.Context, db bun.IDB, id uuid.UUID, status guilddomain.BridgeStatus) error {
	db = r.resolveDB(db)
	q := db.NewUpdate().Model((*Bridge)(nil)).Set("status = ?", status).Where("id = ?", id)
	return execAffecting(ctx, q, "update bridge status")
}

func (r *Impl) DeleteBridge(ctx context.Context, db bun.IDB, id uuid.UUID) error {
	db = r.resolveDB(db)
	return execAffecting(ctx, db.NewDelete().Model((*Bridge)(nil)).Where("id = ?", id), "delete bridge")
}
