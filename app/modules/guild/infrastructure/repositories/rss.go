package guilddb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

func (r *Impl) CreateGuildRss(ctx context.Context, db bun.IDB, rss *GuildRss) error {
	db = r.resolveDB(db)
	if _, err := db.NewInsert().Model(rss).Returning("*").Exec(ctx); err != nil {
		return fmt.Errorf("failed to create guild rss: %w", err)
	}
	return nil
}

func (r *Impl) GetGuildRss(ctx context.Context, db bun.IDB, id uuid.UUID) (*GuildRss, error) {
	db = r.resolveDB(db)
	rss := new(GuildRss)
	if err := db.NewSelect().Model(rss).Where("gr.id = ?", id).Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get guild rss: %w", err)
	}
	return rss, nil
}

func (r *Impl) ListGuildRss(ctx context.Context, db bun.IDB, guildID string) ([]*GuildRss, error) {
	db = r.resolveDB(db)
	var feeds []*GuildRss
	err := db.NewSelect().
		Model(&feeds).
		Where("gr.guild_id = ?", guildID).
		OrderExpr("gr.created_at ASC, gr.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list guild rss: %w", err)
	}
	return feeds, nil
}

func (r *Impl) UpdateLastPostID(ctx context.Context, db bun.IDB, id uuid.UUID, lastPostID string) error {
	db = r.resolveDB(db)
	q := db.NewUpdate().Model((*GuildRss)(nil)).Set("last_post_id = ?", lastPostID).Where("id = ?", id)
	return execAffecting(ctx, q, "update guild rss")
}

func (r *Impl) DeleteGuildRss(ctx context.Context, db bun.IDB, id uuid.UUID) error {
	db = r.resolveDB(db)
	return execAffecting(ctx, db.NewDelete().Model((*GuildRss)(nil)).Where("id = ?", id), "delete guild rss")
}
