package guilddb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Impl implements Repository with bun.
type Impl struct {
	db bun.IDB
}

func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

func execAffecting(ctx context.Context, q interface {
	Exec(ctx context.Context, dest ...interface{}) (sql.Result, error)
}, what string) error {
	res, err := q.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to %s: %w", what, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

func (r *Impl) UpsertGuild(ctx context.Context, db bun.IDB, guild *Guild) error {
	db = r.resolveDB(db)
	_, err := db.NewInsert().
		Model(guild).
		On("CONFLICT (id) DO UPDATE").
		Set("discord_bot_ban = EXCLUDED.discord_bot_ban").
		Set("partner = EXCLUDED.partner").
		Set("supporter = EXCLUDED.supporter").
		Set("coop_mod_room_id = EXCLUDED.coop_mod_room_id").
		Set("mod_room_id = EXCLUDED.mod_room_id").
		Set("mod_log_room_id = EXCLUDED.mod_log_room_id").
		Set("mod_helpdesk_room_id = EXCLUDED.mod_helpdesk_room_id").
		Set("mod_role_id = EXCLUDED.mod_role_id").
		Set("team_role_id = EXCLUDED.team_role_id").
		Set("updated_at = NOW()").
		Returning("*").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert guild: %w", err)
	}
	return nil
}

func (r *Impl) GetGuild(ctx context.Context, db bun.IDB, id string) (*Guild, error) {
	db = r.resolveDB(db)
	guild := new(Guild)
	if err := db.NewSelect().Model(guild).Where("g.id = ?", id).Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get guild: %w", err)
	}
	return guild, nil
}

func (r *Impl) GuildExists(ctx context.Context, db bun.IDB, id string) (bool, error) {
	db = r.resolveDB(db)
	exists, err := db.NewSelect().Model((*Guild)(nil)).Where("g.id = ?", id).Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check guild: %w", err)
	}
	return exists, nil
}

func (r *Impl) ListGuilds(ctx context.Context, db bun.IDB) ([]*Guild, error) {
	db = r.resolveDB(db)
	var guilds []*Guild
	if err := db.NewSelect().Model(&guilds).OrderExpr("g.joined_at ASC, g.id ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list guilds: %w", err)
	}
	return guilds, nil
}

func (r *Impl) UpdateGuild(ctx context.Context, db bun.IDB, id string, updates *GuildUpdateFields) error {
	if updates.IsEmpty() {
		return nil
	}
	db = r.resolveDB(db)
	q := db.NewUpdate().Model((*Guild)(nil)).Where("id = ?", id).Set("updated_at = NOW()")
	if updates.DiscordBotBan != nil {
		q = q.Set("discord_bot_ban = ?", *updates.DiscordBotBan)
	}
	if updates.Partner != nil {
		q = q.Set("partner = ?", *updates.Partner)
	}
	if updates.Supporter != nil {
		q = q.Set("supporter = ?", *updates.Supporter)
	}
	if updates.CoopModRoomID != nil {
		q = q.Set("coop_mod_room_id = ?", *updates.CoopModRoomID)
	}
	if updates.ModRoomID != nil {
		q = q.Set("mod_room_id = ?", *updates.ModRoomID)
	}
	if updates.ModLogRoomID != nil {
		q = q.Set("mod_log_room_id = ?", *updates.ModLogRoomID)
	}
	if updates.ModHelpdeskRoomID != nil {
		q = q.Set("mod_helpdesk_room_id = ?", *updates.ModHelpdeskRoomID)
	}
	if updates.ModRoleID != nil {
		q = q.Set("mod_role_id = ?", *updates.ModRoleID)
	}
	if updates.TeamRoleID != nil {
		q = q.Set("team_role_id = ?", *updates.TeamRoleID)
	}
	return execAffecting(ctx, q, "update guild")
}

func (r *Impl) CreateReactionRole(ctx context.Context, db bun.IDB, role *ReactionRole) error {
	db = r.resolveDB(db)
	if _, err := db.NewInsert().Model(role).Returning("*").Exec(ctx); err != nil {
		return fmt.Errorf("failed to create reaction role: %w", err)
	}
	return nil
}

func (r *Impl) ListReactionRoles(ctx context.Context, db bun.IDB, guildID string) ([]*ReactionRole, error) {
	db = r.resolveDB(db)
	var roles []*ReactionRole
	err := db.NewSelect().
		Model(&roles).
		Where("rr.guild_id = ?", guildID).
		OrderExpr("rr.created_at ASC, rr.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reaction roles: %w", err)
	}
	return roles, nil
}

func (r *Impl) DeleteReactionRole(ctx context.Context, db bun.IDB, id uuid.UUID) error {
	db = r.resolveDB(db)
	return execAffecting(ctx, db.NewDelete().Model((*ReactionRole)(nil)).Where("id = ?", id), "delete reaction role")
}
