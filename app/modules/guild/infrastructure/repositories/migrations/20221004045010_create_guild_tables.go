package guildmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating discord_guilds and reaction_roles tables...")

		_, err := db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS discord_guilds (
				id VARCHAR(20) PRIMARY KEY,
				discord_bot_ban BOOLEAN NOT NULL DEFAULT FALSE,
				partner BOOLEAN NOT NULL DEFAULT FALSE,
				supporter BOOLEAN NOT NULL DEFAULT FALSE,
				coop_mod_room_id VARCHAR(20),
				mod_room_id VARCHAR(20),
				mod_log_room_id VARCHAR(20),
				mod_helpdesk_room_id VARCHAR(20),
				mod_role_id VARCHAR(20),
				team_role_id VARCHAR(20),
				joined_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			);

			CREATE TABLE IF NOT EXISTS reaction_roles (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				guild_id VARCHAR(20) NOT NULL REFERENCES discord_guilds(id) ON DELETE CASCADE,
				name TEXT NOT NULL,
				channel_id VARCHAR(20) NOT NULL,
				message_id VARCHAR(20) NOT NULL,
				reaction_id TEXT NOT NULL,
				role_id VARCHAR(20) NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			);
			CREATE INDEX IF NOT EXISTS idx_reaction_roles_guild ON reaction_roles(guild_id);
		`)
		if err != nil {
			return fmt.Errorf("failed to create guild tables: %w", err)
		}
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping discord_guilds and reaction_roles tables...")

		if _, err := db.ExecContext(ctx, `
			DROP TABLE IF EXISTS reaction_roles;
			DROP TABLE IF EXISTS discord_guilds;
		`); err != nil {
			return fmt.Errorf("failed to drop guild tables: %w", err)
		}
		return nil
	})
}
