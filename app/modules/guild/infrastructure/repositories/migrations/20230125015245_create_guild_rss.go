package guildmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating guild_rss table...")

		if _, err := db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS guild_rss (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				guild_id VARCHAR(20) NOT NULL REFERENCES discord_guilds(id) ON DELETE CASCADE,
				url TEXT NOT NULL,
				last_post_id TEXT NOT NULL,
				destination VARCHAR(20) NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			);
			CREATE INDEX IF NOT EXISTS idx_guild_rss_guild ON guild_rss(guild_id);
		`); err != nil {
			return fmt.Errorf("failed to create guild_rss table: %w", err)
		}
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping guild_rss table...")

		if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS guild_rss`); err != nil {
			return fmt.Errorf("failed to drop guild_rss table: %w", err)
		}
		return nil
	})
}
