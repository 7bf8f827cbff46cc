package guildmigrations

import (
	"context"
	"fmt"

	guilddomain "github.com/tripsit/tripsit-api/app/modules/guild/domain"
	"github.com/tripsit/tripsit-api/internal/ledger"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating appeals table...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if err := ledger.CreateEnum(ctx, tx, "appeal_status", guilddomain.Strings(guilddomain.AppealStatuses)...); err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS appeals (
					id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					guild_id VARCHAR(20) NOT NULL REFERENCES discord_guilds(id) ON DELETE CASCADE,
					user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
					reason TEXT NOT NULL,
					solution TEXT NOT NULL,
					future TEXT NOT NULL,
					extra TEXT,
					status appeal_status NOT NULL DEFAULT 'OPEN',
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					reminded_at TIMESTAMPTZ,
					decided_at TIMESTAMPTZ
				);
				CREATE INDEX IF NOT EXISTS idx_appeals_guild_user ON appeals(guild_id, user_id);
			`); err != nil {
				return fmt.Errorf("failed to create appeals table: %w", err)
			}
			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping appeals table...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS appeals`); err != nil {
				return fmt.Errorf("failed to drop appeals table: %w", err)
			}
			return ledger.DropEnum(ctx, tx, "appeal_status")
		})
	})
}
