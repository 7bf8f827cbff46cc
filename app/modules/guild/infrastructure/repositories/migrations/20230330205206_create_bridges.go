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
		fmt.Println("Creating bridges table...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if err := ledger.CreateEnum(ctx, tx, "bridge_status", guilddomain.Strings(guilddomain.BridgeStatuses)...); err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS bridges (
					id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					internal_channel VARCHAR(20) NOT NULL,
					internal_webhook TEXT NOT NULL,
					status bridge_status NOT NULL DEFAULT 'PENDING',
					external_guild VARCHAR(20) NOT NULL,
					external_channel VARCHAR(20) NOT NULL,
					external_webhook TEXT,
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					CONSTRAINT bridges_channel_pair_key UNIQUE (internal_channel, external_channel)
				);
				CREATE INDEX IF NOT EXISTS idx_bridges_external_channel ON bridges(external_channel);
			`); err != nil {
				return fmt.Errorf("failed to create bridges table: %w", err)
			}
			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping bridges table...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS bridges`); err != nil {
				return fmt.Errorf("failed to drop bridges table: %w", err)
			}
			return ledger.DropEnum(ctx, tx, "bridge_status")
		})
	})
}
