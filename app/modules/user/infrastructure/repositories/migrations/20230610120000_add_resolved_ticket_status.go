package usermigrations

import (
	"context"
	"fmt"

	"github.com/tripsit/tripsit-api/internal/ledger"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Adding RESOLVED ticket status...")
		return ledger.AddEnumValue(ctx, db, "ticket_status", "RESOLVED")
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Removing RESOLVED ticket status...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `UPDATE user_tickets SET status = 'CLOSED' WHERE status = 'RESOLVED'`); err != nil {
				return fmt.Errorf("failed to move resolved tickets to closed: %w", err)
			}
			return ledger.ReplaceEnum(ctx, tx, "ticket_status",
				[]string{"OPEN", "CLOSED", "BLOCKED", "PAUSED"},
				ledger.EnumColumn{Table: "user_tickets", Column: "status", Default: "OPEN"},
			)
		})
	})
}
