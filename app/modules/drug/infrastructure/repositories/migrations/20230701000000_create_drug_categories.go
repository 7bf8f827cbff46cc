package drugmigrations

import (
	"context"
	"fmt"

	drugdomain "github.com/tripsit/tripsit-api/app/modules/drug/domain"
	"github.com/tripsit/tripsit-api/internal/ledger"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating drug category tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if err := ledger.CreateEnum(ctx, tx, "drug_category_type", drugdomain.Strings(drugdomain.CategoryTypes)...); err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS drug_categories (
					id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					name TEXT NOT NULL,
					type drug_category_type NOT NULL,
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					CONSTRAINT drug_categories_name_type_key UNIQUE (name, type)
				);

				CREATE TABLE IF NOT EXISTS drug_category_drugs (
					drug_id UUID NOT NULL REFERENCES drugs(id) ON DELETE CASCADE,
					drug_category_id UUID NOT NULL REFERENCES drug_categories(id) ON DELETE CASCADE,
					PRIMARY KEY (drug_id, drug_category_id)
				);
				CREATE INDEX IF NOT EXISTS idx_drug_category_drugs_category ON drug_category_drugs(drug_category_id);
			`); err != nil {
				return fmt.Errorf("failed to create drug category tables: %w", err)
			}
			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping drug category tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				DROP TABLE IF EXISTS drug_category_drugs;
				DROP TABLE IF EXISTS drug_categories;
			`); err != nil {
				return fmt.Errorf("failed to drop drug category tables: %w", err)
			}
			return ledger.DropEnum(ctx, tx, "drug_category_type")
		})
	})
}
