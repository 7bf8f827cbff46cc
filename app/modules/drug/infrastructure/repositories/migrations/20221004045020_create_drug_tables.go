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
		fmt.Println("Creating drug tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if err := ledger.CreateEnum(ctx, tx, "drug_name_type", drugdomain.Strings(drugdomain.NameTypes)...); err != nil {
				return err
			}
			if err := ledger.CreateEnum(ctx, tx, "drug_roa", drugdomain.Strings(drugdomain.Routes)...); err != nil {
				return err
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS drugs (
					id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					summary TEXT,
					psychonaut_wiki_url TEXT,
					erowid_experiences_url TEXT,
					last_updated_by UUID NOT NULL REFERENCES users(id),
					updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
				CREATE INDEX IF NOT EXISTS idx_drugs_created_at ON drugs(created_at, id);
			`); err != nil {
				return fmt.Errorf("failed to create drugs table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS drug_names (
					id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					drug_id UUID NOT NULL REFERENCES drugs(id) ON DELETE CASCADE,
					name TEXT NOT NULL,
					is_default BOOLEAN NOT NULL DEFAULT FALSE,
					type drug_name_type NOT NULL
				);
				CREATE INDEX IF NOT EXISTS idx_drug_names_drug_id ON drug_names(drug_id);
				CREATE INDEX IF NOT EXISTS idx_drug_names_lower_name ON drug_names(LOWER(name));
			`); err != nil {
				return fmt.Errorf("failed to create drug_names table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS drug_articles (
					id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					drug_id UUID NOT NULL REFERENCES drugs(id) ON DELETE CASCADE,
					url VARCHAR(2048) NOT NULL,
					title TEXT NOT NULL,
					description TEXT,
					published_at TIMESTAMPTZ,
					last_modified_by UUID NOT NULL REFERENCES users(id),
					last_modified_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					posted_by UUID NOT NULL REFERENCES users(id),
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
				CREATE INDEX IF NOT EXISTS idx_drug_articles_drug_id ON drug_articles(drug_id);
			`); err != nil {
				return fmt.Errorf("failed to create drug_articles table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS drug_variants (
					id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					drug_id UUID NOT NULL REFERENCES drugs(id) ON DELETE CASCADE,
					name TEXT,
					description TEXT,
					is_default BOOLEAN NOT NULL DEFAULT FALSE,
					last_updated_by UUID NOT NULL REFERENCES users(id),
					updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
				CREATE INDEX IF NOT EXISTS idx_drug_variants_drug_id ON drug_variants(drug_id);
			`); err != nil {
				return fmt.Errorf("failed to create drug_variants table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS drug_variant_roas (
					id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					drug_variant_id UUID NOT NULL REFERENCES drug_variants(id) ON DELETE CASCADE,
					route drug_roa NOT NULL,
					dose_threshold DOUBLE PRECISION,
					dose_light DOUBLE PRECISION,
					dose_common DOUBLE PRECISION,
					dose_strong DOUBLE PRECISION,
					dose_heavy DOUBLE PRECISION,
					dose_warning TEXT,
					duration_total_min DOUBLE PRECISION,
					duration_total_max DOUBLE PRECISION,
					duration_onset_min DOUBLE PRECISION,
					duration_onset_max DOUBLE PRECISION,
					duration_comeup_min DOUBLE PRECISION,
					duration_comeup_max DOUBLE PRECISION,
					duration_peak_min DOUBLE PRECISION,
					duration_peak_max DOUBLE PRECISION,
					duration_offset_min DOUBLE PRECISION,
					duration_offset_max DOUBLE PRECISION,
					duration_after_effects_min DOUBLE PRECISION,
					duration_after_effects_max DOUBLE PRECISION
				);
				CREATE INDEX IF NOT EXISTS idx_drug_variant_roas_variant_id ON drug_variant_roas(drug_variant_id);
			`); err != nil {
				return fmt.Errorf("failed to create drug_variant_roas table: %w", err)
			}

			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping drug tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				DROP TABLE IF EXISTS drug_variant_roas;
				DROP TABLE IF EXISTS drug_variants;
				DROP TABLE IF EXISTS drug_articles;
				DROP TABLE IF EXISTS drug_names;
				DROP TABLE IF EXISTS drugs;
			`); err != nil {
				return fmt.Errorf("failed to drop drug tables: %w", err)
			}
			if err := ledger.DropEnum(ctx, tx, "drug_roa"); err != nil {
				return err
			}
			return ledger.DropEnum(ctx, tx, "drug_name_type")
		})
	})
}
