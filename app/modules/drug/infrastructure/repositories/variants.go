package drugdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

func (r *Impl) CreateVariant(ctx context.Context, db bun.IDB, variant *DrugVariant) error {
	db = r.resolveDB(db)
	if _, err := db.NewInsert().Model(variant).Returning("*").Exec(ctx); err != nil {
		return fmt.Errorf("failed to create drug variant: %w", err)
	}
	return nil
}

// GetVariant loads a variant with its ROAs.
func (r *Impl) GetVariant(ctx context.Context, db bun.IDB, id uuid.UUID) (*DrugVariant, error) {
	db = r.resolveDB(db)
	variant := new(DrugVariant)
	err := db.NewSelect().
		Model(variant).
		Relation("Roas", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("dvr.route ASC, dvr.id ASC")
		}).
		Where("dv.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get drug variant: %w", err)
	}
	return variant, nil
}

func (r *Impl) UpdateVariant(ctx context.Context, db bun.IDB, variant *DrugVariant) error {
	db = r.resolveDB(db)
	q := db.NewUpdate().
		Model(variant).
		Column("name", "description", "is_default", "last_updated_by").
		Set("updated_at = NOW()").
		WherePK().
		Returning("updated_at")
	return execAffecting(ctx, q, "update drug variant")
}

// DeleteVariant removes a variant; its ROAs cascade.
func (r *Impl) DeleteVariant(ctx context.Context, db bun.IDB, id uuid.UUID) error {
	db = r.resolveDB(db)
	q := db.NewDelete().Model((*DrugVariant)(nil)).Where("id = ?", id)
	return execAffecting(ctx, q, "delete drug variant")
}

func (r *Impl) CreateRoa(ctx context.Context, db bun.IDB, roa *DrugVariantRoa) error {
	db = r.resolveDB(db)
	if _, err := db.NewInsert().Model(roa).Returning("*").Exec(ctx); err != nil {
		return fmt.Errorf("failed to create drug variant roa: %w", err)
	}
	return nil
}

func (r *Impl) GetRoa(ctx context.Context, db bun.IDB, id uuid.UUID) (*DrugVariantRoa, error) {
	db = r.resolveDB(db)
	roa := new(DrugVariantRoa)
	if err := db.NewSelect().Model(roa).Where("dvr.id = ?", id).Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get drug variant roa: %w", err)
	}
	return roa, nil
}

// UpdateRoa rewrites every column except the keys.
func (r *Impl) UpdateRoa(ctx context.Context, db bun.IDB, roa *DrugVariantRoa) error {
	db = r.resolveDB(db)
	q := db.NewUpdate().
		Model(roa).
		ExcludeColumn("id", "drug_variant_id").
		WherePK()
	return execAffecting(ctx, q, "update drug variant roa")
}

func (r *Impl) DeleteRoa(ctx context.Context, db bun.IDB, id uuid.UUID) error {
	db = r.resolveDB(db)
	q := db.NewDelete().Model((*DrugVariantRoa)(nil)).Where("id = ?", id)
	return execAffecting(ctx, q, "delete drug variant roa")
}
