package drugdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

const (
	defaultPageSize = 50
	maxPageSize     = 500
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

func pageSize(limit int) int {
	switch {
	case limit <= 0:
		return defaultPageSize
	case limit > maxPageSize:
		return maxPageSize
	default:
		return limit
	}
}

func (r *Impl) CreateDrug(ctx context.Context, db bun.IDB, drug *Drug) error {
	db = r.resolveDB(db)
	if _, err := db.NewInsert().Model(drug).Returning("*").Exec(ctx); err != nil {
		return fmt.Errorf("failed to create drug: %w", err)
	}
	return nil
}

// GetDrug loads a drug with its names, articles, variants and their ROAs.
func (r *Impl) GetDrug(ctx context.Context, db bun.IDB, id uuid.UUID) (*Drug, error) {
	db = r.resolveDB(db)
	drug := new(Drug)
	err := db.NewSelect().
		Model(drug).
		Relation("Names", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("dn.is_default DESC, dn.name ASC")
		}).
		Relation("Articles", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("da.created_at ASC, da.id ASC")
		}).
		Relation("Variants", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("dv.created_at ASC, dv.id ASC")
		}).
		Relation("Variants.Roas").
		Where("d.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get drug: %w", err)
	}
	return drug, nil
}

// GetDrugForUpdate locks the drug row without loading children.
func (r *Impl) GetDrugForUpdate(ctx context.Context, db bun.IDB, id uuid.UUID) (*Drug, error) {
	db = r.resolveDB(db)
	drug := new(Drug)
	if err := db.NewSelect().Model(drug).Where("d.id = ?", id).For("UPDATE").Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock drug: %w", err)
	}
	return drug, nil
}

func (r *Impl) DrugExists(ctx context.Context, db bun.IDB, id uuid.UUID) (bool, error) {
	db = r.resolveDB(db)
	exists, err := db.NewSelect().Model((*Drug)(nil)).Where("d.id = ?", id).Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check drug: %w", err)
	}
	return exists, nil
}

// ListDrugs pages through drugs ordered by creation time then id, so that
// overlapping pages agree on row positions.
func (r *Impl) ListDrugs(ctx context.Context, db bun.IDB, filter DrugFilter) ([]*Drug, error) {
	db = r.resolveDB(db)
	var drugs []*Drug
	q := db.NewSelect().
		Model(&drugs).
		Relation("Names", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("dn.is_default DESC, dn.name ASC")
		})

	if filter.ID != nil {
		q = q.Where("d.id = ?", *filter.ID)
	}
	if filter.Name != nil {
		q = q.Where("EXISTS (SELECT 1 FROM drug_names AS n WHERE n.drug_id = d.id AND LOWER(n.name) = LOWER(?))", *filter.Name)
	}

	err := q.OrderExpr("d.created_at ASC, d.id ASC").
		Offset(max(filter.Offset, 0)).
		Limit(pageSize(filter.Limit)).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list drugs: %w", err)
	}
	return drugs, nil
}

// UpdateDrug writes the drug's own columns and bumps updated_at.
func (r *Impl) UpdateDrug(ctx context.Context, db bun.IDB, drug *Drug) error {
	db = r.resolveDB(db)
	q := db.NewUpdate().
		Model(drug).
		Column("summary", "psychonaut_wiki_url", "erowid_experiences_url", "last_updated_by").
		Set("updated_at = NOW()").
		WherePK().
		Returning("updated_at")
	return execAffecting(ctx, q, "update drug")
}

// DeleteDrug removes a drug; names, articles, variants and ROAs cascade.
func (r *Impl) DeleteDrug(ctx context.Context, db bun.IDB, id uuid.UUID) error {
	db = r.resolveDB(db)
	q := db.NewDelete().Model((*Drug)(nil)).Where("id = ?", id)
	return execAffecting(ctx, q, "delete drug")
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
		return fmt.Errorf("failed to get rows affected for %s: %w", what, err)
	}
	if n == 0 {
		return ErrNoRowsAffected
	}
	return nil
}
