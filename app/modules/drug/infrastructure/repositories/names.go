package drugdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

func (r *Impl) CreateName(ctx context.Context, db bun.IDB, name *DrugName) error {
	db = r.resolveDB(db)
	if _, err := db.NewInsert().Model(name).Returning("*").Exec(ctx); err != nil {
		return fmt.Errorf("failed to create drug name: %w", err)
	}
	return nil
}

func (r *Impl) GetName(ctx context.Context, db bun.IDB, id uuid.UUID) (*DrugName, error) {
	db = r.resolveDB(db)
	name := new(DrugName)
	if err := db.NewSelect().Model(name).Where("dn.id = ?", id).Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get drug name: %w", err)
	}
	return name, nil
}

// ListNames returns the drug's names, default first.
func (r *Impl) ListNames(ctx context.Context, db bun.IDB, drugID uuid.UUID) ([]*DrugName, error) {
	db = r.resolveDB(db)
	var names []*DrugName
	err := db.NewSelect().
		Model(&names).
		Where("dn.drug_id = ?", drugID).
		OrderExpr("dn.is_default DESC, dn.name ASC, dn.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list drug names: %w", err)
	}
	return names, nil
}

func (r *Impl) UpdateName(ctx context.Context, db bun.IDB, name *DrugName) error {
	db = r.resolveDB(db)
	q := db.NewUpdate().Model(name).Column("name", "type").WherePK()
	return execAffecting(ctx, q, "update drug name")
}

// SetDefaultName flips is_default on every name of the drug in one statement,
// so the target becomes the only default.
func (r *Impl) SetDefaultName(ctx context.Context, db bun.IDB, drugID, nameID uuid.UUID) error {
	db = r.resolveDB(db)
	q := db.NewUpdate().
		Model((*DrugName)(nil)).
		Set("is_default = (id = ?)", nameID).
		Where("drug_id = ?", drugID)
	return execAffecting(ctx, q, "set default drug name")
}

func (r *Impl) DeleteName(ctx context.Context, db bun.IDB, id uuid.UUID) error {
	db = r.resolveDB(db)
	q := db.NewDelete().Model((*DrugName)(nil)).Where("id = ?", id)
	return execAffecting(ctx, q, "delete drug name")
}
