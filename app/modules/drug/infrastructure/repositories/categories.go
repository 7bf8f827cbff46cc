package drugdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

func (r *Impl) CreateCategory(ctx context.Context, db bun.IDB, category *DrugCategory) error {
	db = r.resolveDB(db)
	if _, err := db.NewInsert().Model(category).Returning("*").Exec(ctx); err != nil {
		return fmt.Errorf("failed to create drug category: %w", err)
	}
	return nil
}

func (r *Impl) GetCategory(ctx context.Context, db bun.IDB, id uuid.UUID) (*DrugCategory, error) {
	db = r.resolveDB(db)
	category := new(DrugCategory)
	if err := db.NewSelect().Model(category).Where("dc.id = ?", id).Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get drug category: %w", err)
	}
	return category, nil
}

func (r *Impl) ListCategories(ctx context.Context, db bun.IDB) ([]*DrugCategory, error) {
	db = r.resolveDB(db)
	var categories []*DrugCategory
	if err := db.NewSelect().Model(&categories).OrderExpr("dc.name ASC, dc.type ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list drug categories: %w", err)
	}
	return categories, nil
}

// DeleteCategory removes a category and, by cascade, its associations.
func (r *Impl) DeleteCategory(ctx context.Context, db bun.IDB, id uuid.UUID) error {
	db = r.resolveDB(db)
	q := db.NewDelete().Model((*DrugCategory)(nil)).Where("id = ?", id)
	return execAffecting(ctx, q, "delete drug category")
}

func (r *Impl) ListCategoryDrugs(ctx context.Context, db bun.IDB, categoryID uuid.UUID) ([]*Drug, error) {
	db = r.resolveDB(db)
	var drugs []*Drug
	err := db.NewSelect().
		Model(&drugs).
		Join("JOIN drug_category_drugs AS dcd ON dcd.drug_id = d.id").
		Where("dcd.drug_category_id = ?", categoryID).
		OrderExpr("d.created_at ASC, d.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list category drugs: %w", err)
	}
	return drugs, nil
}

func (r *Impl) ListDrugCategories(ctx context.Context, db bun.IDB, drugID uuid.UUID) ([]*DrugCategory, error) {
	db = r.resolveDB(db)
	var categories []*DrugCategory
	err := db.NewSelect().
		Model(&categories).
		Join("JOIN drug_category_drugs AS dcd ON dcd.drug_category_id = dc.id").
		Where("dcd.drug_id = ?", drugID).
		OrderExpr("dc.name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list drug categories: %w", err)
	}
	return categories, nil
}

func (r *Impl) AssociationExists(ctx context.Context, db bun.IDB, drugID, categoryID uuid.UUID) (bool, error) {
	db = r.resolveDB(db)
	exists, err := db.NewSelect().
		Model((*DrugCategoryDrug)(nil)).
		Where("dcd.drug_id = ? AND dcd.drug_category_id = ?", drugID, categoryID).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check drug category association: %w", err)
	}
	return exists, nil
}

func (r *Impl) Associate(ctx context.Context, db bun.IDB, drugID, categoryID uuid.UUID) error {
	db = r.resolveDB(db)
	link := &DrugCategoryDrug{DrugID: drugID, DrugCategoryID: categoryID}
	if _, err := db.NewInsert().Model(link).Exec(ctx); err != nil {
		return fmt.Errorf("failed to associate drug with category: %w", err)
	}
	return nil
}

// Disassociate deletes the link if present. A missing link is not an error.
func (r *Impl) Disassociate(ctx context.Context, db bun.IDB, drugID, categoryID uuid.UUID) error {
	db = r.resolveDB(db)
	_, err := db.NewDelete().
		Model((*DrugCategoryDrug)(nil)).
		Where("drug_id = ? AND drug_category_id = ?", drugID, categoryID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to disassociate drug from category: %w", err)
	}
	return nil
}
