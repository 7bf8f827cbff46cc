package drugdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

func (r *Impl) CreateArticle(ctx context.Context, db bun.IDB, article *DrugArticle) error {
	db = r.resolveDB(db)
	if _, err := db.NewInsert().Model(article).Returning("*").Exec(ctx); err != nil {
		return fmt.Errorf("failed to create drug article: %w", err)
	}
	return nil
}

func (r *Impl) GetArticle(ctx context.Context, db bun.IDB, id uuid.UUID) (*DrugArticle, error) {
	db = r.resolveDB(db)
	article := new(DrugArticle)
	if err := db.NewSelect().Model(article).Where("da.id = ?", id).Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get drug article: %w", err)
	}
	return article, nil
}

func (r *Impl) ListArticles(ctx context.Context, db bun.IDB, drugID uuid.UUID) ([]*DrugArticle, error) {
	db = r.resolveDB(db)
	var articles []*DrugArticle
	err := db.NewSelect().
		Model(&articles).
		Where("da.drug_id = ?", drugID).
		OrderExpr("da.created_at ASC, da.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list drug articles: %w", err)
	}
	return articles, nil
}

// UpdateArticle writes the editable columns and stamps last_modified_at.
func (r *Impl) UpdateArticle(ctx context.Context, db bun.IDB, article *DrugArticle) error {
	db = r.resolveDB(db)
	q := db.NewUpdate().
		Model(article).
		Column("url", "title", "description", "published_at", "last_modified_by").
		Set("last_modified_at = NOW()").
		WherePK().
		Returning("last_modified_at")
	return execAffecting(ctx, q, "update drug article")
}

func (r *Impl) DeleteArticle(ctx context.Context, db bun.IDB, id uuid.UUID) error {
	db = r.resolveDB(db)
	q := db.NewDelete().Model((*DrugArticle)(nil)).Where("id = ?", id)
	return execAffecting(ctx, q, "delete drug article")
}
