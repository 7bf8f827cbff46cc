package drugdb

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// DrugFilter narrows ListDrugs. Name matches any of a drug's names, ignoring
// case.
type DrugFilter struct {
	ID     *uuid.UUID
	Name   *string
	Offset int
	Limit  int
}

// Repository is the drug reference store. Methods take an optional bun.IDB so
// services can run them inside a transaction; nil uses the repository's handle.
type Repository interface {
	CreateDrug(ctx context.Context, db bun.IDB, drug *Drug) error
	GetDrug(ctx context.Context, db bun.IDB, id uuid.UUID) (*Drug, error)
	GetDrugForUpdate(ctx context.Context, db bun.IDB, id uuid.UUID) (*Drug, error)
	DrugExists(ctx context.Context, db bun.IDB, id uuid.UUID) (bool, error)
	ListDrugs(ctx context.Context, db bun.IDB, filter DrugFilter) ([]*Drug, error)
	UpdateDrug(ctx context.Context, db bun.IDB, drug *Drug) error
	DeleteDrug(ctx context.Context, db bun.IDB, id uuid.UUID) error

	CreateName(ctx context.Context, db bun.IDB, name *DrugName) error
	GetName(ctx context.Context, db bun.IDB, id uuid.UUID) (*DrugName, error)
	ListNames(ctx context.Context, db bun.IDB, drugID uuid.UUID) ([]*DrugName, error)
	UpdateName(ctx context.Context, db bun.IDB, name *DrugName) error
	SetDefaultName(ctx context.Context, db bun.IDB, drugID, nameID uuid.UUID) error
	DeleteName(ctx context.Context, db bun.IDB, id uuid.UUID) error

	CreateArticle(ctx context.Context, db bun.IDB, article *DrugArticle) error
	GetArticle(ctx context.Context, db bun.IDB, id uuid.UUID) (*DrugArticle, error)
	ListArticles(ctx context.Context, db bun.IDB, drugID uuid.UUID) ([]*DrugArticle, error)
	UpdateArticle(ctx context.Context, db bun.IDB, article *DrugArticle) error
	DeleteArticle(ctx context.Context, db bun.IDB, id uuid.UUID) error

	CreateVariant(ctx context.Context, db bun.IDB, variant *DrugVariant) error
	GetVariant(ctx context.Context, db bun.IDB, id uuid.UUID) (*DrugVariant, error)
	UpdateVariant(ctx context.Context, db bun.IDB, variant *DrugVariant) error
	DeleteVariant(ctx context.Context, db bun.IDB, id uuid.UUID) error

	CreateRoa(ctx context.Context, db bun.IDB, roa *DrugVariantRoa) error
	GetRoa(ctx context.Context, db bun.IDB, id uuid.UUID) (*DrugVariantRoa, error)
	UpdateRoa(ctx context.Context, db bun.IDB, roa *DrugVariantRoa) error
	DeleteRoa(ctx context.Context, db bun.IDB, id uuid.UUID) error

	CreateCategory(ctx context.Context, db bun.IDB, category *DrugCategory) error
	GetCategory(ctx context.Context, db bun.IDB, id uuid.UUID) (*DrugCategory, error)
	ListCategories(ctx context.Context, db bun.IDB) ([]*DrugCategory, error)
	DeleteCategory(ctx context.Context, db bun.IDB, id uuid.UUID) error
	ListCategoryDrugs(ctx context.Context, db bun.IDB, categoryID uuid.UUID) ([]*Drug, error)
	ListDrugCategories(ctx context.Context, db bun.IDB, drugID uuid.UUID) ([]*DrugCategory, error)
	AssociationExists(ctx context.Context, db bun.IDB, drugID, categoryID uuid.UUID) (bool, error)
	Associate(ctx context.Context, db bun.IDB, drugID, categoryID uuid.UUID) error
	Disassociate(ctx context.Context, db bun.IDB, drugID, categoryID uuid.UUID) error
}
