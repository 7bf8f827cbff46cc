package drugservice

import (
	"context"

	"github.com/google/uuid"
	drugdb "github.com/tripsit/tripsit-api/app/modules/drug/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Drug Repo
// ------------------------

type FakeDrugRepo struct {
	trace []string

	CreateDrugFunc         func(ctx context.Context, db bun.IDB, drug *drugdb.Drug) error
	GetDrugFunc            func(ctx context.Context, db bun.IDB, id uuid.UUID) (*drugdb.Drug, error)
	GetDrugForUpdateFunc   func(ctx context.Context, db bun.IDB, id uuid.UUID) (*drugdb.Drug, error)
	DrugExistsFunc         func(ctx context.Context, db bun.IDB, id uuid.UUID) (bool, error)
	ListDrugsFunc          func(ctx context.Context, db bun.IDB, filter drugdb.DrugFilter) ([]*drugdb.Drug, error)
	UpdateDrugFunc         func(ctx context.Context, db bun.IDB, drug *drugdb.Drug) error
	DeleteDrugFunc         func(ctx context.Context, db bun.IDB, id uuid.UUID) error
	CreateNameFunc         func(ctx context.Context, db bun.IDB, name *drugdb.DrugName) error
	GetNameFunc            func(ctx context.Context, db bun.IDB, id uuid.UUID) (*drugdb.DrugName, error)
	ListNamesFunc          func(ctx context.Context, db bun.IDB, drugID uuid.UUID) ([]*drugdb.DrugName, error)
	UpdateNameFunc         func(ctx context.Context, db bun.IDB, name *drugdb.DrugName) error
	SetDefaultNameFunc     func(ctx context.Context, db bun.IDB, drugID, nameID uuid.UUID) error
	DeleteNameFunc         func(ctx context.Context, db bun.IDB, id uuid.UUID) error
	CreateArticleFunc      func(ctx context.Context, db bun.IDB, article *drugdb.DrugArticle) error
	GetArticleFunc         func(ctx context.Context, db bun.IDB, id uuid.UUID) (*drugdb.DrugArticle, error)
	ListArticlesFunc       func(ctx context.Context, db bun.IDB, drugID uuid.UUID) ([]*drugdb.DrugArticle, error)
	UpdateArticleFunc      func(ctx context.Context, db bun.IDB, article *drugdb.DrugArticle) error
	DeleteArticleFunc      func(ctx context.Context, db bun.IDB, id uuid.UUID) error
	CreateVariantFunc      func(ctx context.Context, db bun.IDB, variant *drugdb.DrugVariant) error
	GetVariantFunc         func(ctx context.Context, db bun.IDB, id uuid.UUID) (*drugdb.DrugVariant, error)
	UpdateVariantFunc      func(ctx context.Context, db bun.IDB, variant *drugdb.DrugVariant) error
	DeleteVariantFunc      func(ctx context.Context, db bun.IDB, id uuid.UUID) error
	CreateRoaFunc          func(ctx context.Context, db bun.IDB, roa *drugdb.DrugVariantRoa) error
	GetRoaFunc             func(ctx context.Context, db bun.IDB, id uuid.UUID) (*drugdb.DrugVariantRoa, error)
	UpdateRoaFunc          func(ctx context.Context, db bun.IDB, roa *drugdb.DrugVariantRoa) error
	DeleteRoaFunc          func(ctx context.Context, db bun.IDB, id uuid.UUID) error
	CreateCategoryFunc     func(ctx context.Context, db bun.IDB, category *drugdb.DrugCategory) error
	GetCategoryFunc        func(ctx context.Context, db bun.IDB, id uuid.UUID) (*drugdb.DrugCategory, error)
	ListCategoriesFunc     func(ctx context.Context, db bun.IDB) ([]*drugdb.DrugCategory, error)
	DeleteCategoryFunc     func(ctx context.Context, db bun.IDB, id uuid.UUID) error
	ListCategoryDrugsFunc  func(ctx context.Context, db bun.IDB, categoryID uuid.UUID) ([]*drugdb.Drug, error)
	ListDrugCategoriesFunc func(ctx context.Context, db bun.IDB, drugID uuid.UUID) ([]*drugdb.DrugCategory, error)
	AssociationExistsFunc  func(ctx context.Context, db bun.IDB, drugID, categoryID uuid.UUID) (bool, error)
	AssociateFunc          func(ctx context.Context, db bun.IDB, drugID, categoryID uuid.UUID) error
	DisassociateFunc       func(ctx context.Context, db bun.IDB, drugID, categoryID uuid.UUID) error
}

func NewFakeDrugRepo() *FakeDrugRepo {
	return &FakeDrugRepo{trace: []string{}}
}

func (f *FakeDrugRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeDrugRepo) Trace() []string {
	return f.trace
}

// --- Repository Interface Implementation ---

func (f *FakeDrugRepo) CreateDrug(ctx context.Context, db bun.IDB, drug *drugdb.Drug) error {
	f.record("CreateDrug")
	if f.CreateDrugFunc != nil {
		return f.CreateDrugFunc(ctx, db, drug)
	}
	return nil
}

func (f *FakeDrugRepo) GetDrug(ctx context.Context, db bun.IDB, id uuid.UUID) (*drugdb.Drug, error) {
	f.record("GetDrug")
	if f.GetDrugFunc != nil {
		return f.GetDrugFunc(ctx, db, id)
	}
	return nil, drugdb.ErrNotFound
}

func (f *FakeDrugRepo) GetDrugForUpdate(ctx context.Context, db bun.IDB, id uuid.UUID) (*drugdb.Drug, error) {
	f.record("GetDrugForUpdate")
	if f.GetDrugForUpdateFunc != nil {
		return f.GetDrugForUpdateFunc(ctx, db, id)
	}
	return nil, drugdb.ErrNotFound
}

func (f *FakeDrugRepo) DrugExists(ctx context.Context, db bun.IDB, id uuid.UUID) (bool, error) {
	f.record("DrugExists")
	if f.DrugExistsFunc != nil {
		return f.DrugExistsFunc(ctx, db, id)
	}
	return false, nil
}

func (f *FakeDrugRepo) ListDrugs(ctx context.Context, db bun.IDB, filter drugdb.DrugFilter) ([]*drugdb.Drug, error) {
	f.record("ListDrugs")
	if f.ListDrugsFunc != nil {
		return f.ListDrugsFunc(ctx, db, filter)
	}
	return nil, nil
}

func (f *FakeDrugRepo) UpdateDrug(ctx context.Context, db bun.IDB, drug *drugdb.Drug) error {
	f.record("UpdateDrug")
	if f.UpdateDrugFunc != nil {
		return f.UpdateDrugFunc(ctx, db, drug)
	}
	return nil
}

func (f *FakeDrugRepo) DeleteDrug(ctx context.Context, db bun.IDB, id uuid.UUID) error {
	f.record("DeleteDrug")
	if f.DeleteDrugFunc != nil {
		return f.DeleteDrugFunc(ctx, db, id)
	}
	return nil
}

func (f *FakeDrugRepo) CreateName(ctx context.Context, db bun.IDB, name *drugdb.DrugName) error {
	f.record("CreateName")
	if f.CreateNameFunc != nil {
		return f.CreateNameFunc(ctx, db, name)
	}
	return nil
}

func (f *FakeDrugRepo) GetName(ctx context.Context, db bun.IDB, id uuid.UUID) (*drugdb.DrugName, error) {
	f.record("GetName")
	if f.GetNameFunc != nil {
		return f.GetNameFunc(ctx, db, id)
	}
	return nil, drugdb.ErrNotFound
}

func (f *FakeDrugRepo) ListNames(ctx context.Context, db bun.IDB, drugID uuid.UUID) ([]*drugdb.DrugName, error) {
	f.record("ListNames")
	if f.ListNamesFunc != nil {
		return f.ListNamesFunc(ctx, db, drugID)
	}
	return nil, nil
}

func (f *FakeDrugRepo) UpdateName(ctx context.Context, db bun.IDB, name *drugdb.DrugName) error {
	f.record("UpdateName")
	if f.UpdateNameFunc != nil {
		return f.UpdateNameFunc(ctx, db, name)
	}
	return nil
}

func (f *FakeDrugRepo) SetDefaultName(ctx context.Context, db bun.IDB, drugID, nameID uuid.UUID) error {
	f.record("SetDefaultName")
	if f.SetDefaultNameFunc != nil {
		return f.SetDefaultNameFunc(ctx, db, drugID, nameID)
	}
	return nil
}

func (f *FakeDrugRepo) DeleteName(ctx context.Context, db bun.IDB, id uuid.UUID) error {
	f.record("DeleteName")
	if f.DeleteNameFunc != nil {
		return f.DeleteNameFunc(ctx, db, id)
	}
	return nil
}

func (f *FakeDrugRepo) CreateArticle(ctx context.Context, db bun.IDB, article *drugdb.DrugArticle) error {
	f.record("CreateArticle")
	if f.CreateArticleFunc != nil {
		return f.CreateArticleFunc(ctx, db, article)
	}
	return nil
}

func (f *FakeDrugRepo) GetArticle(ctx context.Context, db bun.IDB, id uuid.UUID) (*drugdb.DrugArticle, error) {
	f.record("GetArticle")
	if f.GetArticleFunc != nil {
		return f.GetArticleFunc(ctx, db, id)
	}
	return nil, drugdb.ErrNotFound
}

func (f *FakeDrugRepo) ListArticles(ctx context.Context, db bun.IDB, drugID uuid.UUID) ([]*drugdb.DrugArticle, error) {
	f.record("ListArticles")
	if f.ListArticlesFunc != nil {
		return f.ListArticlesFunc(ctx, db, drugID)
	}
	return nil, nil
}

func (f *FakeDrugRepo) UpdateArticle(ctx context.Context, db bun.IDB, article *drugdb.DrugArticle) error {
	f.record("UpdateArticle")
	if f.UpdateArticleFunc != nil {
		return f.UpdateArticleFunc(ctx, db, article)
	}
	return nil
}

func (f *FakeDrugRepo) DeleteArticle(ctx context.Context, db bun.IDB, id uuid.UUID) error {
	f.record("DeleteArticle")
	if f.DeleteArticleFunc != nil {
		return f.DeleteArticleFunc(ctx, db, id)
	}
	return nil
}

func (f *FakeDrugRepo) CreateVariant(ctx context.Context, db bun.IDB, variant *drugdb.DrugVariant) error {
	f.record("CreateVariant")
	if f.CreateVariantFunc != nil {
		return f.CreateVariantFunc(ctx, db, variant)
	}
	return nil
}

func (f *FakeDrugRepo) GetVariant(ctx context.Context, db bun.IDB, id uuid.UUID) (*drugdb.DrugVariant, error) {
	f.record("GetVariant")
	if f.GetVariantFunc != nil {
		return f.GetVariantFunc(ctx, db, id)
	}
	return nil, drugdb.ErrNotFound
}

func (f *FakeDrugRepo) UpdateVariant(ctx context.Context, db bun.IDB, variant *drugdb.DrugVariant) error {
	f.record("UpdateVariant")
	if f.UpdateVariantFunc != nil {
		return f.UpdateVariantFunc(ctx, db, variant)
	}
	return nil
}

func (f *FakeDrugRepo) DeleteVariant(ctx context.Context, db bun.IDB, id uuid.UUID) error {
	f.record("DeleteVariant")
	if f.DeleteVariantFunc != nil {
		return f.DeleteVariantFunc(ctx, db, id)
	}
	return nil
}

func (f *FakeDrugRepo) CreateRoa(ctx context.Context, db bun.IDB, roa *drugdb.DrugVariantRoa) error {
	f.record("CreateRoa")
	if f.CreateRoaFunc != nil {
		return f.CreateRoaFunc(ctx, db, roa)
	}
	return nil
}

func (f *FakeDrugRepo) GetRoa(ctx context.Context, db bun.IDB, id uuid.UUID) (*drugdb.DrugVariantRoa, error) {
	f.record("GetRoa")
	if f.GetRoaFunc != nil {
		return f.GetRoaFunc(ctx, db, id)
	}
	return nil, drugdb.ErrNotFound
}

func (f *FakeDrugRepo) UpdateRoa(ctx context.Context, db bun.IDB, roa *drugdb.DrugVariantRoa) error {
	f.record("UpdateRoa")
	if f.UpdateRoaFunc != nil {
		return f.UpdateRoaFunc(ctx, db, roa)
	}
	return nil
}

func (f *FakeDrugRepo) DeleteRoa(ctx context.Context, db bun.IDB, id uuid.UUID) error {
	f.record("DeleteRoa")
	if f.DeleteRoaFunc != nil {
		return f.DeleteRoaFunc(ctx, db, id)
	}
	return nil
}

func (f *FakeDrugRepo) CreateCategory(ctx context.Context, db bun.IDB, category *drugdb.DrugCategory) error {
	f.record("CreateCategory")
	if f.CreateCategoryFunc != nil {
		return f.CreateCategoryFunc(ctx, db, category)
	}
	return nil
}

func (f *FakeDrugRepo) GetCategory(ctx context.Context, db bun.IDB, id uuid.UUID) (*drugdb.DrugCategory, error) {
	f.record("GetCategory")
	if f.GetCategoryFunc != nil {
		return f.GetCategoryFunc(ctx, db, id)
	}
	return nil, drugdb.ErrNotFound
}

func (f *FakeDrugRepo) ListCategories(ctx context.Context, db bun.IDB) ([]*drugdb.DrugCategory, error) {
	f.record("ListCategories")
	if f.ListCategoriesFunc != nil {
		return f.ListCategoriesFunc(ctx, db)
	}
	return nil, nil
}

func (f *FakeDrugRepo) DeleteCategory(ctx context.Context, db bun.IDB, id uuid.UUID) error {
	f.record("DeleteCategory")
	if f.DeleteCategoryFunc != nil {
		return f.DeleteCategoryFunc(ctx, db, id)
	}
	return nil
}

func (f *FakeDrugRepo) ListCategoryDrugs(ctx context.Context, db bun.IDB, categoryID uuid.UUID) ([]*drugdb.Drug, error) {
	f.record("ListCategoryDrugs")
	if f.ListCategoryDrugsFunc != nil {
		return f.ListCategoryDrugsFunc(ctx, db, categoryID)
	}
	return nil, nil
}

func (f *FakeDrugRepo) ListDrugCategories(ctx context.Context, db bun.IDB, drugID uuid.UUID) ([]*drugdb.DrugCategory, error) {
	f.record("ListDrugCategories")
	if f.ListDrugCategoriesFunc != nil {
		return f.ListDrugCategoriesFunc(ctx, db, drugID)
	}
	return nil, nil
}

func (f *FakeDrugRepo) AssociationExists(ctx context.Context, db bun.IDB, drugID, categoryID uuid.UUID) (bool, error) {
	f.record("AssociationExists")
	if f.AssociationExistsFunc != nil {
		return f.AssociationExistsFunc(ctx, db, drugID, categoryID)
	}
	return false, nil
}

func (f *FakeDrugRepo) Associate(ctx context.Context, db bun.IDB, drugID, categoryID uuid.UUID) error {
	f.record("Associate")
	if f.AssociateFunc != nil {
		return f.AssociateFunc(ctx, db, drugID, categoryID)
	}
	return nil
}

func (f *FakeDrugRepo) Disassociate(ctx context.Context, db bun.IDB, drugID, categoryID uuid.UUID) error {
	f.record("Disassociate")
	if f.DisassociateFunc != nil {
		return f.DisassociateFunc(ctx, db, drugID, categoryID)
	}
	return nil
}

var _ drugdb.Repository = (*FakeDrugRepo)(nil)
