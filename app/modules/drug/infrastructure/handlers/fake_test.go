package drughandlers

import (
	"context"

	"github.com/google/uuid"
	drugservice "github.com/tripsit/tripsit-api/app/modules/drug/application"
	drugdb "github.com/tripsit/tripsit-api/app/modules/drug/infrastructure/repositories"
)

// FakeDrugService implements drugservice.Service with per-method hooks.
type FakeDrugService struct {
	CreateDrugFunc                   func(ctx context.Context, in drugservice.CreateDrugInput) (*drugdb.Drug, error)
	GetDrugFunc                      func(ctx context.Context, id uuid.UUID) (*drugdb.Drug, error)
	ListDrugsFunc                    func(ctx context.Context, filter drugdb.DrugFilter) ([]*drugdb.Drug, error)
	UpdateDrugFunc                   func(ctx context.Context, id uuid.UUID, in drugservice.DrugUpdate) (*drugdb.Drug, error)
	DeleteDrugFunc                   func(ctx context.Context, id uuid.UUID) error
	CreateDrugNameFunc               func(ctx context.Context, in drugservice.CreateDrugNameInput) (*drugdb.DrugName, error)
	UpdateDrugNameFunc               func(ctx context.Context, id uuid.UUID, in drugservice.DrugNameUpdate) (*drugdb.DrugName, error)
	SetDefaultDrugNameFunc           func(ctx context.Context, id uuid.UUID) ([]*drugdb.DrugName, error)
	DeleteDrugNameFunc               func(ctx context.Context, id uuid.UUID) error
	CreateDrugArticleFunc            func(ctx context.Context, in drugservice.CreateArticleInput) (*drugdb.DrugArticle, error)
	UpdateDrugArticleFunc            func(ctx context.Context, id uuid.UUID, in drugservice.ArticleUpdate) (*drugdb.DrugArticle, error)
	DeleteDrugArticleFunc            func(ctx context.Context, id uuid.UUID) error
	CreateDrugVariantFunc            func(ctx context.Context, in drugservice.CreateVariantInput) (*drugdb.DrugVariant, error)
	UpdateDrugVariantFunc            func(ctx context.Context, id uuid.UUID, in drugservice.VariantUpdate) (*drugdb.DrugVariant, error)
	DeleteDrugVariantFunc            func(ctx context.Context, id uuid.UUID) error
	CreateDrugVariantRoaFunc         func(ctx context.Context, in drugservice.CreateRoaInput) (*drugdb.DrugVariantRoa, error)
	UpdateDrugVariantRoaFunc         func(ctx context.Context, id uuid.UUID, in drugservice.RoaUpdate) (*drugdb.DrugVariantRoa, error)
	DeleteDrugVariantRoaFunc         func(ctx context.Context, id uuid.UUID) error
	CreateDrugCategoryFunc           func(ctx context.Context, in drugservice.CreateCategoryInput) (*drugdb.DrugCategory, error)
	GetDrugCategoryFunc              func(ctx context.Context, id uuid.UUID) (*drugdb.DrugCategory, error)
	ListDrugCategoriesFunc           func(ctx context.Context) ([]*drugdb.DrugCategory, error)
	DeleteDrugCategoryFunc           func(ctx context.Context, id uuid.UUID) error
	ListCategoryDrugsFunc            func(ctx context.Context, categoryID uuid.UUID) ([]*drugdb.Drug, error)
	AssociateDrugWithCategoryFunc    func(ctx context.Context, drugID, categoryID uuid.UUID) (*drugdb.Drug, error)
	DisassociateDrugFromCategoryFunc func(ctx context.Context, drugID, categoryID uuid.UUID) (*drugdb.Drug, error)
}

func (f *FakeDrugService) CreateDrug(ctx context.Context, in drugservice.CreateDrugInput) (*drugdb.Drug, error) {
	if f.CreateDrugFunc != nil {
		return f.CreateDrugFunc(ctx, in)
	}
	return &drugdb.Drug{}, nil
}

func (f *FakeDrugService) GetDrug(ctx context.Context, id uuid.UUID) (*drugdb.Drug, error) {
	if f.GetDrugFunc != nil {
		return f.GetDrugFunc(ctx, id)
	}
	return &drugdb.Drug{}, nil
}

func (f *FakeDrugService) ListDrugs(ctx context.Context, filter drugdb.DrugFilter) ([]*drugdb.Drug, error) {
	if f.ListDrugsFunc != nil {
		return f.ListDrugsFunc(ctx, filter)
	}
	return nil, nil
}

func (f *FakeDrugService) UpdateDrug(ctx context.Context, id uuid.UUID, in drugservice.DrugUpdate) (*drugdb.Drug, error) {
	if f.UpdateDrugFunc != nil {
		return f.UpdateDrugFunc(ctx, id, in)
	}
	return &drugdb.Drug{}, nil
}

func (f *FakeDrugService) DeleteDrug(ctx context.Context, id uuid.UUID) error {
	if f.DeleteDrugFunc != nil {
		return f.DeleteDrugFunc(ctx, id)
	}
	return nil
}

func (f *FakeDrugService) CreateDrugName(ctx context.Context, in drugservice.CreateDrugNameInput) (*drugdb.DrugName, error) {
	if f.CreateDrugNameFunc != nil {
		return f.CreateDrugNameFunc(ctx, in)
	}
	return &drugdb.DrugName{}, nil
}

func (f *FakeDrugService) UpdateDrugName(ctx context.Context, id uuid.UUID, in drugservice.DrugNameUpdate) (*drugdb.DrugName, error) {
	if f.UpdateDrugNameFunc != nil {
		return f.UpdateDrugNameFunc(ctx, id, in)
	}
	return &drugdb.DrugName{}, nil
}

func (f *FakeDrugService) SetDefaultDrugName(ctx context.Context, id uuid.UUID) ([]*drugdb.DrugName, error) {
	if f.SetDefaultDrugNameFunc != nil {
		return f.SetDefaultDrugNameFunc(ctx, id)
	}
	return nil, nil
}

func (f *FakeDrugService) DeleteDrugName(ctx context.Context, id uuid.UUID) error {
	if f.DeleteDrugNameFunc != nil {
		return f.DeleteDrugNameFunc(ctx, id)
	}
	return nil
}

func (f *FakeDrugService) CreateDrugArticle(ctx context.Context, in drugservice.CreateArticleInput) (*drugdb.DrugArticle, error) {
	if f.CreateDrugArticleFunc != nil {
		return f.CreateDrugArticleFunc(ctx, in)
	}
	return &drugdb.DrugArticle{}, nil
}

func (f *FakeDrugService) UpdateDrugArticle(ctx context.Context, id uuid.UUID, in drugservice.ArticleUpdate) (*drugdb.DrugArticle, error) {
	if f.UpdateDrugArticleFunc != nil {
		return f.UpdateDrugArticleFunc(ctx, id, in)
	}
	return &drugdb.DrugArticle{}, nil
}

func (f *FakeDrugService) DeleteDrugArticle(ctx context.Context, id uuid.UUID) error {
	if f.DeleteDrugArticleFunc != nil {
		return f.DeleteDrugArticleFunc(ctx, id)
	}
	return nil
}

func (f *FakeDrugService) CreateDrugVariant(ctx context.Context, in drugservice.CreateVariantInput) (*drugdb.DrugVariant, error) {
	if f.CreateDrugVariantFunc != nil {
		return f.CreateDrugVariantFunc(ctx, in)
	}
	return &drugdb.DrugVariant{}, nil
}

func (f *FakeDrugService) UpdateDrugVariant(ctx context.Context, id uuid.UUID, in drugservice.VariantUpdate) (*drugdb.DrugVariant, error) {
	if f.UpdateDrugVariantFunc != nil {
		return f.UpdateDrugVariantFunc(ctx, id, in)
	}
	return &drugdb.DrugVariant{}, nil
}

func (f *FakeDrugService) DeleteDrugVariant(ctx context.Context, id uuid.UUID) error {
	if f.DeleteDrugVariantFunc != nil {
		return f.DeleteDrugVariantFunc(ctx, id)
	}
	return nil
}

func (f *FakeDrugService) CreateDrugVariantRoa(ctx context.Context, in drugservice.CreateRoaInput) (*drugdb.DrugVariantRoa, error) {
	if f.CreateDrugVariantRoaFunc != nil {
		return f.CreateDrugVariantRoaFunc(ctx, in)
	}
	return &drugdb.DrugVariantRoa{}, nil
}

func (f *FakeDrugService) UpdateDrugVariantRoa(ctx context.Context, id uuid.UUID, in drugservice.RoaUpdate) (*drugdb.DrugVariantRoa, error) {
	if f.UpdateDrugVariantRoaFunc != nil {
		return f.UpdateDrugVariantRoaFunc(ctx, id, in)
	}
	return &drugdb.DrugVariantRoa{}, nil
}

func (f *FakeDrugService) DeleteDrugVariantRoa(ctx context.Context, id uuid.UUID) error {
	if f.DeleteDrugVariantRoaFunc != nil {
		return f.DeleteDrugVariantRoaFunc(ctx, id)
	}
	return nil
}

func (f *FakeDrugService) CreateDrugCategory(ctx context.Context, in drugservice.CreateCategoryInput) (*drugdb.DrugCategory, error) {
	if f.CreateDrugCategoryFunc != nil {
		return f.CreateDrugCategoryFunc(ctx, in)
	}
	return &drugdb.DrugCategory{}, nil
}

func (f *FakeDrugService) GetDrugCategory(ctx context.Context, id uuid.UUID) (*drugdb.DrugCategory, error) {
	if f.GetDrugCategoryFunc != nil {
		return f.GetDrugCategoryFunc(ctx, id)
	}
	return &drugdb.DrugCategory{ID: id}, nil
}

func (f *FakeDrugService) ListDrugCategories(ctx context.Context) ([]*drugdb.DrugCategory, error) {
	if f.ListDrugCategoriesFunc != nil {
		return f.ListDrugCategoriesFunc(ctx)
	}
	return nil, nil
}

func (f *FakeDrugService) DeleteDrugCategory(ctx context.Context, id uuid.UUID) error {
	if f.DeleteDrugCategoryFunc != nil {
		return f.DeleteDrugCategoryFunc(ctx, id)
	}
	return nil
}

func (f *FakeDrugService) ListCategoryDrugs(ctx context.Context, categoryID uuid.UUID) ([]*drugdb.Drug, error) {
	if f.ListCategoryDrugsFunc != nil {
		return f.ListCategoryDrugsFunc(ctx, categoryID)
	}
	return nil, nil
}

func (f *FakeDrugService) AssociateDrugWithCategory(ctx context.Context, drugID, categoryID uuid.UUID) (*drugdb.Drug, error) {
	if f.AssociateDrugWithCategoryFunc != nil {
		return f.AssociateDrugWithCategoryFunc(ctx, drugID, categoryID)
	}
	return &drugdb.Drug{}, nil
}

func (f *FakeDrugService) DisassociateDrugFromCategory(ctx context.Context, drugID, categoryID uuid.UUID) (*drugdb.Drug, error) {
	if f.DisassociateDrugFromCategoryFunc != nil {
		return f.DisassociateDrugFromCategoryFunc(ctx, drugID, categoryID)
	}
	return &drugdb.Drug{}, nil
}

var _ drugservice.Service = (*FakeDrugService)(nil)
