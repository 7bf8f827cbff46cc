package drugservice

import (
	"context"
	"time"

	"github.com/google/uuid"
	drugdomain "github.com/tripsit/tripsit-api/app/modules/drug/domain"
	drugdb "github.com/tripsit/tripsit-api/app/modules/drug/infrastructure/repositories"
)

// Service is the drug reference API.
type Service interface {
	CreateDrug(ctx context.Context, in CreateDrugInput) (*drugdb.Drug, error)
	GetDrug(ctx context.Context, id uuid.UUID) (*drugdb.Drug, error)
	ListDrugs(ctx context.Context, filter drugdb.DrugFilter) ([]*drugdb.Drug, error)
	UpdateDrug(ctx context.Context, id uuid.UUID, in DrugUpdate) (*drugdb.Drug, error)
	DeleteDrug(ctx context.Context, id uuid.UUID) error

	CreateDrugName(ctx context.Context, in CreateDrugNameInput) (*drugdb.DrugName, error)
	UpdateDrugName(ctx context.Context, id uuid.UUID, in DrugNameUpdate) (*drugdb.DrugName, error)
	SetDefaultDrugName(ctx context.Context, id uuid.UUID) ([]*drugdb.DrugName, error)
	DeleteDrugName(ctx context.Context, id uuid.UUID) error

	CreateDrugArticle(ctx context.Context, in CreateArticleInput) (*drugdb.DrugArticle, error)
	UpdateDrugArticle(ctx context.Context, id uuid.UUID, in ArticleUpdate) (*drugdb.DrugArticle, error)
	DeleteDrugArticle(ctx context.Context, id uuid.UUID) error

	CreateDrugVariant(ctx context.Context, in CreateVariantInput) (*drugdb.DrugVariant, error)
	UpdateDrugVariant(ctx context.Context, id uuid.UUID, in VariantUpdate) (*drugdb.DrugVariant, error)
	DeleteDrugVariant(ctx context.Context, id uuid.UUID) error

	CreateDrugVariantRoa(ctx context.Context, in CreateRoaInput) (*drugdb.DrugVariantRoa, error)
	UpdateDrugVariantRoa(ctx context.Context, id uuid.UUID, in RoaUpdate) (*drugdb.DrugVariantRoa, error)
	DeleteDrugVariantRoa(ctx context.Context, id uuid.UUID) error

	CreateDrugCategory(ctx context.Context, in CreateCategoryInput) (*drugdb.DrugCategory, error)
	GetDrugCategory(ctx context.Context, id uuid.UUID) (*drugdb.DrugCategory, error)
	ListDrugCategories(ctx context.Context) ([]*drugdb.DrugCategory, error)
	DeleteDrugCategory(ctx context.Context, id uuid.UUID) error
	ListCategoryDrugs(ctx context.Context, categoryID uuid.UUID) ([]*drugdb.Drug, error)
	AssociateDrugWithCategory(ctx context.Context, drugID, categoryID uuid.UUID) (*drugdb.Drug, error)
	DisassociateDrugFromCategory(ctx context.Context, drugID, categoryID uuid.UUID) (*drugdb.Drug, error)
}

// CreateDrugInput creates a drug together with its default name.
type CreateDrugInput struct {
	DefaultName          string              `json:"defaultName" validate:"required,max=200"`
	NameType             drugdomain.NameType `json:"nameType" validate:"required"`
	Summary              *string             `json:"summary"`
	PsychonautWikiURL    *string             `json:"psychonautWikiUrl" validate:"omitempty,url"`
	ErowidExperiencesURL *string             `json:"errowidExperiencesUrl" validate:"omitempty,url"`
	LastUpdatedBy        uuid.UUID           `json:"-"`
}

type DrugUpdate struct {
	Summary              *string   `json:"summary"`
	PsychonautWikiURL    *string   `json:"psychonautWikiUrl" validate:"omitempty,url"`
	ErowidExperiencesURL *string   `json:"errowidExperiencesUrl" validate:"omitempty,url"`
	LastUpdatedBy        uuid.UUID `json:"-"`
}

type CreateDrugNameInput struct {
	DrugID    uuid.UUID           `json:"drugId" validate:"required"`
	Name      string              `json:"name" validate:"required,max=200"`
	Type      drugdomain.NameType `json:"type" validate:"required"`
	IsDefault bool                `json:"isDefault"`
}

type DrugNameUpdate struct {
	Name *string              `json:"name" validate:"omitempty,min=1,max=200"`
	Type *drugdomain.NameType `json:"type"`
}

type CreateArticleInput struct {
	DrugID      uuid.UUID  `json:"drugId" validate:"required"`
	URL         string     `json:"url" validate:"required,url,max=2048"`
	Title       string     `json:"title" validate:"required"`
	Description *string    `json:"description"`
	PublishedAt *time.Time `json:"publishedAt"`
	PostedBy    uuid.UUID  `json:"-"`
}

type ArticleUpdate struct {
	URL            *string    `json:"url" validate:"omitempty,url,max=2048"`
	Title          *string    `json:"title" validate:"omitempty,min=1"`
	Description    *string    `json:"description"`
	PublishedAt    *time.Time `json:"publishedAt"`
	LastModifiedBy uuid.UUID  `json:"-"`
}

type CreateVariantInput struct {
	DrugID        uuid.UUID `json:"drugId" validate:"required"`
	Name          *string   `json:"name"`
	Description   *string   `json:"description"`
	IsDefault     bool      `json:"default"`
	LastUpdatedBy uuid.UUID `json:"-"`
}

type VariantUpdate struct {
	Name          *string   `json:"name"`
	Description   *string   `json:"description"`
	IsDefault     *bool     `json:"default"`
	LastUpdatedBy uuid.UUID `json:"-"`
}

// RoaValues carries dose and duration fields. On update, nil leaves the stored
// value unchanged.
type RoaValues struct {
	DoseThreshold *float64 `json:"doseThreshold"`
	DoseLight     *float64 `json:"doseLight"`
	DoseCommon    *float64 `json:"doseCommon"`
	DoseStrong    *float64 `json:"doseStrong"`
	DoseHeavy     *float64 `json:"doseHeavy"`
	DoseWarning   *string  `json:"doseWarning"`

	DurationTotalMin        *float64 `json:"durationTotalMin"`
	DurationTotalMax        *float64 `json:"durationTotalMax"`
	DurationOnsetMin        *float64 `json:"durationOnsetMin"`
	DurationOnsetMax        *float64 `json:"durationOnsetMax"`
	DurationComeupMin       *float64 `json:"durationComeupMin"`
	DurationComeupMax       *float64 `json:"durationComeupMax"`
	DurationPeakMin         *float64 `json:"durationPeakMin"`
	DurationPeakMax         *float64 `json:"durationPeakMax"`
	DurationOffsetMin       *float64 `json:"durationOffsetMin"`
	DurationOffsetMax       *float64 `json:"durationOffsetMax"`
	DurationAfterEffectsMin *float64 `json:"durationAfterEffectsMin"`
	DurationAfterEffectsMax *float64 `json:"durationAfterEffectsMax"`
}

type CreateRoaInput struct {
	DrugVariantID uuid.UUID        `json:"drugVariantId" validate:"required"`
	Route         drugdomain.Route `json:"route" validate:"required"`
	RoaValues
}

type RoaUpdate struct {
	Route *drugdomain.Route `json:"route"`
	RoaValues
}

type CreateCategoryInput struct {
	Name string                  `json:"name" validate:"required,max=200"`
	Type drugdomain.CategoryType `json:"type" validate:"required"`
}
