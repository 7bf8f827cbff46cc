package drugdb

import (
	"time"

	"github.com/google/uuid"
	drugdomain "github.com/tripsit/tripsit-api/app/modules/drug/domain"
	"github.com/uptrace/bun"
)

// Drug is a reference entry. Names, articles and variants are owned by it and
// go with it on delete.
type Drug struct {
	bun.BaseModel `bun:"table:drugs,alias:d"`

	ID                   uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Summary              *string   `bun:"summary" json:"summary,omitempty"`
	PsychonautWikiURL    *string   `bun:"psychonaut_wiki_url" json:"psychonautWikiUrl,omitempty"`
	ErowidExperiencesURL *string   `bun:"erowid_experiences_url" json:"errowidExperiencesUrl,omitempty"`
	LastUpdatedBy        uuid.UUID `bun:"last_updated_by,type:uuid,notnull" json:"lastUpdatedBy"`
	UpdatedAt            time.Time `bun:"updated_at,notnull,default:current_timestamp" json:"updatedAt"`
	CreatedAt            time.Time `bun:"created_at,notnull,default:current_timestamp" json:"createdAt"`

	Names    []*DrugName    `bun:"rel:has-many,join:id=drug_id" json:"names,omitempty"`
	Articles []*DrugArticle `bun:"rel:has-many,join:id=drug_id" json:"articles,omitempty"`
	Variants []*DrugVariant `bun:"rel:has-many,join:id=drug_id" json:"variants,omitempty"`
}

type DrugName struct {
	bun.BaseModel `bun:"table:drug_names,alias:dn"`

	ID        uuid.UUID           `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	DrugID    uuid.UUID           `bun:"drug_id,type:uuid,notnull" json:"drugId"`
	Name      string              `bun:"name,notnull" json:"name"`
	IsDefault bool                `bun:"is_default,notnull" json:"isDefault"`
	Type      drugdomain.NameType `bun:"type,notnull" json:"type"`
}

type DrugArticle struct {
	bun.BaseModel `bun:"table:drug_articles,alias:da"`

	ID             uuid.UUID  `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	DrugID         uuid.UUID  `bun:"drug_id,type:uuid,notnull" json:"drugId"`
	URL            string     `bun:"url,notnull" json:"url"`
	Title          string     `bun:"title,notnull" json:"title"`
	Description    *string    `bun:"description" json:"description,omitempty"`
	PublishedAt    *time.Time `bun:"published_at" json:"publishedAt,omitempty"`
	LastModifiedBy uuid.UUID  `bun:"last_modified_by,type:uuid,notnull" json:"lastModifiedBy"`
	LastModifiedAt time.Time  `bun:"last_modified_at,notnull,default:current_timestamp" json:"lastModifiedAt"`
	PostedBy       uuid.UUID  `bun:"posted_by,type:uuid,notnull" json:"postedBy"`
	CreatedAt      time.Time  `bun:"created_at,notnull,default:current_timestamp" json:"createdAt"`
}

type DrugVariant struct {
	bun.BaseModel `bun:"table:drug_variants,alias:dv"`

	ID            uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	DrugID        uuid.UUID `bun:"drug_id,type:uuid,notnull" json:"drugId"`
	Name          *string   `bun:"name" json:"name,omitempty"`
	Description   *string   `bun:"description" json:"description,omitempty"`
	IsDefault     bool      `bun:"is_default,notnull" json:"default"`
	LastUpdatedBy uuid.UUID `bun:"last_updated_by,type:uuid,notnull" json:"lastUpdatedBy"`
	UpdatedAt     time.Time `bun:"updated_at,notnull,default:current_timestamp" json:"updatedAt"`
	CreatedAt     time.Time `bun:"created_at,notnull,default:current_timestamp" json:"createdAt"`

	Roas []*DrugVariantRoa `bun:"rel:has-many,join:id=drug_variant_id" json:"roas,omitempty"`
}

// DrugVariantRoa holds dose and duration ranges for one route. Every numeric
// field is optional.
type DrugVariantRoa struct {
	bun.BaseModel `bun:"table:drug_variant_roas,alias:dvr"`

	ID            uuid.UUID        `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	DrugVariantID uuid.UUID        `bun:"drug_variant_id,type:uuid,notnull" json:"drugVariantId"`
	Route         drugdomain.Route `bun:"route,notnull" json:"route"`

	DoseThreshold *float64 `bun:"dose_threshold" json:"doseThreshold"`
	DoseLight     *float64 `bun:"dose_light" json:"doseLight"`
	DoseCommon    *float64 `bun:"dose_common" json:"doseCommon"`
	DoseStrong    *float64 `bun:"dose_strong" json:"doseStrong"`
	DoseHeavy     *float64 `bun:"dose_heavy" json:"doseHeavy"`
	DoseWarning   *string  `bun:"dose_warning" json:"doseWarning"`

	DurationTotalMin        *float64 `bun:"duration_total_min" json:"durationTotalMin"`
	DurationTotalMax        *float64 `bun:"duration_total_max" json:"durationTotalMax"`
	DurationOnsetMin        *float64 `bun:"duration_onset_min" json:"durationOnsetMin"`
	DurationOnsetMax        *float64 `bun:"duration_onset_max" json:"durationOnsetMax"`
	DurationComeupMin       *float64 `bun:"duration_comeup_min" json:"durationComeupMin"`
	DurationComeupMax       *float64 `bun:"duration_comeup_max" json:"durationComeupMax"`
	DurationPeakMin         *float64 `bun:"duration_peak_min" json:"durationPeakMin"`
	DurationPeakMax         *float64 `bun:"duration_peak_max" json:"durationPeakMax"`
	DurationOffsetMin       *float64 `bun:"duration_offset_min" json:"durationOffsetMin"`
	DurationOffsetMax       *float64 `bun:"duration_offset_max" json:"durationOffsetMax"`
	DurationAfterEffectsMin *float64 `bun:"duration_after_effects_min" json:"durationAfterEffectsMin"`
	DurationAfterEffectsMax *float64 `bun:"duration_after_effects_max" json:"durationAfterEffectsMax"`
}

// Ranges returns the duration pairs for validation.
func (r *DrugVariantRoa) Ranges() []drugdomain.Range {
	return []drugdomain.Range{
		{Field: "durationTotal", Min: r.DurationTotalMin, Max: r.DurationTotalMax},
		{Field: "durationOnset", Min: r.DurationOnsetMin, Max: r.DurationOnsetMax},
		{Field: "durationComeup", Min: r.DurationComeupMin, Max: r.DurationComeupMax},
		{Field: "durationPeak", Min: r.DurationPeakMin, Max: r.DurationPeakMax},
		{Field: "durationOffset", Min: r.DurationOffsetMin, Max: r.DurationOffsetMax},
		{Field: "durationAfterEffects", Min: r.DurationAfterEffectsMin, Max: r.DurationAfterEffectsMax},
	}
}

func (r *DrugVariantRoa) Doses() map[string]*float64 {
	return map[string]*float64{
		"doseThreshold": r.DoseThreshold,
		"doseLight":     r.DoseLight,
		"doseCommon":    r.DoseCommon,
		"doseStrong":    r.DoseStrong,
		"doseHeavy":     r.DoseHeavy,
	}
}

type DrugCategory struct {
	bun.BaseModel `bun:"table:drug_categories,alias:dc"`

	ID        uuid.UUID               `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Name      string                  `bun:"name,notnull" json:"name"`
	Type      drugdomain.CategoryType `bun:"type,notnull" json:"type"`
	CreatedAt time.Time               `bun:"created_at,notnull,default:current_timestamp" json:"createdAt"`
}

// DrugCategoryDrug links a drug to a category.
type DrugCategoryDrug struct {
	bun.BaseModel `bun:"table:drug_category_drugs,alias:dcd"`

	DrugID         uuid.UUID `bun:"drug_id,pk,type:uuid"`
	DrugCategoryID uuid.UUID `bun:"drug_category_id,pk,type:uuid"`
}
