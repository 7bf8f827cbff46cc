package drugintegration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	drugservice "github.com/tripsit/tripsit-api/app/modules/drug/application"
	drugdomain "github.com/tripsit/tripsit-api/app/modules/drug/domain"
)

func TestCategoryAssociation(t *testing.T) {
	deps := setup(t)
	d := deps.createDrug(t)

	category, err := deps.service.CreateDrugCategory(deps.env.Ctx, drugservice.CreateCategoryInput{
		Name: "Entactogens",
		Type: drugdomain.CategoryPsychoactive,
	})
	require.NoError(t, err)

	_, err = deps.service.CreateDrugCategory(deps.env.Ctx, drugservice.CreateCategoryInput{
		Name: "Entactogens",
		Type: drugdomain.CategoryPsychoactive,
	})
	assert.ErrorIs(t, err, drugservice.ErrDuplicateCategory)

	_, err = deps.service.AssociateDrugWithCategory(deps.env.Ctx, d.ID, category.ID)
	require.NoError(t, err)

	_, err = deps.service.AssociateDrugWithCategory(deps.env.Ctx, d.ID, category.ID)
	assert.ErrorIs(t, err, drugservice.ErrAlreadyAssociated)

	members, err := deps.service.ListCategoryDrugs(deps.env.Ctx, category.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, d.ID, members[0].ID)

	_, err = deps.service.DisassociateDrugFromCategory(deps.env.Ctx, d.ID, category.ID)
	require.NoError(t, err)

	members, err = deps.service.ListCategoryDrugs(deps.env.Ctx, category.ID)
	require.NoError(t, err)
	assert.Empty(t, members)

	got, err := deps.service.GetDrugCategory(deps.env.Ctx, category.ID)
	require.NoError(t, err)
	assert.Equal(t, "Entactogens", got.Name)
	assert.Equal(t, drugdomain.CategoryPsychoactive, got.Type)

	require.NoError(t, deps.service.DeleteDrugCategory(deps.env.Ctx, category.ID))
	_, err = deps.service.ListCategoryDrugs(deps.env.Ctx, category.ID)
	assert.ErrorIs(t, err, drugservice.ErrCategoryNotFound)
	_, err = deps.service.GetDrugCategory(deps.env.Ctx, category.ID)
	assert.ErrorIs(t, err, drugservice.ErrCategoryNotFound)
}

func TestListDrugCategoriesByName(t *testing.T) {
	deps := setup(t)
	for _, in := range []drugservice.CreateCategoryInput{
		{Name: "Stimulants", Type: drugdomain.CategoryCommon},
		{Name: "Deliriants", Type: drugdomain.CategoryPsychoactive},
		{Name: "Tryptamines", Type: drugdomain.CategoryChemical},
		{Name: "Benzodiazepines", Type: drugdomain.CategoryChemical},
	} {
		_, err := deps.service.CreateDrugCategory(deps.env.Ctx, in)
		require.NoError(t, err)
	}

	categories, err := deps.service.ListDrugCategories(deps.env.Ctx)
	require.NoError(t, err)
	var names []string
	for _, c := range categories {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Benzodiazepines", "Deliriants", "Stimulants", "Tryptamines"}, names)
}
