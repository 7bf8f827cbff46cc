package drugintegration

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/tripsit/tripsit-api/app/modules/drug"
	drugservice "github.com/tripsit/tripsit-api/app/modules/drug/application"
	drugdb "github.com/tripsit/tripsit-api/app/modules/drug/infrastructure/repositories"
	"github.com/tripsit/tripsit-api/app/modules/user"
	"github.com/tripsit/tripsit-api/integration_tests/testutils"
)

type testDeps struct {
	env     *testutils.TestEnvironment
	service drugservice.Service
	gen     *testutils.TestDataGenerator
	editor  uuid.UUID
}

// setup also creates the user recorded as last editor on every write.
func setup(t *testing.T) testDeps {
	t.Helper()
	env := testutils.GetTestEnvironment(t)
	gen := testutils.NewTestDataGenerator()
	t.Logf("data seed %d", gen.Seed())

	users := user.NewUserModule(env.Ctx, env.Obs, env.DB, nil).UserService
	editor, err := users.CreateUser(env.Ctx, gen.UserInput())
	require.NoError(t, err)

	return testDeps{
		env:     env,
		service: drug.NewDrugModule(env.Ctx, env.Obs, env.DB).DrugService,
		gen:     gen,
		editor:  editor.ID,
	}
}

func (d testDeps) createDrug(t *testing.T) *drugdb.Drug {
	t.Helper()
	in := d.gen.DrugInput()
	in.LastUpdatedBy = d.editor
	created, err := d.service.CreateDrug(d.env.Ctx, in)
	require.NoError(t, err)
	return created
}

func defaults(names []*drugdb.DrugName) []string {
	var out []string
	for _, n := range names {
		if n.IsDefault {
			out = append(out, n.Name)
		}
	}
	return out
}
