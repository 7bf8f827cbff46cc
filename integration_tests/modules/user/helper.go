package userintegration

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tripsit/tripsit-api/app/modules/user"
	userservice "github.com/tripsit/tripsit-api/app/modules/user/application"
	userdb "github.com/tripsit/tripsit-api/app/modules/user/infrastructure/repositories"
	"github.com/tripsit/tripsit-api/integration_tests/testutils"
)

type testDeps struct {
	env     *testutils.TestEnvironment
	service userservice.Service
	gen     *testutils.TestDataGenerator
}

func setup(t *testing.T) testDeps {
	t.Helper()
	env := testutils.GetTestEnvironment(t)
	module := user.NewUserModule(env.Ctx, env.Obs, env.DB, nil)
	gen := testutils.NewTestDataGenerator()
	t.Logf("data seed %d", gen.Seed())
	return testDeps{env: env, service: module.UserService, gen: gen}
}

func (d testDeps) createUser(t *testing.T) *userdb.User {
	t.Helper()
	u, err := d.service.CreateUser(d.env.Ctx, d.gen.UserInput())
	require.NoError(t, err)
	return u
}
