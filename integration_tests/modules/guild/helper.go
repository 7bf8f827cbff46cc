package guildintegration

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tripsit/tripsit-api/app/modules/guild"
	guildservice "github.com/tripsit/tripsit-api/app/modules/guild/application"
	guilddb "github.com/tripsit/tripsit-api/app/modules/guild/infrastructure/repositories"
	"github.com/tripsit/tripsit-api/app/modules/user"
	userservice "github.com/tripsit/tripsit-api/app/modules/user/application"
	"github.com/tripsit/tripsit-api/integration_tests/testutils"
	"github.com/tripsit/tripsit-api/internal/feeds"
)

type testDeps struct {
	env   *testutils.TestEnvironment
	svc   guildservice.Service
	users userservice.Service
	gen   *testutils.TestDataGenerator
	feed  *feedServer
}

// feedServer serves an RSS document whose newest guid can be changed.
type feedServer struct {
	URL    string
	latest atomic.Value
}

func newFeedServer(t *testing.T) *feedServer {
	t.Helper()
	fs := &feedServer{}
	fs.latest.Store("post-1")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><title>TripSit News</title>
<item><title>Latest</title><guid>%s</guid></item>
</channel></rss>`, fs.latest.Load().(string))
	}))
	t.Cleanup(srv.Close)
	fs.URL = srv.URL + "/feed.xml"
	return fs
}

func setup(t *testing.T) testDeps {
	t.Helper()
	env := testutils.GetTestEnvironment(t)
	gen := testutils.NewTestDataGenerator()
	t.Logf("data seed %d", gen.Seed())

	return testDeps{
		env:   env,
		svc:   guild.NewGuildModule(env.Ctx, env.Obs, env.DB, feeds.NewFetcher(nil)).GuildService,
		users: user.NewUserModule(env.Ctx, env.Obs, env.DB, nil).UserService,
		gen:   gen,
		feed:  newFeedServer(t),
	}
}

func (d testDeps) createGuild(t *testing.T) *guilddb.Guild {
	t.Helper()
	g, err := d.svc.UpsertGuild(d.env.Ctx, d.gen.GuildInput())
	require.NoError(t, err)
	return g
}
