package guild

import (
	"context"

	"github.com/go-chi/chi/v5"
	guildservice "github.com/tripsit/tripsit-api/app/modules/guild/application"
	guildhandlers "github.com/tripsit/tripsit-api/app/modules/guild/infrastructure/handlers"
	guilddb "github.com/tripsit/tripsit-api/app/modules/guild/infrastructure/repositories"
	"github.com/tripsit/tripsit-api/internal/observability"
	"github.com/uptrace/bun"
)

// Module bundles the guild service and its HTTP handlers.
type Module struct {
	GuildService guildservice.Service
	handlers     *guildhandlers.GuildHandlers
}

// NewGuildModule wires the guild service. feeds is consulted when RSS entries
// are created or refreshed.
func NewGuildModule(ctx context.Context, obs *observability.Observability, db *bun.DB, feeds guildservice.FeedSource) *Module {
	logger := obs.Logger.With("module", "guild")
	logger.InfoContext(ctx, "guild.NewGuildModule initializing")

	service := guildservice.NewGuildService(
		guilddb.NewRepository(db),
		feeds,
		logger,
		obs.Metrics,
		obs.Tracer("tripsit-api/guild"),
		db,
	)

	return &Module{
		GuildService: service,
		handlers:     guildhandlers.NewGuildHandlers(service, logger),
	}
}

func (m *Module) Name() string { return "guild" }

func (m *Module) Routes(r chi.Router) {
	m.handlers.Routes(r)
}
