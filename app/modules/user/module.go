package user

import (
	"context"

	"github.com/go-chi/chi/v5"
	userservice "github.com/tripsit/tripsit-api/app/modules/user/application"
	userhandlers "github.com/tripsit/tripsit-api/app/modules/user/infrastructure/handlers"
	userdb "github.com/tripsit/tripsit-api/app/modules/user/infrastructure/repositories"
	"github.com/tripsit/tripsit-api/internal/observability"
	"github.com/uptrace/bun"
)

// Module bundles the user service and its HTTP handlers.
type Module struct {
	UserService userservice.Service
	handlers    *userhandlers.UserHandlers
}

// NewUserModule wires repository, service and handlers. profiles may be nil.
func NewUserModule(
	ctx context.Context,
	obs *observability.Observability,
	db *bun.DB,
	profiles userservice.ProfileLookup,
) *Module {
	logger := obs.Logger.With("module", "user")
	logger.InfoContext(ctx, "user.NewUserModule initializing")

	repo := userdb.NewRepository(db)
	service := userservice.NewUserService(
		repo,
		profiles,
		logger,
		obs.Metrics,
		obs.Tracer("tripsit-api/user"),
		db,
	)

	return &Module{
		UserService: service,
		handlers:    userhandlers.NewUserHandlers(service, logger),
	}
}

func (m *Module) Name() string { return "user" }

// Routes mounts the module's endpoints.
func (m *Module) Routes(r chi.Router) {
	m.handlers.Routes(r)
}
