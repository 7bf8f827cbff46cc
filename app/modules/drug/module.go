package drug

import (
	"context"

	"github.com/go-chi/chi/v5"
	drugservice "github.com/tripsit/tripsit-api/app/modules/drug/application"
	drughandlers "github.com/tripsit/tripsit-api/app/modules/drug/infrastructure/handlers"
	drugdb "github.com/tripsit/tripsit-api/app/modules/drug/infrastructure/repositories"
	"github.com/tripsit/tripsit-api/internal/observability"
	"github.com/uptrace/bun"
)

// Module bundles the drug reference service and its HTTP handlers.
type Module struct {
	DrugService drugservice.Service
	handlers    *drughandlers.DrugHandlers
}

func NewDrugModule(ctx context.Context, obs *observability.Observability, db *bun.DB) *Module {
	logger := obs.Logger.With("module", "drug")
	logger.InfoContext(ctx, "drug.NewDrugModule initializing")

	service := drugservice.NewDrugService(
		drugdb.NewRepository(db),
		logger,
		obs.Metrics,
		obs.Tracer("tripsit-api/drug"),
		db,
	)

	return &Module{
		DrugService: service,
		handlers:    drughandlers.NewDrugHandlers(service, logger),
	}
}

func (m *Module) Name() string { return "drug" }

func (m *Module) Routes(r chi.Router) {
	m.handlers.Routes(r)
}
