package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/tripsit/tripsit-api/app/modules/drug"
	"github.com/tripsit/tripsit-api/app/modules/guild"
	guildservice "github.com/tripsit/tripsit-api/app/modules/guild/application"
	"github.com/tripsit/tripsit-api/app/modules/user"
	userservice "github.com/tripsit/tripsit-api/app/modules/user/application"
	"github.com/tripsit/tripsit-api/config"
	"github.com/tripsit/tripsit-api/internal/db/bundb"
	"github.com/tripsit/tripsit-api/internal/discord"
	"github.com/tripsit/tripsit-api/internal/feeds"
	"github.com/tripsit/tripsit-api/internal/httpapi"
	"github.com/tripsit/tripsit-api/internal/modules"
	"github.com/tripsit/tripsit-api/internal/observability"
	"github.com/uptrace/bun"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// App owns the database pool, the modules and the HTTP listeners.
type App struct {
	Config  *config.Config
	Obs     *observability.Observability
	DB      *bun.DB
	Auth    *httpapi.Authenticator
	Modules *modules.Registry

	handler http.Handler
}

// NewApp opens the database and builds every module.
func NewApp(ctx context.Context, cfg *config.Config, obs *observability.Observability) (*App, error) {
	if err := cfg.RequireJWT(); err != nil {
		return nil, err
	}

	db, err := bundb.NewBunDB(ctx, bundb.Options{
		DSN:          cfg.Postgres.DSN,
		MaxOpenConns: cfg.Postgres.MaxOpenConns,
	}, obs.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	var profiles userservice.ProfileLookup
	client, err := discord.New(cfg.Discord.Token, cfg.Discord.ProfileCacheTTL, obs.Logger.With("component", "discord"))
	switch {
	case errors.Is(err, discord.ErrNotConfigured):
		obs.Logger.WarnContext(ctx, "DISCORD_TOKEN not set, profile lookups disabled")
	case err != nil:
		_ = db.Close()
		return nil, err
	default:
		profiles = client
	}

	a, err := New(ctx, cfg, obs, db, profiles, feeds.NewFetcher(nil))
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return a, nil
}

// New builds the app over an open database. Integration tests call it directly.
func New(
	ctx context.Context,
	cfg *config.Config,
	obs *observability.Observability,
	db *bun.DB,
	profiles userservice.ProfileLookup,
	feedSource guildservice.FeedSource,
) (*App, error) {
	registry := modules.NewRegistry()
	for _, m := range []modules.Module{
		user.NewUserModule(ctx, obs, db, profiles),
		guild.NewGuildModule(ctx, obs, db, feedSource),
		drug.NewDrugModule(ctx, obs, db),
	} {
		if err := registry.Register(m); err != nil {
			return nil, err
		}
	}

	a := &App{
		Config:  cfg,
		Obs:     obs,
		DB:      db,
		Auth:    httpapi.NewAuthenticator(cfg.JWT.Secret, cfg.JWT.Issuer),
		Modules: registry,
	}
	a.handler = a.newRouter()
	return a, nil
}

// Handler is the API root, including /healthz and, when no separate metrics
// address is configured, /metrics.
func (a *App) Handler() http.Handler { return a.handler }

// Run serves until ctx is cancelled, then drains in-flight requests.
func (a *App) Run(ctx context.Context) error {
	logger := a.Obs.Logger
	servers := []*http.Server{{
		Addr:              a.Config.HTTP.Addr,
		Handler:           a.handler,
		ReadTimeout:       a.Config.HTTP.ReadTimeout,
		WriteTimeout:      a.Config.HTTP.WriteTimeout,
		ReadHeaderTimeout: 5 * time.Second,
	}}
	if addr := a.Config.Observability.MetricsAddress; addr != "" {
		servers = append(servers, &http.Server{
			Addr:              addr,
			Handler:           a.metricsHandler(),
			ReadHeaderTimeout: 5 * time.Second,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, srv := range servers {
		g.Go(func() error {
			logger.InfoContext(ctx, "HTTP listener starting", slog.String("addr", srv.Addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("listen %s: %w", srv.Addr, err)
			}
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down HTTP listeners")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		var errs []error
		for _, srv := range servers {
			errs = append(errs, srv.Shutdown(shutdownCtx))
		}
		return errors.Join(errs...)
	})
	return g.Wait()
}

// Close releases the database pool.
func (a *App) Close() error {
	if a.DB == nil {
		return nil
	}
	return a.DB.Close()
}
