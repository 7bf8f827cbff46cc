package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/tripsit/tripsit-api/app"
	"github.com/tripsit/tripsit-api/config"
	"github.com/tripsit/tripsit-api/internal/httpapi"
	"github.com/tripsit/tripsit-api/internal/observability"
	"github.com/urfave/cli/v2"
)

func main() {
	cliApp := &cli.App{
		Name:  "tripsit-api",
		Usage: "TripSit community API",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Value: "config.yaml", Usage: "path to the configuration file"},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP API",
				Action: serve,
			},
			{
				Name:  "token",
				Usage: "issue a bearer token for an actor",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "user", Required: true, Usage: "actor user id (UUID)"},
					&cli.DurationFlag{Name: "ttl", Value: 24 * time.Hour, Usage: "token lifetime"},
				},
				Action: issueToken,
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func serve(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	obs, err := observability.Init(ctx, observability.Config{
		ServiceName:  "tripsit-api",
		Environment:  cfg.Observability.Environment,
		LogLevel:     cfg.Observability.LogLevel,
		LogFormat:    cfg.Observability.LogFormat,
		OTLPEndpoint: cfg.Observability.OTLPEndpoint,
		OTLPInsecure: cfg.Observability.OTLPInsecure,
	}, os.Stdout)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			obs.Logger.Error("Observability shutdown failed", "error", err)
		}
	}()

	a, err := app.NewApp(ctx, cfg, obs)
	if err != nil {
		return err
	}
	defer a.Close()

	obs.Logger.InfoContext(ctx, "tripsit-api starting", "addr", cfg.HTTP.Addr)
	return a.Run(ctx)
}

func issueToken(c *cli.Context) error {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.RequireJWT(); err != nil {
		return err
	}

	actor, err := uuid.Parse(c.String("user"))
	if err != nil {
		return fmt.Errorf("--user must be a UUID: %w", err)
	}

	token, err := httpapi.NewAuthenticator(cfg.JWT.Secret, cfg.JWT.Issuer).IssueToken(actor, c.Duration("ttl"))
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}
