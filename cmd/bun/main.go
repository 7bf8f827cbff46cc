package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/tripsit/tripsit-api/app/schema"
	"github.com/tripsit/tripsit-api/config"
	"github.com/tripsit/tripsit-api/internal/db/bundb"
	"github.com/tripsit/tripsit-api/internal/ledger"
	"github.com/tripsit/tripsit-api/internal/observability"
	"github.com/urfave/cli/v2"
)

func main() {
	cliApp := &cli.App{
		Name:  "bun",
		Usage: "tripsit database migrations",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Value: "config.yaml", Usage: "path to the configuration file"},
		},
		Commands: []*cli.Command{
			newDBCommand(),
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// withLedger opens the database named by the config and hands fn a ledger
// over every module.
func withLedger(c *cli.Context, fn func(ctx context.Context, l *ledger.Ledger) error) error {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger := observability.NewLogger(os.Stderr, cfg.Observability.LogLevel, "text")

	db, err := bundb.NewBunDB(c.Context, bundb.Options{DSN: cfg.Postgres.DSN, MaxOpenConns: 2}, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	return fn(c.Context, schema.NewLedger(db, logger))
}

func printBatch(verb string, batch *ledger.Batch) {
	if batch.IsZero() {
		fmt.Printf("No migrations to %s\n", verb)
		return
	}
	fmt.Printf("Batch %d: %s\n", batch.ID, verb)
	for _, step := range batch.Steps {
		fmt.Printf("  %s\n", step)
	}
}

func newDBCommand() *cli.Command {
	return &cli.Command{
		Name:  "db",
		Usage: "manage database migrations",
		Subcommands: []*cli.Command{
			{
				Name:  "init",
				Usage: "create migration tables",
				Action: func(c *cli.Context) error {
					return withLedger(c, func(ctx context.Context, l *ledger.Ledger) error {
						return l.Init(ctx)
					})
				},
			},
			{
				Name:  "migrate",
				Usage: "apply pending migrations of every module in name order",
				Action: func(c *cli.Context) error {
					return withLedger(c, func(ctx context.Context, l *ledger.Ledger) error {
						batch, err := l.Migrate(ctx)
						printBatch("migrate", batch)
						return err
					})
				},
			},
			{
				Name:  "rollback",
				Usage: "roll back the most recent migration batch",
				Action: func(c *cli.Context) error {
					return withLedger(c, func(ctx context.Context, l *ledger.Ledger) error {
						batch, err := l.Rollback(ctx)
						printBatch("roll back", batch)
						return err
					})
				},
			},
			{
				Name:  "reset",
				Usage: "roll back every applied migration",
				Action: func(c *cli.Context) error {
					return withLedger(c, func(ctx context.Context, l *ledger.Ledger) error {
						return l.Reset(ctx)
					})
				},
			},
			{
				Name:  "status",
				Usage: "print migrations status",
				Action: func(c *cli.Context) error {
					return withLedger(c, func(ctx context.Context, l *ledger.Ledger) error {
						statuses, err := l.Status(ctx)
						if err != nil {
							return err
						}
						for _, s := range statuses {
							fmt.Printf("Migrations for module: %s\n", s.Module)
							fmt.Printf("  Applied: %s\n", s.Applied)
							fmt.Printf("  Unapplied: %s\n", s.Unapplied)
						}
						return nil
					})
				},
			},
			{
				Name:      "create_go",
				Usage:     "create Go migration",
				ArgsUsage: "<module> <name>",
				Action: func(c *cli.Context) error {
					return withLedger(c, func(ctx context.Context, l *ledger.Ledger) error {
						moduleName := c.Args().First()
						migrator, err := l.Migrator(moduleName)
						if err != nil {
							return err
						}
						mf, err := migrator.CreateGoMigration(ctx, strings.Join(c.Args().Tail(), "_"))
						if err != nil {
							return err
						}
						fmt.Printf("Created migration for module %s: %s (%s)\n", moduleName, mf.Name, mf.Path)
						return nil
					})
				},
			},
			{
				Name:      "create_sql",
				Usage:     "create up and down SQL migrations",
				ArgsUsage: "<module> <name>",
				Action: func(c *cli.Context) error {
					return withLedger(c, func(ctx context.Context, l *ledger.Ledger) error {
						moduleName := c.Args().First()
						migrator, err := l.Migrator(moduleName)
						if err != nil {
							return err
						}
						files, err := migrator.CreateSQLMigrations(ctx, strings.Join(c.Args().Tail(), "_"))
						if err != nil {
							return err
						}
						for _, mf := range files {
							fmt.Printf("Created migration for module %s: %s (%s)\n", moduleName, mf.Name, mf.Path)
						}
						return nil
					})
				},
			},
		},
	}
}
