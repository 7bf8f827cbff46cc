// Package schema lists the modules whose migrations make up the database, in
// the order they must be applied.
package schema

import (
	"log/slog"

	drugmigrations "github.com/tripsit/tripsit-api/app/modules/drug/infrastructure/repositories/migrations"
	guildmigrations "github.com/tripsit/tripsit-api/app/modules/guild/infrastructure/repositories/migrations"
	usermigrations "github.com/tripsit/tripsit-api/app/modules/user/infrastructure/repositories/migrations"
	"github.com/tripsit/tripsit-api/internal/ledger"
	"github.com/uptrace/bun"
)

// Modules returns the migration sets. Guild appeals and every drug table
// reference users, so user comes first.
func Modules() []ledger.Module {
	return []ledger.Module{
		{Name: "user", Migrations: usermigrations.Migrations},
		{Name: "guild", Migrations: guildmigrations.Migrations},
		{Name: "drug", Migrations: drugmigrations.Migrations},
	}
}

// NewLedger builds the ledger over every module.
func NewLedger(db *bun.DB, logger *slog.Logger) *ledger.Ledger {
	return ledger.New(db, logger, Modules()...)
}
