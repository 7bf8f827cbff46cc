package testutils

import (
	"context"
	"fmt"
	"strings"

	"github.com/uptrace/bun"
)

// appTables lists every application table. Migration bookkeeping tables are
// left alone.
var appTables = []string{
	"users",
	"user_actions",
	"user_tickets",
	"user_experience",
	"discord_guilds",
	"reaction_roles",
	"guild_rss",
	"bridges",
	"appeals",
	"drugs",
	"drug_names",
	"drug_articles",
	"drug_variants",
	"drug_variant_roas",
	"drug_categories",
	"drug_category_drugs",
}

// CleanupDatabase empties every application table.
func CleanupDatabase(ctx context.Context, db *bun.DB) error {
	return TruncateTables(ctx, db, appTables...)
}

// TruncateTables truncates the named tables with CASCADE.
func TruncateTables(ctx context.Context, db *bun.DB, tables ...string) error {
	if len(tables) == 0 {
		return nil
	}
	quoted := make([]string, len(tables))
	for i, table := range tables {
		quoted[i] = fmt.Sprintf("%q", table)
	}
	query := fmt.Sprintf("TRUNCATE TABLE %s CASCADE", strings.Join(quoted, ", "))
	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to truncate tables %v: %w", tables, err)
	}
	return nil
}

// TableExists reports whether a table is present in the public schema.
func TableExists(ctx context.Context, db bun.IDB, table string) (bool, error) {
	var exists bool
	err := db.NewRaw(
		"SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_schema = 'public' AND table_name = ?)",
		table,
	).Scan(ctx, &exists)
	return exists, err
}

// EnumExists reports whether a Postgres enum type exists.
func EnumExists(ctx context.Context, db bun.IDB, name string) (bool, error) {
	var exists bool
	err := db.NewRaw("SELECT EXISTS (SELECT 1 FROM pg_type WHERE typname = ?)", name).Scan(ctx, &exists)
	return exists, err
}
