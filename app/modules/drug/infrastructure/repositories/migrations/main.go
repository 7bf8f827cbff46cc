package drugmigrations

import "github.com/uptrace/bun/migrate"

// Migrations is the drug module's migration set.
var Migrations = migrate.NewMigrations()

func init() {
	if err := Migrations.DiscoverCaller(); err != nil {
		panic(err)
	}
}
