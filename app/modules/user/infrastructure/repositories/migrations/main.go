package usermigrations

import "github.com/uptrace/bun/migrate"

// Migrations is the user module's migration set. Each file registers one step;
// its name is taken from the file name.
var Migrations = migrate.NewMigrations()

func init() {
	if err := Migrations.DiscoverCaller(); err != nil {
		panic(err)
	}
}
