package ledger

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

// EnumColumn is a column typed with an enum that ReplaceEnum must re-type.
// Default, when set, is restored after the type swap.
type EnumColumn struct {
	Table   string
	Column  string
	Default string
}

// CreateEnum creates a native enum type. An existing type of the same name is
// left alone so the step can be re-run.
func CreateEnum(ctx context.Context, db bun.IDB, name string, values ...string) error {
	if len(values) == 0 {
		return fmt.Errorf("enum %s: no values", name)
	}
	_, err := db.ExecContext(ctx, `
		DO $$ BEGIN
			CREATE TYPE ? AS ENUM (?);
		EXCEPTION
			WHEN duplicate_object THEN NULL;
		END $$;`, bun.Ident(name), bun.In(values))
	if err != nil {
		return fmt.Errorf("create enum %s: %w", name, err)
	}
	return nil
}

// DropEnum drops an enum type if it exists.
func DropEnum(ctx context.Context, db bun.IDB, name string) error {
	if _, err := db.ExecContext(ctx, `DROP TYPE IF EXISTS ?`, bun.Ident(name)); err != nil {
		return fmt.Errorf("drop enum %s: %w", name, err)
	}
	return nil
}

// AddEnumValue appends a member to an enum. The new member cannot be used by
// the same transaction that adds it.
func AddEnumValue(ctx context.Context, db bun.IDB, name, value string) error {
	if _, err := db.ExecContext(ctx, `ALTER TYPE ? ADD VALUE IF NOT EXISTS ?`, bun.Ident(name), value); err != nil {
		return fmt.Errorf("add value %s to enum %s: %w", value, name, err)
	}
	return nil
}

// ReplaceEnum redefines an enum with a new member set, which is how members are
// removed. Rows holding a removed member must be migrated before calling it,
// otherwise the column cast fails and the caller's transaction aborts.
func ReplaceEnum(ctx context.Context, db bun.IDB, name string, values []string, columns ...EnumColumn) error {
	old := name + "_old"

	if _, err := db.ExecContext(ctx, `ALTER TYPE ? RENAME TO ?`, bun.Ident(name), bun.Ident(old)); err != nil {
		return fmt.Errorf("rename enum %s: %w", name, err)
	}
	if _, err := db.ExecContext(ctx, `CREATE TYPE ? AS ENUM (?)`, bun.Ident(name), bun.In(values)); err != nil {
		return fmt.Errorf("recreate enum %s: %w", name, err)
	}

	for _, c := range columns {
		if _, err := db.ExecContext(ctx, `ALTER TABLE ? ALTER COLUMN ? DROP DEFAULT`,
			bun.Ident(c.Table), bun.Ident(c.Column)); err != nil {
			return fmt.Errorf("drop default %s.%s: %w", c.Table, c.Column, err)
		}
		if _, err := db.ExecContext(ctx, `ALTER TABLE ? ALTER COLUMN ? TYPE ? USING ?::text::?`,
			bun.Ident(c.Table), bun.Ident(c.Column), bun.Ident(name), bun.Ident(c.Column), bun.Ident(name)); err != nil {
			return fmt.Errorf("retype %s.%s: %w", c.Table, c.Column, err)
		}
		if c.Default != "" {
			if _, err := db.ExecContext(ctx, `ALTER TABLE ? ALTER COLUMN ? SET DEFAULT ?`,
				bun.Ident(c.Table), bun.Ident(c.Column), c.Default); err != nil {
				return fmt.Errorf("restore default %s.%s: %w", c.Table, c.Column, err)
			}
		}
	}

	if _, err := db.ExecContext(ctx, `DROP TYPE ?`, bun.Ident(old)); err != nil {
		return fmt.Errorf("drop old enum %s: %w", old, err)
	}
	return nil
}
