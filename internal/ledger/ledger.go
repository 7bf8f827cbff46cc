// Package ledger applies the schema migrations of every module as one
// timeline ordered by migration name, and rolls them back batch by batch.
//
// Each module keeps its own bookkeeping tables so modules can be inspected
// independently, but the group id recorded in those tables is shared: one
// Migrate call writes one batch id across every module it touched.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
)

// Module is one named migration set.
type Module struct {
	Name       string
	Migrations *migrate.Migrations
}

// ModuleStatus is the applied/unapplied split for one module.
type ModuleStatus struct {
	Module    string
	Applied   migrate.MigrationSlice
	Unapplied migrate.MigrationSlice
}

// Step is one migration of one module.
type Step struct {
	Module    string
	Migration migrate.Migration
}

func (s Step) String() string { return s.Module + "/" + s.Migration.String() }

// Batch is what one Migrate call applied or one Rollback call undid. Steps are
// listed in the order they ran.
type Batch struct {
	ID    int64
	Steps []Step
}

// IsZero reports whether the batch did nothing.
func (b *Batch) IsZero() bool { return b == nil || len(b.Steps) == 0 }

var ErrUnknownModule = errors.New("ledger: unknown module")

type entry struct {
	name     string
	migrator *migrate.Migrator
}

// moduleState is a module's migrations with their applied status.
type moduleState struct {
	module     string
	migrations migrate.MigrationSlice
}

// Ledger owns one migrator per module, in declaration order.
type Ledger struct {
	logger  *slog.Logger
	entries []entry
}

// New builds a ledger. Declaration order breaks ties between migrations of
// different modules that share a name.
func New(db *bun.DB, logger *slog.Logger, modules ...Module) *Ledger {
	if logger == nil {
		logger = slog.Default()
	}
	l := &Ledger{logger: logger}
	for _, m := range modules {
		l.entries = append(l.entries, entry{
			name: m.Name,
			migrator: migrate.NewMigrator(db, m.Migrations,
				migrate.WithTableName(TableName(m.Name)),
				migrate.WithLocksTableName(LocksTableName(m.Name)),
				migrate.WithMarkAppliedOnSuccess(true),
			),
		})
	}
	return l
}

// TableName is the bookkeeping table for a module's applied migrations.
func TableName(module string) string { return "bun_migrations_" + module }

// LocksTableName is the lock table guarding concurrent runs for a module.
func LocksTableName(module string) string { return "bun_migration_locks_" + module }

// Modules lists module names in declaration order.
func (l *Ledger) Modules() []string {
	names := make([]string, 0, len(l.entries))
	for _, e := range l.entries {
		names = append(names, e.name)
	}
	return names
}

// Migrator returns the migrator of one module, for tooling such as create_go.
func (l *Ledger) Migrator(module string) (*migrate.Migrator, error) {
	for _, e := range l.entries {
		if e.name == module {
			return e.migrator, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownModule, module)
}

// Init creates the bookkeeping tables of every module.
func (l *Ledger) Init(ctx context.Context) error {
	for _, e := range l.entries {
		if err := e.migrator.Init(ctx); err != nil {
			return fmt.Errorf("init %s: %w", e.name, err)
		}
	}
	return nil
}

// Migrate applies every pending migration of every module in name order, as
// one new batch. It stops at the first failing step; the returned batch holds
// the steps that were applied before it, and they stay applied.
func (l *Ledger) Migrate(ctx context.Context) (*Batch, error) {
	if err := l.Init(ctx); err != nil {
		return nil, err
	}
	unlock, err := l.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	states, err := l.states(ctx)
	if err != nil {
		return nil, err
	}

	pending := pendingSteps(states)
	batch := &Batch{ID: lastBatchID(states) + 1}
	if len(pending) == 0 {
		l.logger.InfoContext(ctx, "No new migrations")
		return batch, nil
	}

	for i := range pending {
		step := &pending[i]
		step.Migration.GroupID = batch.ID
		m, err := l.Migrator(step.Module)
		if err != nil {
			return batch, err
		}
		if step.Migration.Up != nil {
			if err := step.Migration.Up(ctx, m, &step.Migration); err != nil {
				return batch, fmt.Errorf("migrate %s: %w", step, err)
			}
		}
		if err := m.MarkApplied(ctx, &step.Migration); err != nil {
			return batch, fmt.Errorf("mark %s applied: %w", step, err)
		}
		batch.Steps = append(batch.Steps, *step)
		l.logger.InfoContext(ctx, "Applied migration",
			slog.String("module", step.Module),
			slog.String("migration", step.Migration.String()),
			slog.Int64("batch", batch.ID),
		)
	}
	return batch, nil
}

// Rollback undoes the most recent batch only, newest step first.
func (l *Ledger) Rollback(ctx context.Context) (*Batch, error) {
	if err := l.Init(ctx); err != nil {
		return nil, err
	}
	unlock, err := l.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	return l.rollbackLast(ctx)
}

// Reset rolls back every batch, newest first, leaving only the bookkeeping
// tables behind.
func (l *Ledger) Reset(ctx context.Context) error {
	if err := l.Init(ctx); err != nil {
		return err
	}
	unlock, err := l.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	for {
		batch, err := l.rollbackLast(ctx)
		if err != nil {
			return fmt.Errorf("reset: %w", err)
		}
		if batch.IsZero() {
			return nil
		}
	}
}

func (l *Ledger) rollbackLast(ctx context.Context) (*Batch, error) {
	states, err := l.states(ctx)
	if err != nil {
		return nil, err
	}

	last := lastBatch(states)
	done := &Batch{ID: last.ID}
	for i := range last.Steps {
		step := &last.Steps[i]
		m, err := l.Migrator(step.Module)
		if err != nil {
			return done, err
		}
		if step.Migration.Down != nil {
			if err := step.Migration.Down(ctx, m, &step.Migration); err != nil {
				return done, fmt.Errorf("roll back %s: %w", step, err)
			}
		}
		if err := m.MarkUnapplied(ctx, &step.Migration); err != nil {
			return done, fmt.Errorf("mark %s unapplied: %w", step, err)
		}
		done.Steps = append(done.Steps, *step)
		l.logger.InfoContext(ctx, "Rolled back migration",
			slog.String("module", step.Module),
			slog.String("migration", step.Migration.String()),
			slog.Int64("batch", done.ID),
		)
	}
	return done, nil
}

// Status reports applied and pending migrations per module.
func (l *Ledger) Status(ctx context.Context) ([]ModuleStatus, error) {
	states, err := l.states(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ModuleStatus, 0, len(states))
	for _, s := range states {
		out = append(out, ModuleStatus{
			Module:    s.module,
			Applied:   s.migrations.Applied(),
			Unapplied: s.migrations.Unapplied(),
		})
	}
	return out, nil
}

func (l *Ledger) states(ctx context.Context) ([]moduleState, error) {
	states := make([]moduleState, 0, len(l.entries))
	for _, e := range l.entries {
		ms, err := e.migrator.MigrationsWithStatus(ctx)
		if err != nil {
			return nil, fmt.Errorf("status %s: %w", e.name, err)
		}
		states = append(states, moduleState{module: e.name, migrations: ms})
	}
	return states, nil
}

// lock takes every module's lock in declaration order. The returned func
// releases them in reverse.
func (l *Ledger) lock(ctx context.Context) (func(), error) {
	held := make([]entry, 0, len(l.entries))
	unlock := func() {
		for i := len(held) - 1; i >= 0; i-- {
			if err := held[i].migrator.Unlock(ctx); err != nil {
				l.logger.WarnContext(ctx, "Failed to release migration lock",
					slog.String("module", held[i].name), slog.String("error", err.Error()))
			}
		}
	}
	for _, e := range l.entries {
		if err := e.migrator.Lock(ctx); err != nil {
			unlock()
			return nil, fmt.Errorf("lock %s: %w", e.name, err)
		}
		held = append(held, e)
	}
	return unlock, nil
}

// pendingSteps lists unapplied migrations of every module by name. The sort is
// stable, so equal names keep declaration order.
func pendingSteps(states []moduleState) []Step {
	var steps []Step
	for _, s := range states {
		for _, m := range s.migrations.Unapplied() {
			steps = append(steps, Step{Module: s.module, Migration: m})
		}
	}
	slices.SortStableFunc(steps, compareSteps)
	return steps
}

// lastBatchID is the highest group id recorded by any module.
func lastBatchID(states []moduleState) int64 {
	var id int64
	for _, s := range states {
		id = max(id, s.migrations.Applied().LastGroupID())
	}
	return id
}

// lastBatch collects the steps of the newest batch in the order they must be
// undone: the exact reverse of how pendingSteps would have run them.
func lastBatch(states []moduleState) *Batch {
	batch := &Batch{ID: lastBatchID(states)}
	if batch.ID == 0 {
		return batch
	}
	for _, s := range states {
		for _, m := range s.migrations.Applied() {
			if m.GroupID == batch.ID {
				batch.Steps = append(batch.Steps, Step{Module: s.module, Migration: m})
			}
		}
	}
	slices.SortStableFunc(batch.Steps, compareSteps)
	slices.Reverse(batch.Steps)
	return batch
}

func compareSteps(a, b Step) int {
	return strings.Compare(a.Migration.Name, b.Migration.Name)
}
