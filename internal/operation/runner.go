// Package operation runs service operations with tracing, metrics, logging,
// panic recovery and a database transaction around each call.
package operation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/tripsit/tripsit-api/internal/observability/attr"
	"github.com/tripsit/tripsit-api/internal/observability/metrics"
	"github.com/tripsit/tripsit-api/internal/results"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Runner holds what every service needs to execute an operation.
type Runner struct {
	service string
	logger  *slog.Logger
	metrics metrics.OperationMetrics
	tracer  trace.Tracer
	db      *bun.DB
}

// NewRunner builds a Runner for the named service. A nil db runs operations
// without a transaction, which is how unit tests drive services over fakes.
func NewRunner(service string, logger *slog.Logger, m metrics.OperationMetrics, tracer trace.Tracer, db *bun.DB) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if m == nil {
		m = metrics.NewNoop()
	}
	return &Runner{
		service: service,
		logger:  logger,
		metrics: m,
		tracer:  tracer,
		db:      db,
	}
}

// Func is the transactional body of an operation. Domain failures go in the
// result, infrastructure errors in the returned error.
type Func[S any] func(ctx context.Context, db bun.IDB) (results.OperationResult[S, error], error)

// Run executes fn inside a transaction and collapses the outcome.
func Run[S any](r *Runner, ctx context.Context, name, identifier string, fn Func[S]) (S, error) {
	return results.Collapse(withTelemetry(r, ctx, name, identifier, func(ctx context.Context) (results.OperationResult[S, error], error) {
		return runInTx(r, ctx, fn)
	}))
}

// Prepare runs before the transaction opens. Network calls belong here.
type Prepare[P any] func(ctx context.Context) (results.OperationResult[P, error], error)

// RunPrepared runs prepare outside any transaction and, when it succeeds,
// hands its value to fn inside one. Both share a span and one set of metrics.
func RunPrepared[P, S any](r *Runner, ctx context.Context, name, identifier string, prepare Prepare[P], fn func(ctx context.Context, db bun.IDB, p P) (results.OperationResult[S, error], error)) (S, error) {
	return results.Collapse(withTelemetry(r, ctx, name, identifier, func(ctx context.Context) (results.OperationResult[S, error], error) {
		prep, err := prepare(ctx)
		if err != nil {
			return results.OperationResult[S, error]{}, err
		}
		if prep.IsFailure() {
			return results.OperationResult[S, error]{Failure: prep.Failure}, nil
		}
		var p P
		if prep.Success != nil {
			p = *prep.Success
		}
		return runInTx(r, ctx, func(ctx context.Context, db bun.IDB) (results.OperationResult[S, error], error) {
			return fn(ctx, db, p)
		})
	}))
}

func withTelemetry[S any](
	r *Runner,
	ctx context.Context,
	name string,
	identifier string,
	op func(ctx context.Context) (results.OperationResult[S, error], error),
) (result results.OperationResult[S, error], err error) {
	var span trace.Span
	if r.tracer != nil {
		ctx, span = r.tracer.Start(ctx, name, trace.WithAttributes(
			attribute.String("service", r.service),
			attribute.String("operation", name),
			attribute.String("identifier", identifier),
		))
	} else {
		span = trace.SpanFromContext(ctx)
	}
	defer span.End()

	r.metrics.RecordOperationAttempt(ctx, name, r.service)

	start := time.Now()
	defer func() {
		r.metrics.RecordOperationDuration(ctx, name, r.service, time.Since(start))
	}()

	r.logger.InfoContext(ctx, "Operation triggered", attr.ExtractCorrelationID(ctx), attr.String("operation", name))

	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic in %s: %v", name, rec)
			r.logger.ErrorContext(ctx, "Critical panic recovered",
				attr.ExtractCorrelationID(ctx),
				attr.String("identifier", identifier),
				attr.Error(err),
			)
			r.metrics.RecordOperationFailure(ctx, name, r.service)
			span.RecordError(err)
			result = results.OperationResult[S, error]{}
		}
	}()

	result, err = op(ctx)
	if err != nil {
		wrapped := fmt.Errorf("%s: %w", name, err)
		r.logger.ErrorContext(ctx, "Operation failed with error",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", name),
			attr.String("identifier", identifier),
			attr.Error(wrapped),
		)
		r.metrics.RecordOperationFailure(ctx, name, r.service)
		span.RecordError(wrapped)
		return result, wrapped
	}

	if result.IsFailure() {
		r.logger.WarnContext(ctx, "Operation returned failure result",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", name),
			attr.String("identifier", identifier),
			attr.Error(*result.Failure),
		)
	} else {
		r.logger.InfoContext(ctx, "Operation completed successfully",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", name),
			attr.String("identifier", identifier),
		)
	}

	r.metrics.RecordOperationSuccess(ctx, name, r.service)
	return result, nil
}

// errRollback aborts a transaction whose body produced a domain failure.
var errRollback = errors.New("operation: rollback on failure result")

func runInTx[S any](r *Runner, ctx context.Context, fn Func[S]) (results.OperationResult[S, error], error) {
	if r.db == nil {
		return fn(ctx, nil)
	}

	var result results.OperationResult[S, error]
	err := r.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		var txErr error
		result, txErr = fn(ctx, tx)
		if txErr != nil {
			return txErr
		}
		if result.IsFailure() {
			return errRollback
		}
		return nil
	})
	if errors.Is(err, errRollback) {
		return result, nil
	}
	return result, err
}
