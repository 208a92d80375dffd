package transaction

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	platformspanner "github.com/Ron9508/bookstore-backend/internal/platform/spanner"
)

const tracerName = "github.com/Ron9508/bookstore-backend/internal/platform/transaction"

// SpannerReadWriteScope implements Scope over a Spanner ReadWriteTransaction.
type SpannerReadWriteScope struct {
	client  *spanner.Client
	timeout time.Duration
	tracer  trace.Tracer
}

// NewSpannerReadWriteScope creates a Spanner-backed read-write transaction scope.
// Every Execute call is bounded by timeout; a zero timeout disables the bound.
// It should be called once per application startup in main.
func NewSpannerReadWriteScope(client *spanner.Client, timeout time.Duration) *SpannerReadWriteScope {
	return &SpannerReadWriteScope{
		client:  client,
		timeout: timeout,
		tracer:  otel.Tracer(tracerName),
	}
}

// Execute runs fn within a Spanner ReadWriteTransaction.
// The transaction is committed if fn returns nil, rolled back otherwise -
// a failure anywhere in fn discards every buffered write, so a header row
// can never outlive its line items.
//
// IMPORTANT: Spanner may retry fn on Aborted errors. Therefore:
//   - fn must be idempotent
//   - fn must NOT perform external side effects (email, API calls, etc.)
func (s *SpannerReadWriteScope) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, span := s.tracer.Start(ctx, "transaction.ReadWrite")
	defer span.End()

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	_, err := s.client.ReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		return fn(platformspanner.WithReadWriteTx(ctx, txn))
	})
	if err != nil {
		span.RecordError(err)
	}
	return err
}

// SpannerReadOnlyScope implements Scope over a Spanner ReadOnlyTransaction.
// Use this when multiple reads need point-in-time consistency without writes.
type SpannerReadOnlyScope struct {
	client  *spanner.Client
	timeout time.Duration
	tracer  trace.Tracer
}

// NewSpannerReadOnlyScope creates a Spanner-backed read-only transaction scope.
func NewSpannerReadOnlyScope(client *spanner.Client, timeout time.Duration) *SpannerReadOnlyScope {
	return &SpannerReadOnlyScope{
		client:  client,
		timeout: timeout,
		tracer:  otel.Tracer(tracerName),
	}
}

// Execute runs fn with a Spanner ReadOnlyTransaction in ctx.
// The transaction is closed automatically when Execute returns.
func (s *SpannerReadOnlyScope) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, span := s.tracer.Start(ctx, "transaction.ReadOnly")
	defer span.End()

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	tx := s.client.ReadOnlyTransaction()
	defer tx.Close()

	err := fn(platformspanner.WithReadOnlyTx(ctx, tx))
	if err != nil {
		span.RecordError(err)
	}
	return err
}

// Compile-time interface checks.
var (
	_ Scope = (*SpannerReadWriteScope)(nil)
	_ Scope = (*SpannerReadOnlyScope)(nil)
)
