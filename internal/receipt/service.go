package receipt

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gabapcia/rskreceipt/internal/pkg/logger"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/gabapcia/rskreceipt/internal/receipt"

// Fetcher retrieves raw receipts from a node.
type Fetcher interface {
	// TransactionReceipt performs a single lookup for id. It returns ErrNotFound
	// when the node reports no receipt and ErrNumericOverflow when a value
	// cannot be represented at all; any other error is a transport failure.
	TransactionReceipt(ctx context.Context, id Identifier) (RawReceipt, error)
}

// Service drives the fetch pipeline and owns the current state slot.
type Service interface {
	// Fetch validates input, fetches and normalizes the receipt and stores the
	// outcome as the current state. The returned error is one of ErrEmptyInput,
	// ErrNotFound, ErrTransport or ErrNumericOverflow (possibly wrapped).
	Fetch(ctx context.Context, input string) (Receipt, error)

	// State returns a snapshot of the current state.
	State() State

	// Current returns the receipt of a Ready state. The boolean is false in
	// every other state, which is the guard for document and QR generation.
	Current() (Receipt, bool)
}

// service is the default Service implementation.
//
// Concurrent Fetch calls are not coordinated: each one moves the slot to
// Loading when it starts and whichever completes last writes the final state.
type service struct {
	mu    sync.Mutex
	state State

	fetcher Fetcher

	tracer  trace.Tracer
	fetches metric.Int64Counter
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// New creates a pipeline in the Idle state backed by fetcher.
// Tracing and metrics use the global OpenTelemetry providers.
func New(fetcher Fetcher) *service {
	fetches, err := otel.Meter(instrumentationName).Int64Counter(
		"receipt.fetches",
		metric.WithDescription("Transaction receipt fetches by outcome."),
	)
	if err != nil {
		fetches = noop.Int64Counter{}
	}

	return &service{
		state:   idleState(),
		fetcher: fetcher,
		tracer:  otel.Tracer(instrumentationName),
		fetches: fetches,
	}
}

func (s *service) setState(state State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = state
}

// State implements Service.
func (s *service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Current implements Service.
func (s *service) Current() (Receipt, bool) {
	state := s.State()
	if state.Status != StatusReady {
		return Receipt{}, false
	}
	return state.Receipt, true
}

// outcome names the counter attribute for err.
func outcome(err error) string {
	switch {
	case err == nil:
		return "ready"
	case errors.Is(err, ErrEmptyInput):
		return "empty_input"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrNumericOverflow):
		return "numeric_overflow"
	default:
		return "transport"
	}
}

// finish records the attempt and stores its terminal state.
func (s *service) finish(ctx context.Context, span trace.Span, r Receipt, err error) {
	s.fetches.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome(err))))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Debug(ctx, "transaction receipt fetch failed", "error", err)

		s.setState(failedState(err))
		return
	}

	logger.Info(ctx, "transaction receipt loaded", "blockNumber", r.BlockNumber)
	s.setState(readyState(r))
}

// Fetch implements Service.
func (s *service) Fetch(ctx context.Context, input string) (Receipt, error) {
	ctx, span := s.tracer.Start(ctx, "receipt.Fetch")
	defer span.End()

	id, err := ParseIdentifier(input)
	if err != nil {
		s.finish(ctx, span, Receipt{}, err)
		return Receipt{}, err
	}

	span.SetAttributes(attribute.String("receipt.hash", id.Hash))
	ctx = logger.Derive(ctx, "hash", id.Hash)

	s.setState(loadingState())
	logger.Debug(ctx, "fetching transaction receipt")

	raw, err := s.fetcher.TransactionReceipt(ctx, id)
	if err != nil {
		if !errors.Is(err, ErrNotFound) && !errors.Is(err, ErrNumericOverflow) {
			err = fmt.Errorf("%w: %w", ErrTransport, err)
		}
		s.finish(ctx, span, Receipt{}, err)
		return Receipt{}, err
	}

	r, err := Normalize(raw)
	if err != nil {
		s.finish(ctx, span, Receipt{}, err)
		return Receipt{}, err
	}

	s.finish(ctx, span, r, nil)
	return r, nil
}
