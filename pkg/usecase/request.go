package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/coachnote/pkg/utils/logging"
	"golang.org/x/sync/semaphore"
)

// RequestKind names an operation that calls the text generation service
type RequestKind string

const (
	RequestKindFull     RequestKind = "full"
	RequestKindBrief    RequestKind = "brief"
	RequestKindQuestion RequestKind = "question"
)

type RequestState string

const (
	RequestStateIdle      RequestState = "idle"
	RequestStateInFlight  RequestState = "in_flight"
	RequestStateSucceeded RequestState = "succeeded"
	RequestStateFailed    RequestState = "failed"
)

// Request is the observable state of the latest generation of one kind
type Request struct {
	ID         string       `json:"id,omitempty"`
	Kind       RequestKind  `json:"kind"`
	State      RequestState `json:"state"`
	Text       string       `json:"text,omitempty"`
	Reason     string       `json:"reason,omitempty"`
	StartedAt  time.Time    `json:"startedAt,omitzero"`
	FinishedAt time.Time    `json:"finishedAt,omitzero"`
}

// requestTracker allows one generation of its kind at a time and records the outcome
type requestTracker struct {
	kind RequestKind
	sem  *semaphore.Weighted
	now  func() time.Time

	mu      sync.Mutex
	current Request
}

func newRequestTracker(kind RequestKind, now func() time.Time) *requestTracker {
	return &requestTracker{
		kind:    kind,
		sem:     semaphore.NewWeighted(1),
		now:     now,
		current: Request{Kind: kind, State: RequestStateIdle},
	}
}

// begin claims the slot. Every successful begin must be paired with finish.
func (r *requestTracker) begin() (Request, error) {
	if !r.sem.TryAcquire(1) {
		return Request{}, goerr.Wrap(ErrRequestInFlight, "generation already running",
			goerr.V(RequestKindKey, r.kind))
	}

	id, err := uuid.NewV7()
	if err != nil {
		r.sem.Release(1)
		return Request{}, goerr.Wrap(err, "failed to generate request ID")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = Request{
		ID:        id.String(),
		Kind:      r.kind,
		State:     RequestStateInFlight,
		StartedAt: r.now(),
	}
	return r.current, nil
}

func (r *requestTracker) finish(id, text string, err error) Request {
	defer r.sem.Release(1)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.current.Text = text
	r.current.FinishedAt = r.now()
	if err != nil {
		r.current.State = RequestStateFailed
		r.current.Reason = err.Error()
	} else {
		r.current.State = RequestStateSucceeded
	}
	return r.current
}

func (r *requestTracker) status() Request {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// run executes fn while holding the slot. The slot is released whatever fn returns.
func (r *requestTracker) run(ctx context.Context, fn func(ctx context.Context) (string, error)) (text string, err error) {
	req, err := r.begin()
	if err != nil {
		return "", err
	}

	ctx = logging.With(ctx, logging.From(ctx).With(
		RequestIDKey, req.ID,
		RequestKindKey, string(r.kind),
	))
	defer func() {
		done := r.finish(req.ID, text, err)
		logging.From(ctx).Info("generation finished",
			"state", string(done.State),
			"duration", done.FinishedAt.Sub(done.StartedAt),
		)
	}()

	return fn(ctx)
}
