package stream

import (
	"context"
	stderrors "errors"

	"github.com/iamNilotpal/streampress/internal/core/domain"
	"github.com/iamNilotpal/streampress/internal/core/ports"
)

// Reader adapts a Scheduler to io.Reader for callers that are happy to
// block. Not-ready polls suspend on the source's ReadyWaiter capability when
// it has one; sources without it surface domain.ErrNotReady to the caller,
// who is responsible for re-reading once the source signals readiness.
type Reader struct {
	sched  *Scheduler
	waiter ports.ReadyWaiter
	ctx    context.Context
}

// NewReader wraps sched. The context bounds every readiness wait; cancelling
// it makes in-flight and future reads fail with the context's error.
func NewReader(ctx context.Context, sched *Scheduler) *Reader {
	r := &Reader{sched: sched, ctx: ctx}
	if w, ok := sched.source.(ports.ReadyWaiter); ok {
		r.waiter = w
	}
	return r
}

// Read polls the scheduler, waiting out quiescence periods. It follows the
// io.Reader contract: bytes until the stream ends, then io.EOF.
func (r *Reader) Read(p []byte) (int, error) {
	for {
		n, err := r.sched.Poll(p)
		if !stderrors.Is(err, domain.ErrNotReady) {
			return n, err
		}
		if r.waiter == nil {
			return n, err
		}
		if werr := r.waiter.WaitReady(r.ctx); werr != nil {
			return 0, werr
		}
	}
}
