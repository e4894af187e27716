// Package stream drives a codec step against an upstream byte source as a
// cooperatively scheduled, poll-driven state machine. One scheduler owns one
// codec session; it never spawns goroutines and never blocks.
package stream

import (
	stderrors "errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/iamNilotpal/streampress/internal/core/domain"
	"github.com/iamNilotpal/streampress/internal/core/ports"
	"github.com/iamNilotpal/streampress/pkg/buffer"
	"github.com/iamNilotpal/streampress/pkg/errors"
)

// phase is the scheduler's position in the session lifecycle.
type phase int

const (
	// phaseTransforming pulls buffered upstream bytes through the codec.
	phaseTransforming phase = iota
	// phaseFlushing pushes a sync boundary out during upstream quiescence.
	phaseFlushing
	// phaseFinalizing emits the session trailer after upstream end-of-data.
	phaseFinalizing
	// phaseDone is terminal; every later poll completes with zero bytes.
	phaseDone
	// phaseFailed latches after a fatal error; polling again is a caller bug.
	phaseFailed
)

func (p phase) String() string {
	switch p {
	case phaseTransforming:
		return "transforming"
	case phaseFlushing:
		return "flushing"
	case phaseFinalizing:
		return "finalizing"
	case phaseDone:
		return "done"
	case phaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ErrPoisoned reports a poll on a scheduler that already surfaced a fatal
// error. Fatal errors end the session; polling past one is a caller bug.
var ErrPoisoned = stderrors.New("scheduler polled after fatal error")

// Scheduler owns an upstream source and a codec step and exposes the
// transformed bytes poll by poll. It is not safe for concurrent use; run
// independent schedulers for independent streams.
type Scheduler struct {
	source ports.ByteSource
	codec  ports.CodecStep
	phase  phase
	log    *zap.SugaredLogger
}

// Options configures a scheduler.
type Options struct {
	Source ports.ByteSource   // Upstream bytes. Required.
	Codec  ports.CodecStep    // Codec session to drive. Required.
	Logger *zap.SugaredLogger // Optional phase-transition tracing.
}

// New creates a scheduler in the transforming phase.
func New(opts Options) (*Scheduler, error) {
	if opts.Source == nil {
		return nil, errors.NewValidationError("source", nil, fmt.Errorf("source is required"))
	}
	if opts.Codec == nil {
		return nil, errors.NewValidationError("codec", nil, fmt.Errorf("codec is required"))
	}

	return &Scheduler{
		source: opts.Source,
		codec:  opts.Codec,
		phase:  phaseTransforming,
		log:    opts.Logger,
	}, nil
}

// Poll runs the state machine until out is full, the session completes, or
// the upstream would block with nothing produced yet. It returns the number
// of bytes written into out.
//
// Signals: domain.ErrNotReady means nothing was produced and the caller
// should re-poll once the source is ready; io.EOF means the session is
// complete (idempotent: every poll after completion returns it with zero
// bytes). Any other error is fatal and the scheduler must not be polled
// again.
func (s *Scheduler) Poll(out []byte) (int, error) {
	switch s.phase {
	case phaseFailed:
		return 0, errors.NewStreamError(errors.ErrorContract, "poll", ErrPoisoned)
	case phaseDone:
		if len(out) == 0 {
			return 0, io.EOF
		}
	}
	if len(out) == 0 {
		return 0, nil
	}

	output := buffer.NewCursor(out)
	consumed := 0 // Upstream bytes consumed within this poll call.

	for {
		switch s.phase {
		case phaseTransforming:
			chunk, err := s.source.Peek()
			switch {
			case stderrors.Is(err, domain.ErrNotReady):
				if consumed == 0 {
					// Genuinely blocked: nothing consumed this call, nothing
					// buffered to push. Suspend without losing state.
					if output.Pos() > 0 {
						return output.Pos(), nil
					}
					return 0, domain.ErrNotReady
				}
				// Input was consumed earlier in this call; push it out
				// instead of holding it across the quiescence.
				s.transition(phaseFlushing)

			case stderrors.Is(err, io.EOF):
				s.transition(phaseFinalizing)

			case err != nil:
				return output.Pos(), s.fail(errors.NewStreamError(errors.ErrorSource, "peek", err))

			case len(chunk) == 0:
				// An empty view signals upstream end-of-data.
				s.transition(phaseFinalizing)

			default:
				in := buffer.NewCursor(chunk)
				if err := s.codec.Transform(in, output); err != nil {
					return output.Pos(), s.fail(err)
				}
				s.source.Consume(in.Pos())
				consumed += in.Pos()
			}

		case phaseFlushing:
			if consumed == 0 {
				// Cold entry: this poll consumed nothing, but earlier polls
				// may have left data buffered inside the codec. Prime with an
				// empty input so it drains before the boundary call.
				if err := s.codec.Transform(buffer.NewCursor(nil), output); err != nil {
					return output.Pos(), s.fail(err)
				}
			}

			complete, err := s.codec.Flush(output)
			if err != nil {
				return output.Pos(), s.fail(err)
			}
			if complete {
				consumed = 0
				s.transition(phaseTransforming)
			}

		case phaseFinalizing:
			complete, err := s.codec.Finish(output)
			if err != nil {
				return output.Pos(), s.fail(err)
			}
			if complete {
				s.transition(phaseDone)
			}
		}

		if s.phase == phaseDone {
			if output.Pos() == 0 {
				return 0, io.EOF
			}
			return output.Pos(), nil
		}
		if output.Full() {
			return output.Pos(), nil
		}
	}
}

// transition moves the state machine to the next phase.
func (s *Scheduler) transition(next phase) {
	if s.log != nil {
		s.log.Debugw("phase transition", "from", s.phase, "to", next)
	}
	s.phase = next
}

// fail latches the scheduler so further polls surface the contract violation
// instead of driving a broken session.
func (s *Scheduler) fail(err error) error {
	if s.log != nil {
		s.log.Debugw("stream failed", "phase", s.phase, "error", err)
	}
	s.phase = phaseFailed
	return err
}
