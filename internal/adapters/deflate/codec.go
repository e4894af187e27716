package deflate

import (
	"fmt"

	"github.com/iamNilotpal/streampress/internal/core/domain"
	"github.com/iamNilotpal/streampress/internal/core/ports"
	"github.com/iamNilotpal/streampress/pkg/buffer"
	"github.com/iamNilotpal/streampress/pkg/errors"
)

// Codec implements the codec step contract over a DeflateEngine. The engine
// communicates progress via absolute monotonic counters, so every call
// snapshots them before and after and advances the cursors by exactly the
// deltas.
type Codec struct {
	engine ports.DeflateEngine

	// flushed records whether a sync boundary has already been emitted since
	// the last transform. Without it every flush re-entry would write another
	// sync block and flushing could never terminate.
	flushed bool
}

// New creates a deflate codec step backed by a klauspost engine.
func New(opts Options) (*Codec, error) {
	if err := Validate(
		&domain.CodecOptions{Level: opts.Level, ZlibHeader: opts.ZlibHeader},
	); err != nil {
		return nil, err
	}

	engine, err := NewEngine(opts.Level, opts.ZlibHeader)
	if err != nil {
		return nil, err
	}

	return NewWithEngine(engine), nil
}

// NewWithEngine creates a codec step over a caller-supplied engine.
func NewWithEngine(engine ports.DeflateEngine) *Codec {
	// A fresh session has nothing buffered, so a flush before any transform
	// is already complete.
	return &Codec{engine: engine, flushed: true}
}

// advance runs one engine step and reconciles the engine's session totals
// into cursor advances. On engine failure the cursors are left untouched.
func (c *Codec) advance(mode domain.FlushMode, in, out *buffer.Cursor) (domain.EngineStatus, error) {
	priorIn := c.engine.TotalIn()
	priorOut := c.engine.TotalOut()

	status, err := c.engine.Advance(mode, in.Unwritten(), out.Unwritten())
	if err != nil {
		return status, errors.NewStreamError(errors.ErrorEngine, "advance", err)
	}

	in.Advance(int(c.engine.TotalIn() - priorIn))
	out.Advance(int(c.engine.TotalOut() - priorOut))

	return status, nil
}

// Transform consumes a prefix of in and produces a prefix of out.
func (c *Codec) Transform(in, out *buffer.Cursor) error {
	c.flushed = false

	status, err := c.advance(domain.FlushNone, in, out)
	if err != nil {
		return err
	}

	switch status {
	case domain.StatusOK:
		return nil
	case domain.StatusStreamEnd:
		return errors.NewStreamError(
			errors.ErrorContract, "transform",
			fmt.Errorf("engine reported %v outside finalize", status),
		)
	case domain.StatusBufferStarved:
		return errors.NewStreamError(
			errors.ErrorStarvation, "transform",
			fmt.Errorf("engine made no progress with capacity on both sides"),
		)
	default:
		return errors.NewStreamError(
			errors.ErrorContract, "transform",
			fmt.Errorf("unknown engine status %v", status),
		)
	}
}

// Flush forces buffered data out to a sync boundary. It reports complete
// once the boundary is fully emitted; a second flush with no intervening
// transform short-circuits without touching the engine.
func (c *Codec) Flush(out *buffer.Cursor) (bool, error) {
	if c.flushed {
		return true, nil
	}

	if _, err := c.advance(domain.FlushSync, buffer.NewCursor(nil), out); err != nil {
		return false, err
	}

	c.flushed = true

	// A full output may have truncated the boundary. Report incomplete so the
	// caller comes back with fresh capacity; the follow-up cycle drains the
	// remainder before the next boundary.
	return out.Remaining() > 0, nil
}

// Finish emits the session trailer. It reports complete once the engine
// signals end of stream; the codec must not be used afterwards.
func (c *Codec) Finish(out *buffer.Cursor) (bool, error) {
	c.flushed = false

	status, err := c.advance(domain.FlushFinish, buffer.NewCursor(nil), out)
	if err != nil {
		return false, err
	}

	switch status {
	case domain.StatusOK:
		return false, nil
	case domain.StatusStreamEnd:
		return true, nil
	case domain.StatusBufferStarved:
		return false, errors.NewStreamError(
			errors.ErrorStarvation, "finish",
			fmt.Errorf("engine made no progress with capacity on both sides"),
		)
	default:
		return false, errors.NewStreamError(
			errors.ErrorContract, "finish",
			fmt.Errorf("unknown engine status %v", status),
		)
	}
}
