// Package deflate binds the streaming codec contract to a DEFLATE-family
// compression engine. The engine adapter exposes the single advance/status/
// counter primitive; the codec adapter on top of it reconciles the engine's
// absolute counters into cursor advances.
package deflate

import (
	"bytes"
	"fmt"
	"io"

	"github.com/iamNilotpal/streampress/internal/core/domain"
	"github.com/iamNilotpal/streampress/pkg/pool"
)

// compressor is the narrow surface shared by the flate and zlib writers.
type compressor interface {
	io.Writer
	Flush() error
	Close() error
}

// stagingPool supplies the staging buffers shared by all engine instances.
var stagingPool = pool.NewBufferPool(32 * 1024)

// Engine adapts a flate or zlib writer to the advance primitive. The
// underlying writers push compressed bytes eagerly into a staging buffer
// while callers hand out bounded output regions, so each advance call drains
// at most the caller's capacity from staging and accounts for it in the
// monotonic session counters.
type Engine struct {
	w        compressor
	staging  *bytes.Buffer // Compressed bytes not yet handed to a caller.
	totalIn  uint64        // Session total of consumed input bytes.
	totalOut uint64        // Session total of produced output bytes.
	synced   bool          // Sync boundary already emitted for the current quiescence.
	closed   bool          // Close already issued on the underlying writer.
}

// NewEngine creates an engine for the given compression level. When
// zlibHeader is true output is wrapped in the minimal zlib container;
// otherwise it is headerless raw DEFLATE.
func NewEngine(level int, zlibHeader bool) (*Engine, error) {
	staging := stagingPool.Get()

	w, err := newCompressor(staging, level, zlibHeader)
	if err != nil {
		stagingPool.Put(staging)
		return nil, fmt.Errorf("failed to create compressor: %w", err)
	}

	return &Engine{w: w, staging: staging}, nil
}

// Advance runs one engine step: feed in, apply the flush mode, then drain
// staged bytes into out bounded by its capacity. Progress is reported through
// the TotalIn/TotalOut counters only.
func (e *Engine) Advance(mode domain.FlushMode, in, out []byte) (domain.EngineStatus, error) {
	if e.closed && mode != domain.FlushFinish {
		return domain.StatusOK, fmt.Errorf("advance in mode %v after session end", mode)
	}

	if len(in) > 0 {
		n, err := e.w.Write(in)
		e.totalIn += uint64(n)
		if err != nil {
			return domain.StatusOK, fmt.Errorf("compress write: %w", err)
		}
		e.synced = false
	}

	switch mode {
	case domain.FlushSync:
		// One boundary per quiescence. Re-draining an interrupted flush must
		// not emit another empty sync block.
		if !e.synced {
			if err := e.w.Flush(); err != nil {
				return domain.StatusOK, fmt.Errorf("sync flush: %w", err)
			}
			e.synced = true
		}
	case domain.FlushFinish:
		if !e.closed {
			if err := e.w.Close(); err != nil {
				return domain.StatusOK, fmt.Errorf("finalize: %w", err)
			}
			e.closed = true
		}
	}

	n := copy(out, e.staging.Bytes())
	e.staging.Next(n)
	e.totalOut += uint64(n)

	if mode == domain.FlushFinish && e.staging.Len() == 0 {
		return domain.StatusStreamEnd, nil
	}
	return domain.StatusOK, nil
}

// TotalIn returns the total bytes consumed over the session.
func (e *Engine) TotalIn() uint64 { return e.totalIn }

// TotalOut returns the total bytes produced over the session.
func (e *Engine) TotalOut() uint64 { return e.totalOut }

// Release returns the staging buffer to the pool. The engine must not be
// used afterwards.
func (e *Engine) Release() {
	if e.staging != nil {
		stagingPool.Put(e.staging)
		e.staging = nil
	}
}
