package source

import (
	"context"
	"fmt"
	"io"

	"github.com/iamNilotpal/streampress/internal/core/domain"
)

// ChunkSource feeds a scripted sequence of chunks, reporting not-ready once
// between consecutive chunks. It models an upstream that delivers data in
// bursts with quiescence periods in between, which is exactly the shape a
// scheduler must handle without losing bytes or spinning.
type ChunkSource struct {
	chunks [][]byte
	view   []byte // Unconsumed tail of the current chunk.
	gap    bool   // Next Peek reports not-ready before the next chunk.
}

// NewChunkSource builds a source that yields the given chunks in order. The
// chunks are borrowed, not copied; callers must not mutate them while the
// source is in use.
func NewChunkSource(chunks ...[]byte) *ChunkSource {
	return &ChunkSource{chunks: chunks}
}

// Peek returns the unconsumed remainder of the current chunk, not-ready
// exactly once at each inter-chunk gap, and io.EOF after the last chunk.
func (s *ChunkSource) Peek() ([]byte, error) {
	if s.gap {
		s.gap = false
		return nil, domain.ErrNotReady
	}
	// Empty chunks are skipped: an empty Peek view means end-of-data to the
	// consumer, and only chunk exhaustion may signal that.
	for len(s.view) == 0 {
		if len(s.chunks) == 0 {
			return nil, io.EOF
		}
		s.view = s.chunks[0]
		s.chunks = s.chunks[1:]
	}
	return s.view, nil
}

// Consume marks the first n bytes of the current chunk as consumed. Finishing
// a chunk opens a quiescence gap before the next one.
func (s *ChunkSource) Consume(n int) {
	if n < 0 || n > len(s.view) {
		panic(fmt.Sprintf("source: consume %d beyond buffered %d", n, len(s.view)))
	}

	s.view = s.view[n:]
	if len(s.view) == 0 && len(s.chunks) > 0 {
		s.gap = true
	}
}

// WaitReady implements the ReadyWaiter capability. Gaps clear on the next
// Peek, so readiness is immediate.
func (s *ChunkSource) WaitReady(ctx context.Context) error {
	return ctx.Err()
}
