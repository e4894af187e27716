// Package source provides ByteSource adapters over common upstream shapes:
// ordinary blocking readers and scripted chunk feeds with readiness gaps.
package source

import (
	"context"
	"fmt"
	"io"
)

// DefaultBufferSize is the read buffer capacity used when none is given.
const DefaultBufferSize = 32 * 1024

// ReaderSource adapts an io.Reader to the ByteSource port. Peek performs a
// blocking read when its buffer is empty, so this source never reports
// not-ready; it suits upstreams where blocking the polling goroutine is
// acceptable.
type ReaderSource struct {
	r    io.Reader
	buf  []byte
	view []byte // Unconsumed tail of the last fill.
	err  error  // Latched terminal error, io.EOF included.
}

// NewReaderSource wraps r with a read buffer of the given capacity.
// Non-positive capacities fall back to DefaultBufferSize.
func NewReaderSource(r io.Reader, capacity int) *ReaderSource {
	if capacity <= 0 {
		capacity = DefaultBufferSize
	}
	return &ReaderSource{r: r, buf: make([]byte, capacity)}
}

// Peek returns the currently buffered bytes, filling from the reader when
// empty. Once the reader fails or ends, the same result is returned forever.
func (s *ReaderSource) Peek() ([]byte, error) {
	if len(s.view) > 0 {
		return s.view, nil
	}
	if s.err != nil {
		return nil, s.err
	}

	for {
		n, err := s.r.Read(s.buf)
		if n > 0 {
			s.view = s.buf[:n]
			return s.view, nil
		}
		if err != nil {
			s.err = err
			return nil, err
		}
		// Readers may legally return (0, nil); try again.
	}
}

// Consume marks the first n bytes of the current view as consumed.
func (s *ReaderSource) Consume(n int) {
	if n < 0 || n > len(s.view) {
		panic(fmt.Sprintf("source: consume %d beyond buffered %d", n, len(s.view)))
	}
	s.view = s.view[n:]
}

// WaitReady implements the ReadyWaiter capability. The source blocks inside
// Peek instead, so readiness is immediate.
func (s *ReaderSource) WaitReady(ctx context.Context) error {
	return ctx.Err()
}
