// Package buffer provides the bounded cursor used to track partial progress
// over borrowed byte regions. A cursor is pure accounting: it never copies,
// never reallocates, and never owns the memory it describes.
package buffer

import "fmt"

// Cursor wraps a borrowed byte region and a single position index. The region
// before the position has already been handled (written into an output, or
// consumed from an input); the region after it is the capacity still
// available. The same type serves both directions.
//
// A Cursor is scoped to a single poll invocation. It must never be stored
// inside a codec or scheduler, and it must never outlive the call frame that
// constructed it.
type Cursor struct {
	buf []byte // Borrowed region; owned by the caller.
	pos int    // Bytes already written (output) or consumed (input).
}

// NewCursor wraps region with the position at zero. A nil region is a valid
// zero-capacity cursor.
func NewCursor(region []byte) *Cursor {
	return &Cursor{buf: region}
}

// Written returns the prefix that has already been handled in this pass.
func (c *Cursor) Written() []byte {
	return c.buf[:c.pos]
}

// Unwritten returns the capacity still available.
func (c *Cursor) Unwritten() []byte {
	return c.buf[c.pos:]
}

// Advance moves the position forward by n. It is the only mutator. Advancing
// past the end of the region, or by a negative amount, is a programming error
// and panics rather than returning a recoverable error.
func (c *Cursor) Advance(n int) {
	if n < 0 || n > len(c.buf)-c.pos {
		panic(fmt.Sprintf(
			"buffer: advance by %d outside remaining capacity %d", n, len(c.buf)-c.pos,
		))
	}
	c.pos += n
}

// Pos returns how many bytes have been handled so far.
func (c *Cursor) Pos() int {
	return c.pos
}

// Len returns the full capacity of the underlying region.
func (c *Cursor) Len() int {
	return len(c.buf)
}

// Remaining returns how much capacity is still available.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.pos
}

// Full reports whether the region's capacity is exhausted.
func (c *Cursor) Full() bool {
	return c.pos == len(c.buf)
}
