package ports

import "context"

// ByteSource is the upstream collaborator a scheduler pulls from. It mirrors
// a buffered reader that can be observed without blocking.
type ByteSource interface {
	// Peek returns a view of the bytes currently buffered upstream without
	// blocking. It returns domain.ErrNotReady when the source would block,
	// io.EOF at end-of-data, and otherwise a non-empty view that remains
	// valid and unchanged until the bytes are marked consumed.
	Peek() ([]byte, error)

	// Consume marks the first n bytes of the current Peek view as consumed.
	// Consuming more than Peek returned is a programming error.
	Consume(n int)
}

// ReadyWaiter is an optional ByteSource capability. Sources that know how to
// block until data arrives implement it so blocking facades can suspend
// between polls instead of spinning.
type ReadyWaiter interface {
	// WaitReady blocks until the source may have data buffered, or until the
	// context is cancelled.
	WaitReady(ctx context.Context) error
}
