package ports

import "github.com/iamNilotpal/streampress/pkg/buffer"

// CodecStep is the contract every incremental codec must satisfy to be
// driven by the streaming scheduler. All three operations are synchronous,
// bounded-time CPU work over the supplied cursors; none may block.
//
// Implementations own whatever state one logical session needs, for the
// lifetime of that session. They must never retain the cursors they are
// handed: each cursor is scoped to a single call.
type CodecStep interface {
	// Transform consumes a prefix of in.Unwritten() and produces a prefix of
	// out.Unwritten(), advancing both cursors by the amounts actually
	// handled. Whenever both sides have nonzero capacity it must make forward
	// progress on at least one of them. It may consume nothing when output
	// capacity is zero and produce nothing when input is empty. An error is
	// fatal for the session.
	Transform(in, out *buffer.Cursor) error

	// Flush forces internally buffered, not-yet-emitted data out to a sync
	// boundary without ending the session. It returns true once the boundary
	// has been fully emitted and false when output capacity ran out first, in
	// which case the caller must call again with fresh capacity. Calling
	// Flush repeatedly without an intervening Transform must not emit the
	// boundary again.
	Flush(out *buffer.Cursor) (bool, error)

	// Finish emits the session's final framing and trailer. It returns true
	// once fully emitted and false when output capacity ran out first. After
	// it returns true the codec must not be used again.
	Finish(out *buffer.Cursor) (bool, error)
}
