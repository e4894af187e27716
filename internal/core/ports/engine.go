package ports

import "github.com/iamNilotpal/streampress/internal/core/domain"

// DeflateEngine is the capability expected from an external DEFLATE-family
// compression engine. It exposes a single advance primitive that consumes
// from an input view, produces into an output view under the given flush
// mode, and communicates progress through absolute monotonic counters rather
// than per-call deltas. Adapters reconcile the counters into cursor advances
// by snapshotting them before and after each call.
type DeflateEngine interface {
	// Advance runs one engine step. It consumes a prefix of in, writes a
	// prefix of out, and reports the resulting status. Progress is reflected
	// in TotalIn/TotalOut, never returned directly.
	Advance(mode domain.FlushMode, in, out []byte) (domain.EngineStatus, error)

	// TotalIn returns the total bytes consumed over the session so far.
	// Monotonically non-decreasing.
	TotalIn() uint64

	// TotalOut returns the total bytes produced over the session so far.
	// Monotonically non-decreasing.
	TotalOut() uint64
}
