package domain

// FlushMode selects how much buffered state a compression engine must push
// out during a single advance call.
type FlushMode int

const (
	// FlushNone performs ordinary incremental compression. The engine may
	// retain arbitrary amounts of data internally.
	FlushNone FlushMode = iota

	// FlushSync forces everything buffered so far out to a sync boundary,
	// after which a downstream reader holds every byte corresponding to input
	// consumed before the flush. The session continues afterwards.
	FlushSync

	// FlushFinish emits the session's final framing and trailer and
	// permanently ends the session.
	FlushFinish
)

func (m FlushMode) String() string {
	switch m {
	case FlushNone:
		return "none"
	case FlushSync:
		return "sync"
	case FlushFinish:
		return "finish"
	default:
		return "unknown"
	}
}

// EngineStatus is the result an engine reports from one advance call,
// alongside its monotonic total-in/total-out counters.
type EngineStatus int

const (
	// StatusOK means the engine made progress and the session continues.
	StatusOK EngineStatus = iota

	// StatusStreamEnd means the session trailer has been fully emitted. Only
	// reachable under FlushFinish; observing it under FlushNone is a contract
	// violation.
	StatusStreamEnd

	// StatusBufferStarved means the engine made no progress despite having
	// capacity on both sides. Always fatal: it violates the forward-progress
	// guarantee of the codec contract.
	StatusBufferStarved
)

func (s EngineStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusStreamEnd:
		return "stream-end"
	case StatusBufferStarved:
		return "buffer-starved"
	default:
		return "unknown"
	}
}

// CodecOptions configures a concrete codec step instance.
type CodecOptions struct {
	// Level is the DEFLATE compression level. See the deflate adapter for the
	// accepted range.
	Level int

	// ZlibHeader selects the minimal zlib container (header + checksum
	// trailer) instead of the headerless raw DEFLATE format.
	ZlibHeader bool
}
