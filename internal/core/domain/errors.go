package domain

import "errors"

// ErrNotReady reports that the upstream source has nothing buffered yet but
// has not reached end-of-data. Callers should re-poll once the source signals
// readiness; no state is lost across the suspension.
var ErrNotReady = errors.New("source not ready")
