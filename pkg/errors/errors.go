package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCategory classifies the failures a streaming codec session can
// surface. The category drives how callers should react: none of these are
// retried inside the stream core, but some are reasonable to retry at the
// application level with a fresh session.
type ErrorCategory int

const (
	// ErrorStarvation indicates the codec made no progress despite having
	// nonzero capacity on both the input and output side. This is a contract
	// violation by the codec implementation, never a transient condition.
	ErrorStarvation ErrorCategory = iota + 1

	// ErrorEngine indicates the underlying compression engine reported a
	// failure, such as corrupt or invalid internal state. The session is
	// unusable afterwards.
	ErrorEngine

	// ErrorSource indicates the upstream byte source failed. The error is
	// propagated verbatim; the scheduler neither interprets nor retries it.
	ErrorSource

	// ErrorContract indicates a programming error against the scheduler or
	// codec contract, such as polling after a fatal error or an engine status
	// that the contract declares unreachable.
	ErrorContract
)

// String returns the string representation of the error category.
// This is useful for logging, metrics, and error reporting.
func (c ErrorCategory) String() string {
	switch c {
	case ErrorStarvation:
		return "starvation"
	case ErrorEngine:
		return "engine"
	case ErrorSource:
		return "source"
	case ErrorContract:
		return "contract"
	default:
		return "unknown"
	}
}

// StreamError is the error type surfaced by poll operations. It carries the
// failing operation, the category, and the underlying cause.
type StreamError struct {
	Err       error
	Operation string
	Timestamp time.Time
	Category  ErrorCategory
}

// NewStreamError wraps err with its category and the operation that
// detected it.
func NewStreamError(category ErrorCategory, operation string, err error) *StreamError {
	return &StreamError{
		Err:       err,
		Category:  category,
		Operation: operation,
		Timestamp: time.Now(),
	}
}

func (e *StreamError) Error() string {
	return fmt.Sprintf("[%v] %s: %v", e.Category, e.Operation, e.Err)
}

func (e *StreamError) Unwrap() error {
	return e.Err
}

// IsRetryAble returns whether errors of this category can be retried.
// This helps callers decide whether to restart a failed session.
func (e *StreamError) IsRetryAble() bool {
	switch e.Category {
	case ErrorStarvation:
		// A codec that violates forward progress will do so again.
		return false
	case ErrorEngine:
		// Engine state is corrupt; the session cannot continue.
		return false
	case ErrorSource:
		// Source failures might be temporary (e.g., network issues); a new
		// session over a fresh source may succeed.
		return true
	case ErrorContract:
		// Contract violations are caller bugs.
		return false
	default:
		return false
	}
}

// IsStreamError checks if a given error is of type StreamError.
func IsStreamError(err error) bool {
	var se *StreamError
	return errors.As(err, &se)
}

// AsStreamError attempts to extract a StreamError from a given error.
func AsStreamError(err error) *StreamError {
	var se *StreamError
	if errors.As(err, &se) {
		return se
	}
	return nil
}
