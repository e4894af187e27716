package deflate

import (
	"bytes"
	"fmt"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zlib"

	"github.com/iamNilotpal/streampress/internal/core/domain"
	"github.com/iamNilotpal/streampress/pkg/errors"
)

// Compression level bounds for the DEFLATE family. Levels trade speed for
// ratio; the two negative levels select special modes of the underlying
// compressor.
const (
	HuffmanOnly   = flate.HuffmanOnly     // Entropy coding only, no matching.
	NoCompression = flate.NoCompression   // Stored blocks only.
	FastestLevel  = flate.BestSpeed       // Optimized for speed with minimal compression.
	DefaultLevel  = 6                     // Balanced between speed and compression ratio.
	BestLevel     = flate.BestCompression // Maximum compression ratio, higher CPU usage.
	MinLevel      = flate.HuffmanOnly     // Lowest accepted level value.
)

// Options configures a concrete deflate codec step.
type Options struct {
	// Level is the compression level, MinLevel through BestLevel.
	Level int

	// ZlibHeader wraps the stream in the minimal zlib container (2-byte
	// header plus Adler-32 trailer). When false the stream is headerless raw
	// DEFLATE, which produces a shorter frame.
	ZlibHeader bool
}

// DefaultOptions returns options that provide a good balance between
// compression ratio and speed for most use cases.
func DefaultOptions() Options {
	return Options{Level: DefaultLevel, ZlibHeader: true}
}

// Validate checks that the codec options are within acceptable bounds.
func Validate(input *domain.CodecOptions) error {
	if input.Level < MinLevel || input.Level > BestLevel {
		return errors.NewValidationError(
			"level", input.Level,
			fmt.Errorf("compression level must be between %d and %d, got %d", MinLevel, BestLevel, input.Level),
		)
	}
	return nil
}

func newCompressor(staging *bytes.Buffer, level int, zlibHeader bool) (compressor, error) {
	if zlibHeader {
		return zlib.NewWriterLevel(staging, level)
	}
	return flate.NewWriter(staging, level)
}
