package main

import (
	"context"
	"io"
	"os"

	"github.com/iamNilotpal/streampress/config"
	"github.com/iamNilotpal/streampress/internal/adapters/deflate"
	"github.com/iamNilotpal/streampress/internal/adapters/source"
	"github.com/iamNilotpal/streampress/internal/core/services/stream"
	"github.com/iamNilotpal/streampress/pkg/errors"
	"github.com/iamNilotpal/streampress/pkg/logger"
)

func main() {
	logger := logger.New("streampress")
	defer logger.Sync()

	cfg := config.DefaultConfig()

	codec, err := deflate.New(deflate.Options{
		Level:      cfg.Codec.Level,
		ZlibHeader: cfg.Codec.ZlibHeader,
	})
	if err != nil {
		if errors.IsValidationError(err) {
			err := errors.AsValidationError(err)
			logger.Infow("create codec error", "field", err.Field, "value", err.Value, "error", err.Err)
		} else {
			logger.Infow("create codec error", "error", err)
		}
		os.Exit(1)
	}

	sched, err := stream.New(stream.Options{
		Codec:  codec,
		Source: source.NewReaderSource(os.Stdin, cfg.ReadBufferSize),
		Logger: logger,
	})
	if err != nil {
		logger.Infow("create stream error", "error", err)
		os.Exit(1)
	}

	n, err := io.Copy(os.Stdout, stream.NewReader(context.Background(), sched))
	if err != nil {
		logger.Infow("stream error", "error", err)
		os.Exit(1)
	}

	logger.Infow("stream complete", "bytes_out", n)
}
