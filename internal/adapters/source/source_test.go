package source_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamNilotpal/streampress/internal/adapters/source"
	"github.com/iamNilotpal/streampress/internal/core/domain"
)

func TestReaderSource(t *testing.T) {
	s := source.NewReaderSource(bytes.NewReader([]byte("hello world")), 4)

	view, err := s.Peek()
	require.NoError(t, err)
	assert.Equal(t, []byte("hell"), view)

	// Peek without consuming returns the same view.
	view, err = s.Peek()
	require.NoError(t, err)
	assert.Equal(t, []byte("hell"), view)

	s.Consume(2)
	view, err = s.Peek()
	require.NoError(t, err)
	assert.Equal(t, []byte("ll"), view)

	// Draining the view triggers the next fill.
	s.Consume(2)
	view, err = s.Peek()
	require.NoError(t, err)
	assert.Equal(t, []byte("o wo"), view)
	s.Consume(4)

	view, err = s.Peek()
	require.NoError(t, err)
	assert.Equal(t, []byte("rld"), view)
	s.Consume(3)

	_, err = s.Peek()
	assert.ErrorIs(t, err, io.EOF)

	// Terminal results latch.
	_, err = s.Peek()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReaderSourceConsumeBeyondViewPanics(t *testing.T) {
	s := source.NewReaderSource(bytes.NewReader([]byte("ab")), 8)

	view, err := s.Peek()
	require.NoError(t, err)
	require.Len(t, view, 2)

	assert.Panics(t, func() { s.Consume(3) })
	assert.Panics(t, func() { s.Consume(-1) })
}

func TestReaderSourceWaitReady(t *testing.T) {
	s := source.NewReaderSource(bytes.NewReader(nil), 8)

	assert.NoError(t, s.WaitReady(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, s.WaitReady(ctx))
}

func TestChunkSource(t *testing.T) {
	s := source.NewChunkSource([]byte("abc"), []byte("def"))

	view, err := s.Peek()
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), view)

	// Partial consumption keeps the remainder available without a gap.
	s.Consume(1)
	view, err = s.Peek()
	require.NoError(t, err)
	assert.Equal(t, []byte("bc"), view)

	// Finishing the chunk opens exactly one not-ready gap.
	s.Consume(2)
	_, err = s.Peek()
	assert.ErrorIs(t, err, domain.ErrNotReady)

	view, err = s.Peek()
	require.NoError(t, err)
	assert.Equal(t, []byte("def"), view)

	// After the last chunk the source reports end-of-data, with no gap.
	s.Consume(3)
	_, err = s.Peek()
	assert.ErrorIs(t, err, io.EOF)
	_, err = s.Peek()
	assert.ErrorIs(t, err, io.EOF)
}

func TestChunkSourceEmpty(t *testing.T) {
	s := source.NewChunkSource()

	_, err := s.Peek()
	assert.ErrorIs(t, err, io.EOF)
}

func TestChunkSourceSkipsEmptyChunks(t *testing.T) {
	s := source.NewChunkSource([]byte{}, []byte("x"), []byte{})

	view, err := s.Peek()
	require.NoError(t, err)
	assert.Equal(t, []byte("x"), view)

	s.Consume(1)
	_, err = s.Peek()
	assert.ErrorIs(t, err, domain.ErrNotReady)

	_, err = s.Peek()
	assert.ErrorIs(t, err, io.EOF)
}

func TestChunkSourceConsumeBeyondViewPanics(t *testing.T) {
	s := source.NewChunkSource([]byte("ab"))

	_, err := s.Peek()
	require.NoError(t, err)

	assert.Panics(t, func() { s.Consume(5) })
}
