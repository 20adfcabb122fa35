// Package batch provides chunked processing for large row imports, so a
// session import can report progress and honor cancellation between chunks
// instead of disappearing into one long loop.
package batch

import (
	"context"
	"errors"
	"fmt"
)

// Chunk size bounds.
const (
	// DefaultChunkSize is the default number of rows per chunk.
	DefaultChunkSize = 100

	// MinChunkSize is the minimum allowed chunk size.
	MinChunkSize = 1

	// MaxChunkSize is the maximum allowed chunk size.
	MaxChunkSize = 1000
)

// Processing errors.
var (
	ErrInvalidChunkSize = errors.New("chunk size must be between 1 and 1000")
	ErrNilCallback      = errors.New("chunk callback cannot be nil")
)

// ChunkFunc processes one chunk of items. offset is the index of the first
// item of the chunk within the full input, so callbacks can report absolute
// positions in errors.
type ChunkFunc[T any] func(ctx context.Context, chunk []T, offset int) error

// ProgressFunc is invoked after each chunk completes.
type ProgressFunc func(p Progress)

// Processor splits a slice into fixed-size chunks and processes them
// sequentially, stopping on the first error.
type Processor[T any] struct {
	chunkSize  int
	onProgress ProgressFunc
}

// NewProcessor creates a Processor with the given chunk size.
func NewProcessor[T any](chunkSize int) (*Processor[T], error) {
	if chunkSize < MinChunkSize || chunkSize > MaxChunkSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidChunkSize, chunkSize)
	}
	return &Processor[T]{chunkSize: chunkSize}, nil
}

// NewProcessorWithDefaults creates a Processor with DefaultChunkSize.
func NewProcessorWithDefaults[T any]() *Processor[T] {
	return &Processor[T]{chunkSize: DefaultChunkSize}
}

// WithProgress sets a progress callback and returns the processor.
func (p *Processor[T]) WithProgress(fn ProgressFunc) *Processor[T] {
	p.onProgress = fn
	return p
}

// ChunkSize returns the configured chunk size.
func (p *Processor[T]) ChunkSize() int {
	return p.chunkSize
}

// Process runs fn over items chunk by chunk. An empty input is a no-op.
// Context cancellation is checked between chunks; the first callback error
// aborts processing and is returned unwrapped so callers can inspect it.
func (p *Processor[T]) Process(ctx context.Context, items []T, fn ChunkFunc[T]) error {
	if fn == nil {
		return ErrNilCallback
	}

	progress := Progress{TotalItems: len(items), TotalChunks: p.totalChunks(len(items))}

	for start := 0; start < len(items); start += p.chunkSize {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		end := min(start+p.chunkSize, len(items))
		if err := fn(ctx, items[start:end], start); err != nil {
			return err
		}

		progress.Processed = end
		progress.ChunksDone++
		if p.onProgress != nil {
			p.onProgress(progress)
		}
	}

	return nil
}

// totalChunks returns the number of chunks needed for n items.
func (p *Processor[T]) totalChunks(n int) int {
	chunks := n / p.chunkSize
	if n%p.chunkSize > 0 {
		chunks++
	}
	return chunks
}
