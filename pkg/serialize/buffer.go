package serialize

import (
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/soapkit/pkg/logger"
)

// DefaultMaxCapacity bounds buffer growth unless WithMaxCapacity is given.
const DefaultMaxCapacity = 1 << 30

// Buffer is a growable byte buffer. Only the first Len bytes are meaningful;
// the remaining capacity is never exposed to readers.
type Buffer struct {
	data        []byte // len(data) is the capacity
	length      int
	maxCapacity int
	log         *slog.Logger
}

// Option configures a Buffer.
type Option func(*Buffer)

// WithMaxCapacity sets the growth limit. Non-positive values are ignored.
func WithMaxCapacity(n int) Option {
	return func(b *Buffer) {
		if n > 0 {
			b.maxCapacity = n
		}
	}
}

// WithLogger injects a logger for growth and persistence events.
func WithLogger(l *slog.Logger) Option {
	return func(b *Buffer) {
		if l != nil {
			b.log = l
		}
	}
}

// New allocates a buffer with the given initial capacity.
// A zero or negative capacity, or one above the maximum, fails with ErrAllocation.
func New(initialCapacity int, opts ...Option) (*Buffer, error) {
	b := &Buffer{
		maxCapacity: DefaultMaxCapacity,
		log:         logger.Discard(),
	}
	for _, opt := range opts {
		opt(b)
	}

	if initialCapacity <= 0 {
		return nil, fmt.Errorf("%w: %w: initial capacity must be positive, got %d",
			ErrAllocation, ErrInvalidArgument, initialCapacity)
	}
	if initialCapacity > b.maxCapacity {
		return nil, fmt.Errorf("%w: initial capacity %d exceeds limit %d",
			ErrAllocation, initialCapacity, b.maxCapacity)
	}

	b.data = make([]byte, initialCapacity)
	b.log = b.log.With(logger.Component("serialize"))
	return b, nil
}

// Len returns the number of bytes written.
func (b *Buffer) Len() int { return b.length }

// Cap returns the allocated capacity.
func (b *Buffer) Cap() int { return len(b.data) }

// Bytes returns a copy of the written bytes.
func (b *Buffer) Bytes() []byte {
	out := make([]byte, b.length)
	copy(out, b.data[:b.length])
	return out
}

// Reset discards written bytes but keeps the allocated capacity.
func (b *Buffer) Reset() {
	b.length = 0
}

// Destroy releases the owned storage. Subsequent writes fail with ErrDestroyed
// and reads fail with ErrOutOfBounds.
func (b *Buffer) Destroy() {
	b.data = nil
	b.length = 0
}

// Expand makes room for at least additional more bytes. It is a no-op when the
// free capacity already suffices.
func (b *Buffer) Expand(additional int) error {
	if additional < 0 {
		return fmt.Errorf("%w: negative expansion %d", ErrInvalidArgument, additional)
	}
	return b.grow(additional)
}

// grow ensures n more bytes fit after the written length.
func (b *Buffer) grow(n int) error {
	if b.data == nil {
		return ErrDestroyed
	}
	if n <= len(b.data)-b.length {
		return nil
	}

	required, ok := checkedAdd(b.length, n)
	if !ok {
		return fmt.Errorf("%w: size overflow growing %d by %d", ErrAllocation, b.length, n)
	}

	return b.reallocate(required)
}

// reallocate grows capacity to hold at least required bytes, doubling when the
// limit allows. The written bytes are preserved.
func (b *Buffer) reallocate(required int) error {
	if required <= len(b.data) {
		return nil
	}
	if required > b.maxCapacity {
		return fmt.Errorf("%w: %d bytes required, limit is %d", ErrAllocation, required, b.maxCapacity)
	}

	newCap := b.maxCapacity
	if doubled, ok := checkedAdd(len(b.data), len(b.data)); ok && doubled < b.maxCapacity {
		newCap = doubled
	}
	newCap = max(newCap, required)

	data := make([]byte, newCap)
	copy(data, b.data[:b.length])

	b.log.Debug("buffer grown",
		logger.Capacity(newCap),
		slog.Int("previous_capacity", len(b.data)),
		logger.Bytes(b.length),
	)

	b.data = data
	return nil
}

// reserve grows the buffer if needed and returns the next n bytes, already
// counted as written. Nothing is committed when growth fails.
func (b *Buffer) reserve(n int) ([]byte, error) {
	if err := b.grow(n); err != nil {
		return nil, err
	}
	dst := b.data[b.length : b.length+n]
	b.length += n
	return dst, nil
}

// replace swaps the written content for data, growing as needed.
func (b *Buffer) replace(data []byte) error {
	if b.data == nil {
		return ErrDestroyed
	}
	if err := b.reallocate(len(data)); err != nil {
		return err
	}
	copy(b.data, data)
	b.length = len(data)
	return nil
}

func checkedAdd(a, b int) (int, bool) {
	sum := a + b
	if sum < a {
		return 0, false
	}
	return sum, true
}
