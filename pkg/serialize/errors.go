package serialize

import "errors"

var (
	// ErrAllocation is returned when the buffer cannot be allocated or grown.
	ErrAllocation = errors.New("serialize: allocation failed")

	// ErrOutOfBounds is returned when a read needs more bytes than were written,
	// or when the caller's output capacity is too small.
	ErrOutOfBounds = errors.New("serialize: out of bounds")

	// ErrIO is returned when the buffer cannot be written to or read from storage.
	ErrIO = errors.New("serialize: i/o failure")

	// ErrInvalidArgument is returned for nil cursors, negative sizes and oversized strings.
	ErrInvalidArgument = errors.New("serialize: invalid argument")

	// ErrDestroyed is returned when a destroyed buffer is written to.
	ErrDestroyed = errors.New("serialize: buffer destroyed")

	// Snapshot errors
	ErrUnknownCompression = errors.New("serialize: unknown compression")
	ErrCorruptSnapshot    = errors.New("serialize: corrupt snapshot")
)
