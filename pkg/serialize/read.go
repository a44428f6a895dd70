package serialize

import (
	"encoding/binary"
	"fmt"
	"math"
)

// take returns the n bytes at *offset and advances the cursor.
// On error the cursor is left untouched.
func (b *Buffer) take(offset *int, n int) ([]byte, error) {
	if offset == nil {
		return nil, fmt.Errorf("%w: nil offset", ErrInvalidArgument)
	}
	off := *offset
	if off < 0 || off > b.length || b.length-off < n {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, length is %d", ErrOutOfBounds, n, off, b.length)
	}
	*offset = off + n
	return b.data[off : off+n], nil
}

// ReadInt8 reads an 8-bit signed integer and advances offset.
func (b *Buffer) ReadInt8(offset *int) (int8, error) {
	v, err := b.ReadUint8(offset)
	return int8(v), err
}

// ReadInt16 reads a 16-bit signed integer and advances offset.
func (b *Buffer) ReadInt16(offset *int) (int16, error) {
	v, err := b.ReadUint16(offset)
	return int16(v), err
}

// ReadInt32 reads a 32-bit signed integer and advances offset.
func (b *Buffer) ReadInt32(offset *int) (int32, error) {
	v, err := b.ReadUint32(offset)
	return int32(v), err
}

// ReadInt64 reads a 64-bit signed integer and advances offset.
func (b *Buffer) ReadInt64(offset *int) (int64, error) {
	v, err := b.ReadUint64(offset)
	return int64(v), err
}

// ReadUint8 reads an 8-bit unsigned integer and advances offset.
func (b *Buffer) ReadUint8(offset *int) (uint8, error) {
	src, err := b.take(offset, 1)
	if err != nil {
		return 0, err
	}
	return src[0], nil
}

// ReadUint16 reads a 16-bit unsigned integer and advances offset.
func (b *Buffer) ReadUint16(offset *int) (uint16, error) {
	src, err := b.take(offset, 2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(src), nil
}

// ReadUint32 reads a 32-bit unsigned integer and advances offset.
func (b *Buffer) ReadUint32(offset *int) (uint32, error) {
	src, err := b.take(offset, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(src), nil
}

// ReadUint64 reads a 64-bit unsigned integer and advances offset.
func (b *Buffer) ReadUint64(offset *int) (uint64, error) {
	src, err := b.take(offset, 8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(src), nil
}

// ReadBool reads one byte; any nonzero value is true.
func (b *Buffer) ReadBool(offset *int) (bool, error) {
	v, err := b.ReadUint8(offset)
	return v != 0, err
}

// ReadFloat32 reads 4 bytes of IEEE 754 bits and advances offset.
func (b *Buffer) ReadFloat32(offset *int) (float32, error) {
	v, err := b.ReadUint32(offset)
	return math.Float32frombits(v), err
}

// ReadFloat64 reads 8 bytes of IEEE 754 bits and advances offset.
func (b *Buffer) ReadFloat64(offset *int) (float64, error) {
	v, err := b.ReadUint64(offset)
	return math.Float64frombits(v), err
}

// ReadCString decodes a length-prefixed string. The caller's capacity counts a
// terminator, so strings longer than capacity-1 bytes fail with ErrOutOfBounds.
func (b *Buffer) ReadCString(offset *int, capacity int) (string, error) {
	payload, err := b.cstring(offset, capacity)
	if err != nil {
		return "", err
	}
	return string(payload), nil
}

// ReadCStringInto decodes a length-prefixed string into out followed by a NUL
// byte and returns the string length. Strings that do not fit in out with the
// terminator fail with ErrOutOfBounds and leave out untouched.
func (b *Buffer) ReadCStringInto(offset *int, out []byte) (int, error) {
	payload, err := b.cstring(offset, len(out))
	if err != nil {
		return 0, err
	}
	n := copy(out, payload)
	out[n] = 0
	return n, nil
}

func (b *Buffer) cstring(offset *int, capacity int) ([]byte, error) {
	if offset == nil {
		return nil, fmt.Errorf("%w: nil offset", ErrInvalidArgument)
	}

	pos := *offset
	prefix, err := b.take(&pos, 4)
	if err != nil {
		return nil, err
	}

	n := uint64(binary.LittleEndian.Uint32(prefix))
	if remaining := uint64(b.length - pos); n > remaining {
		return nil, fmt.Errorf("%w: string of %d bytes at offset %d, %d remaining", ErrOutOfBounds, n, *offset, remaining)
	}
	if capacity <= 0 || n > uint64(capacity-1) {
		return nil, fmt.Errorf("%w: string of %d bytes does not fit capacity %d", ErrOutOfBounds, n, capacity)
	}

	payload, err := b.take(&pos, int(n))
	if err != nil {
		return nil, err
	}
	*offset = pos
	return payload, nil
}
