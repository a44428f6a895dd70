package serialize

import (
	"encoding/binary"
	"fmt"
	"math"
)

// WriteInt8 appends v as one byte in two's complement.
func (b *Buffer) WriteInt8(v int8) error { return b.WriteUint8(uint8(v)) }

// WriteInt16 appends v in two's complement, little-endian.
func (b *Buffer) WriteInt16(v int16) error { return b.WriteUint16(uint16(v)) }

// WriteInt32 appends v in two's complement, little-endian.
func (b *Buffer) WriteInt32(v int32) error { return b.WriteUint32(uint32(v)) }

// WriteInt64 appends v in two's complement, little-endian.
func (b *Buffer) WriteInt64(v int64) error { return b.WriteUint64(uint64(v)) }

// WriteUint8 appends a single byte.
func (b *Buffer) WriteUint8(v uint8) error {
	dst, err := b.reserve(1)
	if err != nil {
		return err
	}
	dst[0] = v
	return nil
}

// WriteUint16 appends v in little-endian order.
func (b *Buffer) WriteUint16(v uint16) error {
	dst, err := b.reserve(2)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint16(dst, v)
	return nil
}

// WriteUint32 appends v in little-endian order.
func (b *Buffer) WriteUint32(v uint32) error {
	dst, err := b.reserve(4)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(dst, v)
	return nil
}

// WriteUint64 appends v in little-endian order.
func (b *Buffer) WriteUint64(v uint64) error {
	dst, err := b.reserve(8)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(dst, v)
	return nil
}

// WriteBool appends a single byte, 1 for true and 0 for false.
func (b *Buffer) WriteBool(v bool) error {
	if v {
		return b.WriteUint8(1)
	}
	return b.WriteUint8(0)
}

// WriteFloat32 appends the IEEE 754 bits of v.
func (b *Buffer) WriteFloat32(v float32) error { return b.WriteUint32(math.Float32bits(v)) }

// WriteFloat64 appends the IEEE 754 bits of v.
func (b *Buffer) WriteFloat64(v float64) error { return b.WriteUint64(math.Float64bits(v)) }

// WriteCString appends a uint32 length prefix followed by the bytes of s.
// No terminator is written.
func (b *Buffer) WriteCString(s string) error {
	if uint64(len(s)) > math.MaxUint32 {
		return fmt.Errorf("%w: string of %d bytes exceeds uint32 length prefix", ErrInvalidArgument, len(s))
	}

	size, ok := checkedAdd(4, len(s))
	if !ok {
		return fmt.Errorf("%w: size overflow for string of %d bytes", ErrAllocation, len(s))
	}

	dst, err := b.reserve(size)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(dst, uint32(len(s)))
	copy(dst[4:], s)
	return nil
}
