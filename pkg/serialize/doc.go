// Package serialize implements a growable binary buffer with typed,
// fixed-width encode/decode helpers and file persistence.
//
// Values are appended in call order with no embedded schema. Readers must
// decode in the same order and with the same types, tracking their position in
// an external cursor:
//
//	buf, err := serialize.New(64)
//	if err != nil {
//		return err
//	}
//	defer buf.Destroy()
//
//	_ = buf.WriteInt32(-7)
//	_ = buf.WriteBool(true)
//	_ = buf.WriteCString("hello")
//
//	offset := 0
//	n, _ := buf.ReadInt32(&offset)         // -7, offset == 4
//	ok, _ := buf.ReadBool(&offset)         // true, offset == 5
//	s, _ := buf.ReadCString(&offset, 256)  // "hello"
//
// # Wire format
//
// Integers and floats are little-endian and occupy exactly 1, 2, 4 or 8 bytes.
// Booleans are a single byte, written as 1 or 0; any nonzero byte reads back as
// true. Strings are a uint32 little-endian length followed by the raw bytes,
// without a terminator.
//
// # Growth
//
// Writes that do not fit grow the buffer to the larger of twice the current
// capacity and the exact size required. Growth uses checked arithmetic and is
// bounded by a maximum capacity (DefaultMaxCapacity unless WithMaxCapacity is
// given); exceeding it fails with ErrAllocation and leaves the buffer as it
// was. A value is either appended in full or not at all.
//
// # Reads
//
// Reads are bounds-checked against the written length, never the allocated
// capacity. A failed read returns ErrOutOfBounds and leaves the cursor where it
// was, so a buffer can be decoded any number of times by independent cursors.
//
// # Persistence
//
// ToFile and FromFile write and load exactly the written bytes. Save and Load
// do the same through any file.Storage. Snapshot and Restore wrap the bytes in a
// small header and compress them with lz4 or zstd.
//
// A Buffer has a single owner and is not safe for concurrent use.
package serialize
