package serialize

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/dmitrymomot/soapkit/pkg/file"
	"github.com/dmitrymomot/soapkit/pkg/logger"
)

// Compression selects the snapshot payload codec.
type Compression uint8

const (
	CompressionNone Compression = 0
	CompressionLZ4  Compression = 1
	CompressionZstd Compression = 2
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZstd:
		return "zstd"
	default:
		return fmt.Sprintf("compression(%d)", uint8(c))
	}
}

// ParseCompression maps "none", "lz4" or "zstd" to a Compression.
func ParseCompression(name string) (Compression, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return CompressionNone, nil
	case "lz4":
		return CompressionLZ4, nil
	case "zstd":
		return CompressionZstd, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCompression, name)
	}
}

// Snapshot layout: magic "SNAP" | compression tag (1 byte) | raw length (uint64 LE) | payload.
const snapshotHeaderSize = 4 + 1 + 8

var snapshotMagic = [4]byte{'S', 'N', 'A', 'P'}

var errIncompressible = errors.New("payload is incompressible")

var zstdCodec = sync.OnceValues(func() (*zstd.Encoder, *zstd.Decoder) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic(fmt.Sprintf("serialize: failed to create zstd encoder: %v", err))
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		panic(fmt.Sprintf("serialize: failed to create zstd decoder: %v", err))
	}
	return enc, dec
})

// Snapshot encodes the written bytes with a header and the requested
// compression. Payloads that do not shrink are stored uncompressed.
func (b *Buffer) Snapshot(c Compression) ([]byte, error) {
	raw := b.data[:b.length]

	payload, used, err := compress(raw, c)
	if err != nil {
		return nil, err
	}

	out := make([]byte, snapshotHeaderSize+len(payload))
	copy(out, snapshotMagic[:])
	out[4] = byte(used)
	binary.LittleEndian.PutUint64(out[5:snapshotHeaderSize], uint64(len(raw)))
	copy(out[snapshotHeaderSize:], payload)

	b.log.Debug("snapshot encoded",
		logger.Bytes(len(raw)),
		slog.String("compression", used.String()),
		slog.Int("encoded_bytes", len(out)),
	)
	return out, nil
}

// Restore replaces the buffer contents with a decoded snapshot.
// On failure the buffer is left unchanged.
func (b *Buffer) Restore(snapshot []byte) error {
	if b.data == nil {
		return ErrDestroyed
	}
	if len(snapshot) < snapshotHeaderSize || [4]byte(snapshot[:4]) != snapshotMagic {
		return fmt.Errorf("%w: missing header", ErrCorruptSnapshot)
	}

	c := Compression(snapshot[4])
	rawLen := binary.LittleEndian.Uint64(snapshot[5:snapshotHeaderSize])
	if rawLen > uint64(b.maxCapacity) {
		return fmt.Errorf("%w: snapshot of %d bytes exceeds limit %d", ErrAllocation, rawLen, b.maxCapacity)
	}

	raw, err := decompress(snapshot[snapshotHeaderSize:], c, int(rawLen))
	if err != nil {
		return err
	}
	return b.replace(raw)
}

// ToSnapshotFile writes a compressed snapshot to path.
func (b *Buffer) ToSnapshotFile(path string, c Compression) error {
	return b.SaveSnapshot(context.Background(), file.Disk{}, path, c)
}

// FromSnapshotFile restores the buffer from a snapshot file.
func (b *Buffer) FromSnapshotFile(path string) error {
	return b.LoadSnapshot(context.Background(), file.Disk{}, path)
}

// SaveSnapshot writes a compressed snapshot to path in storage.
func (b *Buffer) SaveSnapshot(ctx context.Context, storage file.Storage, path string, c Compression) error {
	if storage == nil {
		return fmt.Errorf("%w: nil storage", ErrInvalidArgument)
	}

	snap, err := b.Snapshot(c)
	if err != nil {
		return err
	}
	if err := storage.Write(ctx, path, snap); err != nil {
		b.log.WarnContext(ctx, "failed to save snapshot", logger.Path(path), logger.Error(err))
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}

// LoadSnapshot restores the buffer from a snapshot stored at path.
func (b *Buffer) LoadSnapshot(ctx context.Context, storage file.Storage, path string) error {
	if storage == nil {
		return fmt.Errorf("%w: nil storage", ErrInvalidArgument)
	}

	snap, err := storage.Read(ctx, path)
	if err != nil {
		b.log.WarnContext(ctx, "failed to load snapshot", logger.Path(path), logger.Error(err))
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return b.Restore(snap)
}

// compress returns the payload and the codec actually used.
func compress(raw []byte, c Compression) ([]byte, Compression, error) {
	var (
		out []byte
		err error
	)
	switch c {
	case CompressionNone:
		return raw, CompressionNone, nil
	case CompressionLZ4:
		out, err = compressLZ4(raw)
	case CompressionZstd:
		out, err = compressZstd(raw)
	default:
		return nil, 0, fmt.Errorf("%w: %s", ErrUnknownCompression, c)
	}

	if errors.Is(err, errIncompressible) {
		return raw, CompressionNone, nil
	}
	if err != nil {
		return nil, 0, err
	}
	return out, c, nil
}

func decompress(payload []byte, c Compression, rawLen int) ([]byte, error) {
	switch c {
	case CompressionNone:
		if len(payload) != rawLen {
			return nil, fmt.Errorf("%w: payload is %d bytes, header says %d", ErrCorruptSnapshot, len(payload), rawLen)
		}
		return payload, nil
	case CompressionLZ4:
		return decompressLZ4(payload, rawLen)
	case CompressionZstd:
		return decompressZstd(payload, rawLen)
	default:
		return nil, fmt.Errorf("%w: tag %d", ErrUnknownCompression, uint8(c))
	}
}

func compressLZ4(raw []byte) ([]byte, error) {
	dst := make([]byte, lz4.CompressBlockBound(len(raw)))
	n, err := lz4.CompressBlock(raw, dst, nil)
	if err != nil {
		return nil, fmt.Errorf("lz4 compress: %w", err)
	}
	if n == 0 || n >= len(raw) {
		return nil, errIncompressible
	}
	return dst[:n], nil
}

func decompressLZ4(payload []byte, rawLen int) ([]byte, error) {
	dst := make([]byte, rawLen)
	n, err := lz4.UncompressBlock(payload, dst)
	if err != nil {
		return nil, fmt.Errorf("%w: lz4: %v", ErrCorruptSnapshot, err)
	}
	if n != rawLen {
		return nil, fmt.Errorf("%w: lz4 produced %d bytes, header says %d", ErrCorruptSnapshot, n, rawLen)
	}
	return dst, nil
}

func compressZstd(raw []byte) ([]byte, error) {
	enc, _ := zstdCodec()
	out := enc.EncodeAll(raw, make([]byte, 0, len(raw)))
	if len(out) >= len(raw) {
		return nil, errIncompressible
	}
	return out, nil
}

func decompressZstd(payload []byte, rawLen int) ([]byte, error) {
	_, dec := zstdCodec()
	out, err := dec.DecodeAll(payload, make([]byte, 0, rawLen))
	if err != nil {
		return nil, fmt.Errorf("%w: zstd: %v", ErrCorruptSnapshot, err)
	}
	if len(out) != rawLen {
		return nil, fmt.Errorf("%w: zstd produced %d bytes, header says %d", ErrCorruptSnapshot, len(out), rawLen)
	}
	return out, nil
}
