package serialize

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/soapkit/pkg/file"
	"github.com/dmitrymomot/soapkit/pkg/logger"
)

// ToFile writes exactly the written bytes to path, creating or truncating it.
func (b *Buffer) ToFile(path string) error {
	return b.Save(context.Background(), file.Disk{}, path)
}

// FromFile replaces the buffer contents with the bytes of path.
func (b *Buffer) FromFile(path string) error {
	return b.Load(context.Background(), file.Disk{}, path)
}

// Save writes the written bytes to path in storage.
func (b *Buffer) Save(ctx context.Context, storage file.Storage, path string) error {
	if storage == nil {
		return fmt.Errorf("%w: nil storage", ErrInvalidArgument)
	}

	if err := storage.Write(ctx, path, b.data[:b.length]); err != nil {
		b.log.WarnContext(ctx, "failed to save buffer", logger.Path(path), logger.Error(err))
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	b.log.DebugContext(ctx, "buffer saved", logger.Path(path), logger.Bytes(b.length))
	return nil
}

// Load replaces the buffer contents with the bytes stored at path, growing the
// buffer if needed. On failure the buffer is left unchanged.
func (b *Buffer) Load(ctx context.Context, storage file.Storage, path string) error {
	if storage == nil {
		return fmt.Errorf("%w: nil storage", ErrInvalidArgument)
	}
	if b.data == nil {
		return ErrDestroyed
	}

	data, err := storage.Read(ctx, path)
	if err != nil {
		b.log.WarnContext(ctx, "failed to load buffer", logger.Path(path), logger.Error(err))
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	if err := b.replace(data); err != nil {
		return err
	}

	b.log.DebugContext(ctx, "buffer loaded", logger.Path(path), logger.Bytes(b.length))
	return nil
}
