package file

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Storage is the byte-oriented file collaborator.
type Storage interface {
	// Read returns the whole content of the file at path.
	Read(ctx context.Context, path string) ([]byte, error)
	// Write creates or truncates the file at path and writes data to it.
	Write(ctx context.Context, path string, data []byte) error
	// Exists checks if a file or directory exists.
	Exists(ctx context.Context, path string) bool
}

// Disk implements Storage on plain filesystem paths without confinement.
// The zero value is ready to use.
type Disk struct{}

var _ Storage = Disk{}

// Read returns the whole content of the file at path.
func (Disk) Read(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if path == "" {
		return nil, ErrInvalidPath
	}
	return readFile(ctx, path)
}

// Write creates or truncates the file at path, creating parent directories.
func (Disk) Write(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if path == "" {
		return ErrInvalidPath
	}
	return writeFile(ctx, path, data)
}

// Exists reports whether path exists. It returns false on cancellation.
func (Disk) Exists(ctx context.Context, path string) bool {
	if ctx.Err() != nil || path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// readFile reads path in chunks so a cancelled context stops large reads early.
func readFile(ctx context.Context, path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToOpenFile, err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToStatPath, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	data := make([]byte, 0, info.Size())
	chunk := make([]byte, 32*1024)
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		n, readErr := f.Read(chunk)
		data = append(data, chunk[:n]...)
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedToReadFile, readErr)
		}
	}

	return data, nil
}

// writeFile truncates or creates path and writes data in full.
func writeFile(ctx context.Context, path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToCreateDirectory, err)
		}
	}

	// Create with restrictive permissions (644 = rw-r--r--)
	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToCreateFile, err)
	}

	const chunk = 32 * 1024
	for written := 0; written < len(data); {
		select {
		case <-ctx.Done():
			_ = dst.Close()
			return ctx.Err()
		default:
		}

		end := min(written+chunk, len(data))
		n, err := dst.Write(data[written:end])
		if err != nil {
			_ = dst.Close()
			return fmt.Errorf("%w: %v", ErrFailedToWriteFile, err)
		}
		written += n
	}

	if err := dst.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToWriteFile, err)
	}

	return nil
}
