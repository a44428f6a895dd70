// Package file provides the byte-oriented file I/O collaborator used by the
// serialize package to persist buffers.
//
// The package exposes a small Storage interface with read, write, exists,
// delete and list operations. Two implementations are provided:
//   - Disk: operates on plain filesystem paths exactly as given by the caller
//   - LocalStorage: confines every path to a base directory and rejects
//     path traversal
//
// # Usage
//
//	import "github.com/dmitrymomot/soapkit/pkg/file"
//
//	storage, err := file.NewLocalStorage("/var/lib/soap")
//	if err != nil {
//		return err
//	}
//
//	if err := storage.Write(ctx, "buffers/session.bin", data); err != nil {
//		return err
//	}
//
//	data, err := storage.Read(ctx, "buffers/session.bin")
//
// # Durability
//
// Writes truncate and rewrite the target in place. No fsync or atomic rename is
// performed, so a process killed mid-write may leave a partial file behind.
//
// # Error Handling
//
// All failures wrap one of the sentinel errors declared in errors.go and can be
// inspected with errors.Is:
//
//	if errors.Is(err, file.ErrFileNotFound) {
//		// nothing persisted yet
//	}
package file
