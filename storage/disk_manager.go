package storage

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/sys/unix"
)

// StorageAdapter is the block-addressed page file the pool reads through
// and writes back to. Pages are addressed by non-negative integers; every
// read/write moves exactly PageSize bytes. The pool is single-threaded and
// synchronous, so it never calls one adapter handle concurrently.
type StorageAdapter interface {
	EnsureCapacity(pageNum int32) error
	ReadBlock(pageNum int32, buf []byte) error
	WriteBlock(pageNum int32, buf []byte) error
	Close() error
}

// FileStorageAdapter is the on-disk StorageAdapter implementation, grounded
// on a plain os.File opened for random-access reads and writes.
type FileStorageAdapter struct {
	file  *os.File
	mutex sync.Mutex
}

// OpenPageFile opens (creating if necessary) the page file at path. Opening
// is idempotent for reads: calling it again against the same path is safe.
func OpenPageFile(path string) (*FileStorageAdapter, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("open page file %s: %w", path, err)
	}
	return &FileStorageAdapter{file: f}, nil
}

// EnsureCapacity grows the file so that block pageNum exists; a no-op if
// the file already extends past that block's end offset.
func (a *FileStorageAdapter) EnsureCapacity(pageNum int32) error {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	info, err := a.file.Stat()
	if err != nil {
		return fmt.Errorf("stat page file: %w", err)
	}

	want := int64(pageNum+1) * PageSize
	if info.Size() >= want {
		return nil
	}
	if err := a.file.Truncate(want); err != nil {
		return fmt.Errorf("grow page file to %d bytes: %w", want, err)
	}
	return nil
}

// ReadBlock fills buf (len(buf) must equal PageSize) with the bytes of
// block pageNum.
func (a *FileStorageAdapter) ReadBlock(pageNum int32, buf []byte) error {
	if len(buf) != PageSize {
		return fmt.Errorf("read block %d: buffer must be exactly %d bytes, got %d", pageNum, PageSize, len(buf))
	}

	a.mutex.Lock()
	defer a.mutex.Unlock()

	offset := int64(pageNum) * PageSize
	if _, err := a.file.ReadAt(buf, offset); err != nil {
		return fmt.Errorf("read block %d: %w", pageNum, err)
	}
	return nil
}

// WriteBlock persists exactly PageSize bytes at block pageNum's position
// and fsyncs the write through to stable storage.
func (a *FileStorageAdapter) WriteBlock(pageNum int32, buf []byte) error {
	if len(buf) != PageSize {
		return fmt.Errorf("write block %d: buffer must be exactly %d bytes, got %d", pageNum, PageSize, len(buf))
	}

	a.mutex.Lock()
	defer a.mutex.Unlock()

	offset := int64(pageNum) * PageSize
	if _, err := a.file.WriteAt(buf, offset); err != nil {
		return fmt.Errorf("write block %d: %w", pageNum, err)
	}
	if err := unix.Fdatasync(int(a.file.Fd())); err != nil {
		return fmt.Errorf("fdatasync after writing block %d: %w", pageNum, err)
	}
	return nil
}

// Close releases the underlying file handle.
func (a *FileStorageAdapter) Close() error {
	if a.file == nil {
		return nil
	}
	return a.file.Close()
}
