package persistence

import (
	"bufio"
	"os"
	"path/filepath"

	"github.com/hupe1980/idxgo"
)

// SaveFile writes a snapshot of arr to filename, replacing any existing file
// atomically: the snapshot is written to a temp file in the same directory
// and renamed over the target, so readers never observe a partial file.
func SaveFile[D idxgo.Domain, T any](filename string, arr idxgo.Array[D, T], opts ...Option) error {
	dir := filepath.Dir(filename)
	base := filepath.Base(filename)

	tmp, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	// CreateTemp files are 0600; match typical file permissions (best-effort).
	_ = tmp.Chmod(0644)

	buf := bufio.NewWriterSize(tmp, 64*1024)
	if err := Save(buf, arr, opts...); err != nil {
		return err
	}
	if err := buf.Flush(); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Rename(tmpName, filename); err != nil {
		return err
	}

	// fsync the directory so the rename itself is durable (best-effort).
	if d, err := os.Open(dir); err == nil {
		_ = d.Sync()
		_ = d.Close()
	}

	// Keep the deferred cleanup from removing the renamed file.
	tmpName = ""
	return nil
}

// LoadFile reads a snapshot from filename.
func LoadFile[D idxgo.Domain, T any](filename string) (idxgo.Array[D, T], error) {
	f, err := os.Open(filename)
	if err != nil {
		var zero idxgo.Array[D, T]
		return zero, err
	}
	defer f.Close()

	return Load[D, T](bufio.NewReaderSize(f, 64*1024))
}
