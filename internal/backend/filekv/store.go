// Package filekv implements kv.Store with one file per key in a directory.
//
// Each key is guarded by an OS-level lock on a sibling ".lock" file, so
// concurrent ltask processes never observe a half-written value. Writes go to
// a uniquely named temp file that is synced and then renamed over the target.
package filekv

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"ltask/internal/kv"
)

const (
	// DefaultExt is the file extension used when none is configured.
	DefaultExt = ".json"

	lockSuffix = ".lock"
	lockRetry  = 20 * time.Millisecond
)

// Store is a directory-backed kv.Store.
type Store struct {
	dir string
	ext string
}

var _ kv.Store = (*Store)(nil)

// New opens a store rooted at dir, creating it with mode 0700 if needed.
// ext is appended to every key to form the file name ("todos" -> "todos.json").
func New(dir, ext string) (*Store, error) {
	if ext == "" {
		ext = DefaultExt
	}
	if ext[0] != '.' {
		ext = "." + ext
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create data directory %s: %w", dir, err)
	}
	return &Store{dir: dir, ext: ext}, nil
}

// Path returns the file a key is stored in.
func (s *Store) Path(key string) string {
	return filepath.Join(s.dir, key+s.ext)
}

// Get implements kv.Store.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if !kv.ValidKey(key) {
		return nil, false, fmt.Errorf("%w: %q", kv.ErrInvalidKey, key)
	}
	path := s.Path(key)

	lock := flock.New(path + lockSuffix)
	locked, err := lock.TryRLockContext(ctx, lockRetry)
	if err != nil {
		return nil, false, fmt.Errorf("lock %s: %w", path, err)
	}
	if !locked {
		return nil, false, fmt.Errorf("lock %s: not acquired", path)
	}
	defer func() { _ = lock.Unlock() }()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read %s: %w", path, err)
	}
	return data, true, nil
}

// Put implements kv.Store.
func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	if !kv.ValidKey(key) {
		return fmt.Errorf("%w: %q", kv.ErrInvalidKey, key)
	}
	path := s.Path(key)

	lock := flock.New(path + lockSuffix)
	locked, err := lock.TryLockContext(ctx, lockRetry)
	if err != nil {
		return fmt.Errorf("lock %s: %w", path, err)
	}
	if !locked {
		return fmt.Errorf("lock %s: not acquired", path)
	}
	defer func() { _ = lock.Unlock() }()

	tmp := filepath.Join(s.dir, "."+key+"."+uuid.NewString()+".tmp")
	if err := writeSynced(tmp, value); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

// Close implements kv.Store. Locks are held only for the duration of a call,
// so there is nothing to release.
func (s *Store) Close() error {
	return nil
}

func writeSynced(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("sync %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
