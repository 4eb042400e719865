package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"breeze/internal/types"
)

// Bump when the payload layout changes; stale entries are then ignored.
const snapshotSchemaVersion uint16 = 1

// Digest is a SHA-256 content hash.
type Digest [sha256.Size]byte

// HashFile digests a file's content, the cache key for its universe.
func HashFile(path string) (Digest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Digest{}, err
	}
	return sha256.Sum256(data), nil
}

// snapshotPayload is the on-disk form of a cached universe.
type snapshotPayload struct {
	Schema   uint16
	StubHash Digest
	Classes  []types.Class
}

// SnapshotCache persists loaded universes keyed by stub content hash.
// Thread-safe for concurrent access.
type SnapshotCache struct {
	mu  sync.RWMutex
	dir string
}

// OpenSnapshotCache initializes the cache at the standard location.
func OpenSnapshotCache(app string) (*SnapshotCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &SnapshotCache{dir: dir}, nil
}

// OpenSnapshotCacheAt initializes the cache at an explicit directory.
func OpenSnapshotCacheAt(dir string) (*SnapshotCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &SnapshotCache{dir: dir}, nil
}

func (c *SnapshotCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "universes", hexKey+".mp")
}

// Put serializes a universe under the given stub hash.
func (c *SnapshotCache) Put(key Digest, u *types.Universe) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	payload := snapshotPayload{
		Schema:   snapshotSchemaVersion,
		StubHash: key,
		Classes:  u.Snapshot().Classes,
	}
	if err := msgpack.NewEncoder(f).Encode(&payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// atomic replace
	return os.Rename(f.Name(), p)
}

// Get restores a cached universe. A missing entry, a schema mismatch, or a
// hash mismatch reads as a miss, never an error.
func (c *SnapshotCache) Get(key Digest) (*types.Universe, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var payload snapshotPayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false, fmt.Errorf("%s: decode snapshot: %w", c.pathFor(key), err)
	}
	if payload.Schema != snapshotSchemaVersion || payload.StubHash != key {
		return nil, false, nil
	}
	u, err := types.Restore(types.Snapshot{Classes: payload.Classes})
	if err != nil {
		return nil, false, nil
	}
	return u, true, nil
}
