package driver

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"graduale/internal/config"
	"graduale/internal/planfmt"
)

// Digest addresses one cached render plan.
type Digest [32]byte

// CacheKey hashes everything a render plan depends on: the file name and text,
// the effective layout/text settings and the plan schema.
func CacheKey(name string, content []byte, cfg config.Config) Digest {
	h := sha256.New()
	var schema [2]byte
	binary.BigEndian.PutUint16(schema[:], planfmt.Schema)
	h.Write(schema[:])
	h.Write([]byte(name))
	h.Write([]byte{0})
	h.Write([]byte(cfg.Key()))
	h.Write([]byte{0})
	h.Write(content)
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

// DiskCache хранит готовые planfmt.Output на диске в msgpack.
// Safe for concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// OpenDiskCache opens the cache under $XDG_CACHE_HOME/app (or ~/.cache/app).
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return NewDiskCache(filepath.Join(base, app))
}

// NewDiskCache opens a cache rooted at dir, creating it when missing.
func NewDiskCache(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) Dir() string { return c.dir }

func (c *DiskCache) pathFor(key Digest) string {
	return filepath.Join(c.dir, "plans", hex.EncodeToString(key[:])+".mp")
}

// Put writes out under key, replacing any previous entry atomically.
func (c *DiskCache) Put(key Digest, out *planfmt.Output) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err = os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	if err = planfmt.Write(f, out, planfmt.FormatMsgpack); err != nil {
		return fmt.Errorf("encode plan: %w", err)
	}
	if err = f.Close(); err != nil {
		return err
	}
	// атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads the plan stored under key. A missing entry is not an error; an entry of
// another schema is reported and treated as missing.
func (c *DiskCache) Get(key Digest) (*planfmt.Output, bool, error) {
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

	out, err := planfmt.ReadMsgpack(f)
	if err != nil {
		return nil, false, err
	}
	return &out, true, nil
}

// DropAll removes every cached plan.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// переименовываем, чтобы параллельные Get сразу промахивались
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	if err := os.RemoveAll(old); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}
