package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"kakapo/internal/format"
	"kakapo/internal/project"
)

// Increment when the marker format changes.
const cacheSchemaVersion uint16 = 1

// FormatCache remembers which file contents are already formatted, keyed by
// a digest of content and formatting options. A hit lets a run skip the
// parse and format work entirely. Thread-safe for concurrent access.
type FormatCache struct {
	mu  sync.RWMutex
	dir string
}

type cacheMarker struct {
	Schema        uint16
	MaxLineLength int
	IndentWidth   int
	StoredAt      int64
}

// OpenFormatCache initializes a cache at the standard location
// ($XDG_CACHE_HOME/<app> or ~/.cache/<app>).
func OpenFormatCache(app string) (*FormatCache, error) {
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
	return &FormatCache{dir: dir}, nil
}

func cacheKey(content []byte, opts format.Options) project.Digest {
	optBytes := []byte(strconv.Itoa(opts.MaxLineLength) + ":" + strconv.Itoa(opts.IndentWidth))
	return project.Combine(project.HashBytes(content), project.HashBytes(optBytes))
}

func (c *FormatCache) pathFor(key project.Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// Subdirectory keeps the cache root tidy and easy to clear.
	return filepath.Join(c.dir, "formatted", hexKey+".mp")
}

// IsFormatted reports whether content is known to already be formatted
// under opts. A nil cache or any read failure reads as a miss.
func (c *FormatCache) IsFormatted(content []byte, opts format.Options) bool {
	if c == nil {
		return false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(cacheKey(content, opts)))
	if err != nil {
		return false
	}
	defer func() {
		_ = f.Close()
	}()

	var marker cacheMarker
	if err := msgpack.NewDecoder(f).Decode(&marker); err != nil {
		return false
	}
	return marker.Schema == cacheSchemaVersion
}

// MarkFormatted records that content is formatted under opts.
// Failures are swallowed; the cache is advisory.
func (c *FormatCache) MarkFormatted(content []byte, opts format.Options) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(cacheKey(content, opts))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return
	}
	defer func() {
		if err := os.Remove(f.Name()); err != nil && !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "failed to remove temp file: %v\n", err)
		}
	}()

	marker := cacheMarker{
		Schema:        cacheSchemaVersion,
		MaxLineLength: opts.MaxLineLength,
		IndentWidth:   opts.IndentWidth,
		StoredAt:      time.Now().Unix(),
	}
	if err := msgpack.NewEncoder(f).Encode(&marker); err != nil {
		_ = f.Close()
		return
	}
	if err := f.Close(); err != nil {
		return
	}
	// Atomic replace.
	_ = os.Rename(f.Name(), p)
}

// DropAll invalidates the cache, useful after upgrading the formatter.
func (c *FormatCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}
