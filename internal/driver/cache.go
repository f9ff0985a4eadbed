package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"arrowlint/internal/diag"
	"arrowlint/internal/lint"
	"arrowlint/internal/source"
)

// Current schema version - increment when CachedResult format changes
const cacheSchemaVersion uint16 = 1

// ResultCache stores per-file lint results on disk, keyed by content hash
// and rule configuration. Thread-safe for concurrent access.
type ResultCache struct {
	mu  sync.RWMutex
	dir string
}

// CachedResult is the on-disk payload. Spans are stored without FileIDs;
// they are rebound to the current file on load.
type CachedResult struct {
	Schema      uint16            `msgpack:"schema"`
	Arrows      int               `msgpack:"arrows"`
	Diagnostics []diag.Diagnostic `msgpack:"diagnostics"`
}

// OpenResultCache opens the cache under $XDG_CACHE_HOME/<app>.
func OpenResultCache(app string) (*ResultCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return NewResultCache(filepath.Join(base, app))
}

// NewResultCache opens a cache rooted at dir, creating it if needed.
func NewResultCache(dir string) (*ResultCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &ResultCache{dir: dir}, nil
}

// CacheKey combines the file content hash and the rules fingerprint.
func CacheKey(file *source.File, fingerprint string) string {
	h := sha256.New()
	h.Write(file.Hash[:])
	h.Write([]byte{0})
	h.Write([]byte(fingerprint))
	return hex.EncodeToString(h.Sum(nil))
}

// RulesFingerprint describes the rule set and its options deterministically.
func RulesFingerprint(rules []lint.Configured, maxDiagnostics int) string {
	h := sha256.New()
	fmt.Fprintf(h, "schema=%d;max=%d;", cacheSchemaVersion, maxDiagnostics)
	for _, r := range rules {
		fmt.Fprintf(h, "%s:%t:%d", r.Rule.Name(), r.Config.Enabled, r.Config.Severity)
		keys := make([]string, 0, len(r.Config.Options))
		for k := range r.Config.Options {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(h, ",%s=%v", k, r.Config.Options[k])
		}
		h.Write([]byte{';'})
	}
	return hex.EncodeToString(h.Sum(nil))
}

func (c *ResultCache) pathFor(key string) string {
	return filepath.Join(c.dir, "results", key[:2], key+".mp")
}

// Put serializes and writes a payload.
func (c *ResultCache) Put(key string, payload *CachedResult) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	payload.Schema = cacheSchemaVersion
	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, p)
}

// Get reads a payload; ok is false on a miss or a schema mismatch.
func (c *ResultCache) Get(key string, out *CachedResult) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	if err := msgpack.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("decode cache entry: %w", err)
	}
	return out.Schema == cacheSchemaVersion, nil
}

// DropAll invalidates the cache.
func (c *ResultCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(filepath.Join(c.dir, "results"))
}

// rebind points every span of d at file.
func rebind(d diag.Diagnostic, file source.FileID) diag.Diagnostic {
	d.Primary.File = file
	if len(d.Notes) > 0 {
		notes := make([]diag.Note, len(d.Notes))
		for i, n := range d.Notes {
			n.Span.File = file
			notes[i] = n
		}
		d.Notes = notes
	}
	if len(d.Fixes) > 0 {
		fixes := make([]diag.Fix, len(d.Fixes))
		for i, f := range d.Fixes {
			edits := make([]diag.TextEdit, len(f.Edits))
			for j, e := range f.Edits {
				e.Span.File = file
				edits[j] = e
			}
			f.Edits = edits
			fixes[i] = f
		}
		d.Fixes = fixes
	}
	return d
}
