// Package snippet provides a key-value store of hand-authored text
// fragments that the generator may splice into its output, such as a base
// NodeSet document shell.
package snippet

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Store maps snippet keys to their text. Keys are file names relative to
// the directory the store was loaded from.
type Store struct {
	entries map[string]string
}

// New builds a store from an in-memory map. The map is copied.
func New(entries map[string]string) *Store {
	s := &Store{entries: make(map[string]string, len(entries))}
	for k, v := range entries {
		s.entries[k] = v
	}
	return s
}

// Load reads every regular file under dir into the store, keyed by its
// slash-separated path relative to dir.
func Load(dir string) (*Store, error) {
	s := &Store{entries: make(map[string]string)}

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read snippet %s: %w", path, err)
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		s.entries[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load snippets from %s: %w", dir, err)
	}
	return s, nil
}

// Get returns the snippet text for key and whether it exists.
func (s *Store) Get(key string) (string, bool) {
	if s == nil {
		return "", false
	}
	text, ok := s.entries[key]
	return text, ok
}

// Keys returns all snippet keys in sorted order.
func (s *Store) Keys() []string {
	if s == nil {
		return nil
	}
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
