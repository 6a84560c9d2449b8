// Package data provides the process-wide read-only lexical tables
// (synonyms, term dictionaries, role taxonomy). Tables are stored as
// JSON files and embedded at compile time; they are loaded once and
// never mutated.
package data

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"
)

//go:embed *.json
var tableFiles embed.FS

// cache stores parsed table files to avoid repeated JSON parsing.
var (
	cache   = make(map[string]json.RawMessage)
	cacheMu sync.RWMutex
)

// Load reads an embedded table file into out. The filename should not
// include a path (e.g., "synonyms.json").
func Load(filename string, out any) error {
	cacheMu.RLock()
	raw, exists := cache[filename]
	cacheMu.RUnlock()

	if !exists {
		content, err := tableFiles.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("table file %q not found: %w", filename, err)
		}
		raw = json.RawMessage(content)
		cacheMu.Lock()
		cache[filename] = raw
		cacheMu.Unlock()
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to parse table file %q: %w", filename, err)
	}
	return nil
}

// MustLoad reads an embedded table file, panicking on failure. Use for
// tables required at initialization time.
func MustLoad(filename string, out any) {
	if err := Load(filename, out); err != nil {
		panic(fmt.Sprintf("failed to load data table: %v", err))
	}
}

// Raw returns the raw bytes of an embedded table file, for schema
// validation at startup.
func Raw(filename string) ([]byte, error) {
	return tableFiles.ReadFile(filename)
}
