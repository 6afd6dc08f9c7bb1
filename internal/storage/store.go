// Package storage is the flat-file persistence gateway. Each collection
// lives in its own JSON file (<dir>/<name>.json) holding the collection as
// a bare array — the array is the whole document, no envelope.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// Store reads and writes whole collection files under a single data dir.
// Writes are whole-file overwrites with no temp-and-rename step; a crash
// mid-write can corrupt the file. Accepted limitation for this system.
type Store struct {
	dir string
}

func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the data directory the store is rooted at.
func (s *Store) Dir() string { return s.dir }

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Read unmarshals the named collection into out (a pointer to a slice).
// A missing file is an empty collection, not an error.
func (s *Store) Read(name string, out interface{}) error {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("leer coleccion %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decodificar coleccion %s: %w", name, err)
	}
	return nil
}

// Write serializes the full collection and overwrites its file, creating
// the data dir on first use. Output is 2-space indented to stay diffable
// against hand-edited files.
func (s *Store) Write(name string, collection interface{}) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("crear directorio de datos: %w", err)
	}
	data, err := json.MarshalIndent(collection, "", "  ")
	if err != nil {
		return fmt.Errorf("codificar coleccion %s: %w", name, err)
	}
	if err := os.WriteFile(s.path(name), data, 0o644); err != nil {
		return fmt.Errorf("escribir coleccion %s: %w", name, err)
	}
	log.Debug().Str("coleccion", name).Int("bytes", len(data)).Msg("coleccion persistida")
	return nil
}
