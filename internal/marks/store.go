package marks

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sort"
)

// Store persists the set of marked unit names as a JSON array. Marks
// are a convenience feature: every failure path degrades to an empty
// set or a skipped write, never an error the caller has to handle.
type Store struct {
	filePath string
}

// NewStore creates a store at the default location,
// ~/.config/unitgrip/marks.json (per-OS via os.UserConfigDir).
func NewStore() *Store {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	dir := filepath.Join(configDir, "unitgrip")
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Printf("Could not create config directory: %v", err)
	}

	return &Store{filePath: filepath.Join(dir, "marks.json")}
}

// NewStoreAt creates a store backed by an explicit file path.
func NewStoreAt(path string) *Store {
	return &Store{filePath: path}
}

// Load reads the mark set. A missing file is created empty; a corrupt
// or unreadable file yields an empty set.
func (s *Store) Load() map[string]bool {
	marks := make(map[string]bool)

	data, err := os.ReadFile(s.filePath)
	if os.IsNotExist(err) {
		s.Save(marks)
		return marks
	}
	if err != nil {
		log.Printf("Could not read marks file: %v", err)
		return marks
	}

	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		log.Printf("Ignoring corrupt marks file %s: %v", s.filePath, err)
		return marks
	}
	for _, name := range names {
		marks[name] = true
	}
	return marks
}

// Save writes the mark set back to disk, sorted so repeated saves of
// the same set produce identical files. Write errors are logged and
// swallowed; marks then live only for the session.
func (s *Store) Save(marks map[string]bool) {
	names := make([]string, 0, len(marks))
	for name := range marks {
		names = append(names, name)
	}
	sort.Strings(names)

	data, err := json.MarshalIndent(names, "", "  ")
	if err != nil {
		log.Printf("Could not marshal marks: %v", err)
		return
	}

	if err := os.MkdirAll(filepath.Dir(s.filePath), 0755); err != nil {
		log.Printf("Could not create marks directory: %v", err)
		return
	}
	if err := os.WriteFile(s.filePath, data, 0644); err != nil {
		log.Printf("Could not write marks file: %v", err)
	}
}

// Toggle flips membership for a unit name and persists immediately.
// It reports whether the unit is marked afterwards.
func (s *Store) Toggle(marks map[string]bool, unit string) bool {
	if marks[unit] {
		delete(marks, unit)
	} else {
		marks[unit] = true
	}
	s.Save(marks)
	return marks[unit]
}
