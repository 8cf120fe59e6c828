package expansion

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/adrg/xdg"
)

// Snapshot is the serializable form of a State: the set of expanded paths.
type Snapshot struct {
	Expanded []string `json:"expanded"`
}

// SaveState captures the explicitly expanded paths. The snapshot is
// interpreted over a collapsed baseline on restore.
func (s *State) SaveState() Snapshot {
	var paths []string
	for p := range s.toggled {
		if s.IsExpanded(p) {
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)
	return Snapshot{Expanded: paths}
}

// RestoreState resets the state to exactly the snapshot's expanded paths
// over a collapsed baseline.
func (s *State) RestoreState(snap Snapshot) {
	s.toggled = map[string]bool{}
	s.defaultExpanded = false
	for _, p := range snap.Expanded {
		s.toggled[p] = true
	}
	s.emit(Changed, "")
}

// FileStore persists snapshots as JSON files keyed by a caller-supplied
// key, under the user's state directory by default.
type FileStore struct {
	dir string
}

// NewFileStore returns a store rooted at dir; with an empty dir the
// platform state directory is used.
func NewFileStore(dir string) *FileStore {
	if dir == "" {
		dir = filepath.Join(xdg.StateHome, "hierdoc")
	}
	return &FileStore{dir: dir}
}

func (fs *FileStore) path(key string) string {
	return filepath.Join(fs.dir, key+".json")
}

// Save writes the snapshot under key.
func (fs *FileStore) Save(key string, snap Snapshot) error {
	if err := os.MkdirAll(fs.dir, 0o755); err != nil {
		return err
	}
	d, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(fs.path(key), d, 0o644)
}

// Load reads the snapshot stored under key. A missing key loads as an
// empty snapshot rather than an error.
func (fs *FileStore) Load(key string) (Snapshot, error) {
	d, err := os.ReadFile(fs.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return Snapshot{}, nil
		}
		return Snapshot{}, err
	}
	var snap Snapshot
	if err := json.Unmarshal(d, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("corrupt expansion state %q: %w", key, err)
	}
	return snap, nil
}
