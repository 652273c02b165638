package persist

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/nova-fighter/content"
)

// Profile is the persisted meta-progression state. Four values: high
// score, accumulated currency, owned crafts and current selection
type Profile struct {
	HighScore int      `yaml:"high_score"`
	Currency  int      `yaml:"currency"`
	Owned     []string `yaml:"owned"`
	Selected  string   `yaml:"selected"`
}

// DefaultProfile is the documented fallback for a missing or malformed
// save file
func DefaultProfile() Profile {
	return Profile{
		HighScore: 0,
		Currency:  0,
		Owned:     []string{content.DefaultCraftID},
		Selected:  content.DefaultCraftID,
	}
}

// Store reads and writes the profile at a fixed path. A Store with an
// empty path is a no-op sink so an unavailable config dir never halts
// the game
type Store struct {
	path string
}

// NewStore creates a store rooted in the user config directory.
// Errors resolving the directory degrade to a no-op store
func NewStore() *Store {
	dir, err := os.UserConfigDir()
	if err != nil {
		return &Store{}
	}
	return &Store{path: filepath.Join(dir, "nova-fighter", "profile.yaml")}
}

// NewStoreAt creates a store with an explicit path, used by tests
func NewStoreAt(path string) *Store {
	return &Store{path: path}
}

// Load reads the profile, sanitizing every field. Missing file,
// unreadable YAML or nonsense values all fall back to defaults
func (s *Store) Load() Profile {
	def := DefaultProfile()
	if s.path == "" {
		return def
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return def
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return def
	}
	return sanitize(p)
}

// Save writes the profile. Failures are swallowed: persistence is a
// best-effort collaborator and must never interrupt the tick
func (s *Store) Save(p Profile) {
	if s.path == "" {
		return
	}

	data, err := yaml.Marshal(sanitize(p))
	if err != nil {
		return
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return
	}
	_ = os.WriteFile(s.path, data, 0o644)
}

// sanitize clamps negatives and guarantees the default craft is owned
// and the selection resolves to an owned craft
func sanitize(p Profile) Profile {
	if p.HighScore < 0 {
		p.HighScore = 0
	}
	if p.Currency < 0 {
		p.Currency = 0
	}

	owned := make([]string, 0, len(p.Owned)+1)
	seen := make(map[string]bool)
	for _, id := range p.Owned {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		owned = append(owned, id)
	}
	if !seen[content.DefaultCraftID] {
		owned = append([]string{content.DefaultCraftID}, owned...)
		seen[content.DefaultCraftID] = true
	}
	p.Owned = owned

	if !seen[p.Selected] {
		p.Selected = content.DefaultCraftID
	}
	return p
}
