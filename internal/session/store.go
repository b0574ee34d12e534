package session

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const appDir = "resumeai"

// DefaultPath returns the session file location under the XDG data home.
// On Linux: ~/.local/share/resumeai/session.json
func DefaultPath() string {
	return filepath.Join(xdg.DataHome, appDir, "session.json")
}

// Store persists a single session as a JSON file. Reading is best-effort: a
// corrupt file is removed and treated as no session, never as an error.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath()
	}
	return &Store{path: path}
}

// Load rehydrates the persisted session. The second return value is false
// when no usable session exists.
func (s *Store) Load() (Session, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Session{}, false
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil || !sess.valid() {
		// Self-healing: a corrupt file would stay corrupt forever otherwise.
		_ = os.Remove(s.path)
		return Session{}, false
	}

	return sess, true
}

// Save persists the session, creating the parent directory when needed.
func (s *Store) Save(sess Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0o600)
}

// Clear removes the persisted session. A missing file is not an error.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
