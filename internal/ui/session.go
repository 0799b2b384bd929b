package ui

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Katastrophique/projet-agile-carte-du-ciel/internal/camera"
)

// Session is the view state persisted across runs: the active mode and both
// camera states, so switching back to the other view also restores it.
type Session struct {
	Mode        string       `json:"mode"`
	Perspective camera.State `json:"perspective"`
	Azimuthal   camera.State `json:"azimuthal"`
}

// DefaultSessionPath returns the session file location under the user config
// directory.
func DefaultSessionPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "carte-du-ciel", "session.json"), nil
}

// LoadSession reads a persisted session. A missing file is not an error: it
// returns an empty session so the views start at their defaults. Camera
// invariants are re-applied by SetState when the session is restored, so a
// hand-edited file cannot produce an invalid view.
func LoadSession(path string) (Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Session{}, nil
		}
		return Session{}, fmt.Errorf("read session: %w", err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return Session{}, fmt.Errorf("parse session: %w", err)
	}
	return s, nil
}

// SaveSession writes the session, creating parent directories as needed.
func SaveSession(path string, s Session) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}
