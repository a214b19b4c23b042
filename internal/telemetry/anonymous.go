package telemetry

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// stateFileName is the name of the telemetry state file under the
// user's config directory.
const stateFileName = "telemetry.json"

// state is persisted at ~/.noteleap/telemetry.json, separate from the
// main config so deleting the config never rotates the anonymous ID.
type state struct {
	// AnonymousID is a random UUID generated once on first use. It is
	// not tied to any personally identifiable information.
	AnonymousID string `json:"anonymous_id"`
}

var (
	stateDirOverride string
	stateDirMu       sync.RWMutex
)

// SetStateDir overrides the state directory, for tests. Pass an empty
// string to restore the default.
func SetStateDir(dir string) {
	stateDirMu.Lock()
	defer stateDirMu.Unlock()
	stateDirOverride = dir
}

func stateDir() (string, error) {
	stateDirMu.RLock()
	override := stateDirOverride
	stateDirMu.RUnlock()
	if override != "" {
		return override, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".noteleap"), nil
}

// loadAnonymousID returns the persisted anonymous ID, generating and
// storing a fresh one on first use.
func loadAnonymousID() (string, error) {
	dir, err := stateDir()
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, stateFileName)

	if data, err := os.ReadFile(path); err == nil {
		var st state
		if err := json.Unmarshal(data, &st); err == nil && st.AnonymousID != "" {
			return st.AnonymousID, nil
		}
	}

	st := state{AnonymousID: uuid.NewString()}
	data, err := json.Marshal(st)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", err
	}
	return st.AnonymousID, nil
}
