/*
Copyright © 2025 Noteleap Authors
*/
package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/noteleap/noteleap/internal/recency"
)

// recentStateFile holds the recently-opened list under ~/.noteleap so
// one-shot invocations still see the history of earlier jumps.
const recentStateFile = "recent.json"

type recentState struct {
	// IDs is ordered newest first, matching Cache.List.
	IDs []string `json:"ids"`
}

func stateDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".noteleap"), nil
}

// loadRecency seeds a cache from the persisted recent list. A missing
// or unreadable state file yields an empty cache.
func loadRecency(capacity int) *recency.Cache {
	cache := recency.New(capacity)

	dir, err := stateDir()
	if err != nil {
		return cache
	}
	data, err := os.ReadFile(filepath.Join(dir, recentStateFile))
	if err != nil {
		return cache
	}
	var st recentState
	if err := json.Unmarshal(data, &st); err != nil {
		return cache
	}
	// Add oldest first so List order is preserved.
	for i := len(st.IDs) - 1; i >= 0; i-- {
		cache.Add(st.IDs[i])
	}
	return cache
}

// saveRecency persists the cache's current contents.
func saveRecency(cache *recency.Cache) error {
	dir, err := stateDir()
	if err != nil {
		return err
	}
	data, err := json.Marshal(recentState{IDs: cache.List()})
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, recentStateFile), data, 0o644)
}
