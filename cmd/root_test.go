/*
Copyright © 2025 Noteleap Authors
*/
package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmdHelp(t *testing.T) {
	viper.Reset()

	b := bytes.NewBufferString("")
	rootCmd.SetOut(b)
	rootCmd.SetErr(b)
	rootCmd.SetArgs([]string{"--help"})

	err := rootCmd.Execute()
	assert.NoError(t, err)

	output := b.String()
	assert.Contains(t, output, "document switcher")
	assert.Contains(t, output, "Usage:")
	assert.Contains(t, output, "jump")
	assert.Contains(t, output, "backlinks")
	assert.Contains(t, output, "recent")
}

func TestRecencyStateRoundtrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cache := loadRecency(4)
	assert.Zero(t, cache.Len())

	cache.Add("notes/a.md")
	cache.Add("notes/b.md")
	require.NoError(t, saveRecency(cache))

	reloaded := loadRecency(4)
	assert.Equal(t, []string{"notes/b.md", "notes/a.md"}, reloaded.List())
}

func TestRecencyStateCorruptFileIgnored(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".noteleap")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, recentStateFile), []byte("{not json"), 0o644))

	cache := loadRecency(4)
	assert.Zero(t, cache.Len())
}

func TestRecencyStateFormat(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cache := loadRecency(4)
	cache.Add("a.md")
	require.NoError(t, saveRecency(cache))

	dir, err := stateDir()
	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(dir, recentStateFile))
	require.NoError(t, err)

	var st recentState
	require.NoError(t, json.Unmarshal(data, &st))
	assert.Equal(t, []string{"a.md"}, st.IDs)
}
