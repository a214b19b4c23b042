package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DisabledYieldsNoop(t *testing.T) {
	c := New(false, "key", "1.0.0")
	assert.IsType(t, Noop{}, c)

	c = New(true, "", "1.0.0")
	assert.IsType(t, Noop{}, c, "missing API key disables telemetry")
}

func TestNoop(t *testing.T) {
	var c Client = Noop{}
	c.Track(EventCommandExecuted, map[string]any{"command": "jump"})
	assert.NoError(t, c.Close())
}

func TestLoadAnonymousID_StableAcrossCalls(t *testing.T) {
	SetStateDir(t.TempDir())
	t.Cleanup(func() { SetStateDir("") })

	first, err := loadAnonymousID()
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := loadAnonymousID()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
