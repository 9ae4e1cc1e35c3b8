package replies

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	s, err := Load("", "!urt")
	require.NoError(t, err)

	assert.Equal(t, "Wrong command, see `!urt help`", s.Get(WrongCommand))
	assert.NotContains(t, s.Get(ServerLimit), "%prefix%")
}

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.json"), "!urt")
	require.NoError(t, err)

	assert.Equal(t, "Server not found", s.Get(ServerNotFound))
}

func TestLoad_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"WRONG_COMMAND":"nope, try %prefix% help"}`), 0600))

	s, err := Load(path, "!")
	require.NoError(t, err)

	assert.Equal(t, "nope, try ! help", s.Get(WrongCommand))
	// untouched keys keep their defaults
	assert.Equal(t, "Server added to the pool", s.Get(ServerAdded))
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strings.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0600))

	_, err := Load(path, "!urt")
	assert.Error(t, err)
}

func TestStore_UnknownKey(t *testing.T) {
	s, err := Load("", "!urt")
	require.NoError(t, err)

	assert.Equal(t, "NO_SUCH_KEY", s.Get(Key("NO_SUCH_KEY")))
}
