package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionPersistsAcrossLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	first, err := LoadSession(path)
	require.NoError(t, err)
	assert.False(t, first.Authenticated())

	require.NoError(t, first.Set("token-abc", 42, "owner@example.com"))

	second, err := LoadSession(path)
	require.NoError(t, err)
	assert.True(t, second.Authenticated())

	token, tenantID, err := second.Credentials()
	require.NoError(t, err)
	assert.Equal(t, "token-abc", token)
	assert.Equal(t, uint(42), tenantID)
	assert.Equal(t, "owner@example.com", second.Email)
}

func TestSessionClearRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	s, err := LoadSession(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("token", 1, "a@b.co"))
	require.NoError(t, s.Clear())

	assert.False(t, s.Authenticated())
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	_, _, err = s.Credentials()
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestSessionIgnoresCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	s, err := LoadSession(path)
	require.NoError(t, err)
	assert.False(t, s.Authenticated())
}
