package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	configfile "github.com/custodia-labs/tutor-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/tutor-cli/internal/core/ports/driven"
)

func setupTestConfig(t *testing.T) func() {
	t.Helper()
	old := configStore
	cfg, err := configfile.NewConfigStore(t.TempDir())
	require.NoError(t, err)
	configStore = cfg
	return func() { configStore = old }
}

func TestMaskAPIKey(t *testing.T) {
	assert.Equal(t, "****", maskAPIKey("short"))
	assert.Equal(t, "****", maskAPIKey("12345678"))
	assert.Equal(t, "sk-a...wxyz", maskAPIKey("sk-abcdefghijklmnopqrstuvwxyz"))
}

func TestRunSettingsShow_Defaults(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	cmd, buf := newTestCommand()
	err := runSettingsShow(cmd, nil)

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "file (default)")
	assert.Contains(t, out, "gemini (default)")
	assert.Contains(t, out, "legacy (default)")
	assert.Contains(t, out, "(not set")
}

func TestRunSettingsShow_MasksAPIKey(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	require.NoError(t, configStore.Set(driven.KeyLLMAPIKey, "sk-abcdefghijklmnop"))

	cmd, buf := newTestCommand()
	err := runSettingsShow(cmd, nil)

	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "sk-abcdefghijklmnop")
	assert.Contains(t, buf.String(), "sk-a...mnop")
}

func TestRunSettingsStorage_Valid(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	cmd, buf := newTestCommand()
	err := runSettingsStorage(cmd, []string{"sqlite"})

	require.NoError(t, err)
	assert.Equal(t, "sqlite", configStore.GetString(driven.KeyStorageBackend))
	assert.Contains(t, buf.String(), "sqlite")
}

func TestRunSettingsStorage_Invalid(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	cmd, _ := newTestCommand()
	err := runSettingsStorage(cmd, []string{"postgres"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres")
}

func TestRunSettingsStrategy_Valid(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	cmd, _ := newTestCommand()
	err := runSettingsStrategy(cmd, []string{"anchored"})

	require.NoError(t, err)
	assert.Equal(t, "anchored", configStore.GetString(driven.KeyExtractionStrategy))
}

func TestRunSettingsStrategy_Invalid(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	cmd, _ := newTestCommand()
	err := runSettingsStrategy(cmd, []string{"vibes"})

	assert.Error(t, err)
}
