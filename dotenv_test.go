package dotenv

import (
	"errors"
	"os"
	"testing"

	"github.com/lestrrat-go/envload"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/eugenenazirov/dotenv/internal/environment"
)

var teams = map[string]string{
	"Eagles":   "Rock",
	"Giants":   "Suck",
	"Steelers": "AreOk",
	"Cowboys":  "AreOk",
}

// isolate runs the test in an empty working directory with a fresh
// process-wide session and restores the process environment afterwards.
func isolate(t *testing.T) {
	t.Helper()

	loader := envload.New()
	t.Chdir(t.TempDir())
	for key := range teams {
		require.NoError(t, os.Unsetenv(key))
	}

	resetDefaultSession()
	t.Cleanup(func() {
		resetDefaultSession()
		if err := loader.Restore(); err != nil {
			t.Errorf("restore environment: %v", err)
		}
	})
}

func resetDefaultSession() {
	defaultMu.Lock()
	defaultSession = nil
	defaultMu.Unlock()
}

func writeEnvFile(t *testing.T, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(".env", []byte(content), 0o600))
}

func TestInstallAndUninstall(t *testing.T) {
	isolate(t)
	writeEnvFile(t, `{"Eagles":"Rock","Giants":"Suck","Steelers":"AreOk","Cowboys":"AreOk"}`)

	require.NoError(t, Install())
	for key, want := range teams {
		assert.Equal(t, want, os.Getenv(key), key)
	}

	require.NoError(t, Uninstall())
	for key := range teams {
		_, defined := os.LookupEnv(key)
		assert.False(t, defined, "%s should be removed", key)
	}
}

func TestInstallOverridesAndRestoresExistingValues(t *testing.T) {
	isolate(t)
	writeEnvFile(t, `{"Eagles":"Rock"}`)
	require.NoError(t, os.Setenv("Eagles", "Fly"))

	require.NoError(t, Install())
	assert.Equal(t, "Rock", os.Getenv("Eagles"))

	require.NoError(t, Uninstall())
	assert.Equal(t, "Fly", os.Getenv("Eagles"))
}

func TestUninstallBeforeInstall(t *testing.T) {
	isolate(t)

	assert.ErrorIs(t, Uninstall(), ErrNotInstalled)
}

func TestInstallMissingFile(t *testing.T) {
	t.Run("lenient", func(t *testing.T) {
		isolate(t)
		require.NoError(t, Install())
		require.NoError(t, Uninstall())
	})

	t.Run("strict", func(t *testing.T) {
		isolate(t)

		err := Install(FailOnMissingFile)
		require.Error(t, err)
		assert.Equal(t, ".env file is missing.", err.Error())
		assert.ErrorIs(t, err, ErrMissingFile)

		var cfgErr *ConfigFileError
		assert.True(t, errors.As(err, &cfgErr))
	})
}

func TestInstallInvalidFileStrict(t *testing.T) {
	isolate(t)
	writeEnvFile(t, "I work with propane and propane accessories.")

	err := Install(FailOnMissingFile, FailOnInvalidFile)
	assert.ErrorIs(t, err, ErrInvalidFile)
	assert.Equal(t, ".env file is invalid.", err.Error())
}

func TestFirstInstallSettingsWin(t *testing.T) {
	isolate(t)

	require.NoError(t, Install())
	require.NoError(t, Install(FailOnMissingFile), "flags after the first Install are ignored")
}

func TestSessionWithMemoryBackends(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "app.env", []byte(`{"Eagles":"Rock","Giants":null}`), 0o644))
	env := environment.NewMemory(map[string]string{"Giants": "Win"})

	session := NewSession(
		WithFileSystem(fsys),
		WithPath("app.env"),
		WithEnvironment(env),
		WithLoadSettings(FailOnMissingFile|FailOnInvalidFile),
		WithLogger(zaptest.NewLogger(t)),
	)

	require.NoError(t, session.Install())
	assert.True(t, session.Installed())
	assert.Equal(t, map[string]string{"Eagles": "Rock"}, env.Snapshot())

	require.NoError(t, session.Uninstall())
	assert.False(t, session.Installed())
	assert.Equal(t, map[string]string{"Giants": "Win"}, env.Snapshot())
}

type staticProvider []Setting

func (p staticProvider) Get() ([]Setting, error) {
	return p, nil
}

func TestSessionWithProvider(t *testing.T) {
	t.Parallel()

	env := environment.NewMemory(nil)
	session := NewSession(
		WithProvider(staticProvider{}),
		WithEnvironment(env),
		WithPath("ignored.env"),
	)

	require.NoError(t, session.Install())
	assert.Empty(t, env.Snapshot())
	require.NoError(t, session.Uninstall())
}
