package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadApp_Defaults(t *testing.T) {
	app, err := LoadApp("")
	require.NoError(t, err)

	assert.Equal(t, 8080, app.Port)
	assert.Empty(t, app.DatabaseURL)
	assert.False(t, app.LogJSON)
}

func TestLoadApp_EnvironmentOverrides(t *testing.T) {
	t.Setenv("ATS_PORT", "9090")
	t.Setenv("ATS_DATABASE_URL", "postgres://localhost/ats")
	t.Setenv("ATS_LOG_DEBUG", "true")

	app, err := LoadApp("")
	require.NoError(t, err)

	assert.Equal(t, 9090, app.Port)
	assert.Equal(t, "postgres://localhost/ats", app.DatabaseURL)
	assert.True(t, app.LogDebug)
}

func TestLoadApp_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "port: 3000\ncategories_file: /etc/ats/registry.json\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	app, err := LoadApp(path)
	require.NoError(t, err)

	assert.Equal(t, 3000, app.Port)
	assert.Equal(t, "/etc/ats/registry.json", app.CategoriesFile)
}

func TestLoadApp_MissingFile(t *testing.T) {
	_, err := LoadApp(filepath.Join(t.TempDir(), "nope.yaml"))

	assert.Error(t, err)
}

func TestLoadApp_InvalidPort(t *testing.T) {
	t.Setenv("ATS_PORT", "70000")

	_, err := LoadApp("")

	assert.ErrorContains(t, err, "invalid config")
}
