package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadResumeText_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("resume body"), 0644))

	text, err := readResumeText(path)
	require.NoError(t, err)

	assert.Equal(t, "resume body", text)
}

func TestReadResumeText_MissingFile(t *testing.T) {
	_, err := readResumeText(filepath.Join(t.TempDir(), "absent.txt"))

	assert.Error(t, err)
}

func TestLoadRegistry_DefaultsWithoutPath(t *testing.T) {
	registry, err := loadRegistry("")
	require.NoError(t, err)

	assert.Contains(t, registry.CategoryNames(), "software_engineer")
}

func TestLoadRegistry_BadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"weights": {}}`), 0644))

	_, err := loadRegistry(path)

	assert.Error(t, err)
}
