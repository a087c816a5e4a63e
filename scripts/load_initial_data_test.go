package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSeedFiles_MergesSections(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte("statuses:\n  - Registered\ncategories:\n  - Safety\n"), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "b.yml"), []byte("champions:\n  - name: Marta Gil\n    email: marta@example.com\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o600))

	seed, err := loadSeedFiles(dir)

	require.NoError(t, err)
	assert.Equal(t, []string{"Registered"}, seed.Statuses)
	assert.Equal(t, []string{"Safety"}, seed.Categories)
	assert.Equal(t, []ChampionData{{Name: "Marta Gil", Email: "marta@example.com"}}, seed.Champions)
}

func TestLoadSeedFiles_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("statuses: [unterminated"), 0o600))

	_, err := loadSeedFiles(dir)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "bad.yaml")
}

func TestLoadSeedFiles_ShippedData(t *testing.T) {
	seed, err := loadSeedFiles("data")

	require.NoError(t, err)
	assert.NotEmpty(t, seed.Statuses)
	assert.NotEmpty(t, seed.Categories)
	for _, c := range seed.Champions {
		assert.NotEmpty(t, c.Email, c.Name)
	}
}
