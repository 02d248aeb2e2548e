package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, DefaultContainerName, cfg.ContainerName)
	assert.Equal(t, RuntimeAuto, cfg.Runtime)
	assert.Equal(t, ImageBuild, cfg.Image.Mode)
	assert.Equal(t, DefaultLogTail, cfg.LogTail)
	assert.Equal(t, DefaultRequiredFiles, cfg.RequiredFiles)

	settle, err := cfg.SettleDuration()
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, settle)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	content := `
container_name: reviews-scraper
runtime: podman
compose_file: docker-compose.prod.yml
image:
  mode: pull
readiness:
  settle: 5s
  timeout: 2m
  poll_interval: 1s
log_tail: 100
required_files:
  - .env
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "reviews-scraper", cfg.ContainerName)
	assert.Equal(t, RuntimePodman, cfg.Runtime)
	assert.Equal(t, "docker-compose.prod.yml", cfg.ComposeFile)
	assert.Equal(t, ImagePull, cfg.Image.Mode)
	assert.Equal(t, 100, cfg.LogTail)
	assert.Equal(t, []string{".env"}, cfg.RequiredFiles)
	assert.Equal(t, dir, cfg.ProjectDir)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{not yaml"), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SCRAPERCTL_CONTAINER_NAME", "env-scraper")
	t.Setenv("SCRAPERCTL_RUNTIME", "docker")
	t.Setenv("SCRAPERCTL_SETTLE", "1s")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "env-scraper", cfg.ContainerName)
	assert.Equal(t, RuntimeDocker, cfg.Runtime)

	settle, err := cfg.SettleDuration()
	require.NoError(t, err)
	assert.Equal(t, time.Second, settle)
}
