package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefault(t *testing.T) {
	t.Setenv("VOXEL_SEED", "")
	cfg := Default()

	assert.Equal(t, DefaultSeed, cfg.World.Seed)
	assert.Equal(t, DefaultRadius, cfg.World.Radius)
	assert.Equal(t, 0, cfg.World.MinRegionY)
	assert.Equal(t, DefaultMaxRegionY, cfg.World.MaxRegionY)
	assert.Equal(t, DefaultCaveCutoff, cfg.World.CaveCutoff)
	assert.Nil(t, cfg.World.NoiseOffset)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
world:
  seed: 99
  radius: 1
  min_region_y: -1
  max_region_y: 2
  cave_cutoff: 0.7
  noise_offset: [10.5, -3]
blocks_file: blocks.yaml
logging:
  console_level: WARN
metrics:
  addr: ":2112"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, int64(99), cfg.World.Seed)
	assert.Equal(t, 1, cfg.World.Radius)
	assert.Equal(t, -1, cfg.World.MinRegionY)
	assert.Equal(t, 2, cfg.World.MaxRegionY)
	assert.Equal(t, 0.7, cfg.World.CaveCutoff)
	assert.Equal(t, DefaultSurfaceScale, cfg.World.SurfaceScale)
	require.NotNil(t, cfg.World.NoiseOffset)
	assert.Equal(t, [2]float64{10.5, -3}, *cfg.World.NoiseOffset)
	assert.Equal(t, "blocks.yaml", cfg.BlocksFile)
	assert.Equal(t, "WARN", cfg.Logging.ConsoleLevel)
	assert.Equal(t, "DEBUG", cfg.Logging.FileLevel)
	assert.Equal(t, ":2112", cfg.Metrics.Addr)
}

func TestSeedEnvFallback(t *testing.T) {
	t.Setenv("VOXEL_SEED", "777")
	cfg := Default()
	assert.Equal(t, int64(777), cfg.World.Seed)

	path := writeConfig(t, "world:\n  seed: 5\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(5), cfg.World.Seed, "значение из файла важнее переменной окружения")
}

func TestLoadFromEnvPath(t *testing.T) {
	path := writeConfig(t, "world:\n  radius: 2\n")
	t.Setenv("VOXEL_CONFIG", path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.World.Radius)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "world: [1, 2"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "world:\n  cave_scale: -1\n"))
	assert.Error(t, err)
}
