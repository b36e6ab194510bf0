package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()

	for env := range EnvKeys {
		t.Setenv(env, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, &Config{
		ResourceDir: DefaultResourceDir,
		Language:    DefaultLanguage,
	}, cfg)
}

func TestLoadFileAndEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, os.WriteFile(path, []byte(
		"game_dir: /games/ck3\n"+
			"json_path: save.json\n"+
			"main_id: 7871\n"+
			"language:\n",
	), 0644))

	t.Setenv("CK3_OUTPUT", "s3://trees/out.csv")
	t.Setenv("CK3_GAME_DIR", "/other/ck3")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/other/ck3", cfg.GameDir)
	assert.Equal(t, "save.json", cfg.JsonPath)
	assert.Equal(t, "7871", cfg.MainId)
	assert.Equal(t, DefaultLanguage, cfg.Language)
	assert.Equal(t, "s3://trees/out.csv", cfg.Output)
}

func TestLoadBrokenFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("game_dir: [\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSave(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := &Config{
		GameDir:     "/games/ck3",
		ResourceDir: "res",
		Language:    "russian",
		MainId:      "42",
	}

	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
