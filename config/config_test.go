package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Len(t, cfg.Players, 3)
	assert.Zero(t, cfg.Seed)
	assert.Empty(t, cfg.SavesPath)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
seed: 42
saves_path: saves.db
bot_delay_ms: 250
players:
  - name: Ada
    bot: false
  - name: Hal
    bot: true
    profile: aggressive
  - name: Sal
    bot: true
    profile: friendly
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, "saves.db", cfg.SavesPath)
	assert.Equal(t, 250, cfg.BotDelayMs)
	require.Len(t, cfg.Players, 3)
	assert.Equal(t, PlayerSpec{Name: "Ada"}, cfg.Players[0])
	assert.Equal(t, PlayerSpec{Name: "Hal", Bot: true, Profile: "aggressive"}, cfg.Players[1])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsBadRoster(t *testing.T) {
	cases := map[string]string{
		"two players": `
players:
  - {name: A, bot: true, profile: aggressive}
  - {name: B, bot: true, profile: aggressive}
`,
		"unnamed player": `
players:
  - {name: "", bot: true, profile: aggressive}
  - {name: B, bot: true, profile: aggressive}
  - {name: C, bot: true, profile: aggressive}
`,
		"bot without profile": `
players:
  - {name: A, bot: true}
  - {name: B, bot: true, profile: aggressive}
  - {name: C, bot: true, profile: aggressive}
`,
		"negative delay": `
bot_delay_ms: -1
players:
  - {name: A, bot: true, profile: aggressive}
  - {name: B, bot: true, profile: aggressive}
  - {name: C, bot: true, profile: aggressive}
`,
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content))
			assert.Error(t, err)
		})
	}
}
