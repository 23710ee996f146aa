package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PACKTRACK_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "memory", cfg.Store.Driver)
	require.Equal(t, "gemini", cfg.LLM.Provider)
	require.Equal(t, "GEMINI_API_KEY", cfg.LLM.APIKeyEnv)
	require.Equal(t, "gemini-2.5-flash", cfg.LLM.Model)
	require.Equal(t, "Asia/Jerusalem", cfg.UI.Timezone)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[store]
driver = "sqlite"
path = "/tmp/test-packtrack.db"

[llm]
provider = "openai"
model = "gpt-4o-mini"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("PACKTRACK_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "sqlite", cfg.Store.Driver)
	require.Equal(t, "/tmp/test-packtrack.db", cfg.Store.Path)
	require.Equal(t, "openai", cfg.LLM.Provider)
	require.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
}

func TestResolveAPIKey(t *testing.T) {
	t.Setenv("PACKTRACK_TEST_KEY", "from-env")

	cfg := Config{LLM: LLMConfig{APIKeyEnv: "PACKTRACK_TEST_KEY", APIKey: "from-file"}}
	require.Equal(t, "from-env", cfg.ResolveAPIKey())

	cfg.LLM.APIKeyEnv = "PACKTRACK_UNSET_KEY"
	require.Equal(t, "from-file", cfg.ResolveAPIKey())
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("PACKTRACK_CONFIG", path)

	want := Config{
		Store: StoreConfig{Driver: "sqlite", Path: "/tmp/pt.db"},
		LLM:   LLMConfig{Provider: "gemini", APIKeyEnv: "GEMINI_API_KEY", Model: "gemini-2.5-flash"},
		UI:    UIConfig{DateFormat: "02/01/2006", Timezone: "Asia/Jerusalem"},
	}
	require.NoError(t, Save(want))

	got, err := Load()
	require.NoError(t, err)
	require.Equal(t, want, got)
}
