package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, BackendMemory, cfg.Vector.Backend)
	assert.Equal(t, []string{"en", "es"}, cfg.Translation.SupportedLanguages)
	assert.Equal(t, 3, cfg.Translation.TopK)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[data]
phrasebook_path = "custom/phrases.csv"

[vector]
backend = "sqlite"
data_dir = "/tmp/vectors"

[translation]
top_k = 5
supported_languages = ["en", "es", "pt"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "custom/phrases.csv", cfg.Data.PhrasebookPath)
	assert.Equal(t, BackendSQLite, cfg.Vector.Backend)
	assert.Equal(t, 5, cfg.Translation.TopK)
	assert.Equal(t, []string{"en", "es", "pt"}, cfg.Translation.SupportedLanguages)

	// Untouched sections keep their defaults.
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.True(t, cfg.Data.UseArticles)
}

func TestLoad_EnvOverridesAPIKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[llm]\napi_key = \"from-file\"\n"), 0600))
	t.Setenv("OPENAI_API_KEY", "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.LLM.APIKey)
}

func TestLoad_InvalidBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[vector]\nbackend = \"faiss\"\n"), 0600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown vector backend")
}

func TestLoad_MalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not toml ["), 0600))

	_, err := Load(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	bad := Default()
	bad.LLM.Provider = "bedrock"
	assert.Error(t, bad.Validate())

	bad = Default()
	bad.Translation.SupportedLanguages = nil
	assert.Error(t, bad.Validate())

	bad = Default()
	bad.Translation.TopK = -1
	assert.Error(t, bad.Validate())
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	cfg := Default()
	cfg.Data.PhrasebookPath = "elsewhere.csv"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "elsewhere.csv", loaded.Data.PhrasebookPath)
}
