package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, k := range []string{"PORT", "DEEPSEEK_API_KEY", "DEEPSEEK_API_URL", "YANDEX_VISION_ENDPOINT", "LLM_PROVIDER", "REMOTE_TIMEOUT"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, "8000", cfg.Port)
	assert.Empty(t, cfg.DeepseekAPIKey)
	assert.Equal(t, "https://api.deepseek.com/v1/chat/completions", cfg.DeepseekAPIURL)
	assert.Equal(t, "deepseek-chat", cfg.DeepseekModel)
	assert.Equal(t, "https://vision.api.cloud.yandex.net/vision/v1/batchAnalyze", cfg.YandexVisionEndpoint)
	assert.Equal(t, "deepseek", cfg.LLMProvider)
	assert.Equal(t, 30*time.Second, cfg.RemoteTimeout)
}

func TestLoad_Env(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DEEPSEEK_API_KEY", "sk-1")
	t.Setenv("LLM_PROVIDER", "Gemini")
	t.Setenv("REMOTE_TIMEOUT", "5s")

	cfg := Load()
	assert.Equal(t, "sk-1", cfg.DeepseekAPIKey)
	assert.Equal(t, "gemini", cfg.LLMProvider)
	assert.Equal(t, 5*time.Second, cfg.RemoteTimeout)
}

func TestLoad_BadDuration(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("REMOTE_TIMEOUT", "soon")
	assert.Equal(t, 30*time.Second, Load().RemoteTimeout)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("YANDEX_VISION_FOLDER_ID=b1g-from-file\n"), 0o600))
	t.Setenv("YANDEX_VISION_FOLDER_ID", "")
	require.NoError(t, os.Unsetenv("YANDEX_VISION_FOLDER_ID"))

	cfg := Load()
	assert.Equal(t, "b1g-from-file", cfg.YandexVisionFolderID)

	// отсутствующий файл — не ошибка
	assert.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env")))
}
