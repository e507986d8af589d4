package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"motioncraft/api/internal/llm/deepseek"
	"motioncraft/api/internal/llm/gemini"
	"motioncraft/api/internal/ocr/yandex"
	"motioncraft/api/internal/remote"
)

type Config struct {
	Port       string
	AppVersion string

	DeepseekAPIKey string
	DeepseekAPIURL string
	DeepseekModel  string

	YandexVisionAPIKey   string
	YandexVisionFolderID string
	YandexVisionEndpoint string

	GeminiAPIKey string
	GeminiModel  string

	// deepseek | gemini
	LLMProvider   string
	RemoteTimeout time.Duration

	LogLevel  string
	LogFormat string

	TelegramBotToken string
	WebhookURL       string
}

func MustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing required env %s", k)
	}
	return v
}

func getEnv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getDurationEnv(k string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("config: bad %s=%q, using %s", k, v, def)
		return def
	}
	return d
}

// LoadDotEnv подхватывает .env (если есть). Переменные окружения процесса важнее.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// Load читает конфигурацию один раз при старте. Отсутствие API-ключей не фатально:
// соответствующий пайплайн вернёт ConfigError на запрос.
func Load() *Config {
	if err := LoadDotEnv(); err != nil {
		log.Printf("config: .env: %v", err)
	}
	return &Config{
		Port:       getEnv("PORT", "8000"),
		AppVersion: getEnv("APP_VERSION", "1.0.0"),

		DeepseekAPIKey: getEnv("DEEPSEEK_API_KEY", ""),
		DeepseekAPIURL: getEnv("DEEPSEEK_API_URL", deepseek.DefaultURL),
		DeepseekModel:  getEnv("DEEPSEEK_MODEL", deepseek.DefaultModel),

		YandexVisionAPIKey:   getEnv("YANDEX_VISION_API_KEY", ""),
		YandexVisionFolderID: getEnv("YANDEX_VISION_FOLDER_ID", ""),
		YandexVisionEndpoint: getEnv("YANDEX_VISION_ENDPOINT", yandex.DefaultEndpoint),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", gemini.DefaultModel),

		LLMProvider:   strings.ToLower(getEnv("LLM_PROVIDER", "deepseek")),
		RemoteTimeout: getDurationEnv("REMOTE_TIMEOUT", remote.DefaultTimeout),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		TelegramBotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
		WebhookURL:       getEnv("WEBHOOK_URL", ""),
	}
}
