// Package app собирает зависимости бинарников из конфигурации: логгер,
// клиенты внешних сервисов и анализатор. Всё создаётся один раз при старте.
package app

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"motioncraft/api/internal/analyzer"
	"motioncraft/api/internal/config"
	"motioncraft/api/internal/handle"
	"motioncraft/api/internal/llm"
	"motioncraft/api/internal/llm/deepseek"
	"motioncraft/api/internal/llm/gemini"
	"motioncraft/api/internal/logger"
	"motioncraft/api/internal/metrics"
	"motioncraft/api/internal/ocr/yandex"
)

type App struct {
	Cfg      *config.Config
	Log      zerolog.Logger
	Analyzer *analyzer.Analyzer

	// все известные сервисы, для /health
	Checks []handle.Checker
}

// New собирает приложение. logOut == nil — stdout.
func New(cfg *config.Config, service string, logOut io.Writer) (*App, error) {
	log := logger.New(logger.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Output:  logOut,
		Service: service,
	})

	engines := &llm.Engines{
		DeepSeek: deepseek.New(cfg.DeepseekAPIKey, cfg.DeepseekAPIURL, cfg.DeepseekModel, cfg.RemoteTimeout),
		Gemini:   gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.RemoteTimeout),
	}
	model, err := engines.GetEngine(cfg.LLMProvider)
	if err != nil {
		return nil, fmt.Errorf("LLM_PROVIDER=%q: %w", cfg.LLMProvider, err)
	}
	vision := yandex.New(cfg.YandexVisionAPIKey, cfg.YandexVisionFolderID, cfg.YandexVisionEndpoint, cfg.RemoteTimeout)

	metrics.Register()

	a := &App{
		Cfg:      cfg,
		Log:      log,
		Analyzer: analyzer.New(vision, model, log),
		Checks:   []handle.Checker{engines.DeepSeek, vision, engines.Gemini},
	}
	log.Info().
		Str("llm", a.Analyzer.LLMName()).
		Interface("services", a.Analyzer.Services()).
		Msg("analyzer ready")
	return a, nil
}

// Handler — HTTP-граница (chi) поверх анализатора.
func (a *App) Handler() *handle.Handle {
	return handle.New(a.Analyzer, a.Cfg.AppVersion, a.Log, a.Checks...)
}
