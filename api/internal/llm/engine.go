package llm

import (
	"context"
	"errors"
	"strings"
)

// Request — один вызов модели: системная инструкция + пользовательский промпт.
type Request struct {
	System      string
	User        string
	Temperature float64
	MaxTokens   int
}

// Engine — чат-модель. Complete возвращает свободный текст ответа (возможно, JSON в ```).
type Engine interface {
	Name() string
	GetModel() string
	// CheckConfig проверяет ключи до любого сетевого вызова.
	CheckConfig() error
	Complete(ctx context.Context, req Request) (string, error)
}

type Engines struct {
	DeepSeek Engine
	Gemini   Engine
}

func (e *Engines) GetEngine(name string) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "deepseek":
		if e.DeepSeek == nil {
			return nil, errors.New("deepseek engine is not initialised")
		}
		return e.DeepSeek, nil
	case "gemini":
		if e.Gemini == nil {
			return nil, errors.New("gemini engine is not initialised")
		}
		return e.Gemini, nil
	default:
		return nil, errors.New("unknown llm provider; use 'deepseek' or 'gemini'")
	}
}
