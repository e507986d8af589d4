// Package analyzer связывает промпты, удалённые вызовы и разбор ответа
// в два пайплайна: текстовый и двухэтапный для изображений.
package analyzer

import (
	"context"

	"github.com/rs/zerolog"

	"motioncraft/api/internal/llm"
	"motioncraft/api/internal/ocr"
)

const (
	kindText  = "text"
	kindImage = "image"

	outcomeOK       = "ok"
	outcomeDegraded = "degraded"
	outcomeFailed   = "failed"
)

// Analyzer собирается один раз при старте и передаётся в обработчики.
type Analyzer struct {
	Text  *TextPipeline
	Image *ImagePipeline

	ocr ocr.Engine
	llm llm.Engine
}

func New(ocrEngine ocr.Engine, llmEngine llm.Engine, log zerolog.Logger) *Analyzer {
	return &Analyzer{
		Text:  NewTextPipeline(llmEngine, log),
		Image: NewImagePipeline(ocrEngine, llmEngine, log),
		ocr:   ocrEngine,
		llm:   llmEngine,
	}
}

// Services сообщает, для каких сервисов заданы ключи (для /health).
func (a *Analyzer) Services() map[string]bool {
	return map[string]bool{
		a.llm.Name(): a.llm.CheckConfig() == nil,
		a.ocr.Name(): a.ocr.CheckConfig() == nil,
	}
}

func (a *Analyzer) LLMName() string { return a.llm.Name() + "/" + a.llm.GetModel() }

// loggerFor предпочитает логгер запроса (zerolog.Ctx, с request_id), иначе — логгер пайплайна.
func loggerFor(ctx context.Context, fallback *zerolog.Logger) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return fallback
}
