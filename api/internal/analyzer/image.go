package analyzer

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"motioncraft/api/internal/analysis"
	"motioncraft/api/internal/llm"
	"motioncraft/api/internal/metrics"
	"motioncraft/api/internal/ocr"
	"motioncraft/api/internal/prompt"
	"motioncraft/api/internal/repair"
)

// ImagePipeline: OCR → агрегирование текста → промпт → LLM → разбор.
// Ровно два удалённых вызова, строго последовательно: второй промпт
// зависит от результата первого.
type ImagePipeline struct {
	ocr ocr.Engine
	llm llm.Engine
	log zerolog.Logger
}

func NewImagePipeline(ocrEngine ocr.Engine, llmEngine llm.Engine, log zerolog.Logger) *ImagePipeline {
	return &ImagePipeline{
		ocr: ocrEngine,
		llm: llmEngine,
		log: log.With().Str("pipeline", kindImage).Logger(),
	}
}

func (p *ImagePipeline) Run(ctx context.Context, req analysis.ImageRequest) (analysis.ImageAnalysis, error) {
	start := time.Now()
	log := loggerFor(ctx, &p.log)

	// Оба ключа проверяются до первого вызова: иначе OCR отработал бы впустую.
	for _, check := range []func() error{p.ocr.CheckConfig, p.llm.CheckConfig} {
		if err := check(); err != nil {
			metrics.ObserveAnalysis(kindImage, outcomeFailed, time.Since(start))
			return analysis.ImageAnalysis{}, err
		}
	}

	// 1) OCR
	raw, err := p.ocr.Analyze(ctx, req.Image)
	if err != nil {
		metrics.ObserveAnalysis(kindImage, outcomeFailed, time.Since(start))
		log.Error().Err(err).Str("ocr", p.ocr.Name()).Msg("image analysis: ocr call failed")
		return analysis.ImageAnalysis{}, fmt.Errorf("image analysis: ocr: %w", err)
	}

	// 2) текст — всегда непустой
	text := ocr.ExtractText(raw)
	log.Debug().Int("image_bytes", len(req.Image)).Int("text_len", len(text)).Dur("ocr_took", time.Since(start)).Msg("ocr done")

	// 3–4) второй промпт и LLM
	reply, err := p.llm.Complete(ctx, llm.Request{
		System:      prompt.ImageSystem,
		User:        prompt.BuildImagePrompt(text),
		Temperature: prompt.Temperature,
		MaxTokens:   prompt.ImageMaxTokens,
	})
	if err != nil {
		metrics.ObserveAnalysis(kindImage, outcomeFailed, time.Since(start))
		log.Error().Err(err).Str("llm", p.llm.Name()).Msg("image analysis: llm call failed")
		return analysis.ImageAnalysis{}, fmt.Errorf("image analysis: llm: %w", err)
	}

	// 5) разбор; заглушка получает начало OCR-текста
	out := repair.DecodeImage(reply)
	outcome := outcomeOK
	if !out.OK() {
		outcome = outcomeDegraded
		log.Warn().Err(out.Reason()).Int("reply_len", len(reply)).Msg("image analysis: unparseable reply, using fallback")
	}
	metrics.ObserveAnalysis(kindImage, outcome, time.Since(start))
	log.Info().
		Str("ocr", p.ocr.Name()).
		Str("llm", p.llm.Name()).
		Str("outcome", outcome).
		Dur("took", time.Since(start)).
		Msg("image analysis done")

	return out.Or(func(reason error) analysis.ImageAnalysis {
		return analysis.ImageFallback(text, reason)
	}), nil
}
