package analyzer

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"motioncraft/api/internal/analysis"
	"motioncraft/api/internal/llm"
	"motioncraft/api/internal/metrics"
	"motioncraft/api/internal/prompt"
	"motioncraft/api/internal/repair"
)

// TextPipeline: промпт → LLM → разбор. Ошибки конфигурации и транспорта
// фатальны, ошибка разбора заменяется записью-заглушкой.
type TextPipeline struct {
	llm llm.Engine
	log zerolog.Logger
}

func NewTextPipeline(engine llm.Engine, log zerolog.Logger) *TextPipeline {
	return &TextPipeline{
		llm: engine,
		log: log.With().Str("pipeline", kindText).Logger(),
	}
}

func (p *TextPipeline) Run(ctx context.Context, req analysis.TextRequest) (analysis.TextAnalysis, error) {
	start := time.Now()
	log := loggerFor(ctx, &p.log)

	if err := p.llm.CheckConfig(); err != nil {
		metrics.ObserveAnalysis(kindText, outcomeFailed, time.Since(start))
		return analysis.TextAnalysis{}, err
	}

	reply, err := p.llm.Complete(ctx, llm.Request{
		System:      prompt.TextSystem,
		User:        prompt.BuildTextPrompt(req.Text, req.CompetitorName),
		Temperature: prompt.Temperature,
		MaxTokens:   prompt.TextMaxTokens,
	})
	if err != nil {
		metrics.ObserveAnalysis(kindText, outcomeFailed, time.Since(start))
		log.Error().Err(err).Str("llm", p.llm.Name()).Msg("text analysis: llm call failed")
		return analysis.TextAnalysis{}, fmt.Errorf("text analysis: %w", err)
	}

	out := repair.DecodeText(reply)
	outcome := outcomeOK
	if !out.OK() {
		outcome = outcomeDegraded
		log.Warn().Err(out.Reason()).Int("reply_len", len(reply)).Msg("text analysis: unparseable reply, using fallback")
	}
	metrics.ObserveAnalysis(kindText, outcome, time.Since(start))
	log.Info().
		Str("llm", p.llm.Name()).
		Str("outcome", outcome).
		Dur("took", time.Since(start)).
		Msg("text analysis done")

	return out.Or(analysis.TextFallback), nil
}
