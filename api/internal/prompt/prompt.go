package prompt

import (
	"fmt"
	"strings"
)

// Системные инструкции. Язык ответа фиксирован — русский.
const (
	TextSystem  = "Ты эксперт-аналитик в области 3D-анимации и моушн-дизайна. Анализируй конкурентов и предоставляй подробные выводы. Отвечай на русском языке."
	ImageSystem = "Ты эксперт по визуальному дизайну. Отвечай на русском языке."
)

// Лимиты ответа модели для каждого сценария.
const (
	TextMaxTokens  = 2000
	ImageMaxTokens = 1500
	Temperature    = 0.7
)

const textContract = `{
    "design_score": <1-10>,
    "animation_potential": <1-10>,
    "innovation_score": <1-10>,
    "technical_execution": <1-10>,
    "client_focus": <1-10>,
    "strengths": ["сильная сторона 1", "сильная сторона 2", ...],
    "weaknesses": ["слабая сторона 1", "слабая сторона 2", ...],
    "style_analysis": "подробный анализ стиля",
    "improvement_recommendations": ["рекомендация 1", "рекомендация 2", ...],
    "summary": "краткое резюме"
}`

const imageContract = `{
    "description": "краткое описание визуального контента",
    "design_score": <1-10>,
    "animation_potential": <1-10>,
    "visual_style_score": <1-10>,
    "visual_style_analysis": "подробный анализ стиля",
    "recommendations": ["рекомендация 1", "рекомендация 2", ...]
}`

// BuildTextPrompt вставляет текст конкурента как есть; имя компании — опционально.
func BuildTextPrompt(text, competitorName string) string {
	var b strings.Builder
	if competitorName != "" {
		fmt.Fprintf(&b, "Компания: %s\n", competitorName)
	}
	b.WriteString("\nПроанализируй этого конкурента в области 3D-анимации и моушн-дизайна:\n\n")
	b.WriteString(text)
	b.WriteString("\n\nПредоставь анализ в формате JSON на русском языке:\n")
	b.WriteString(textContract)
	return b.String()
}

// BuildImagePrompt строит второй промпт по тексту, извлечённому OCR.
func BuildImagePrompt(extractedText string) string {
	return "Проанализируй описание дизайна/скриншота:\n\n" +
		extractedText +
		"\n\nПредоставь визуальный анализ в формате JSON на русском языке:\n" +
		imageContract
}
