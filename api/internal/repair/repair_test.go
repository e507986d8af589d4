package repair

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motioncraft/api/internal/analysis"
)

const acmeJSON = `{
  "design_score": 8,
  "animation_potential": 9,
  "innovation_score": 6,
  "technical_execution": 7,
  "client_focus": 5,
  "strengths": ["Сильный 3D-рендер", "Понятное позиционирование"],
  "weaknesses": ["Мало кейсов"],
  "style_analysis": "Минимализм с яркими акцентами.",
  "improvement_recommendations": ["Добавить шоурил", "Показать процесс"],
  "summary": "Крепкая студия для стартапов."
}`

var acme = analysis.TextAnalysis{
	DesignScore:                8,
	AnimationPotential:         9,
	InnovationScore:            6,
	TechnicalExecution:         7,
	ClientFocus:                5,
	Strengths:                  []string{"Сильный 3D-рендер", "Понятное позиционирование"},
	Weaknesses:                 []string{"Мало кейсов"},
	StyleAnalysis:              "Минимализм с яркими акцентами.",
	ImprovementRecommendations: []string{"Добавить шоурил", "Показать процесс"},
	Summary:                    "Крепкая студия для стартапов.",
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"bare", `{"a":1}`, `{"a":1}`},
		{"bare with spaces", "  {\"a\":1}\n", `{"a":1}`},
		{"json fence", "Вот анализ:\n```json\n{\"a\":1}\n```\nГотово.", `{"a":1}`},
		{"generic fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"generic fence with tag", "```JSON\n{\"a\":1}\n```", `{"a":1}`},
		{"json fence wins over earlier generic", "```\nnot this\n```\n```json\n{\"a\":2}\n```", `{"a":2}`},
		{"first json fence only", "```json\n{\"a\":1}\n```\n```json\n{\"a\":2}\n```", `{"a":1}`},
		{"unterminated json fence", "```json\n{\"a\":1}", `{"a":1}`},
		{"plain text", "not json", "not json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractJSON(tt.raw))
		})
	}
}

func TestDecodeText_WellFormed(t *testing.T) {
	for name, raw := range map[string]string{
		"bare":          acmeJSON,
		"json fence":    "```json\n" + acmeJSON + "\n```",
		"generic fence": "Ответ:\n```\n" + acmeJSON + "\n```",
	} {
		t.Run(name, func(t *testing.T) {
			out := DecodeText(raw)
			require.True(t, out.OK(), "reason: %v", out.Reason())
			assert.Equal(t, acme, out.Value())
		})
	}
}

func TestDecodeText_ExtraFieldsIgnored(t *testing.T) {
	raw := `{"design_score": 8, "animation_potential": 9, "innovation_score": 6, "technical_execution": 7,
	"client_focus": 5, "strengths": [], "weaknesses": [], "style_analysis": "", "improvement_recommendations": [],
	"summary": "", "confidence": 0.9}`
	out := DecodeText(raw)
	require.True(t, out.OK(), "reason: %v", out.Reason())
	assert.Equal(t, 8, out.Value().DesignScore)
}

func TestDecodeText_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		stage   string
		message string
	}{
		{"not json", "not json", "invalid JSON", "invalid character"},
		{"array", `[1,2,3]`, "invalid JSON", "not a JSON object"},
		{"missing field", `{"design_score": 8}`, "schema mismatch", "missing properties"},
		{"string score", replace(acmeJSON, `"design_score": 8`, `"design_score": "8"`), "schema mismatch", "/design_score"},
		{"score out of range", replace(acmeJSON, `"design_score": 8`, `"design_score": 11`), "schema mismatch", "/design_score"},
		{"score zero", replace(acmeJSON, `"client_focus": 5`, `"client_focus": 0`), "schema mismatch", "/client_focus"},
		{"fractional score", replace(acmeJSON, `"design_score": 8`, `"design_score": 7.5`), "schema mismatch", "/design_score"},
		{"integral float score", replace(acmeJSON, `"design_score": 8`, `"design_score": 8.0`), "decode", "design_score"},
		{"weaknesses not array", replace(acmeJSON, `"weaknesses": ["Мало кейсов"]`, `"weaknesses": "Мало кейсов"`), "schema mismatch", "/weaknesses"},
		{"null summary", replace(acmeJSON, `"summary": "Крепкая студия для стартапов."`, `"summary": null`), "schema mismatch", "/summary"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := DecodeText(tt.raw)
			require.False(t, out.OK())

			var pe *ParseError
			require.True(t, errors.As(out.Reason(), &pe))
			assert.Equal(t, tt.stage, pe.Stage)
			assert.Contains(t, out.Reason().Error(), tt.message)

			fb := out.Or(analysis.TextFallback)
			assert.Equal(t, 7, fb.DesignScore)
			require.Len(t, fb.Weaknesses, 1)
			assert.Contains(t, fb.Weaknesses[0], "Analysis parsing error: ")
			assert.Contains(t, fb.Weaknesses[0], tt.message)
		})
	}
}

func TestDecodeImage(t *testing.T) {
	raw := "```json\n" + `{
  "description": "Лендинг студии",
  "design_score": 6,
  "animation_potential": 8,
  "visual_style_score": 7,
  "visual_style_analysis": "Тёмная палитра.",
  "recommendations": ["Добавить motion в hero-блок"]
}` + "\n```"
	out := DecodeImage(raw)
	require.True(t, out.OK(), "reason: %v", out.Reason())
	assert.Equal(t, analysis.ImageAnalysis{
		Description:         "Лендинг студии",
		DesignScore:         6,
		AnimationPotential:  8,
		VisualStyleScore:    7,
		VisualStyleAnalysis: "Тёмная палитра.",
		Recommendations:     []string{"Добавить motion в hero-блок"},
	}, out.Value())

	bad := DecodeImage(`{"description": "x"}`)
	require.False(t, bad.OK())
	fb := bad.Or(func(reason error) analysis.ImageAnalysis { return analysis.ImageFallback("Buck Studio", reason) })
	assert.Equal(t, "Buck Studio", fb.Description)
	assert.Contains(t, fb.Recommendations[0], "missing properties")
}

func TestDecode_WithoutSchema(t *testing.T) {
	type pair struct {
		A int `json:"a"`
	}
	out := Decode[pair]("```json\n{\"a\": 3}\n```", nil)
	require.True(t, out.OK())
	assert.Equal(t, 3, out.Value().A)
}

func replace(s, old, new string) string { return strings.Replace(s, old, new, 1) }
