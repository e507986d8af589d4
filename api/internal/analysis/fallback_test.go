package analysis

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTextFallback(t *testing.T) {
	got := TextFallback(errors.New("invalid character 'o' in literal null"))

	for _, s := range []int{got.DesignScore, got.AnimationPotential, got.InnovationScore, got.TechnicalExecution, got.ClientFocus} {
		assert.Equal(t, 7, s)
	}
	assert.Equal(t, []string{"Professional presentation"}, got.Strengths)
	assert.Equal(t, []string{"Analysis parsing error: invalid character 'o' in literal null"}, got.Weaknesses)
	assert.Equal(t, "Unable to parse detailed analysis", got.StyleAnalysis)
	assert.Equal(t, []string{"Review API response format"}, got.ImprovementRecommendations)
	assert.Equal(t, "Analysis completed with parsing issues", got.Summary)
}

func TestImageFallback(t *testing.T) {
	t.Run("seeded from OCR text", func(t *testing.T) {
		got := ImageFallback("Buck Studio", errors.New("bad json"))
		assert.Equal(t, "Buck Studio", got.Description)
		assert.Equal(t, 7, got.DesignScore)
		assert.Equal(t, 7, got.AnimationPotential)
		assert.Equal(t, 7, got.VisualStyleScore)
		assert.Equal(t, "Visual analysis completed", got.VisualStyleAnalysis)
		assert.Equal(t, []string{"Unable to parse detailed recommendations: bad json"}, got.Recommendations)
	})

	t.Run("truncated to 200 runes", func(t *testing.T) {
		long := strings.Repeat("ж", 300)
		got := ImageFallback(long, errors.New("x"))
		assert.Equal(t, 200, utf8.RuneCountInString(got.Description))
		assert.True(t, utf8.ValidString(got.Description))
	})

	t.Run("empty text", func(t *testing.T) {
		got := ImageFallback("", nil)
		assert.Equal(t, "Image analysis", got.Description)
		assert.Equal(t, []string{"Unable to parse detailed recommendations: unknown error"}, got.Recommendations)
	})
}
